package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/club-system/live"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: ограничить Origin доменом клуба перед выкаткой наружу.
		return true
	},
}

type WebSocketHandler struct {
	hub *live.Hub
}

func NewWebSocketHandler(hub *live.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// ServeWs подключает клиента к каналу инвалидации своей команды.
// Клиенты подключаются к /ws/teams/{teamID}.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParamInt(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отправил HTTP-ошибку клиенту.
		slog.Warn("failed to upgrade websocket connection",
			slog.Int("team_id", teamID),
			slog.Any("error", err),
		)
		return
	}

	client := live.NewClient(h.hub, conn, teamID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
