// Package live рассылает дашбордам сигналы о том, что входные данные
// изменились и сводку пора перезапросить. Это инвалидация кэша на
// клиенте, а не трансляция хода матча: сервер никогда не шлёт сами
// пересчитанные данные.
package live

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Message - событие для клиентов одной команды.
type Message struct {
	Type    string      `json:"type"` // SCORE_UPDATED, SUBSTITUTION_RECORDED, MINUTES_RECALCULATED
	Payload interface{} `json:"payload,omitempty"`
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	teamID int

	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, teamID int) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		teamID: teamID,
	}
}

// Hub держит подключённых клиентов, сгруппированных по командам.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	teams      map[int]map[*Client]bool
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		teams:      make(map[int]map[*Client]bool),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.teams[client.teamID]; !ok {
				h.teams[client.teamID] = make(map[*Client]bool)
			}
			h.teams[client.teamID][client] = true
			h.logger.Info("live client connected",
				slog.Int("team_id", client.teamID),
				slog.Int("team_clients", len(h.teams[client.teamID])),
			)
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.teams[client.teamID]; ok {
				if _, okClient := clients[client]; okClient {
					client.mu.Lock()
					if !client.closed {
						close(client.send)
						client.closed = true
					}
					client.mu.Unlock()
					delete(clients, client)
					if len(clients) == 0 {
						delete(h.teams, client.teamID)
					}
					h.logger.Info("live client disconnected", slog.Int("team_id", client.teamID))
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToTeam отправляет событие всем клиентам команды. Клиенты
// с переполненным каналом пропускаются: лучше потерянный сигнал
// инвалидации, чем заблокированный сервис.
func (h *Hub) BroadcastToTeam(teamID int, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.teams[teamID]
	if !ok {
		return
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal live message", slog.Any("error", err))
		return
	}
	for client := range clients {
		client.mu.Lock()
		if client.closed {
			client.mu.Unlock()
			continue
		}
		select {
		case client.send <- raw:
		default:
			h.logger.Warn("live client send buffer full, dropping message", slog.Int("team_id", teamID))
		}
		client.mu.Unlock()
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

// ReadPump вычитывает и игнорирует входящие сообщения: канал
// односторонний, но читать нужно, чтобы обрабатывать pong и закрытие.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("unexpected websocket close", slog.Any("error", err))
			}
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
