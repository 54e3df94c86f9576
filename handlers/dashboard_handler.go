package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Dosada05/club-system/models"
	"github.com/Dosada05/club-system/services"
	"github.com/Dosada05/club-system/stats"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
	snapshotService  services.SnapshotService
}

func NewDashboardHandler(dashboardService services.DashboardService, snapshotService services.SnapshotService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		snapshotService:  snapshotService,
	}
}

// GetSummary отдаёт сводку сезона. При ошибке загрузки данных клиент
// получает нулевую сводку и признак деградации: баннер вместо пустого
// экрана, без фатальных ошибок на пути чтения.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParamInt(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	summary, err := h.dashboardService.GetSummary(r.Context(), teamID)
	if err != nil {
		slog.Warn("dashboard summary degraded", "team_id", teamID, slog.Any("error", err))
		writeJSON(w, http.StatusOK, jsonResponse{
			"summary":  models.DashboardSummary{},
			"degraded": true,
		}, nil)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"summary": summary, "degraded": false}, nil)
}

func (h *DashboardHandler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParamInt(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamStats, err := h.dashboardService.GetTeamStats(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"team_stats": teamStats}, nil)
}

func (h *DashboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParamInt(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	mode := stats.LeaderboardMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = stats.LeaderboardFull
	}
	entries, err := h.dashboardService.GetLeaderboard(r.Context(), teamID, mode)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": entries, "mode": mode}, nil)
}

func (h *DashboardHandler) GetAttendanceRate(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParamInt(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	rate, err := h.dashboardService.GetAttendanceRate(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"attendance_rate": rate}, nil)
}

// ArchiveSnapshot выгружает текущую сводку в объектное хранилище.
func (h *DashboardHandler) ArchiveSnapshot(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParamInt(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	result, err := h.snapshotService.Archive(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"snapshot": result}, nil)
}

// DeleteSnapshot убирает устаревший снимок из архива по ключу.
func (h *DashboardHandler) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParamInt(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	key := r.URL.Query().Get("key")
	if key == "" {
		badRequestResponse(w, r, errors.New("key query parameter is required"))
		return
	}
	if err := h.snapshotService.Delete(r.Context(), teamID, key); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"deleted": key}, nil)
}
