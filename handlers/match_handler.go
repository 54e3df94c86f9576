package handlers

import (
	"net/http"

	"github.com/Dosada05/club-system/models"
	"github.com/Dosada05/club-system/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := urlParamInt(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	game, err := h.matchService.GetGame(r.Context(), gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil)
}

// GetTeamGames отдаёт матчи команды со статистикой для карточек матчей.
func (h *MatchHandler) GetTeamGames(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParamInt(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	games, err := h.matchService.ListGames(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"games": games}, nil)
}

type updateScoreRequest struct {
	Score string `json:"score"`
}

// UpdateScore сохраняет строку счёта и возвращает результат сверки
// с поимённой статистикой.
func (h *MatchHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	gameID, err := urlParamInt(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input updateScoreRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	result, err := h.matchService.UpdateScore(r.Context(), gameID, input.Score)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"result": result}, nil)
}

type recordSubstitutionRequest struct {
	InMinute   *int `json:"in_minute"`
	OutMinute  *int `json:"out_minute"`
	ReplacedBy *int `json:"replaced_by"`
}

func (h *MatchHandler) RecordSubstitution(w http.ResponseWriter, r *http.Request) {
	statID, err := urlParamInt(r, "statID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input recordSubstitutionRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	stat, err := h.matchService.RecordSubstitution(r.Context(), statID, models.SubstitutionEntry{
		InMinute:   input.InMinute,
		OutMinute:  input.OutMinute,
		ReplacedBy: input.ReplacedBy,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"stat": stat}, nil)
}

// RecalculateMinutes пересчитывает минуты всех игроков матча.
// Ответ всегда 200 со списком поимённых результатов: частичные сбои
// сохранения отражены в элементах списка, а не в статусе ответа.
func (h *MatchHandler) RecalculateMinutes(w http.ResponseWriter, r *http.Request) {
	gameID, err := urlParamInt(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	results, err := h.matchService.RecalculateMinutes(r.Context(), gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"minutes": results}, nil)
}
