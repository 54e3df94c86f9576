package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/club-system/live"
	"github.com/Dosada05/club-system/models"
	"github.com/Dosada05/club-system/repositories"
	"github.com/Dosada05/club-system/stats"
)

// MinutesRecalcEntry - результат пересчёта минут одной записи
// статистики. Сохранение каждой записи независимо: сбой одной не
// прерывает остальные, поэтому ошибки собираются поимённо.
type MinutesRecalcEntry struct {
	StatID   int    `json:"stat_id"`
	PlayerID int    `json:"player_id"`
	Minutes  int    `json:"minutes"`
	Error    string `json:"error,omitempty"`
}

type MatchService interface {
	GetGame(ctx context.Context, gameID int) (*models.Game, error)
	// ListGames возвращает матчи команды со встроенной статистикой.
	ListGames(ctx context.Context, teamID int) ([]models.Game, error)
	// UpdateScore валидирует и сохраняет строку счёта, затем отдаёт
	// канонический результат матча после сверки.
	UpdateScore(ctx context.Context, gameID int, score string) (models.MatchResult, error)
	// RecordSubstitution добавляет интервал замены в ledger записи
	// статистики. Обе исторические формы хранения нормализуются перед
	// проверкой; невалидный интервал отклоняется целиком.
	RecordSubstitution(ctx context.Context, statID int, entry models.SubstitutionEntry) (*models.GameStat, error)
	// RecalculateMinutes пересчитывает минуты всех записей матча
	// каноническим правилом и сохраняет их по одной.
	RecalculateMinutes(ctx context.Context, gameID int) ([]MinutesRecalcEntry, error)
}

type matchService struct {
	gameRepo repositories.GameRepository
	statRepo repositories.GameStatRepository
	hub      *live.Hub
	logger   *slog.Logger
}

func NewMatchService(
	gameRepo repositories.GameRepository,
	statRepo repositories.GameStatRepository,
	hub *live.Hub,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		gameRepo: gameRepo,
		statRepo: statRepo,
		hub:      hub,
		logger:   logger,
	}
}

func (s *matchService) GetGame(ctx context.Context, gameID int) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %d: %w", gameID, err)
	}
	return game, nil
}

func (s *matchService) ListGames(ctx context.Context, teamID int) ([]models.Game, error) {
	if teamID <= 0 {
		return nil, ErrTeamScopeRequired
	}
	games, err := s.gameRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games for team %d: %w", teamID, err)
	}
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if g != nil {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (s *matchService) UpdateScore(ctx context.Context, gameID int, score string) (models.MatchResult, error) {
	if !stats.ValidScore(score) {
		return models.MatchResult{}, fmt.Errorf("%w: %q", ErrInvalidScoreFormat, score)
	}
	if err := s.gameRepo.UpdateScore(ctx, gameID, &score); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return models.MatchResult{}, ErrGameNotFound
		}
		return models.MatchResult{}, fmt.Errorf("failed to update score for game %d: %w", gameID, err)
	}

	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return models.MatchResult{}, fmt.Errorf("failed to reload game %d: %w", gameID, err)
	}
	s.notifyTeam(game.TeamID, "SCORE_UPDATED", gameID)
	return stats.ReconcileScore(*game), nil
}

func (s *matchService) RecordSubstitution(ctx context.Context, statID int, entry models.SubstitutionEntry) (*models.GameStat, error) {
	stat, err := s.statRepo.GetByID(ctx, statID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameStatNotFound) {
			return nil, ErrGameStatNotFound
		}
		return nil, fmt.Errorf("failed to get stat %d: %w", statID, err)
	}
	game, err := s.gameRepo.GetByID(ctx, stat.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game %d for stat %d: %w", stat.GameID, statID, err)
	}

	ledger := stats.NormalizeLedger(*stat, game.EffectiveDuration())
	if err := ledger.Append(entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubstitution, err)
	}

	if err := s.statRepo.ReplaceSubstitutions(ctx, nil, statID, ledger.Entries()); err != nil {
		return nil, fmt.Errorf("failed to save substitutions for stat %d: %w", statID, err)
	}

	stat.Substitutions = ledger.Entries()
	minutes := stats.ComputeMinutes(*stat, game.EffectiveDuration())
	if err := s.statRepo.UpdateMinutes(ctx, statID, minutes); err != nil {
		return nil, fmt.Errorf("failed to save minutes for stat %d: %w", statID, err)
	}
	stat.Minutes = minutes

	s.notifyTeam(game.TeamID, "SUBSTITUTION_RECORDED", game.ID)
	return stat, nil
}

func (s *matchService) RecalculateMinutes(ctx context.Context, gameID int) ([]MinutesRecalcEntry, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %d: %w", gameID, err)
	}

	duration := game.EffectiveDuration()
	results := make([]MinutesRecalcEntry, 0, len(game.Stats))
	for _, st := range game.Stats {
		entry := MinutesRecalcEntry{
			StatID:   st.ID,
			PlayerID: st.PlayerID,
			Minutes:  stats.ComputeMinutes(st, duration),
		}
		// Каждая запись сохраняется отдельным запросом: частичный
		// сбой не должен откатывать или блокировать остальных.
		if err := s.statRepo.UpdateMinutes(ctx, st.ID, entry.Minutes); err != nil {
			entry.Error = err.Error()
			s.logger.Error("failed to save recalculated minutes",
				slog.Int("stat_id", st.ID),
				slog.Int("game_id", gameID),
				slog.Any("error", err),
			)
		}
		results = append(results, entry)
	}

	s.notifyTeam(game.TeamID, "MINUTES_RECALCULATED", gameID)
	return results, nil
}

// notifyTeam шлёт клиентам команды сигнал перезапросить дашборд.
func (s *matchService) notifyTeam(teamID int, event string, gameID int) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToTeam(teamID, live.Message{
		Type:    event,
		Payload: map[string]int{"game_id": gameID},
	})
}
