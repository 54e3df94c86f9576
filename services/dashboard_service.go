package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/club-system/models"
	"github.com/Dosada05/club-system/repositories"
	"github.com/Dosada05/club-system/stats"
	"golang.org/x/sync/errgroup"
)

// DashboardService отдаёт производные read-model'и сезона. Область
// видимости (команда) всегда передаётся явным параметром: сервис не
// читает "выбранную команду" из какого-либо общего состояния, поэтому
// одинаковые вызовы дают одинаковый результат.
type DashboardService interface {
	GetSummary(ctx context.Context, teamID int) (models.DashboardSummary, error)
	GetTeamStats(ctx context.Context, teamID int) (models.TeamStats, error)
	GetLeaderboard(ctx context.Context, teamID int, mode stats.LeaderboardMode) ([]models.LeaderboardEntry, error)
	GetAttendanceRate(ctx context.Context, teamID int) (int, error)
}

type dashboardService struct {
	playerRepo   repositories.PlayerRepository
	gameRepo     repositories.GameRepository
	trainingRepo repositories.TrainingRepository
}

func NewDashboardService(
	playerRepo repositories.PlayerRepository,
	gameRepo repositories.GameRepository,
	trainingRepo repositories.TrainingRepository,
) DashboardService {
	return &dashboardService{
		playerRepo:   playerRepo,
		gameRepo:     gameRepo,
		trainingRepo: trainingRepo,
	}
}

// GetSummary загружает три входные коллекции параллельно и сводит их
// чистой функцией ядра. При любой ошибке загрузки возвращается ошибка
// целиком: сводка никогда не строится на частичных данных, вызывающая
// сторона подставляет нулевой DashboardSummary сама.
func (s *dashboardService) GetSummary(ctx context.Context, teamID int) (models.DashboardSummary, error) {
	if teamID <= 0 {
		return models.DashboardSummary{}, ErrTeamScopeRequired
	}

	var (
		players   []*models.Player
		games     []*models.Game
		trainings []*models.TrainingSession
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.ListByTeam(gCtx, teamID)
		if err != nil {
			return fmt.Errorf("players: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		games, err = s.gameRepo.ListByTeam(gCtx, teamID)
		if err != nil {
			return fmt.Errorf("games: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		trainings, err = s.trainingRepo.ListByTeam(gCtx, teamID)
		if err != nil {
			return fmt.Errorf("trainings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.DashboardSummary{}, fmt.Errorf("failed to load dashboard inputs for team %d: %w", teamID, err)
	}

	summary := stats.ComputeDashboardSummary(
		dereferenceAll(players),
		dereferenceAll(games),
		dereferenceAll(trainings),
	)
	return summary, nil
}

func (s *dashboardService) GetTeamStats(ctx context.Context, teamID int) (models.TeamStats, error) {
	if teamID <= 0 {
		return models.TeamStats{}, ErrTeamScopeRequired
	}
	games, err := s.gameRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return models.TeamStats{}, fmt.Errorf("failed to load games for team %d: %w", teamID, err)
	}
	return stats.ComputeTeamStats(dereferenceAll(games)), nil
}

func (s *dashboardService) GetLeaderboard(ctx context.Context, teamID int, mode stats.LeaderboardMode) ([]models.LeaderboardEntry, error) {
	if teamID <= 0 {
		return nil, ErrTeamScopeRequired
	}
	if mode != stats.LeaderboardCompact && mode != stats.LeaderboardFull {
		return nil, ErrInvalidLeaderboard
	}

	var (
		players []*models.Player
		games   []*models.Game
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.ListByTeam(gCtx, teamID)
		return err
	})
	g.Go(func() error {
		var err error
		games, err = s.gameRepo.ListByTeam(gCtx, teamID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load leaderboard inputs for team %d: %w", teamID, err)
	}

	return stats.ComputeLeaderboard(dereferenceAll(games), dereferenceAll(players), mode), nil
}

func (s *dashboardService) GetAttendanceRate(ctx context.Context, teamID int) (int, error) {
	if teamID <= 0 {
		return 0, ErrTeamScopeRequired
	}
	trainings, err := s.trainingRepo.ListByTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTrainingNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load trainings for team %d: %w", teamID, err)
	}
	return stats.ComputeAttendanceRate(dereferenceAll(trainings)), nil
}
