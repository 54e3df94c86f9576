package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/club-system/models"
	"github.com/lib/pq"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrGameTeamInvalid = errors.New("game team conflict or invalid")
)

type GameRepository interface {
	GetByID(ctx context.Context, id int) (*models.Game, error)
	// ListByTeam возвращает матчи команды вместе со встроенной
	// статистикой игроков, отсортированные по дате.
	ListByTeam(ctx context.Context, teamID int) ([]*models.Game, error)
	UpdateScore(ctx context.Context, id int, score *string) error
}

type postgresGameRepository struct {
	db       *sql.DB
	statRepo GameStatRepository
}

func NewPostgresGameRepository(db *sql.DB, statRepo GameStatRepository) GameRepository {
	return &postgresGameRepository{db: db, statRepo: statRepo}
}

const gameColumns = `id, team_id, date, opponent, score, duration`

func (r *postgresGameRepository) scanGame(rowScanner interface{ Scan(...interface{}) error }) (*models.Game, error) {
	var g models.Game
	err := rowScanner.Scan(&g.ID, &g.TeamID, &g.Date, &g.Opponent, &g.Score, &g.Duration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *postgresGameRepository) GetByID(ctx context.Context, id int) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	game, err := r.scanGame(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	stats, err := r.statRepo.ListByGame(ctx, game.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats for game %d: %w", game.ID, err)
	}
	game.Stats = dereferenceStats(stats)
	return game, nil
}

func (r *postgresGameRepository) ListByTeam(ctx context.Context, teamID int) ([]*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE team_id = $1 ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games for team %d: %w", teamID, err)
	}
	defer rows.Close()

	games := make([]*models.Game, 0)
	gameIDs := make([]int64, 0)
	for rows.Next() {
		g, scanErr := r.scanGame(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", scanErr)
		}
		games = append(games, g)
		gameIDs = append(gameIDs, int64(g.ID))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during game rows iteration: %w", err)
	}
	if len(games) == 0 {
		return games, nil
	}

	stats, err := r.statRepo.ListByGames(ctx, gameIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats for team %d games: %w", teamID, err)
	}
	byGame := make(map[int][]models.GameStat)
	for _, st := range stats {
		byGame[st.GameID] = append(byGame[st.GameID], *st)
	}
	for _, g := range games {
		g.Stats = byGame[g.ID]
	}
	return games, nil
}

func (r *postgresGameRepository) UpdateScore(ctx context.Context, id int, score *string) error {
	query := `UPDATE games SET score = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, score, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == "games_team_id_fkey" {
			return ErrGameTeamInvalid
		}
		return err
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func dereferenceStats(slice []*models.GameStat) []models.GameStat {
	if slice == nil {
		return []models.GameStat{}
	}
	result := make([]models.GameStat, len(slice))
	for i, ptr := range slice {
		if ptr != nil {
			result[i] = *ptr
		}
	}
	return result
}
