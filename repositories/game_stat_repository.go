package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dosada05/club-system/models"
	"github.com/lib/pq"
)

var (
	ErrGameStatNotFound      = errors.New("game stat not found")
	ErrGameStatPlayerInvalid = errors.New("game stat player conflict or invalid")
	ErrGameStatDuplicate     = errors.New("game stat already exists for this player and game")
)

type GameStatRepository interface {
	GetByID(ctx context.Context, id int) (*models.GameStat, error)
	ListByGame(ctx context.Context, gameID int) ([]*models.GameStat, error)
	ListByGames(ctx context.Context, gameIDs []int64) ([]*models.GameStat, error)
	// UpdateMinutes сохраняет пересчитанные минуты одной записи.
	// Одна запись - один запрос: сбой сохранения одного игрока не
	// должен блокировать остальных.
	UpdateMinutes(ctx context.Context, id int, minutes int) error
	ReplaceSubstitutions(ctx context.Context, exec SQLExecutor, id int, subs []models.SubstitutionEntry) error
}

type postgresGameStatRepository struct {
	db *sql.DB
}

func NewPostgresGameStatRepository(db *sql.DB) GameStatRepository {
	return &postgresGameStatRepository{db: db}
}

func (r *postgresGameStatRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const gameStatColumns = `id, game_id, player_id, minutes, goals, assists, yellow_cards,
	red_cards, rating, started, substitutions, substitution_minute, substitution_in_minute, player_name`

func (r *postgresGameStatRepository) scanStat(rowScanner interface{ Scan(...interface{}) error }) (*models.GameStat, error) {
	var st models.GameStat
	var rawSubs []byte
	err := rowScanner.Scan(
		&st.ID, &st.GameID, &st.PlayerID, &st.Minutes, &st.Goals, &st.Assists,
		&st.YellowCards, &st.RedCards, &st.Rating, &st.Started,
		&rawSubs, &st.SubstitutionMinute, &st.SubstitutionInMinute, &st.PlayerName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameStatNotFound
		}
		return nil, err
	}
	// Колонка substitutions - исторически JSON-массив свободной формы.
	// Битый JSON на пути чтения приравнивается к пустому списку, чтобы
	// одна испорченная запись не валила весь дашборд.
	if len(rawSubs) > 0 {
		if err := json.Unmarshal(rawSubs, &st.Substitutions); err != nil {
			st.Substitutions = nil
		}
	}
	return &st, nil
}

func (r *postgresGameStatRepository) GetByID(ctx context.Context, id int) (*models.GameStat, error) {
	query := `SELECT ` + gameStatColumns + ` FROM game_stats WHERE id = $1`
	return r.scanStat(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresGameStatRepository) ListByGame(ctx context.Context, gameID int) ([]*models.GameStat, error) {
	query := `SELECT ` + gameStatColumns + ` FROM game_stats WHERE game_id = $1 ORDER BY id`
	return r.list(ctx, query, gameID)
}

func (r *postgresGameStatRepository) ListByGames(ctx context.Context, gameIDs []int64) ([]*models.GameStat, error) {
	query := `SELECT ` + gameStatColumns + ` FROM game_stats WHERE game_id = ANY($1) ORDER BY game_id, id`
	return r.list(ctx, query, pq.Array(gameIDs))
}

func (r *postgresGameStatRepository) list(ctx context.Context, query string, arg interface{}) ([]*models.GameStat, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list game stats: %w", err)
	}
	defer rows.Close()

	statsList := make([]*models.GameStat, 0)
	for rows.Next() {
		st, scanErr := r.scanStat(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan game stat row: %w", scanErr)
		}
		statsList = append(statsList, st)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during game stat rows iteration: %w", err)
	}
	return statsList, nil
}

func (r *postgresGameStatRepository) UpdateMinutes(ctx context.Context, id int, minutes int) error {
	query := `UPDATE game_stats SET minutes = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, minutes, id)
	if err != nil {
		return r.handleStatError(err)
	}
	return checkAffectedRows(result, ErrGameStatNotFound)
}

func (r *postgresGameStatRepository) ReplaceSubstitutions(ctx context.Context, exec SQLExecutor, id int, subs []models.SubstitutionEntry) error {
	executor := r.getExecutor(exec)
	raw, err := json.Marshal(subs)
	if err != nil {
		return fmt.Errorf("failed to encode substitutions for stat %d: %w", id, err)
	}
	query := `UPDATE game_stats SET substitutions = $1 WHERE id = $2`
	result, err := executor.ExecContext(ctx, query, raw, id)
	if err != nil {
		return r.handleStatError(err)
	}
	return checkAffectedRows(result, ErrGameStatNotFound)
}

func (r *postgresGameStatRepository) handleStatError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Constraint {
		case "game_stats_player_id_fkey":
			return ErrGameStatPlayerInvalid
		case "game_stats_game_id_player_id_key":
			return ErrGameStatDuplicate
		}
	}
	return err
}
