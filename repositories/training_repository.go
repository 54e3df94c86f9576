package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/club-system/models"
	"github.com/lib/pq"
)

var ErrTrainingNotFound = errors.New("training session not found")

type TrainingRepository interface {
	// ListByTeam возвращает тренировки команды вместе с отметками
	// посещаемости, отсортированные по дате.
	ListByTeam(ctx context.Context, teamID int) ([]*models.TrainingSession, error)
	GetByID(ctx context.Context, id int) (*models.TrainingSession, error)
}

type postgresTrainingRepository struct {
	db *sql.DB
}

func NewPostgresTrainingRepository(db *sql.DB) TrainingRepository {
	return &postgresTrainingRepository{db: db}
}

func (r *postgresTrainingRepository) GetByID(ctx context.Context, id int) (*models.TrainingSession, error) {
	query := `SELECT id, team_id, date FROM training_sessions WHERE id = $1`
	var t models.TrainingSession
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.TeamID, &t.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainingNotFound
		}
		return nil, err
	}
	attendance, err := r.listAttendance(ctx, []int64{int64(t.ID)})
	if err != nil {
		return nil, err
	}
	t.Attendance = attendance[t.ID]
	return &t, nil
}

func (r *postgresTrainingRepository) ListByTeam(ctx context.Context, teamID int) ([]*models.TrainingSession, error) {
	query := `SELECT id, team_id, date FROM training_sessions WHERE team_id = $1 ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainings for team %d: %w", teamID, err)
	}
	defer rows.Close()

	sessions := make([]*models.TrainingSession, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var t models.TrainingSession
		if scanErr := rows.Scan(&t.ID, &t.TeamID, &t.Date); scanErr != nil {
			return nil, fmt.Errorf("failed to scan training row: %w", scanErr)
		}
		sessions = append(sessions, &t)
		ids = append(ids, int64(t.ID))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during training rows iteration: %w", err)
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	attendance, err := r.listAttendance(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range sessions {
		t.Attendance = attendance[t.ID]
	}
	return sessions, nil
}

func (r *postgresTrainingRepository) listAttendance(ctx context.Context, trainingIDs []int64) (map[int][]models.AttendanceRecord, error) {
	query := `
		SELECT training_id, player_id, attended
		FROM training_attendance
		WHERE training_id = ANY($1)
		ORDER BY training_id, player_id`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(trainingIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	byTraining := make(map[int][]models.AttendanceRecord)
	for rows.Next() {
		var trainingID int
		var rec models.AttendanceRecord
		if scanErr := rows.Scan(&trainingID, &rec.PlayerID, &rec.Attended); scanErr != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", scanErr)
		}
		byTraining[trainingID] = append(byTraining[trainingID], rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during attendance rows iteration: %w", err)
	}
	return byTraining, nil
}
