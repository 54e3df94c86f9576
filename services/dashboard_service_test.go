package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/club-system/models"
	"github.com/Dosada05/club-system/stats"
)

func strPtr(s string) *string { return &s }

func dashboardFixture() (*fakePlayerRepo, *fakeGameRepo, *fakeTrainingRepo) {
	players := &fakePlayerRepo{players: []*models.Player{
		{ID: 1, TeamID: 10, FirstName: "Artem", LastName: "Ivanov"},
		{ID: 2, TeamID: 10, FirstName: "Denis", LastName: "Petrov", Injured: true},
		{ID: 3, TeamID: 99, FirstName: "Other", LastName: "Team"},
	}}
	games := newFakeGameRepo(
		&models.Game{
			ID: 1, TeamID: 10, Score: strPtr("2-1"), Duration: 90,
			Stats: []models.GameStat{
				{ID: 11, GameID: 1, PlayerID: 1, Goals: 2, Started: true},
				{ID: 12, GameID: 1, PlayerID: 2, Assists: 1, Started: true},
			},
		},
		&models.Game{ID: 2, TeamID: 99, Score: strPtr("0-5")},
	)
	trainings := &fakeTrainingRepo{trainings: []*models.TrainingSession{
		{ID: 1, TeamID: 10, Attendance: []models.AttendanceRecord{
			{PlayerID: 1, Attended: true},
			{PlayerID: 2, Attended: false},
		}},
	}}
	return players, games, trainings
}

func TestDashboardServiceGetSummary(t *testing.T) {
	players, games, trainings := dashboardFixture()
	svc := NewDashboardService(players, games, trainings)

	summary, err := svc.GetSummary(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TeamStats.Wins != 1 || summary.TeamStats.Games != 1 {
		t.Errorf("team stats: want 1 win in 1 game, got %+v", summary.TeamStats)
	}
	if summary.PlayersTotal != 2 {
		t.Errorf("players total: other team's players must be out of scope, got %d", summary.PlayersTotal)
	}
	if summary.InjuredCount != 1 {
		t.Errorf("injured count: want 1, got %d", summary.InjuredCount)
	}
	if summary.AttendanceRate != 50 {
		t.Errorf("attendance rate: want 50, got %d", summary.AttendanceRate)
	}
}

func TestDashboardServiceGetSummary_RequiresTeamScope(t *testing.T) {
	players, games, trainings := dashboardFixture()
	svc := NewDashboardService(players, games, trainings)

	if _, err := svc.GetSummary(context.Background(), 0); !errors.Is(err, ErrTeamScopeRequired) {
		t.Errorf("want ErrTeamScopeRequired, got %v", err)
	}
}

func TestDashboardServiceGetSummary_NoPartialData(t *testing.T) {
	players, games, trainings := dashboardFixture()
	games.err = errors.New("connection refused")
	svc := NewDashboardService(players, games, trainings)

	summary, err := svc.GetSummary(context.Background(), 10)
	if err == nil {
		t.Fatalf("fetch failure must surface as an error, not partial data")
	}
	if summary.TeamStats != (models.TeamStats{}) || summary.PlayersTotal != 0 ||
		summary.AttendanceRate != 0 || len(summary.TopScorers) != 0 || len(summary.TopAssists) != 0 {
		t.Errorf("failed summary must be the zero value, got %+v", summary)
	}
}

func TestDashboardServiceGetLeaderboard(t *testing.T) {
	players, games, trainings := dashboardFixture()
	svc := NewDashboardService(players, games, trainings)

	entries, err := svc.GetLeaderboard(context.Background(), 10, stats.LeaderboardFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("want 2 leaderboard entries, got %d", len(entries))
	}
	if entries[0].PlayerID != 1 {
		t.Errorf("top scorer must be player 1, got %d", entries[0].PlayerID)
	}
	if entries[0].Name != "Artem Ivanov" {
		t.Errorf("name resolution failed, got %q", entries[0].Name)
	}

	if _, err := svc.GetLeaderboard(context.Background(), 10, "weird"); !errors.Is(err, ErrInvalidLeaderboard) {
		t.Errorf("unknown mode: want ErrInvalidLeaderboard, got %v", err)
	}
}

func TestDashboardServiceGetAttendanceRate(t *testing.T) {
	players, games, trainings := dashboardFixture()
	svc := NewDashboardService(players, games, trainings)

	rate, err := svc.GetAttendanceRate(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 50 {
		t.Errorf("attendance rate: want 50, got %d", rate)
	}

	// Команда без тренировок - 0 без деления на ноль.
	rate, err = svc.GetAttendanceRate(context.Background(), 77)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 0 {
		t.Errorf("no trainings: want 0, got %d", rate)
	}
}
