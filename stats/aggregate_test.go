package stats

import (
	"testing"

	"github.com/Dosada05/club-system/models"
)

func TestComputeTeamStats(t *testing.T) {
	games := []models.Game{
		{Score: strPtr("3-1")},                       // win
		{Score: strPtr("0-2")},                       // loss
		{Score: strPtr("1-1")},                       // draw
		{Score: strPtr("0-0")},                       // explicit goalless draw
		{},                                           // not played yet
		{Stats: []models.GameStat{{PlayerID: 9, Goals: 2}}}, // win from stats only
	}

	ts := ComputeTeamStats(games)

	if ts.Wins != 2 || ts.Losses != 1 || ts.Draws != 2 {
		t.Errorf("W/L/D: want 2/1/2, got %d/%d/%d", ts.Wins, ts.Losses, ts.Draws)
	}
	if ts.Games != 5 {
		t.Errorf("games: want 5 (unplayed match excluded), got %d", ts.Games)
	}
	if ts.GoalsFor != 6 || ts.GoalsAgainst != 4 {
		t.Errorf("GF/GA: want 6/4, got %d/%d", ts.GoalsFor, ts.GoalsAgainst)
	}
	if ts.GoalDifference != ts.GoalsFor-ts.GoalsAgainst {
		t.Errorf("goal difference must equal GF-GA, got %d", ts.GoalDifference)
	}
	if ts.Wins+ts.Losses+ts.Draws > ts.Games {
		t.Errorf("W+L+D (%d) must not exceed games (%d)", ts.Wins+ts.Losses+ts.Draws, ts.Games)
	}
}

func TestComputeTeamStats_UndecidedWithStatsCounts(t *testing.T) {
	// Сыгранный матч без счёта и без голов, но с записанным составом:
	// в количество матчей входит, в W/L/D - нет.
	games := []models.Game{
		{Stats: []models.GameStat{{PlayerID: 1, Started: true}}},
	}
	ts := ComputeTeamStats(games)
	if ts.Games != 1 {
		t.Errorf("games: want 1, got %d", ts.Games)
	}
	if ts.Wins+ts.Losses+ts.Draws != 0 {
		t.Errorf("undecided match must not contribute to W/L/D")
	}
}

func TestComputeTeamStats_Empty(t *testing.T) {
	ts := ComputeTeamStats(nil)
	if ts != (models.TeamStats{}) {
		t.Errorf("empty season must produce zero stats, got %+v", ts)
	}
}

func leaderboardFixture() ([]models.Game, []models.Player) {
	players := []models.Player{
		{ID: 1, FirstName: "Artem", LastName: "Ivanov"},
		{ID: 2, FirstName: "Denis", LastName: "Petrov"},
		{ID: 3, FirstName: "Ilya", LastName: "Sidorov"},
	}
	games := []models.Game{
		{
			Duration: 90,
			Stats: []models.GameStat{
				{PlayerID: 1, Goals: 2, Assists: 1, Started: true},
				{PlayerID: 2, Goals: 2, Assists: 2, Started: true},
				{PlayerID: 3, Goals: 0, Assists: 0, Started: true, YellowCards: 1},
			},
		},
		{
			Duration: 90,
			Stats: []models.GameStat{
				{PlayerID: 1, Goals: 2, Assists: 1, Started: true},
				{PlayerID: 2, Goals: 2, Assists: 1, Started: true},
			},
		},
	}
	return games, players
}

func TestComputeLeaderboard_FullOrdering(t *testing.T) {
	games, players := leaderboardFixture()
	entries := ComputeLeaderboard(games, players, LeaderboardFull)
	if len(entries) != 3 {
		t.Fatalf("want 3 entries, got %d", len(entries))
	}
	// Оба забили по 4, но у Петрова 3 передачи против 2 - он выше.
	if entries[0].PlayerID != 2 {
		t.Errorf("full mode: 3-assist player must rank first, got player %d", entries[0].PlayerID)
	}
	if entries[1].PlayerID != 1 {
		t.Errorf("full mode: 2-assist player must rank second, got player %d", entries[1].PlayerID)
	}
}

func TestComputeLeaderboard_CompactKeepsInsertionOrderOnTies(t *testing.T) {
	games, players := leaderboardFixture()
	entries := ComputeLeaderboard(games, players, LeaderboardCompact)
	// По голам игроки 1 и 2 равны; компактный режим сохраняет порядок
	// появления в статистике.
	if entries[0].PlayerID != 1 || entries[1].PlayerID != 2 {
		t.Errorf("compact mode: want insertion order 1,2 got %d,%d", entries[0].PlayerID, entries[1].PlayerID)
	}
}

func TestComputeLeaderboard_Accumulation(t *testing.T) {
	games, players := leaderboardFixture()
	entries := ComputeLeaderboard(games, players, LeaderboardFull)
	byID := make(map[int]models.LeaderboardEntry)
	for _, e := range entries {
		byID[e.PlayerID] = e
	}

	p1 := byID[1]
	if p1.Goals != 4 || p1.Assists != 2 || p1.Games != 2 {
		t.Errorf("player 1 totals: want 4g/2a/2games, got %dg/%da/%dgames", p1.Goals, p1.Assists, p1.Games)
	}
	if p1.Minutes != 180 {
		t.Errorf("player 1 minutes: want 180, got %d", p1.Minutes)
	}
	if p1.Name != "Artem Ivanov" {
		t.Errorf("player 1 name: got %q", p1.Name)
	}
	p3 := byID[3]
	if p3.Yellow != 1 {
		t.Errorf("player 3 yellow cards: want 1, got %d", p3.Yellow)
	}
}

func TestComputeLeaderboard_NameBackfill(t *testing.T) {
	games := []models.Game{
		{Stats: []models.GameStat{{PlayerID: 7, Goals: 1}}},
		{Stats: []models.GameStat{{PlayerID: 7, Goals: 1, PlayerName: strPtr("Former Player")}}},
		{Stats: []models.GameStat{{PlayerID: 7, Goals: 1, PlayerName: strPtr("Renamed Later")}}},
	}
	entries := ComputeLeaderboard(games, nil, LeaderboardFull)
	if len(entries) != 1 {
		t.Fatalf("want single entry, got %d", len(entries))
	}
	// Имя подтягивается из первой записи, где оно известно,
	// и дальше не перезаписывается.
	if entries[0].Name != "Former Player" {
		t.Errorf("name backfill: want %q, got %q", "Former Player", entries[0].Name)
	}
	if entries[0].Goals != 3 {
		t.Errorf("goals: want 3, got %d", entries[0].Goals)
	}
}

func TestComputeLeaderboard_RosterNameWinsOverDenormalized(t *testing.T) {
	players := []models.Player{{ID: 5, FirstName: "Roster", LastName: "Name"}}
	games := []models.Game{
		{Stats: []models.GameStat{{PlayerID: 5, Goals: 1, PlayerName: strPtr("Stale Copy")}}},
	}
	entries := ComputeLeaderboard(games, players, LeaderboardFull)
	if entries[0].Name != "Roster Name" {
		t.Errorf("roster name must win, got %q", entries[0].Name)
	}
}
