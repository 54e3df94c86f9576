package models

// Производные модели. Не хранятся в БД: пересчитываются на каждое чтение
// из входных коллекций и не имеют собственного жизненного цикла.

type MatchOutcome string

const (
	OutcomeWin       MatchOutcome = "win"
	OutcomeLoss      MatchOutcome = "loss"
	OutcomeDraw      MatchOutcome = "draw"
	OutcomeUndecided MatchOutcome = "undecided"
)

// MatchResult - канонический результат одного матча после сверки строки
// счёта с суммой индивидуальных голов.
type MatchResult struct {
	TeamGoals     int          `json:"team_goals"`
	OpponentGoals int          `json:"opponent_goals"`
	Outcome       MatchOutcome `json:"outcome"`
}

type TeamStats struct {
	Games          int `json:"games"`
	Wins           int `json:"wins"`
	Losses         int `json:"losses"`
	Draws          int `json:"draws"`
	GoalsFor       int `json:"goals_for"`
	GoalsAgainst   int `json:"goals_against"`
	GoalDifference int `json:"goal_difference"`
}

type LeaderboardEntry struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
	Games    int    `json:"games"`
	Minutes  int    `json:"minutes"`
	Yellow   int    `json:"yellow"`
	Red      int    `json:"red"`
}

// DashboardSummary - read-model для дашборда сезона.
type DashboardSummary struct {
	TeamStats      TeamStats          `json:"team_stats"`
	TopScorers     []LeaderboardEntry `json:"top_scorers"`
	TopAssists     []LeaderboardEntry `json:"top_assists"`
	AttendanceRate int                `json:"attendance_rate"`
	PlayersTotal   int                `json:"players_total"`
	InjuredCount   int                `json:"injured_count"`
	SickCount      int                `json:"sick_count"`
}
