package stats

import "github.com/Dosada05/club-system/models"

// topPerformersLimit - сколько строк попадает в виджеты дашборда.
const topPerformersLimit = 5

// ComputeDashboardSummary собирает сводный read-model дашборда из трёх
// входных коллекций. Чистая функция: не возвращает ошибок и не
// обращается к внешним сервисам; при недоступности исходных данных
// вызывающая сторона подставляет нулевой DashboardSummary сама, а не
// вызывает функцию с частичными данными.
func ComputeDashboardSummary(players []models.Player, games []models.Game, trainings []models.TrainingSession) models.DashboardSummary {
	leaderboard := ComputeLeaderboard(games, players, LeaderboardCompact)

	summary := models.DashboardSummary{
		TeamStats:      ComputeTeamStats(games),
		TopScorers:     truncate(leaderboard, topPerformersLimit),
		TopAssists:     truncate(topByAssists(leaderboard), topPerformersLimit),
		AttendanceRate: ComputeAttendanceRate(trainings),
		PlayersTotal:   len(players),
	}
	for _, p := range players {
		if p.Injured {
			summary.InjuredCount++
		}
		if p.Sick {
			summary.SickCount++
		}
	}
	return summary
}

func truncate(entries []models.LeaderboardEntry, limit int) []models.LeaderboardEntry {
	if len(entries) <= limit {
		return entries
	}
	return entries[:limit]
}
