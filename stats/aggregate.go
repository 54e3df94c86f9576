package stats

import (
	"sort"

	"github.com/Dosada05/club-system/models"
)

// LeaderboardMode выбирает порядок сортировки лидерборда.
type LeaderboardMode string

const (
	// LeaderboardCompact - компактный виджет дашборда: только по голам,
	// равные значения остаются в порядке появления.
	LeaderboardCompact LeaderboardMode = "compact"
	// LeaderboardFull - полная сезонная таблица: голы, затем передачи,
	// затем количество матчей.
	LeaderboardFull LeaderboardMode = "full"
)

// ComputeTeamStats сворачивает список матчей в командные итоги сезона.
// В количество сыгранных матчей входят матчи с определённым исходом,
// а также несведённые матчи, по которым уже есть записанная статистика.
func ComputeTeamStats(games []models.Game) models.TeamStats {
	var ts models.TeamStats
	for _, g := range games {
		res := ReconcileScore(g)
		ts.GoalsFor += res.TeamGoals
		ts.GoalsAgainst += res.OpponentGoals
		switch res.Outcome {
		case models.OutcomeWin:
			ts.Wins++
			ts.Games++
		case models.OutcomeLoss:
			ts.Losses++
			ts.Games++
		case models.OutcomeDraw:
			ts.Draws++
			ts.Games++
		case models.OutcomeUndecided:
			if hasRecordedStats(g) {
				ts.Games++
			}
		}
	}
	ts.GoalDifference = ts.GoalsFor - ts.GoalsAgainst
	return ts
}

func hasRecordedStats(g models.Game) bool {
	for _, st := range g.Stats {
		if st.Started || st.Minutes > 0 || st.Goals > 0 || st.Assists > 0 ||
			st.YellowCards > 0 || st.RedCards > 0 || len(st.Substitutions) > 0 {
			return true
		}
	}
	return false
}

// ComputeLeaderboard строит рейтинг игроков по всем матчам сезона.
// Имена берутся из ростера; для записей удалённых игроков используется
// денормализованное имя из статистики. Однажды известное имя не
// перезаписывается более поздними записями.
func ComputeLeaderboard(games []models.Game, players []models.Player, mode LeaderboardMode) []models.LeaderboardEntry {
	names := make(map[int]string, len(players))
	for _, p := range players {
		names[p.ID] = p.FullName()
	}

	acc := make(map[int]*models.LeaderboardEntry)
	var order []int

	for _, g := range games {
		duration := g.EffectiveDuration()
		for _, st := range g.Stats {
			e, ok := acc[st.PlayerID]
			if !ok {
				e = &models.LeaderboardEntry{PlayerID: st.PlayerID, Name: names[st.PlayerID]}
				acc[st.PlayerID] = e
				order = append(order, st.PlayerID)
			}
			if e.Name == "" && st.PlayerName != nil {
				e.Name = *st.PlayerName
			}
			e.Goals += st.Goals
			e.Assists += st.Assists
			e.Games++
			e.Minutes += ComputeMinutes(st, duration)
			e.Yellow += st.YellowCards
			e.Red += st.RedCards
		}
	}

	entries := make([]models.LeaderboardEntry, 0, len(order))
	for _, id := range order {
		entries = append(entries, *acc[id])
	}

	switch mode {
	case LeaderboardFull:
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i], entries[j]
			if a.Goals != b.Goals {
				return a.Goals > b.Goals
			}
			if a.Assists != b.Assists {
				return a.Assists > b.Assists
			}
			return a.Games > b.Games
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Goals > entries[j].Goals
		})
	}
	return entries
}

// topByAssists - отдельный порядок для виджета ассистентов на дашборде.
func topByAssists(entries []models.LeaderboardEntry) []models.LeaderboardEntry {
	sorted := make([]models.LeaderboardEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Assists > sorted[j].Assists
	})
	return sorted
}
