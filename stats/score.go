package stats

import (
	"strconv"
	"strings"

	"github.com/Dosada05/club-system/models"
)

// ReconcileScore сводит два независимых источника счёта матча в один
// канонический результат. Счёт вводится либо строкой "2-1" (быстрый
// ввод), либо поимённой статистикой голов (детальный ввод); источники
// никогда не суммируются между собой и не задваиваются:
//
//   - голы соперника берутся только из строки счёта (статистика чужих
//     игроков не ведётся);
//   - голы команды - из статистики, если она непустая, иначе из строки.
//
// Матч без введённого счёта и без голов считается несыгранным
// (OutcomeUndecided) и не попадает в подсчёт побед/ничьих/поражений.
func ReconcileScore(game models.Game) models.MatchResult {
	statsGoals := 0
	for _, st := range game.Stats {
		if st.Goals > 0 {
			statsGoals += st.Goals
		}
	}

	scoreTeam, scoreOpponent, scored := parseScore(game.Score)

	teamGoals := scoreTeam
	if statsGoals > 0 {
		teamGoals = statsGoals
	}
	opponentGoals := scoreOpponent

	outcome := models.OutcomeUndecided
	switch {
	case teamGoals > opponentGoals:
		outcome = models.OutcomeWin
	case teamGoals < opponentGoals:
		outcome = models.OutcomeLoss
	case teamGoals > 0 || opponentGoals > 0:
		outcome = models.OutcomeDraw
	case scored:
		// Явно введённый "0-0" - сыгранная нулевая ничья.
		outcome = models.OutcomeDraw
	}

	return models.MatchResult{
		TeamGoals:     teamGoals,
		OpponentGoals: opponentGoals,
		Outcome:       outcome,
	}
}

// ValidScore сообщает, разбирается ли строка как счёт "A-B".
// Используется слоем записи: на пути чтения битые строки не ошибка,
// а нулевой счёт.
func ValidScore(score string) bool {
	_, _, ok := parseScore(&score)
	return ok
}

// parseScore разбирает строку "A-B". Отсутствующая или битая строка
// трактуется как нулевой счёт и исключается из определения исхода.
func parseScore(score *string) (team, opponent int, ok bool) {
	if score == nil {
		return 0, 0, false
	}
	parts := strings.SplitN(*score, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	team, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || team < 0 {
		return 0, 0, false
	}
	opponent, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || opponent < 0 {
		return 0, 0, false
	}
	return team, opponent, true
}
