package stats

import "github.com/Dosada05/club-system/models"

// ComputeMinutes считает суммарное игровое время игрока в одном матче.
// Это каноническое бизнес-правило: все экраны (карточка матча, сезонная
// таблица, дашборд) обязаны использовать именно его, а не собственные
// копии расчёта.
//
// Функция тотальна: никогда не паникует и не возвращает ошибку.
// Некорректные интервалы (отрицательные, out < in) дают нулевой вклад -
// отбрасывать их обязан слой валидации при записи (Ledger.Append),
// путь чтения остаётся нефатальным.
func ComputeMinutes(stat models.GameStat, duration int) int {
	if duration <= 0 {
		duration = models.DefaultGameDuration
	}

	subs := stat.Substitutions
	minutes := 0

	if stat.Started {
		// Первый отрезок: от стартового свистка до первого ухода с поля.
		switch {
		case len(subs) > 0 && subs[0].OutMinute != nil:
			minutes += max(0, *subs[0].OutMinute)
		case stat.SubstitutionMinute != nil:
			// Legacy-модель с единственной заменой за матч.
			minutes += max(0, *stat.SubstitutionMinute)
		default:
			// Ни разу не был заменён - отыграл весь матч.
			minutes += duration
		}
		// Повторные выходы на поле (правила турнира могут разрешать
		// обратные замены).
		for _, e := range subs[min(1, len(subs)):] {
			switch {
			case e.InMinute != nil && e.OutMinute != nil:
				minutes += max(0, *e.OutMinute-*e.InMinute)
			case e.InMinute != nil:
				minutes += max(0, duration-*e.InMinute)
			}
		}
		if minutes < 0 {
			minutes = 0
		}
		return minutes
	}

	// Вышел на замену: суммируем все интервалы на поле.
	for _, e := range subs {
		switch {
		case e.InMinute != nil && e.OutMinute != nil:
			minutes += max(0, *e.OutMinute-*e.InMinute)
		case e.InMinute != nil:
			minutes += max(0, duration-*e.InMinute)
		}
	}
	if len(subs) == 0 && stat.SubstitutionInMinute != nil {
		minutes += max(0, duration-*stat.SubstitutionInMinute)
	}
	// Пустой ledger без legacy-поля: на поле так и не появился.
	if minutes < 0 {
		minutes = 0
	}
	return minutes
}
