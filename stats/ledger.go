// Package stats реализует учёт игрового времени и агрегацию сезонной
// статистики клуба: минуты игроков, сверку счёта матча, командные итоги,
// лидерборды и посещаемость тренировок. Все функции пакета чистые: они
// не модифицируют входные коллекции и детерминированы.
package stats

import (
	"errors"

	"github.com/Dosada05/club-system/models"
)

// ErrInvalidInterval возвращается при попытке записать интервал замены,
// нарушающий порядок или выходящий за пределы матча.
var ErrInvalidInterval = errors.New("invalid substitution interval")

// Ledger - упорядоченный список интервалов пребывания игрока на поле
// в одном матче. Пустой ledger валиден: игрок либо отыграл весь матч,
// либо не выходил вовсе.
type Ledger struct {
	duration int
	entries  []models.SubstitutionEntry
}

func NewLedger(duration int) *Ledger {
	if duration <= 0 {
		duration = models.DefaultGameDuration
	}
	return &Ledger{duration: duration}
}

// NormalizeLedger собирает ledger из записи статистики, поддерживая обе
// исторические формы хранения: новую (список substitutions) и legacy
// (одно поле substitution_minute / substitution_in_minute). Legacy-поля
// учитываются только при пустом списке, чтобы не задвоить интервалы.
// Уже сохранённые записи не валидируются повторно: путь чтения не
// должен падать на исторических данных.
func NormalizeLedger(stat models.GameStat, duration int) *Ledger {
	l := NewLedger(duration)
	if len(stat.Substitutions) > 0 {
		l.entries = append(l.entries, stat.Substitutions...)
		return l
	}
	if stat.Started && stat.SubstitutionMinute != nil {
		out := *stat.SubstitutionMinute
		l.entries = append(l.entries, models.SubstitutionEntry{OutMinute: &out})
		return l
	}
	if !stat.Started && stat.SubstitutionInMinute != nil {
		in := *stat.SubstitutionInMinute
		l.entries = append(l.entries, models.SubstitutionEntry{InMinute: &in})
	}
	return l
}

// Append валидирует и добавляет новый интервал. Требования:
// обе указанные минуты в [0, duration], in <= out, и интервал не
// откатывает время относительно последней записи.
func (l *Ledger) Append(e models.SubstitutionEntry) error {
	if e.InMinute == nil && e.OutMinute == nil {
		return ErrInvalidInterval
	}
	if e.InMinute != nil && (*e.InMinute < 0 || *e.InMinute > l.duration) {
		return ErrInvalidInterval
	}
	if e.OutMinute != nil && (*e.OutMinute < 0 || *e.OutMinute > l.duration) {
		return ErrInvalidInterval
	}
	if e.InMinute != nil && e.OutMinute != nil && *e.OutMinute < *e.InMinute {
		return ErrInvalidInterval
	}
	if len(l.entries) > 0 && earliestMinute(e) < latestMinute(l.entries[len(l.entries)-1]) {
		return ErrInvalidInterval
	}
	l.entries = append(l.entries, e)
	return nil
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries возвращает копию списка интервалов.
func (l *Ledger) Entries() []models.SubstitutionEntry {
	out := make([]models.SubstitutionEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Duration() int {
	return l.duration
}

// earliestMinute и latestMinute терпимы к пустым историческим записям
// из NormalizeLedger: запись без минут не ограничивает соседей.
func earliestMinute(e models.SubstitutionEntry) int {
	if e.InMinute != nil {
		return *e.InMinute
	}
	if e.OutMinute != nil {
		return *e.OutMinute
	}
	return 0
}

func latestMinute(e models.SubstitutionEntry) int {
	if e.OutMinute != nil {
		return *e.OutMinute
	}
	if e.InMinute != nil {
		return *e.InMinute
	}
	return 0
}
