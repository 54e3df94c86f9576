package stats

import (
	"math"

	"github.com/Dosada05/club-system/models"
)

// ComputeAttendanceRate считает среднюю посещаемость тренировок в
// процентах (0-100). Усредняются только тренировки, по которым есть
// хотя бы одна отметка: сессия без отметок - это неразмеченная сессия,
// а не нулевая явка, и в знаменатель не попадает.
func ComputeAttendanceRate(trainings []models.TrainingSession) int {
	var sum float64
	counted := 0
	for _, t := range trainings {
		total := len(t.Attendance)
		if total == 0 {
			continue
		}
		attended := 0
		for _, rec := range t.Attendance {
			if rec.Attended {
				attended++
			}
		}
		sum += float64(attended) / float64(total) * 100
		counted++
	}
	if counted == 0 {
		return 0
	}
	return int(math.Round(sum / float64(counted)))
}
