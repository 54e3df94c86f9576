package models

import "time"

type TrainingSession struct {
	ID         int                `json:"id" db:"id"`
	TeamID     int                `json:"team_id" db:"team_id"`
	Date       time.Time          `json:"date" db:"date"`
	Attendance []AttendanceRecord `json:"attendance,omitempty" db:"-"`
}

type AttendanceRecord struct {
	PlayerID int  `json:"player_id" db:"player_id"`
	Attended bool `json:"attended" db:"attended"`
}
