package models

import "time"

type Player struct {
	ID           int       `json:"id" db:"id"`
	TeamID       int       `json:"team_id" db:"team_id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Position     string    `json:"position" db:"position"`
	JerseyNumber *int      `json:"jersey_number,omitempty" db:"jersey_number"`
	Injured      bool      `json:"injured" db:"injured"`
	InjuryNote   *string   `json:"injury_note,omitempty" db:"injury_note"`
	Sick         bool      `json:"sick" db:"sick"`
	SicknessNote *string   `json:"sickness_note,omitempty" db:"sickness_note"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// FullName собирает отображаемое имя игрока для таблиц и лидербордов.
func (p Player) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
