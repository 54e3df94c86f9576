package models

import "time"

// DefaultGameDuration - длительность матча в минутах, если не указана явно.
const DefaultGameDuration = 90

type Game struct {
	ID       int       `json:"id" db:"id"`
	TeamID   int       `json:"team_id" db:"team_id"`
	Date     time.Time `json:"date" db:"date"`
	Opponent string    `json:"opponent" db:"opponent"`
	// Score - строка вида "2-1" (голы команды - голы соперника).
	// nil, пока результат не введён.
	Score    *string    `json:"score,omitempty" db:"score"`
	Duration int        `json:"duration" db:"duration"`
	Stats    []GameStat `json:"stats,omitempty" db:"-"`
}

// EffectiveDuration возвращает длительность матча, подставляя значение
// по умолчанию, если сохранённая отсутствует или некорректна.
func (g Game) EffectiveDuration() int {
	if g.Duration <= 0 {
		return DefaultGameDuration
	}
	return g.Duration
}

// GameStat - статистика одного игрока в одном матче.
// Не более одной записи на пару (player_id, game_id).
type GameStat struct {
	ID          int  `json:"id" db:"id"`
	GameID      int  `json:"game_id" db:"game_id"`
	PlayerID    int  `json:"player_id" db:"player_id"`
	Minutes     int  `json:"minutes" db:"minutes"`
	Goals       int  `json:"goals" db:"goals"`
	Assists     int  `json:"assists" db:"assists"`
	YellowCards int  `json:"yellow_cards" db:"yellow_cards"`
	RedCards    int  `json:"red_cards" db:"red_cards"`
	Rating      *int `json:"rating,omitempty" db:"rating"`
	Started     bool `json:"started" db:"started"`

	// Substitutions - новая модель: упорядоченный список интервалов
	// входа/выхода. Хранится в БД как JSON-массив.
	Substitutions []SubstitutionEntry `json:"substitutions,omitempty" db:"-"`

	// Legacy-поля старой модели с одной заменой за матч. Сохраняются
	// в исторических записях и учитываются при расчёте минут.
	SubstitutionMinute   *int `json:"substitution_minute,omitempty" db:"substitution_minute"`
	SubstitutionInMinute *int `json:"substitution_in_minute,omitempty" db:"substitution_in_minute"`

	// PlayerName - денормализованное имя для записей, чей игрок уже
	// удалён из ростера.
	PlayerName *string `json:"player_name,omitempty" db:"player_name"`
}

// SubstitutionEntry - один интервал пребывания игрока на поле.
// Минуты в диапазоне [0, длительность матча]; оба поля опциональны.
type SubstitutionEntry struct {
	InMinute   *int `json:"in_minute,omitempty"`
	OutMinute  *int `json:"out_minute,omitempty"`
	ReplacedBy *int `json:"replaced_by,omitempty"`
}
