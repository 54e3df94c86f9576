package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed     = errors.New("validation failed")
	ErrTeamScopeRequired    = errors.New("team id is required")
	ErrInvalidScoreFormat   = errors.New("score must have the form \"<team>-<opponent>\"")
	ErrInvalidSubstitution  = errors.New("substitution interval is invalid")
	ErrInvalidLeaderboard   = errors.New("leaderboard mode must be \"compact\" or \"full\"")
	ErrSnapshotsUnavailable = errors.New("snapshot storage is not configured")

	// Ошибки, специфичные для сущностей
	ErrPlayerNotFound   = errors.New("player not found")
	ErrGameNotFound     = errors.New("game not found")
	ErrGameStatNotFound = errors.New("game stat not found")
	ErrTrainingNotFound = errors.New("training session not found")
)
