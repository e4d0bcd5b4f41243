package apperror

import "errors"

var (
	ErrInvalidState   = errors.New("invalid game state")
	ErrInvalidMove    = errors.New("invalid move")
	ErrNoGameScore    = errors.New("game score is not available")
	ErrInvalidPlayers = errors.New("invalid players configuration")
)
