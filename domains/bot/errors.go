package bot

import "errors"

var (
	// ErrBotNotFound is returned when an operation targets a nonexistent id.
	ErrBotNotFound = errors.New("bot not found")
)
