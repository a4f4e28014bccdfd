package logic

import (
	"errors"
)

// Error taxonomy for the action callback and dispatch paths. Handlers map
// these to HTTP status codes; everything else is a 500.
var (
	ErrValidation = errors.New("invalid request")
	ErrNotFound   = errors.New("not found")
	ErrUserPaused = errors.New("user is paused")
)
