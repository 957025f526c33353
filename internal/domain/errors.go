package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Identity errors
	ErrMsgUnauthenticated = "no authenticated user"

	// Game errors
	ErrMsgGameNotFound        = "game not found"
	ErrMsgGameAlreadyStarted  = "game already started"
	ErrMsgPickWindowClosed    = "game is no longer accepting picks"
	ErrMsgInvalidTeam         = "team is not playing in this game"
	ErrMsgInvalidDate         = "invalid date"
	ErrMsgNoCompletedGameDays = "no completed game days found"

	// Pick errors
	ErrMsgPickNotFound           = "pick not found or not owned by user"
	ErrMsgInsufficientConfidence = "not enough confidence remaining"

	// Leaderboard errors
	ErrMsgUserNotRanked = "user has no record for this period"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgPersistence       = "failed to persist change"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Identity errors
	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)

	// Game errors
	ErrGameNotFound        = errors.New(ErrMsgGameNotFound)
	ErrGameAlreadyStarted  = errors.New(ErrMsgGameAlreadyStarted)
	ErrPickWindowClosed    = errors.New(ErrMsgPickWindowClosed)
	ErrInvalidTeam         = errors.New(ErrMsgInvalidTeam)
	ErrInvalidDate         = errors.New(ErrMsgInvalidDate)
	ErrNoCompletedGameDays = errors.New(ErrMsgNoCompletedGameDays)

	// Pick errors
	ErrPickNotFound           = errors.New(ErrMsgPickNotFound)
	ErrInsufficientConfidence = errors.New(ErrMsgInsufficientConfidence)

	// Leaderboard errors
	ErrUserNotRanked = errors.New(ErrMsgUserNotRanked)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrPersistence matches any PersistenceError
	ErrPersistence = errors.New(ErrMsgPersistence)
)

// PersistenceError is a failed write. The backend message is meant to reach
// the user, so Err is kept as the store reported it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is matches ErrPersistence
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
