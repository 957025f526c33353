package schedule

import "time"

const (
	gamesPath = "/v1/games"

	// PageSize is the largest page the schedule API serves
	PageSize = 100

	// DefaultTimeout bounds a single page request
	DefaultTimeout = 15 * time.Second

	// DefaultDaysAhead is how far past today a refresh reaches
	DefaultDaysAhead = 30

	// maxPages stops a runaway cursor loop
	maxPages = 50

	maxErrorBody = 512
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgFetchingPage     = "Fetching schedule page"
	LogMsgRefreshStarting  = "Schedule refresh starting"
	LogMsgRefreshCompleted = "Schedule refresh completed"
	LogMsgRefreshFailed    = "Schedule refresh failed"
	LogMsgSkippedGame      = "Skipping malformed schedule game"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgBuildRequest  = "failed to build schedule request"
	ErrMsgRequestFailed = "schedule request failed"
	ErrMsgBadStatus     = "schedule API returned status %d: %s"
	ErrMsgDecodePage    = "failed to decode schedule page"
	ErrMsgTooManyPages  = "schedule pagination exceeded page limit"
	ErrMsgUpsertGames   = "failed to upsert games"
)
