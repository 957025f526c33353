package picks

// ============================================================================
// Rejection Reasons
// ============================================================================

// Metric labels for rejected submissions and cancellations
const (
	ReasonUnauthenticated = "unauthenticated"
	ReasonInvalidInput    = "invalid_input"
	ReasonGameNotFound    = "game_not_found"
	ReasonInvalidTeam     = "invalid_team"
	ReasonAlreadyStarted  = "already_started"
	ReasonWindowClosed    = "window_closed"
	ReasonNoConfidence    = "insufficient_confidence"
	ReasonNotFound        = "not_found"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgNoUser          = "Ignoring pick without an authenticated user"
	LogMsgPickRejected    = "Pick rejected"
	LogMsgUpsertFailed    = "Failed to save pick"
	LogMsgDeleteFailed    = "Failed to delete pick"
	LogMsgPickSaved       = "Pick saved"
	LogMsgPickCancelled   = "Pick cancelled"
	LogMsgCancelNoop      = "No pick to cancel"
	LogMsgLoadGamesFailed = "Failed to load games for pick"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgSavePick   = "failed to save pick"
	ErrMsgDeletePick = "failed to delete pick"
)
