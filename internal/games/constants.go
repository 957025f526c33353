package games

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgListGamesFailed     = "Failed to list games"
	LogMsgTeamResultsFailed   = "Failed to load recent team results"
	LogMsgInjuryReportFailed  = "Failed to load injury report, continuing without injuries"
	LogMsgGamesCached         = "Cached games for date"
	LogMsgStaleLoadDropped    = "Roster changed during load, not caching"
	LogMsgInitialized         = "Game cache initialized"
	LogMsgSeasonResolveFailed = "Failed to resolve season for date"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgListGames   = "failed to list games"
	ErrMsgTeamResults = "failed to load team results"
)
