package dailyresults

// DefaultLookbackDays is how many days before today are checked for a
// completed game day
const DefaultLookbackDays = 7

// FormattedDateLayout renders the snapshot date for display
const FormattedDateLayout = "Monday, January 2, 2006"

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCheckFailed    = "Failed to check game day for final games"
	LogMsgNoCompletedDay = "No completed game day in lookback window"
	LogMsgGameIDsFailed  = "Failed to list games for date"
	LogMsgDayPicksFailed = "Failed to list picks for game day"
	LogMsgSnapshotCached = "Cached daily results"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgListGames = "failed to list games for date"
	ErrMsgListPicks = "failed to list picks for games"
)
