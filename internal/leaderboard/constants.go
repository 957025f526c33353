package leaderboard

// SeasonCacheSize bounds the standings and score stats caches. Each season has
// two partitions, so this keeps a couple of dozen seasons warm.
const SeasonCacheSize = 48

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSummaryFailed    = "Failed to fetch user picks summary"
	LogMsgPastRecordFailed = "Failed to fetch user picks past record"
	LogMsgStatsFailed      = "Failed to fetch leaderboard stats"
	LogMsgTeamsFailed      = "Failed to fetch teams"
	LogMsgStandingsCached  = "Cached standings"
	LogMsgStatsCached      = "Cached score stats"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgFetchSummary    = "failed to fetch user picks summary"
	ErrMsgFetchPastRecord = "failed to fetch user picks past record"
	ErrMsgFetchStats      = "failed to fetch leaderboard stats"
	ErrMsgFetchTeams      = "failed to fetch teams"
)

// teamsKey is the single entry of the team catalog cache
const teamsKey = "all"
