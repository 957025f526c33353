package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeForeignKeyViolation is raised when a pick references an unknown game, team or profile
	PgErrorCodeForeignKeyViolation = "23503"
)

// Game status marker for concluded games
const statusFinal = "Final"

// Error Messages - Game Operations
const (
	ErrMsgFailedToQueryGames        = "failed to query games"
	ErrMsgFailedToScanGame          = "failed to scan game"
	ErrMsgFailedToDecodePicks       = "failed to decode game picks"
	ErrMsgFailedToQueryTeamResults  = "failed to query team results"
	ErrMsgFailedToScanTeamResult    = "failed to scan team result"
	ErrMsgFailedToUpsertGames       = "failed to upsert games"
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToCheckFinalGames   = "failed to check for final games"
	ErrMsgFailedToQueryGameIDs      = "failed to query game ids"
)

// Error Messages - Pick Operations
const (
	ErrMsgInvalidUserID         = "invalid user id"
	ErrMsgFailedToUpsertPick    = "failed to upsert pick"
	ErrMsgFailedToDeletePick    = "failed to delete pick"
	ErrMsgFailedToQueryDayPicks = "failed to query picks for games"
	ErrMsgFailedToScanDayPick   = "failed to scan pick"
	ErrMsgPickReferencesUnknown = "pick references an unknown game, team or user"
	ErrMsgRowIterationError     = "row iteration error"
)

// Error Messages - Leaderboard Operations
const (
	ErrMsgFailedToQuerySummary    = "failed to query user picks summary"
	ErrMsgFailedToScanSummary     = "failed to scan user picks summary"
	ErrMsgFailedToQueryPastRecord = "failed to query user picks past record"
	ErrMsgFailedToScanPastRecord  = "failed to scan past record"
	ErrMsgFailedToQueryScoreStats = "failed to query leaderboard stats"
	ErrMsgFailedToScanScoreStats  = "failed to scan leaderboard stats"
	ErrMsgFailedToQueryTeams      = "failed to query teams"
	ErrMsgFailedToScanTeam        = "failed to scan team"
)
