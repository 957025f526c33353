package domain

import "time"

// Game result markers produced by the team results aggregate
const (
	ResultWin  = "W"
	ResultLoss = "L"
)

// RecordLength is the number of recent results shown per team
const RecordLength = 5

// Performance trend classifications
const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient-data"
)

// Derived metric thresholds
const (
	// StreakAccuracyThreshold is the minimum daily accuracy that extends a win streak
	StreakAccuracyThreshold = 50.0
	// MinDaysForDerivedStats is the number of days needed for consistency and trend
	MinDaysForDerivedStats = 3
	// TrendWindow is the number of days compared on each side of a trend
	TrendWindow = 3
	// TrendThreshold is the mean difference needed to call a trend
	TrendThreshold = 5.0
)

// Cache key types
const (
	CacheGames        = "games"
	CacheStandings    = "standings"
	CacheScoreStats   = "score_stats"
	CacheDailyResults = "daily_results"
	CacheTeams        = "teams"
)

// Day is the length of one calendar step when navigating game days
const Day = 24 * time.Hour
