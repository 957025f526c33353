package bootstrap

import "time"

// =============================================================================
// Worker Pool
// =============================================================================

const (
	// WorkerCount is the number of goroutines draining background jobs
	WorkerCount = 2

	// WorkerQueueSize bounds pending background jobs
	WorkerQueueSize = 16

	// ScheduleRefreshJobName labels the schedule refresh in scheduler logs
	ScheduleRefreshJobName = "schedule-refresh"

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout = 15 * time.Second
)

// =============================================================================
// Logger Messages
// =============================================================================

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting pick'em service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// =============================================================================
// Wiring Messages
// =============================================================================

const (
	LogMsgInjuryFeedDisabled  = "Injury feed not configured, rosters will omit injuries"
	LogMsgInjuryCacheDisabled = "REDIS_URL not set, injury report is not shared across instances"
	LogMsgRedisUnavailable    = "Redis unavailable, injury report cache disabled"
	LogMsgScheduleRefreshOff  = "Schedule refresh disabled"
	LogMsgScheduleRefreshOn   = "Schedule refresh enabled"
	LogMsgGameCacheInitFailed = "Game cache initialization failed"
	LogMsgCachesRolledOver    = "Caches rolled over for new game day"

	ErrMsgInvalidSeasonCutover = "failed to build season router"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgWorkerShutdownFailed = "Rollover worker shutdown failed"
	LogMsgRedisCloseFailed     = "Redis client close failed"
)
