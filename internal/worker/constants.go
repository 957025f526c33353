package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Worker queue full, dropping job"
)

// ============================================================================
// Log Messages - Cache Rollover Worker
// ============================================================================

// Log messages for cache rollover worker operations
const (
	LogMsgRolloverStandby   = "Cache rollover on standby"
	LogMsgRolloverScheduled = "Cache rollover scheduled"
	LogMsgRolloverStarting  = "Cache rollover starting"
	LogMsgRolloverCompleted = "Cache rollover completed"
)

// ============================================================================
// Rollover Scheduling
// ============================================================================

const (
	// rolloverStandbyThreshold switches from a standby wakeup to the final timer
	rolloverStandbyThreshold = time.Hour
	// rolloverStandbyLead is how long before rollover the standby timer wakes
	rolloverStandbyLead = 45 * time.Minute
	// rolloverEarlyTolerance absorbs timer jitter before rescheduling
	rolloverEarlyTolerance = 10 * time.Second
)
