package injury

import "time"

// ============================================================================
// Feed
// ============================================================================

const (
	// reportPath is appended to the configured base URL
	reportPath = "/functions/v1/get-injuries"

	// ReportCacheKey is the shared cache key for the full report
	ReportCacheKey = "injuries:report"

	// DefaultTimeout bounds a single feed request
	DefaultTimeout = 10 * time.Second

	// maxErrorBody caps how much of a failed response is kept for the error
	maxErrorBody = 512
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgReportFetched    = "Fetched injury report"
	LogMsgCacheReadFailed  = "Injury cache read failed, fetching from feed"
	LogMsgCacheWriteFailed = "Failed to cache injury report"
	LogMsgCacheDecode      = "Cached injury report is unreadable, fetching from feed"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgBuildRequest  = "failed to build injury request"
	ErrMsgRequestFailed = "injury feed request failed"
	ErrMsgBadStatus     = "injury feed returned status %d: %s"
	ErrMsgDecodeReport  = "failed to decode injury report"
	ErrMsgEncodeReport  = "failed to encode injury report"
)
