package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Admin error messages
	ErrMsgCacheDateRequired = "date is required for the %s cache"
)

// Success messages for API responses
const (
	MsgPickCancelled    = "Pick cancelled"
	MsgCacheInvalidated = "Cache invalidated"
	MsgCacheNotCached   = "Nothing cached for that key"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgMissingQueryParam = "Missing query parameter"
	LogMsgServiceError      = "Service call failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgCacheInvalidated  = "Cache invalidated by admin"
	LogMsgBudgetUnavailable = "Confidence budget unavailable"
)
