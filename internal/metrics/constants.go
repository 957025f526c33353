package metrics

import "time"

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePicksSubmitted   = "picks_submitted_total"
	MetricNamePicksRejected    = "picks_rejected_total"
	MetricNamePicksCancelled   = "picks_cancelled_total"
	MetricNameCacheHits        = "cache_hits_total"
	MetricNameCacheMisses      = "cache_misses_total"
	MetricNameScheduleRefresh  = "schedule_refresh_games_total"
	MetricNameInjuryFeedErrors = "injury_feed_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextPicksSubmitted   = "Picks accepted, by whether they created or changed a pick"
	HelpTextPicksRejected    = "Pick submissions or cancellations rejected, by reason"
	HelpTextPicksCancelled   = "Picks cancelled"
	HelpTextCacheHits        = "Session cache hits, by cache"
	HelpTextCacheMisses      = "Session cache misses, by cache"
	HelpTextScheduleRefresh  = "Games written by the schedule refresh job"
	HelpTextInjuryFeedErrors = "Injury feed fetch failures"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelReason = "reason"
	LabelCache  = "cache"
)

// Label values
const (
	KindCreated = "created"
	KindUpdated = "updated"

	// unmatchedRoute labels requests that did not resolve to a route pattern
	unmatchedRoute = "unmatched"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{
	(5 * time.Millisecond).Seconds(),
	(10 * time.Millisecond).Seconds(),
	(25 * time.Millisecond).Seconds(),
	(50 * time.Millisecond).Seconds(),
	(100 * time.Millisecond).Seconds(),
	(250 * time.Millisecond).Seconds(),
	(500 * time.Millisecond).Seconds(),
	time.Second.Seconds(),
	(2500 * time.Millisecond).Seconds(),
}
