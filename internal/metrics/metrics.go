package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Pick Metrics
var (
	PicksSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePicksSubmitted,
			Help: HelpTextPicksSubmitted,
		},
		[]string{LabelKind},
	)

	PicksRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePicksRejected,
			Help: HelpTextPicksRejected,
		},
		[]string{LabelReason},
	)

	PicksCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePicksCancelled,
			Help: HelpTextPicksCancelled,
		},
	)
)

// Cache and feed Metrics
var (
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheHits,
			Help: HelpTextCacheHits,
		},
		[]string{LabelCache},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheMisses,
			Help: HelpTextCacheMisses,
		},
		[]string{LabelCache},
	)

	ScheduleGamesRefreshed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScheduleRefresh,
			Help: HelpTextScheduleRefresh,
		},
	)

	InjuryFeedErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInjuryFeedErrors,
			Help: HelpTextInjuryFeedErrors,
		},
	)
)
