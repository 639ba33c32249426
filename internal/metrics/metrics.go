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

// Business Metrics
var (
	RankingsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRankingsSubmitted,
			Help: HelpTextRankingsSubmitted,
		},
	)

	RankingRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRankingRejections,
			Help: HelpTextRankingRejections,
		},
		[]string{LabelReason},
	)

	SceneLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSceneLookups,
			Help: HelpTextSceneLookups,
		},
		[]string{LabelResult},
	)

	RateLimitedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitedRequests,
			Help: HelpTextRateLimitedRequests,
		},
		[]string{LabelScope},
	)
)

// Seeding Metrics
var (
	SeedScenariosLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSeedScenariosLoaded,
			Help: HelpTextSeedScenariosLoaded,
		},
	)

	SeedFilesFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSeedFilesFailed,
			Help: HelpTextSeedFilesFailed,
		},
	)
)
