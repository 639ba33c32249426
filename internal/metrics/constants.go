package metrics

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
	MetricNameRankingsSubmitted   = "rankings_submitted_total"
	MetricNameRankingRejections   = "ranking_rejections_total"
	MetricNameSceneLookups        = "scene_lookups_total"
	MetricNameRateLimitedRequests = "rate_limited_requests_total"
	MetricNameSeedScenariosLoaded = "seed_scenarios_loaded_total"
	MetricNameSeedFilesFailed     = "seed_files_failed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextRankingsSubmitted   = "Total number of rankings accepted onto the leaderboard"
	HelpTextRankingRejections   = "Total number of ranking submissions rejected by validation"
	HelpTextSceneLookups        = "Total number of scene lookups by result"
	HelpTextRateLimitedRequests = "Total number of requests rejected by the rate limiter"
	HelpTextSeedScenariosLoaded = "Total number of scenarios loaded by the seeding tool"
	HelpTextSeedFilesFailed     = "Total number of fixture files skipped by the seeding tool"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelReason = "reason"
	LabelResult = "result"
	LabelScope  = "scope"
)

// Label values
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"

	ScopeGlobal        = "global"
	ScopeRankingSubmit = "ranking_submit"

	// PathUnmatched labels requests that matched no route, keeping path cardinality bounded
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
