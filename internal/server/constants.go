package server

import "time"

// Limits
const (
	// MaxRequestBodyBytes caps request bodies
	MaxRequestBodyBytes = 1 << 20

	ReadHeaderTimeout = 5 * time.Second
	ReadTimeout       = 15 * time.Second
	WriteTimeout      = 30 * time.Second
	IdleTimeout       = 60 * time.Second

	// RateLimitMaxClients bounds the number of tracked client addresses
	RateLimitMaxClients = 10000

	// CORSMaxAgeSeconds is how long browsers may cache a preflight answer
	CORSMaxAgeSeconds = 600
)

// Route patterns
const (
	RouteAPIPrefix = "/api/"
	RouteScenarios = "/scenarios"
	RouteRankings  = "/rankings"
	RouteScene     = "/{scenarioName}/{sceneID:[0-9]+}"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgRateLimited      = "Rate limit exceeded"
	LogMsgPanicRecovered   = "Panic recovered"
	LogMsgCORS             = "CORS"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderRetryAfter     = "Retry-After"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"

	HeaderContentTypeName = "Content-Type"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// OpsPaths are operational endpoints exempt from rate limiting and request logging
var OpsPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// RedactedValue replaces sensitive header values in logs
const RedactedValue = "[REDACTED]"
