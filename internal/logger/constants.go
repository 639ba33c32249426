package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "lovesim"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// Environment String Values
const (
	EnvironmentDev        = "development"
	EnvironmentProduction = "production"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// Request attribute keys shared by the HTTP middleware
const (
	AttrKeyMethod     = "method"
	AttrKeyPath       = "path"
	AttrKeyRoute      = "route"
	AttrKeyStatus     = "status"
	AttrKeyDurationMS = "duration_ms"
	AttrKeyClientIP   = "client_ip"
	AttrKeyOrigin     = "origin"
)
