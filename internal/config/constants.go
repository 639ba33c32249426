package config

import "time"

// Environment names
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Defaults
const (
	DefaultPort        = 8000
	DefaultServiceName = "lovesim"
	DefaultStaticDir   = "frontend"
	DefaultDataDir     = "data"
	DefaultLogDir      = "logs"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	// InsecureDefaultSecretKey is only acceptable outside production
	InsecureDefaultSecretKey = "dev-secret-key-change-in-production"

	DefaultProductionOrigin = "https://yourdomain.com"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
)

// Warning messages returned by ValidateWithWarnings
const (
	WarnMsgInsecureSecretKey = "SECRET_KEY is using the default development value in production - set SECRET_KEY"
	WarnMsgExampleDBPassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgWildcardOrigin    = "CORS_ALLOWED_ORIGINS contains '*' in production"
)
