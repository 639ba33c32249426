package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/cors"

	"github.com/osse101/LoveSim_Go/internal/logger"
)

// loopbackOrigins are admitted in development on any port
var loopbackOrigins = []string{
	"http://localhost",
	"http://localhost:*",
	"http://127.0.0.1",
	"http://127.0.0.1:*",
}

// CORSPolicy decides which browser origins may call the API
type CORSPolicy struct {
	// AllowedOrigins are scheme://host[:port] patterns; "*" admits any origin
	AllowedOrigins []string
	// AllowLoopback admits http://localhost:* and http://127.0.0.1:*
	AllowLoopback bool
}

// Origins returns the origin patterns handed to the CORS handler
func (p CORSPolicy) Origins() []string {
	origins := make([]string, 0, len(p.AllowedOrigins)+len(loopbackOrigins))
	for _, o := range p.AllowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	if p.AllowLoopback {
		origins = append(origins, loopbackOrigins...)
	}
	return origins
}

// corsLogger routes rs/cors diagnostics through slog at debug level
type corsLogger struct{}

func (corsLogger) Printf(format string, v ...interface{}) {
	logger.Debug(LogMsgCORS, "detail", fmt.Sprintf(format, v...))
}

// NewCORS builds the CORS handler for policy
func NewCORS(policy CORSPolicy) *cors.Cors {
	opts := cors.Options{
		AllowedOrigins: policy.Origins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{HeaderContentTypeName},
		MaxAge:         CORSMaxAgeSeconds,
		Logger:         corsLogger{},
	}
	// rs/cors treats an empty allowlist as "allow all"
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(opts)
}

// CORSMiddleware applies policy to /api/ requests and answers preflights.
// Disallowed origins get no CORS headers; the browser then blocks the response.
func CORSMiddleware(policy CORSPolicy) func(http.Handler) http.Handler {
	c := NewCORS(policy)
	return func(next http.Handler) http.Handler {
		withCORS := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, RouteAPIPrefix) {
				next.ServeHTTP(w, r)
				return
			}
			withCORS.ServeHTTP(w, r)
		})
	}
}
