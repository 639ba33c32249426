// Package server wires the HTTP router, middleware stack and handlers.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/LoveSim_Go/internal/config"
	"github.com/osse101/LoveSim_Go/internal/database"
	"github.com/osse101/LoveSim_Go/internal/handler"
	"github.com/osse101/LoveSim_Go/internal/logger"
	"github.com/osse101/LoveSim_Go/internal/metrics"
	"github.com/osse101/LoveSim_Go/internal/ranking"
	"github.com/osse101/LoveSim_Go/internal/scenario"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	StaticDir      string
	Version        string
	TrustedProxies []string
	CORS           CORSPolicy
	RateLimits     config.RateLimitProfile
}

// OptionsFromConfig derives server options from the application config
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Port:           cfg.Port,
		StaticDir:      cfg.StaticDir,
		Version:        cfg.Version,
		TrustedProxies: cfg.TrustedProxies,
		CORS: CORSPolicy{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowLoopback:  !cfg.IsProduction(),
		},
		RateLimits: cfg.RateLimitProfile(),
	}
}

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	scenarioService scenario.Service
	rankingService  ranking.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, scenarioService scenario.Service, rankingService ranking.Service) *Server {
	r := chi.NewRouter()

	globalLimiter := NewRateLimiter(metrics.ScopeGlobal, opts.RateLimits.Global, RateLimitMaxClients)
	submitLimiter := NewRateLimiter(metrics.ScopeRankingSubmit, opts.RateLimits.RankingSubmit, RateLimitMaxClients)

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(ClientIPMiddleware(opts.TrustedProxies))
	r.Use(loggingMiddleware)
	r.Use(RecoverMiddleware)
	r.Use(CORSMiddleware(opts.CORS))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(globalLimiter.Middleware)

	// Operational routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	scenarioHandler := handler.NewScenarioHandler(scenarioService)
	rankingHandler := handler.NewRankingHandler(rankingService)

	r.Route("/api", func(r chi.Router) {
		r.NotFound(apiNotFound)
		r.MethodNotAllowed(apiMethodNotAllowed)

		r.Get(RouteScenarios, scenarioHandler.HandleListScenarios)
		r.Get(RouteRankings, rankingHandler.HandleGetRankings)
		r.With(submitLimiter.Middleware).Post(RouteRankings, rankingHandler.HandleSubmitRanking)
		r.Get(RouteScene, scenarioHandler.HandleGetScene)
	})

	// Everything else is the single-page app
	r.NotFound(spaFallback(handler.HandleStatic(opts.StaticDir)))
	r.MethodNotAllowed(apiMethodNotAllowed)

	slog.Default().Debug("Rate limits configured", "global", globalLimiter.String(), "submit", submitLimiter.String())

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
		dbPool:          dbPool,
		scenarioService: scenarioService,
		rankingService:  rankingService,
	}
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func apiNotFound(w http.ResponseWriter, r *http.Request) {
	handler.RespondError(w, http.StatusNotFound, handler.ErrMsgAPINotFound)
}

func apiMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	handler.RespondError(w, http.StatusMethodNotAllowed, handler.ErrMsgMethodNotAllowed)
}

// spaFallback routes unmatched paths: /api/ gets a JSON 404, reads get the
// static handler and any other method a JSON 405.
func spaFallback(static http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, RouteAPIPrefix) {
			apiNotFound(w, r)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			apiMethodNotAllowed(w, r)
			return
		}
		static.ServeHTTP(w, r)
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isOpsPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			logger.AttrKeyMethod, r.Method,
			logger.AttrKeyPath, r.URL.Path,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders,
			"headers", sanitizedHeaders,
			logger.AttrKeyClientIP, handler.ClientIPFromContext(ctx))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			logger.AttrKeyMethod, r.Method,
			logger.AttrKeyPath, r.URL.Path,
			logger.AttrKeyRoute, routePattern(r),
			logger.AttrKeyStatus, rw.statusCode,
			logger.AttrKeyDurationMS, duration.Milliseconds())
	})
}

// routePattern reports the matched chi pattern, empty when nothing matched
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
