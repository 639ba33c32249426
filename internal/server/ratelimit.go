package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/osse101/LoveSim_Go/internal/config"
	"github.com/osse101/LoveSim_Go/internal/handler"
	"github.com/osse101/LoveSim_Go/internal/logger"
	"github.com/osse101/LoveSim_Go/internal/metrics"
)

// RateLimiter enforces a set of limits per client address. State lives in
// process memory; idle clients are evicted once their longest window passes.
type RateLimiter struct {
	scope   string
	limits  []config.RateLimit
	mu      sync.Mutex
	clients *expirable.LRU[string, []*rate.Limiter]
	now     func() time.Time
}

// NewRateLimiter builds a limiter for limits labelled scope in metrics
func NewRateLimiter(scope string, limits []config.RateLimit, maxClients int) *RateLimiter {
	var ttl time.Duration
	for _, l := range limits {
		if l.Window > ttl {
			ttl = l.Window
		}
	}
	if ttl == 0 {
		ttl = time.Minute
	}

	return &RateLimiter{
		scope:   scope,
		limits:  limits,
		clients: expirable.NewLRU[string, []*rate.Limiter](maxClients, nil, ttl),
		now:     time.Now,
	}
}

func (rl *RateLimiter) limitersFor(key string) []*rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if lims, ok := rl.clients.Get(key); ok {
		return lims
	}

	lims := make([]*rate.Limiter, 0, len(rl.limits))
	for _, l := range rl.limits {
		if l.Requests <= 0 || l.Window <= 0 {
			continue
		}
		lims = append(lims, rate.NewLimiter(rate.Every(l.Window/time.Duration(l.Requests)), l.Requests))
	}
	rl.clients.Add(key, lims)
	return lims
}

// Allow consumes one request for key from every limit. It reports false and
// the wait until a retry could succeed when any limit is exhausted; in that
// case no limit is charged.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	now := rl.now()
	lims := rl.limitersFor(key)

	reservations := make([]*rate.Reservation, 0, len(lims))
	var wait time.Duration
	for _, lim := range lims {
		res := lim.ReserveN(now, 1)
		if !res.OK() {
			wait = time.Duration(math.MaxInt64)
			break
		}
		reservations = append(reservations, res)
		if d := res.DelayFrom(now); d > wait {
			wait = d
		}
	}

	if wait > 0 {
		for _, res := range reservations {
			res.CancelAt(now)
		}
		return false, wait
	}
	return true, 0
}

// Middleware rejects over-limit clients with a JSON 429. Operational
// endpoints are not limited.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isOpsPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ip := handler.ClientIPFromContext(r.Context())
		ok, wait := rl.Allow(ip)
		if !ok {
			metrics.RateLimitedRequests.WithLabelValues(rl.scope).Inc()
			logger.FromContext(r.Context()).Warn(LogMsgRateLimited,
				"scope", rl.scope,
				logger.AttrKeyPath, r.URL.Path,
				"retry_after", wait)
			w.Header().Set(HeaderRetryAfter, retryAfterSeconds(wait))
			handler.RespondError(w, http.StatusTooManyRequests, handler.ErrMsgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Len reports the number of tracked clients
func (rl *RateLimiter) Len() int {
	return rl.clients.Len()
}

func retryAfterSeconds(d time.Duration) string {
	if d <= 0 || d > 365*24*time.Hour {
		return "1"
	}
	return strconv.Itoa(int(math.Ceil(d.Seconds())))
}

// String describes the limiter for startup logs
func (rl *RateLimiter) String() string {
	s := rl.scope + ":"
	for _, l := range rl.limits {
		s += fmt.Sprintf(" %d/%s", l.Requests, l.Window)
	}
	return s
}
