package config

import "time"

// RateLimit allows Requests per Window for one client
type RateLimit struct {
	Requests int
	Window   time.Duration
}

// RateLimitProfile groups the limits applied by the HTTP server
type RateLimitProfile struct {
	// Global applies to every request
	Global []RateLimit
	// RankingSubmit additionally applies to POST /api/rankings
	RankingSubmit []RateLimit
}

const day = 24 * time.Hour

// RateLimitProfile derives the limits from the environment
func (c *Config) RateLimitProfile() RateLimitProfile {
	if c.IsProduction() {
		return RateLimitProfile{
			Global:        []RateLimit{{Requests: 1000, Window: day}, {Requests: 200, Window: time.Hour}},
			RankingSubmit: []RateLimit{{Requests: 5, Window: time.Minute}},
		}
	}
	return RateLimitProfile{
		Global:        []RateLimit{{Requests: 10000, Window: day}, {Requests: 1000, Window: time.Hour}},
		RankingSubmit: []RateLimit{{Requests: 50, Window: time.Minute}},
	}
}
