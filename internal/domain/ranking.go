package domain

import (
	"encoding/json"
	"time"
)

// Ranking is one completed playthrough recorded on the leaderboard.
// IPAddress is kept for abuse tracking and is never serialized.
type Ranking struct {
	ID            int64     `json:"-"`
	Nickname      string    `json:"nickname"`
	Score         int       `json:"score"`
	ScenarioTitle string    `json:"scenario_title"`
	PlayTime      *int      `json:"-"`
	ChoicesCount  *int      `json:"-"`
	Timestamp     time.Time `json:"-"`
	IPAddress     string    `json:"-"`
}

// LeaderboardEntry is the public projection of a Ranking.
type LeaderboardEntry struct {
	Nickname      string `json:"nickname"`
	Score         int    `json:"score"`
	ScenarioTitle string `json:"scenario_title"`
}

// LeaderboardFilter narrows a leaderboard query. An empty ScenarioTitle
// means every scenario.
type LeaderboardFilter struct {
	ScenarioTitle string
	Limit         int
}

// RankingSubmission is an unvalidated leaderboard submission. Score keeps the
// raw JSON value so that coercion happens after the nickname checks.
type RankingSubmission struct {
	Nickname      string
	Score         json.RawMessage
	ScenarioTitle string
	PlayTime      *int
	ChoicesCount  *int
	ClientIP      string
}
