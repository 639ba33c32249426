package domain

import "math"

// Leaderboard limits
const (
	LeaderboardMaxEntries = 100

	NicknameMinLength      = 2
	NicknameMaxLength      = 20
	ScoreMin               = 0
	ScoreMax               = 100
	ScenarioTitleMaxLength = 120

	// Stored integer columns are 32-bit
	SceneIDMax = math.MaxInt32
	CounterMax = math.MaxInt32

	// MaxChoicesPerScene is enforced at seed time and bounds the choice query
	MaxChoicesPerScene = 64

	// IPAddressMaxLength matches the rankings.ip_address column (fits IPv6).
	IPAddressMaxLength = 45
)

// Content defaults applied when a fixture omits a field
const (
	DefaultScenarioTitle       = "Untitled"
	DefaultScenarioDescription = ""
	DefaultDifficulty          = 2
)
