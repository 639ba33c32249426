package ranking

// Validator tags
const (
	TagNickname = "nickname"
)

// Rejection reasons, used as metric label values
const (
	ReasonMissingFields   = "missing_fields"
	ReasonNicknameLength  = "nickname_length"
	ReasonNicknameChars   = "nickname_chars"
	ReasonScoreFormat     = "score_format"
	ReasonScoreRange      = "score_range"
	ReasonTitleLength     = "title_length"
	ReasonNegativeCounter = "negative_counter"
	ReasonCounterRange    = "counter_range"
)

// Log messages
const (
	LogMsgRankingRejected    = "Ranking submission rejected"
	LogMsgRankingSubmitted   = "Ranking submitted"
	LogMsgRankingStoreFailed = "Failed to store ranking"
	LogMsgLeaderboardFailed  = "Failed to load leaderboard"
)

// Error message formats
const (
	ErrMsgStoreRankingFailed = "store ranking: %w"
	ErrMsgLeaderboardFailed  = "load leaderboard: %w"
)
