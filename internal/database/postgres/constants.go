package postgres

// Error message formats
const (
	ErrMsgListScenariosFailed  = "failed to list scenarios: %w"
	ErrMsgGetSceneFailed       = "failed to get scene: %w"
	ErrMsgGetChoicesFailed     = "failed to get choices: %w"
	ErrMsgListRankingsFailed   = "failed to list rankings: %w"
	ErrMsgInsertRankingFailed  = "failed to insert ranking: %w"
	ErrMsgCountRankFailed      = "failed to compute rank: %w"
	ErrMsgBeginTxFailed        = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed       = "failed to commit transaction: %w"
	ErrMsgClearContentFailed   = "failed to clear content tables: %w"
	ErrMsgInsertScenarioFailed = "failed to insert scenario %s: %w"
	ErrMsgInsertSceneFailed    = "failed to insert scene %d: %w"
	ErrMsgInsertChoicesFailed  = "failed to insert choices for scene %d: %w"
	ErrMsgInt4OutOfRange       = "value %d out of int4 range"
	ErrMsgTooManyChoices       = "scene %d has %d choices, limit is %d"
)

// Log messages
const (
	LogMsgScenarioSkipped = "Skipping scenario after insert failure"
	LogMsgContentCleared  = "Content tables cleared"
)
