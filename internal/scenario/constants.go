package scenario

// Log messages
const (
	LogMsgSceneNotFound       = "Scene not found"
	LogMsgSceneLookupFailed   = "Scene lookup failed"
	LogMsgListScenariosFailed = "Failed to list scenarios"
)

// Error message formats
const (
	ErrMsgListScenariosFailed = "list scenarios: %w"
	ErrMsgGetSceneFailed      = "get scene %s/%d: %w"
)
