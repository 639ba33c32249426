package seed

// FixtureExtension is the suffix of scenario fixture files
const FixtureExtension = ".json"

// Log messages
const (
	LogMsgReadingFixture    = "Reading scenario fixture"
	LogMsgFixtureSkipped    = "Skipping invalid scenario fixture"
	LogMsgScenarioParsed    = "Scenario parsed"
	LogMsgReloadStarting    = "Reloading scenario content"
	LogMsgReloadComplete    = "Scenario content reloaded"
	LogMsgRankingsPreserved = "Rankings preserved across reload"
)

// Error message formats
const (
	ErrMsgReadDirFailed = "read fixture directory %s: %w"
	ErrMsgReloadFailed  = "reload content: %w"
)
