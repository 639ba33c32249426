package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Content errors
	ErrMsgSceneNotFound    = "scene not found"
	ErrMsgScenarioNotFound = "scenario not found"

	// Ranking submission errors
	ErrMsgMissingRankingFields   = "missing required ranking fields"
	ErrMsgInvalidNicknameLength  = "nickname length out of range"
	ErrMsgInvalidNicknameChars   = "nickname contains invalid characters"
	ErrMsgScoreOutOfRange        = "score out of range"
	ErrMsgInvalidDataFormat      = "invalid data format"
	ErrMsgScenarioTitleTooLong   = "scenario title too long"
	ErrMsgInvalidOptionalCounter = "play_time and choices_count must be non-negative"

	// Fixture errors
	ErrMsgInvalidFixture = "invalid scenario fixture"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrSceneNotFound    = errors.New(ErrMsgSceneNotFound)
	ErrScenarioNotFound = errors.New(ErrMsgScenarioNotFound)

	ErrMissingRankingFields   = errors.New(ErrMsgMissingRankingFields)
	ErrInvalidNicknameLength  = errors.New(ErrMsgInvalidNicknameLength)
	ErrInvalidNicknameChars   = errors.New(ErrMsgInvalidNicknameChars)
	ErrScoreOutOfRange        = errors.New(ErrMsgScoreOutOfRange)
	ErrInvalidDataFormat      = errors.New(ErrMsgInvalidDataFormat)
	ErrScenarioTitleTooLong   = errors.New(ErrMsgScenarioTitleTooLong)
	ErrInvalidOptionalCounter = errors.New(ErrMsgInvalidOptionalCounter)

	ErrInvalidFixture = errors.New(ErrMsgInvalidFixture)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
