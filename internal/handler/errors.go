package handler

// User-facing error messages. They are returned verbatim in the "message"
// field of the JSON error envelope; internal detail only goes to the log.
const (
	// Content
	ErrMsgSceneNotFound = "장면을 찾을 수 없습니다."
	ErrMsgAPINotFound   = "요청한 API 리소스를 찾을 수 없습니다."

	// Ranking submission
	ErrMsgMissingRankingFields   = "필수 데이터(nickname, score, scenario_title)가 누락되었습니다."
	ErrMsgInvalidNicknameLength  = "닉네임은 2자에서 20자 사이여야 합니다."
	ErrMsgInvalidNicknameChars   = "닉네임에는 한글, 영문, 숫자, 밑줄, 공백만 사용 가능합니다."
	ErrMsgScoreOutOfRange        = "점수는 0과 100 사이여야 합니다."
	ErrMsgInvalidDataFormat      = "잘못된 데이터 형식입니다."
	ErrMsgScenarioTitleTooLong   = "시나리오 제목은 120자 이하여야 합니다."
	ErrMsgInvalidOptionalCounter = "플레이 시간과 선택 횟수는 0 이상이어야 합니다."

	// Transport
	ErrMsgMethodNotAllowed = "허용되지 않은 메서드입니다."
	ErrMsgTooManyRequests  = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
	ErrMsgBodyTooLarge     = "요청 본문이 너무 큽니다."
	ErrMsgInvalidQuery     = "잘못된 요청 파라미터입니다."

	// Generic
	ErrMsgInternalServerError = "서버 내부 오류가 발생했습니다."
)

// Success messages
const (
	MsgRankingRegistered = "랭킹이 등록되었습니다!"
)

// Log messages
const (
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgServiceError       = "Request failed"
	LogMsgClientError        = "Request rejected"
	LogMsgDecodeFailed       = "Failed to decode request body"
	LogMsgRankingSubmitted   = "Ranking submitted"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgStaticIndexMissing = "SPA entry document missing"
)
