package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/LoveSim_Go/internal/domain"
	"github.com/osse101/LoveSim_Go/internal/logger"
)

// ErrorResponse is the uniform error envelope. Error carries the HTTP status
// text and Message the user-facing explanation.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RankingCreatedResponse is returned after a successful submission
type RankingCreatedResponse struct {
	Message string `json:"message"`
	Rank    int    `json:"rank"`
}

// respondJSON encodes payload into a pooled buffer before touching the
// response so an encoding failure can still produce a clean 500.
// Non-ASCII text and HTML characters are emitted unescaped.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error","message":"` + ErrMsgInternalServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends the JSON error envelope
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// RespondError is the exported form of respondError for middleware outside
// this package.
func RespondError(w http.ResponseWriter, status int, message string) {
	respondError(w, status, message)
}

// respondServiceError maps err and writes the envelope. Client errors are
// logged at warn level, everything else with full detail at error level.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, message := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", op, "error", err)
	} else {
		log.Warn(LogMsgClientError, "operation", op, "status", status, "reason", err.Error())
	}
	respondError(w, status, message)
}

// mapServiceError converts domain errors into an HTTP status and a
// user-facing message. Unknown errors become a generic 500.
func mapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgInternalServerError
	}

	switch {
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgInternalServerError
	case errors.Is(err, domain.ErrSceneNotFound), errors.Is(err, domain.ErrScenarioNotFound):
		return http.StatusNotFound, ErrMsgSceneNotFound
	case errors.Is(err, domain.ErrMissingRankingFields):
		return http.StatusBadRequest, ErrMsgMissingRankingFields
	case errors.Is(err, domain.ErrInvalidNicknameLength):
		return http.StatusBadRequest, ErrMsgInvalidNicknameLength
	case errors.Is(err, domain.ErrInvalidNicknameChars):
		return http.StatusBadRequest, ErrMsgInvalidNicknameChars
	case errors.Is(err, domain.ErrScoreOutOfRange):
		return http.StatusBadRequest, ErrMsgScoreOutOfRange
	case errors.Is(err, domain.ErrInvalidDataFormat):
		return http.StatusBadRequest, ErrMsgInvalidDataFormat
	case errors.Is(err, domain.ErrScenarioTitleTooLong):
		return http.StatusBadRequest, ErrMsgScenarioTitleTooLong
	case errors.Is(err, domain.ErrInvalidOptionalCounter):
		return http.StatusBadRequest, ErrMsgInvalidOptionalCounter
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, ErrMsgBodyTooLarge
	}

	return http.StatusInternalServerError, ErrMsgInternalServerError
}
