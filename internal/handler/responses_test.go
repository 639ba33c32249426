package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/LoveSim_Go/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgInternalServerError},
		{"scene not found", domain.ErrSceneNotFound, http.StatusNotFound, ErrMsgSceneNotFound},
		{"wrapped scenario not found", fmt.Errorf("lookup: %w", domain.ErrScenarioNotFound), http.StatusNotFound, ErrMsgSceneNotFound},
		{"missing fields", domain.ErrMissingRankingFields, http.StatusBadRequest, ErrMsgMissingRankingFields},
		{"joined database error", errors.Join(domain.ErrDatabaseError, domain.ErrSceneNotFound), http.StatusInternalServerError, ErrMsgInternalServerError},
		{"body too large", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge, ErrMsgBodyTooLarge},
		{"unknown", errors.New("connection reset by peer"), http.StatusInternalServerError, ErrMsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON_DoesNotEscape(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]string{"line": "<안녕> & 반가워"})

	assert.Equal(t, `{"line":"<안녕> & 반가워"}`+"\n", w.Body.String())
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgInternalServerError)
}

func TestRespondError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	RespondError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too Many Requests","message":"요청이 너무 많습니다. 잠시 후 다시 시도해주세요."}`, w.Body.String())
}
