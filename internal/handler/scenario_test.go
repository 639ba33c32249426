package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoveSim_Go/internal/domain"
)

func newSceneRouter(h *ScenarioHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/scenarios", h.HandleListScenarios)
	r.Get(fmt.Sprintf("/api/{%s}/{%s:[0-9]+}", ParamScenarioName, ParamSceneID), h.HandleGetScene)
	return r
}

func TestHandleListScenarios(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockScenarioService{}
		svc.On("ListScenarios", mock.Anything).Return([]domain.Scenario{
			{Name: "demo", Title: "첫 데이트", Description: strPtr("카페"), Difficulty: 3},
			{Name: "quiet", Title: "Quiet", Description: nil},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/scenarios", nil)
		w := httptest.NewRecorder()
		newSceneRouter(NewScenarioHandler(svc)).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `[
			{"name":"demo","title":"첫 데이트","description":"카페"},
			{"name":"quiet","title":"Quiet","description":null}
		]`, w.Body.String())
		assert.Contains(t, w.Body.String(), "첫 데이트", "non-ASCII text must not be escaped")
		svc.AssertExpectations(t)
	})

	t.Run("Empty", func(t *testing.T) {
		svc := &MockScenarioService{}
		svc.On("ListScenarios", mock.Anything).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/scenarios", nil)
		w := httptest.NewRecorder()
		newSceneRouter(NewScenarioHandler(svc)).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})

	t.Run("Store Failure", func(t *testing.T) {
		svc := &MockScenarioService{}
		svc.On("ListScenarios", mock.Anything).Return(nil, fmt.Errorf("%w: boom", domain.ErrDatabaseError))

		req := httptest.NewRequest(http.MethodGet, "/api/scenarios", nil)
		w := httptest.NewRecorder()
		newSceneRouter(NewScenarioHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
		assert.Contains(t, w.Body.String(), ErrMsgInternalServerError)
	})
}

func TestHandleGetScene(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockScenarioService{}
		svc.On("GetScene", mock.Anything, "demo", 1).Return(&domain.Scene{
			SceneID:       1,
			AILine:        "안녕!",
			CharacterMood: strPtr("happy"),
			Choices: []domain.Choice{
				{Text: "Hello", NextSceneID: 2, Favorability: 5},
				{Text: "Bye", NextSceneID: 3, Favorability: -5},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/demo/1", nil)
		w := httptest.NewRecorder()
		newSceneRouter(NewScenarioHandler(svc)).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"sceneId": 1,
			"aiLine": "안녕!",
			"characterMood": "happy",
			"characterImage": null,
			"userCards": [
				{"text":"Hello","nextSceneId":2,"favorability":5},
				{"text":"Bye","nextSceneId":3,"favorability":-5}
			]
		}`, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("No Choices Renders Empty List", func(t *testing.T) {
		svc := &MockScenarioService{}
		svc.On("GetScene", mock.Anything, "demo", 9).Return(&domain.Scene{SceneID: 9, AILine: "끝"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/demo/9", nil)
		w := httptest.NewRecorder()
		newSceneRouter(NewScenarioHandler(svc)).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "[]", string(body["userCards"]))
	})

	t.Run("Unknown Scene", func(t *testing.T) {
		svc := &MockScenarioService{}
		svc.On("GetScene", mock.Anything, "demo", 999).Return(nil, domain.ErrSceneNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/demo/999", nil)
		w := httptest.NewRecorder()
		newSceneRouter(NewScenarioHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Not Found","message":"장면을 찾을 수 없습니다."}`, w.Body.String())
	})

	t.Run("Overflowing Scene Id", func(t *testing.T) {
		svc := &MockScenarioService{}

		for _, path := range []string{
			"/api/demo/99999999999999999999999",
			"/api/demo/2147483648",
			"/api/demo/9223372036854775807",
		} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			newSceneRouter(NewScenarioHandler(svc)).ServeHTTP(w, req)

			assert.Equal(t, http.StatusNotFound, w.Code, path)
			assert.Contains(t, w.Body.String(), ErrMsgSceneNotFound, path)
		}
		svc.AssertNotCalled(t, "GetScene", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Largest Scene Id Reaches Service", func(t *testing.T) {
		svc := &MockScenarioService{}
		svc.On("GetScene", mock.Anything, "demo", 2147483647).Return(nil, domain.ErrSceneNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/demo/2147483647", nil)
		w := httptest.NewRecorder()
		newSceneRouter(NewScenarioHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Non Numeric Scene Id Does Not Match", func(t *testing.T) {
		svc := &MockScenarioService{}

		for _, path := range []string{"/api/demo/abc", "/api/demo/-1", "/api/demo/1.5"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			newSceneRouter(NewScenarioHandler(svc)).ServeHTTP(w, req)
			assert.Equal(t, http.StatusNotFound, w.Code, path)
		}
		svc.AssertNotCalled(t, "GetScene", mock.Anything, mock.Anything, mock.Anything)
	})
}
