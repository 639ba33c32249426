package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/LoveSim_Go/internal/domain"
	"github.com/osse101/LoveSim_Go/internal/logger"
	"github.com/osse101/LoveSim_Go/internal/scenario"
)

// Route parameter names shared with the router
const (
	ParamScenarioName = "scenarioName"
	ParamSceneID      = "sceneID"
)

// ScenarioSummary is one entry of the scenario list
type ScenarioSummary struct {
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// ScenarioHandler serves scenario content
type ScenarioHandler struct {
	svc scenario.Service
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(svc scenario.Service) *ScenarioHandler {
	return &ScenarioHandler{svc: svc}
}

// HandleListScenarios lists every scenario
// @Summary List scenarios
// @Description Returns all scenarios in storage order
// @Tags scenarios
// @Produce json
// @Success 200 {array} ScenarioSummary
// @Failure 500 {object} ErrorResponse
// @Router /api/scenarios [get]
func (h *ScenarioHandler) HandleListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.svc.ListScenarios(r.Context())
	if err != nil {
		respondServiceError(w, r, "List scenarios", err)
		return
	}

	out := make([]ScenarioSummary, 0, len(scenarios))
	for _, sc := range scenarios {
		out = append(out, ScenarioSummary{
			Name:        sc.Name,
			Title:       sc.Title,
			Description: sc.Description,
		})
	}

	respondJSON(w, http.StatusOK, out)
}

// HandleGetScene returns one scene with its choices
// @Summary Get scene
// @Description Returns a scene of a scenario with its selectable choices
// @Tags scenarios
// @Produce json
// @Param scenarioName path string true "Scenario slug"
// @Param sceneID path int true "Scene number within the scenario"
// @Success 200 {object} domain.Scene
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/{scenarioName}/{sceneID} [get]
func (h *ScenarioHandler) HandleGetScene(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, ParamScenarioName)

	// The route only matches digits. Scene ids are stored as 32-bit
	// integers, so anything wider cannot name a scene.
	sceneID, err := strconv.ParseInt(chi.URLParam(r, ParamSceneID), 10, 32)
	if err != nil {
		logger.FromContext(r.Context()).Debug("Scene id out of range", "scene_id", chi.URLParam(r, ParamSceneID))
		respondError(w, http.StatusNotFound, ErrMsgSceneNotFound)
		return
	}

	scene, err := h.svc.GetScene(r.Context(), name, int(sceneID))
	if err != nil {
		respondServiceError(w, r, "Get scene", err)
		return
	}
	if scene.Choices == nil {
		scene.Choices = []domain.Choice{}
	}

	respondJSON(w, http.StatusOK, scene)
}
