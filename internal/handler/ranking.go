package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/LoveSim_Go/internal/domain"
	"github.com/osse101/LoveSim_Go/internal/logger"
	"github.com/osse101/LoveSim_Go/internal/ranking"
)

// QueryScenarioTitle filters the leaderboard to one scenario
const QueryScenarioTitle = "scenario_title"

// RankingRequest is the body of a ranking submission. Pointer fields tell an
// absent or null member apart from an empty one.
type RankingRequest struct {
	Nickname      *string         `json:"nickname" validate:"required"`
	Score         json.RawMessage `json:"score" validate:"required"`
	ScenarioTitle *string         `json:"scenario_title" validate:"required"`
	PlayTime      *int            `json:"play_time,omitempty"`
	ChoicesCount  *int            `json:"choices_count,omitempty"`
}

// RankingHandler serves the leaderboard
type RankingHandler struct {
	svc ranking.Service
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(svc ranking.Service) *RankingHandler {
	return &RankingHandler{svc: svc}
}

// HandleGetRankings returns the leaderboard
// @Summary Get leaderboard
// @Description Returns up to 100 rankings ordered by score descending, then oldest first
// @Tags rankings
// @Produce json
// @Param scenario_title query string false "Only rankings for this scenario title"
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/rankings [get]
func (h *RankingHandler) HandleGetRankings(w http.ResponseWriter, r *http.Request) {
	title := GetOptionalQueryParam(r, QueryScenarioTitle, "")
	if err := GetValidator().ValidateVar(title, "max=120"); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidQuery)
		return
	}

	entries, err := h.svc.GetLeaderboard(r.Context(), title)
	if err != nil {
		respondServiceError(w, r, "Get rankings", err)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}

	respondJSON(w, http.StatusOK, entries)
}

// HandleSubmitRanking records a completed playthrough
// @Summary Submit ranking
// @Description Validates and stores a score and returns its rank within the scenario
// @Tags rankings
// @Accept json
// @Produce json
// @Param request body RankingRequest true "Ranking submission"
// @Success 201 {object} RankingCreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/rankings [post]
func (h *RankingHandler) HandleSubmitRanking(w http.ResponseWriter, r *http.Request) {
	var req RankingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit ranking"); err != nil {
		return
	}

	sub := domain.RankingSubmission{
		Nickname:      *req.Nickname,
		Score:         req.Score,
		ScenarioTitle: *req.ScenarioTitle,
		PlayTime:      req.PlayTime,
		ChoicesCount:  req.ChoicesCount,
		ClientIP:      ClientIPFromContext(r.Context()),
	}

	rank, err := h.svc.SubmitRanking(r.Context(), sub)
	if err != nil {
		respondServiceError(w, r, "Submit ranking", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgRankingSubmitted, "rank", rank, "scenario_title", sub.ScenarioTitle)
	respondJSON(w, http.StatusCreated, RankingCreatedResponse{
		Message: MsgRankingRegistered,
		Rank:    rank,
	})
}
