// Package scenario serves read-only scenario content: the scenario catalogue
// and individual scenes with their choices.
package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/LoveSim_Go/internal/domain"
	"github.com/osse101/LoveSim_Go/internal/logger"
	"github.com/osse101/LoveSim_Go/internal/metrics"
	"github.com/osse101/LoveSim_Go/internal/repository"
)

// Service defines the interface for scenario content operations
type Service interface {
	ListScenarios(ctx context.Context) ([]domain.Scenario, error)
	GetScene(ctx context.Context, scenarioName string, sceneID int) (*domain.Scene, error)
}

type service struct {
	repo repository.Content
}

// NewService creates a new scenario service
func NewService(repo repository.Content) Service {
	return &service{repo: repo}
}

// ListScenarios returns every scenario in storage order
func (s *service) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	scenarios, err := s.repo.ListScenarios(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgListScenariosFailed, "error", err)
		return nil, fmt.Errorf(ErrMsgListScenariosFailed, err)
	}
	if scenarios == nil {
		scenarios = []domain.Scenario{}
	}
	return scenarios, nil
}

// GetScene returns one scene of a scenario with its choices.
// Unknown scenarios and unknown scene ids both yield domain.ErrSceneNotFound.
func (s *service) GetScene(ctx context.Context, scenarioName string, sceneID int) (*domain.Scene, error) {
	log := logger.FromContext(ctx)

	if sceneID < 0 || sceneID > domain.SceneIDMax {
		metrics.SceneLookups.WithLabelValues(metrics.ResultNotFound).Inc()
		log.Debug(LogMsgSceneNotFound, "scenario", scenarioName, "scene_id", sceneID)
		return nil, fmt.Errorf(ErrMsgGetSceneFailed, scenarioName, sceneID, domain.ErrSceneNotFound)
	}

	scene, err := s.repo.GetScene(ctx, scenarioName, sceneID)
	if err != nil {
		if errors.Is(err, domain.ErrSceneNotFound) {
			metrics.SceneLookups.WithLabelValues(metrics.ResultNotFound).Inc()
			log.Debug(LogMsgSceneNotFound, "scenario", scenarioName, "scene_id", sceneID)
			return nil, fmt.Errorf(ErrMsgGetSceneFailed, scenarioName, sceneID, err)
		}
		metrics.SceneLookups.WithLabelValues(metrics.ResultError).Inc()
		log.Error(LogMsgSceneLookupFailed, "scenario", scenarioName, "scene_id", sceneID, "error", err)
		return nil, fmt.Errorf(ErrMsgGetSceneFailed, scenarioName, sceneID, err)
	}

	if scene.Choices == nil {
		scene.Choices = []domain.Choice{}
	}
	metrics.SceneLookups.WithLabelValues(metrics.ResultFound).Inc()
	return scene, nil
}
