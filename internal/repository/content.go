package repository

import (
	"context"

	"github.com/osse101/LoveSim_Go/internal/domain"
)

// Content defines read access to scenarios and their scene graphs
type Content interface {
	ListScenarios(ctx context.Context) ([]domain.Scenario, error)
	// GetScene returns domain.ErrSceneNotFound when no scene matches.
	GetScene(ctx context.Context, scenarioName string, sceneID int) (*domain.Scene, error)
}

// Seed defines the destructive content reload used by the seeding tool
type Seed interface {
	ReplaceContent(ctx context.Context, scenarios []domain.Scenario, opts domain.ReloadOptions) (*domain.ReloadResult, error)
}
