package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/LoveSim_Go/internal/domain"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockScenarioService mocks scenario.Service
type MockScenarioService struct {
	mock.Mock
}

func (m *MockScenarioService) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scenario), args.Error(1)
}

func (m *MockScenarioService) GetScene(ctx context.Context, scenarioName string, sceneID int) (*domain.Scene, error) {
	args := m.Called(ctx, scenarioName, sceneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scene), args.Error(1)
}

// MockRankingService mocks ranking.Service
type MockRankingService struct {
	mock.Mock
}

func (m *MockRankingService) GetLeaderboard(ctx context.Context, scenarioTitle string) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, scenarioTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockRankingService) SubmitRanking(ctx context.Context, sub domain.RankingSubmission) (int, error) {
	args := m.Called(ctx, sub)
	return args.Int(0), args.Error(1)
}

func strPtr(s string) *string { return &s }
