package server

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/LoveSim_Go/internal/domain"
)

type mockPool struct {
	mock.Mock
}

func (m *mockPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockPool) Close() {
	m.Called()
}

type mockScenarioService struct {
	mock.Mock
}

func (m *mockScenarioService) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scenario), args.Error(1)
}

func (m *mockScenarioService) GetScene(ctx context.Context, scenarioName string, sceneID int) (*domain.Scene, error) {
	args := m.Called(ctx, scenarioName, sceneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scene), args.Error(1)
}

type mockRankingService struct {
	mock.Mock
}

func (m *mockRankingService) GetLeaderboard(ctx context.Context, scenarioTitle string) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, scenarioTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *mockRankingService) SubmitRanking(ctx context.Context, sub domain.RankingSubmission) (int, error) {
	args := m.Called(ctx, sub)
	return args.Int(0), args.Error(1)
}
