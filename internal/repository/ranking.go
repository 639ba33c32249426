package repository

import (
	"context"

	"github.com/osse101/LoveSim_Go/internal/domain"
)

// Ranking defines the interface for leaderboard persistence
type Ranking interface {
	ListRankings(ctx context.Context, filter domain.LeaderboardFilter) ([]domain.LeaderboardEntry, error)
	// InsertRanking stores r and returns its rank within r.ScenarioTitle.
	// Insert and rank count run in one transaction.
	InsertRanking(ctx context.Context, r *domain.Ranking) (int, error)
}
