package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LoveSim_Go/internal/database/postgres"
	"github.com/osse101/LoveSim_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Content repository.Content
	Ranking repository.Ranking
	Seed    repository.Seed
}

// InitializeRepositories creates all repository implementations over one pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Content: postgres.NewContentRepository(dbPool),
		Ranking: postgres.NewRankingRepository(dbPool),
		Seed:    postgres.NewSeedRepository(dbPool),
	}
}
