package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LoveSim_Go/internal/domain"
	"github.com/osse101/LoveSim_Go/internal/logger"
	"github.com/osse101/LoveSim_Go/internal/repository"
)

const (
	truncateContentQuery            = `TRUNCATE choices, scenes, scenarios RESTART IDENTITY CASCADE`
	truncateContentAndRankingsQuery = `TRUNCATE choices, scenes, scenarios, rankings RESTART IDENTITY CASCADE`
)

const insertScenarioQuery = `
INSERT INTO scenarios (name, title, description, difficulty)
VALUES ($1, $2, $3, $4)`

const insertSceneQuery = `
INSERT INTO scenes (scene_id, ai_line, character_mood, character_image, scenario_name)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

const insertChoiceQuery = `
INSERT INTO choices (text, next_scene_id, favorability, scene_pk)
VALUES ($1, $2, $3, $4)`

// SeedRepository implements repository.Seed for PostgreSQL
type SeedRepository struct {
	pool *pgxpool.Pool
}

// NewSeedRepository creates a new SeedRepository
func NewSeedRepository(pool *pgxpool.Pool) repository.Seed {
	return &SeedRepository{pool: pool}
}

// ReplaceContent clears the content tables and inserts the given scenarios in
// one transaction. Each scenario is written under its own savepoint; a
// scenario that fails is rolled back, recorded in ReloadResult.Failed and
// skipped while the rest of the reload continues.
func (r *SeedRepository) ReplaceContent(ctx context.Context, scenarios []domain.Scenario, opts domain.ReloadOptions) (*domain.ReloadResult, error) {
	log := logger.FromContext(ctx)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer SafeRollback(ctx, tx)

	clearQuery := truncateContentAndRankingsQuery
	if opts.PreserveRankings {
		clearQuery = truncateContentQuery
	}
	if _, err := tx.Exec(ctx, clearQuery); err != nil {
		return nil, fmt.Errorf(ErrMsgClearContentFailed, err)
	}
	log.Info(LogMsgContentCleared, "rankings_cleared", !opts.PreserveRankings)

	result := &domain.ReloadResult{RankingsCleared: !opts.PreserveRankings}
	for i := range scenarios {
		sc := &scenarios[i]
		scenes, choices, err := insertScenario(ctx, tx, sc)
		if err != nil {
			log.Error(LogMsgScenarioSkipped, "scenario", sc.Name, "error", err)
			result.Failed = append(result.Failed, sc.Name)
			continue
		}
		result.ScenariosLoaded++
		result.ScenesLoaded += scenes
		result.ChoicesLoaded += choices
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return result, nil
}

// insertScenario writes one scenario graph inside a savepoint of tx
func insertScenario(ctx context.Context, tx pgx.Tx, sc *domain.Scenario) (scenes, choices int, err error) {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer SafeRollback(ctx, sp)

	if _, err := sp.Exec(ctx, insertScenarioQuery, sc.Name, sc.Title, ptrToText(sc.Description), sc.Difficulty); err != nil {
		return 0, 0, fmt.Errorf(ErrMsgInsertScenarioFailed, sc.Name, err)
	}

	for _, scene := range sc.Scenes {
		if len(scene.Choices) > domain.MaxChoicesPerScene {
			return 0, 0, fmt.Errorf(ErrMsgTooManyChoices, scene.SceneID, len(scene.Choices), domain.MaxChoicesPerScene)
		}

		var scenePK int64
		err := sp.QueryRow(ctx, insertSceneQuery,
			scene.SceneID,
			scene.AILine,
			ptrToText(scene.CharacterMood),
			ptrToText(scene.CharacterImage),
			sc.Name,
		).Scan(&scenePK)
		if err != nil {
			return 0, 0, fmt.Errorf(ErrMsgInsertSceneFailed, scene.SceneID, err)
		}
		scenes++

		if len(scene.Choices) == 0 {
			continue
		}
		batch := &pgx.Batch{}
		for _, c := range scene.Choices {
			batch.Queue(insertChoiceQuery, c.Text, c.NextSceneID, c.Favorability, scenePK)
		}
		if err := sp.SendBatch(ctx, batch).Close(); err != nil {
			return 0, 0, fmt.Errorf(ErrMsgInsertChoicesFailed, scene.SceneID, err)
		}
		choices += len(scene.Choices)
	}

	if err := sp.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return scenes, choices, nil
}
