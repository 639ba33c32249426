package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LoveSim_Go/internal/domain"
	"github.com/osse101/LoveSim_Go/internal/repository"
)

const listScenariosQuery = `
SELECT name, title, description, difficulty
FROM scenarios
ORDER BY id`

const getSceneQuery = `
SELECT id, scene_id, ai_line, character_mood, character_image, scenario_name
FROM scenes
WHERE scenario_name = $1 AND scene_id = $2
ORDER BY id
LIMIT 1`

const getChoicesQuery = `
SELECT text, next_scene_id, favorability
FROM choices
WHERE scene_pk = $1
ORDER BY id
LIMIT $2`

// ContentRepository implements repository.Content for PostgreSQL
type ContentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(pool *pgxpool.Pool) repository.Content {
	return &ContentRepository{pool: pool}
}

type scenarioRow struct {
	Name        string      `db:"name"`
	Title       string      `db:"title"`
	Description pgtype.Text `db:"description"`
	Difficulty  int32       `db:"difficulty"`
}

// ListScenarios returns every scenario in insertion order
func (r *ContentRepository) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	rows, err := r.pool.Query(ctx, listScenariosQuery)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListScenariosFailed, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[scenarioRow])
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListScenariosFailed, err)
	}

	scenarios := make([]domain.Scenario, 0, len(records))
	for _, rec := range records {
		scenarios = append(scenarios, domain.Scenario{
			Name:        rec.Name,
			Title:       rec.Title,
			Description: textToPtr(rec.Description),
			Difficulty:  int(rec.Difficulty),
		})
	}
	return scenarios, nil
}

// GetScene finds a scene by (scenario name, scene id) and loads its choices
// with a second bounded query.
func (r *ContentRepository) GetScene(ctx context.Context, scenarioName string, sceneID int) (*domain.Scene, error) {
	var (
		scene          domain.Scene
		sceneNum       int32
		characterMood  pgtype.Text
		characterImage pgtype.Text
	)
	err := r.pool.QueryRow(ctx, getSceneQuery, scenarioName, sceneID).Scan(
		&scene.ID, &sceneNum, &scene.AILine, &characterMood, &characterImage, &scene.ScenarioName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSceneNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetSceneFailed, err)
	}
	scene.SceneID = int(sceneNum)
	scene.CharacterMood = textToPtr(characterMood)
	scene.CharacterImage = textToPtr(characterImage)

	rows, err := r.pool.Query(ctx, getChoicesQuery, scene.ID, domain.MaxChoicesPerScene)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetChoicesFailed, err)
	}
	choices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Choice, error) {
		var (
			c            domain.Choice
			next, favour int32
		)
		err := row.Scan(&c.Text, &next, &favour)
		c.NextSceneID = int(next)
		c.Favorability = int(favour)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetChoicesFailed, err)
	}
	scene.Choices = choices
	if scene.Choices == nil {
		scene.Choices = []domain.Choice{}
	}

	return &scene, nil
}
