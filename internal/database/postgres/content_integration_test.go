package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoveSim_Go/internal/domain"
)

func TestContentRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	seedRepo := NewSeedRepository(pool)
	_, err := seedRepo.ReplaceContent(ctx, []domain.Scenario{demoScenario()}, domain.ReloadOptions{})
	require.NoError(t, err)

	repo := NewContentRepository(pool)

	t.Run("ListScenarios", func(t *testing.T) {
		scenarios, err := repo.ListScenarios(ctx)
		require.NoError(t, err)
		require.Len(t, scenarios, 1)
		assert.Equal(t, "demo", scenarios[0].Name)
		assert.Equal(t, "Demo", scenarios[0].Title)
		require.NotNil(t, scenarios[0].Description)
		assert.Equal(t, "A short demo", *scenarios[0].Description)
		assert.Equal(t, 2, scenarios[0].Difficulty)
	})

	t.Run("GetScene with choices in insertion order", func(t *testing.T) {
		scene, err := repo.GetScene(ctx, "demo", 1)
		require.NoError(t, err)
		assert.Equal(t, 1, scene.SceneID)
		assert.Equal(t, "Hi", scene.AILine)
		require.NotNil(t, scene.CharacterMood)
		assert.Equal(t, "happy", *scene.CharacterMood)
		assert.Nil(t, scene.CharacterImage)
		assert.Equal(t, []domain.Choice{
			{Text: "Hello", NextSceneID: 2, Favorability: 5},
			{Text: "Bye", NextSceneID: 3, Favorability: -5},
		}, scene.Choices)
	})

	t.Run("GetScene without choices returns empty slice", func(t *testing.T) {
		scene, err := repo.GetScene(ctx, "demo", 2)
		require.NoError(t, err)
		assert.NotNil(t, scene.Choices)
		assert.Empty(t, scene.Choices)
	})

	t.Run("dangling next scene is not found", func(t *testing.T) {
		_, err := repo.GetScene(ctx, "demo", 3)
		assert.ErrorIs(t, err, domain.ErrSceneNotFound)
	})

	t.Run("unknown scenario is not found", func(t *testing.T) {
		_, err := repo.GetScene(ctx, "nope", 1)
		assert.ErrorIs(t, err, domain.ErrSceneNotFound)
	})
}

func TestContentRepository_SceneIDScopedToScenario(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	other := domain.Scenario{
		Name:       "other",
		Title:      "Other",
		Difficulty: 3,
		Scenes: []domain.Scene{
			{SceneID: 1, AILine: "Different opening", Choices: []domain.Choice{}},
		},
	}
	_, err := NewSeedRepository(pool).ReplaceContent(ctx, []domain.Scenario{demoScenario(), other}, domain.ReloadOptions{})
	require.NoError(t, err)

	repo := NewContentRepository(pool)
	demo, err := repo.GetScene(ctx, "demo", 1)
	require.NoError(t, err)
	otherScene, err := repo.GetScene(ctx, "other", 1)
	require.NoError(t, err)

	assert.Equal(t, "Hi", demo.AILine)
	assert.Equal(t, "Different opening", otherScene.AILine)

	scenarios, err := repo.ListScenarios(ctx)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "demo", scenarios[0].Name)
	assert.Nil(t, scenarios[1].Description)

	t.Run("GetScene returns every choice up to the limit", func(t *testing.T) {
		full := domain.Scenario{
			Name:   "full",
			Title:  "Full",
			Scenes: []domain.Scene{sceneWithChoices(domain.MaxChoicesPerScene)},
		}
		_, err := NewSeedRepository(pool).ReplaceContent(ctx, []domain.Scenario{demoScenario(), full}, domain.ReloadOptions{})
		require.NoError(t, err)

		scene, err := repo.GetScene(ctx, "full", 1)
		require.NoError(t, err)
		require.Len(t, scene.Choices, domain.MaxChoicesPerScene)
		assert.Equal(t, "choice 0", scene.Choices[0].Text)
		assert.Equal(t, fmt.Sprintf("choice %d", domain.MaxChoicesPerScene-1), scene.Choices[domain.MaxChoicesPerScene-1].Text)
	})
}
