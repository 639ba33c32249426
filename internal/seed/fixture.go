package seed

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/osse101/LoveSim_Go/internal/domain"
)

// scenarioFixture mirrors the on-disk scenario JSON
type scenarioFixture struct {
	ScenarioTitle       *string         `json:"scenarioTitle"`
	ScenarioDescription json.RawMessage `json:"scenarioDescription"`
	Difficulty          *int            `json:"difficulty"`
	Scenes              []sceneFixture  `json:"scenes"`
}

type sceneFixture struct {
	SceneID        int             `json:"sceneId"`
	AILine         string          `json:"aiLine"`
	CharacterMood  *string         `json:"characterMood"`
	CharacterImage *string         `json:"characterImage"`
	UserCards      []choiceFixture `json:"userCards"`
}

type choiceFixture struct {
	Text         string `json:"text"`
	NextSceneID  int    `json:"nextSceneId"`
	Favorability int    `json:"favorability"`
}

// parseFixture decodes a schema-valid fixture into a scenario named name.
// An absent scenarioTitle becomes domain.DefaultScenarioTitle, an absent
// scenarioDescription becomes the empty string and an explicit null stays nil.
func parseFixture(name string, data []byte) (domain.Scenario, error) {
	var f scenarioFixture
	if err := json.Unmarshal(data, &f); err != nil {
		return domain.Scenario{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidFixture, name, err)
	}

	sc := domain.Scenario{
		Name:       name,
		Title:      domain.DefaultScenarioTitle,
		Difficulty: domain.DefaultDifficulty,
		Scenes:     make([]domain.Scene, 0, len(f.Scenes)),
	}
	if f.ScenarioTitle != nil {
		sc.Title = *f.ScenarioTitle
	}
	if f.Difficulty != nil {
		sc.Difficulty = *f.Difficulty
	}

	desc, err := parseDescription(f.ScenarioDescription)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("%w: %s: scenarioDescription: %v", domain.ErrInvalidFixture, name, err)
	}
	sc.Description = desc

	for _, s := range f.Scenes {
		scene := domain.Scene{
			SceneID:        s.SceneID,
			AILine:         s.AILine,
			CharacterMood:  s.CharacterMood,
			CharacterImage: s.CharacterImage,
			ScenarioName:   name,
			Choices:        make([]domain.Choice, 0, len(s.UserCards)),
		}
		for _, c := range s.UserCards {
			scene.Choices = append(scene.Choices, domain.Choice{
				Text:         c.Text,
				NextSceneID:  c.NextSceneID,
				Favorability: c.Favorability,
			})
		}
		sc.Scenes = append(sc.Scenes, scene)
	}

	return sc, nil
}

func parseDescription(raw json.RawMessage) (*string, error) {
	if len(raw) == 0 {
		d := domain.DefaultScenarioDescription
		return &d, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var d string
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
