package domain

// Scenario is a top-level branching storyline identified by a URL-safe slug.
type Scenario struct {
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Difficulty  int     `json:"difficulty"`
	Scenes      []Scene `json:"scenes,omitempty"`
}

// Scene is one node of a scenario's dialogue tree. SceneID is unique only
// within its scenario; (ScenarioName, SceneID) is the lookup key.
type Scene struct {
	ID             int64    `json:"-"`
	SceneID        int      `json:"sceneId"`
	AILine         string   `json:"aiLine"`
	CharacterMood  *string  `json:"characterMood"`
	CharacterImage *string  `json:"characterImage"`
	ScenarioName   string   `json:"-"`
	Choices        []Choice `json:"userCards"`
}

// Choice is a selectable option at a scene. NextSceneID points at a scene in
// the same scenario and is not enforced by the store.
type Choice struct {
	Text         string `json:"text"`
	NextSceneID  int    `json:"nextSceneId"`
	Favorability int    `json:"favorability"`
}

// ReloadOptions controls a destructive content reload.
type ReloadOptions struct {
	// PreserveRankings keeps leaderboard rows across the reload.
	PreserveRankings bool
}

// ReloadResult summarizes a content reload.
type ReloadResult struct {
	ScenariosLoaded int
	ScenesLoaded    int
	ChoicesLoaded   int
	Failed          []string
	RankingsCleared bool
}
