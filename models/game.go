package models

// InputMode selects how the game idea is described to the generation API.
type InputMode string

const (
	// ModeDescription sends a free-text description of the game idea.
	ModeDescription InputMode = "description"
	// ModeSurvey sends the answers of the guided survey.
	ModeSurvey InputMode = "survey"
)

// Valid reports whether m is one of the known input modes.
func (m InputMode) Valid() bool {
	return m == ModeDescription || m == ModeSurvey
}

// Survey holds the answers of the guided game creation survey.
type Survey struct {
	PlayerCount  string `json:"player_count"`
	Duration     string `json:"duration"`
	GameType     string `json:"game_type"`
	Complexity   string `json:"complexity"`
	Requirements string `json:"requirements"`
	Theme        string `json:"theme"`
}

// DefaultSurvey returns the answers preselected when the survey is opened.
func DefaultSurvey() Survey {
	return Survey{
		PlayerCount:  "2-4",
		Duration:     "medium",
		GameType:     "strategy",
		Complexity:   "medium",
		Requirements: "Standard playing cards, dice, or common household items",
		Theme:        "Fantasy",
	}
}

// GameRequest is the body of a generation request. Exactly one of
// Description and Survey is meaningful, depending on Mode.
type GameRequest struct {
	Mode        InputMode `json:"mode"`
	Description string    `json:"description,omitempty"`
	Survey      *Survey   `json:"survey,omitempty"`
}

// GeneratedGame is the generation API response rendered by the client.
type GeneratedGame struct {
	Title   string `json:"title"`
	Rules   string `json:"rules"`
	Setup   string `json:"setup"`
	Scoring string `json:"scoring"`
}
