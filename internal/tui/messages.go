package tui

import (
	"github.com/MKhiriev/gamegenius/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type startGenerationMsg struct {
	request models.GameRequest
	origin  string
}

// gameGeneratedMsg carries the generation it answers so results of a
// cancelled or superseded request are dropped.
type gameGeneratedMsg struct {
	generation int
	game       models.GeneratedGame
	err        error
}

type configLoadedMsg struct {
	cfg models.APIConfiguration
	err error
}

type configSavedMsg struct {
	err error
}

type connectionTestedMsg struct {
	err error
}

type keyClearedMsg struct {
	err error
}
