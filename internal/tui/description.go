package tui

import (
	"strings"

	"github.com/MKhiriev/gamegenius/internal/service"
	"github.com/MKhiriev/gamegenius/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const descriptionCharLimit = 4000

// DescriptionModel collects a free-text description of the game idea.
type DescriptionModel struct {
	input  textarea.Model
	errMsg string
}

func NewDescriptionModel() *DescriptionModel {
	input := textarea.New()
	input.Placeholder = "A cooperative card game about escaping a haunted lighthouse..."
	input.ShowLineNumbers = false
	input.CharLimit = descriptionCharLimit
	input.SetWidth(60)
	input.SetHeight(8)

	return &DescriptionModel{input: input}
}

func (m *DescriptionModel) Init() tea.Cmd {
	m.errMsg = ""
	return m.input.Focus()
}

func (m *DescriptionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.input.SetWidth(inputWidth(size.Width))
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.input.Blur()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.submit):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *DescriptionModel) submit() tea.Cmd {
	description := strings.TrimSpace(m.input.Value())
	if description == "" {
		m.errMsg = service.UserMessage(service.ErrEmptyDescription)
		return nil
	}
	m.errMsg = ""

	req := models.GameRequest{Mode: models.ModeDescription, Description: description}
	return func() tea.Msg {
		return NavigateTo{Page: pageGame, Payload: startGenerationMsg{request: req, origin: pageDescription}}
	}
}

func (m *DescriptionModel) View() string {
	var b strings.Builder

	b.WriteString("Describe the game you want Ben to invent:\n\n")
	b.WriteString(m.input.View())
	if status := renderStatus("", m.errMsg); status != "" {
		b.WriteString("\n\n")
		b.WriteString(status)
	}

	return renderPage("DESCRIBE YOUR GAME", b.String(), "ctrl+s: generate │ esc: back")
}
