package tui

import (
	"strings"

	"github.com/MKhiriev/gamegenius/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const surveyAnswerCharLimit = 256

type surveyQuestion struct {
	label string
	input textinput.Model
}

// SurveyModel is the guided alternative to the free-text description. Every
// answer is free-form and starts from the default survey.
type SurveyModel struct {
	questions []surveyQuestion
	focus     int
}

func NewSurveyModel() *SurveyModel {
	defaults := models.DefaultSurvey()
	m := &SurveyModel{
		questions: []surveyQuestion{
			newSurveyQuestion("How many players?", defaults.PlayerCount),
			newSurveyQuestion("How long should a game take?", defaults.Duration),
			newSurveyQuestion("What type of game?", defaults.GameType),
			newSurveyQuestion("How complex should it be?", defaults.Complexity),
			newSurveyQuestion("What materials can be used?", defaults.Requirements),
			newSurveyQuestion("What theme?", defaults.Theme),
		},
	}
	return m
}

func newSurveyQuestion(label, value string) surveyQuestion {
	input := textinput.New()
	input.CharLimit = surveyAnswerCharLimit
	input.Width = 50
	input.SetValue(value)
	return surveyQuestion{label: label, input: input}
}

func (m *SurveyModel) Init() tea.Cmd {
	return m.setFocus(m.focus)
}

func (m *SurveyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		for i := range m.questions {
			m.questions[i].input.Width = inputWidth(size.Width)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.questions[m.focus].input.Blur()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.submit):
			return m, m.submit()
		case key.Matches(keyMsg, keys.enter):
			if m.focus == len(m.questions)-1 {
				return m, m.submit()
			}
			return m, m.setFocus(m.focus + 1)
		case key.Matches(keyMsg, keys.tab):
			return m, m.setFocus((m.focus + 1) % len(m.questions))
		case key.Matches(keyMsg, keys.backtab):
			return m, m.setFocus((m.focus - 1 + len(m.questions)) % len(m.questions))
		}
	}

	var cmd tea.Cmd
	m.questions[m.focus].input, cmd = m.questions[m.focus].input.Update(msg)
	return m, cmd
}

func (m *SurveyModel) setFocus(idx int) tea.Cmd {
	m.questions[m.focus].input.Blur()
	m.focus = idx
	return m.questions[m.focus].input.Focus()
}

// Survey returns the current answers.
func (m *SurveyModel) Survey() models.Survey {
	answer := func(i int) string { return strings.TrimSpace(m.questions[i].input.Value()) }
	return models.Survey{
		PlayerCount:  answer(0),
		Duration:     answer(1),
		GameType:     answer(2),
		Complexity:   answer(3),
		Requirements: answer(4),
		Theme:        answer(5),
	}
}

func (m *SurveyModel) submit() tea.Cmd {
	survey := m.Survey()
	req := models.GameRequest{Mode: models.ModeSurvey, Survey: &survey}
	return func() tea.Msg {
		return NavigateTo{Page: pageGame, Payload: startGenerationMsg{request: req, origin: pageSurvey}}
	}
}

func (m *SurveyModel) View() string {
	var b strings.Builder

	for i, q := range m.questions {
		cursor := " "
		if i == m.focus {
			cursor = ">"
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(labelStyle.Render(q.label))
		b.WriteString("\n  ")
		b.WriteString(q.input.View())
		b.WriteString("\n")
	}

	return renderPage("GAME SURVEY", strings.TrimRight(b.String(), "\n"), "tab/↑/↓: next question │ ctrl+s: generate │ esc: back")
}
