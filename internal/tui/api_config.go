package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/internal/service"
	"github.com/MKhiriev/gamegenius/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	configFieldAPIKey = iota
	configFieldDocumentationURL
	configFieldTestEndpoint
	configFieldCount
)

var configFieldLabels = [configFieldCount]string{
	configFieldAPIKey:           "API key",
	configFieldDocumentationURL: "Documentation URL",
	configFieldTestEndpoint:     "Test endpoint",
}

// APIConfigModel is the API configuration panel. The key is always masked
// and is persisted only through the API key service.
type APIConfigModel struct {
	ctx    context.Context
	keys   service.APIKeyService
	games  service.GameService
	logger *logger.Logger

	fields [configFieldCount]textinput.Model
	focus  int

	busy   bool
	status string
	errMsg string
}

func NewAPIConfigModel(ctx context.Context, keys service.APIKeyService, games service.GameService, log *logger.Logger) *APIConfigModel {
	m := &APIConfigModel{ctx: ctx, keys: keys, games: games, logger: log}

	for i := range m.fields {
		input := textinput.New()
		input.Width = 50
		input.CharLimit = 512
		m.fields[i] = input
	}
	m.fields[configFieldAPIKey].Placeholder = "sk-..."
	m.fields[configFieldAPIKey].EchoMode = textinput.EchoPassword
	m.fields[configFieldAPIKey].EchoCharacter = '•'
	m.fields[configFieldDocumentationURL].Placeholder = "https://docs.example.com"
	m.fields[configFieldTestEndpoint].Placeholder = "/api/v1/test"

	return m
}

// Init reloads the stored configuration every time the panel is opened.
func (m *APIConfigModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	m.busy = true
	return tea.Batch(m.setFocus(configFieldAPIKey), m.cmdLoad())
}

func (m *APIConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		for i := range m.fields {
			m.fields[i].Width = inputWidth(msg.Width)
		}
		return m, nil
	case configLoadedMsg:
		m.busy = false
		m.fields[configFieldAPIKey].SetValue(msg.cfg.APIKey)
		m.fields[configFieldDocumentationURL].SetValue(msg.cfg.DocumentationURL)
		m.fields[configFieldTestEndpoint].SetValue(msg.cfg.TestEndpoint)
		m.errMsg = service.UserMessage(msg.err)
		return m, nil
	case configSavedMsg:
		m.busy = false
		m.setResult(msg.err, "Configuration saved")
		return m, nil
	case connectionTestedMsg:
		m.busy = false
		m.setResult(msg.err, "Connection successful")
		return m, nil
	case keyClearedMsg:
		m.busy = false
		if msg.err == nil {
			m.fields[configFieldAPIKey].SetValue("")
		}
		m.setResult(msg.err, "API key removed")
		return m, nil
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m *APIConfigModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.esc):
		m.fields[m.focus].Blur()
		return func() tea.Msg { return NavigateTo{Page: pageMenu} }, true
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.enter):
		return m.setFocus((m.focus + 1) % configFieldCount), true
	case key.Matches(msg, keys.backtab):
		return m.setFocus((m.focus - 1 + configFieldCount) % configFieldCount), true
	}

	if m.busy {
		switch {
		case key.Matches(msg, keys.submit), key.Matches(msg, keys.test), key.Matches(msg, keys.clearKey):
			return nil, true
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.submit):
		m.startAction()
		return m.cmdSave(), true
	case key.Matches(msg, keys.test):
		m.startAction()
		return m.cmdTest(), true
	case key.Matches(msg, keys.clearKey):
		m.startAction()
		return m.cmdClearKey(), true
	}
	return nil, false
}

func (m *APIConfigModel) startAction() {
	m.busy = true
	m.status = ""
	m.errMsg = ""
}

func (m *APIConfigModel) setResult(err error, success string) {
	if err != nil {
		m.status = ""
		m.errMsg = service.UserMessage(err)
		return
	}
	m.errMsg = ""
	m.status = success
}

func (m *APIConfigModel) setFocus(idx int) tea.Cmd {
	m.fields[m.focus].Blur()
	m.focus = idx
	return m.fields[m.focus].Focus()
}

func (m *APIConfigModel) configuration() models.APIConfiguration {
	return models.APIConfiguration{
		APIKey:           strings.TrimSpace(m.fields[configFieldAPIKey].Value()),
		DocumentationURL: strings.TrimSpace(m.fields[configFieldDocumentationURL].Value()),
		TestEndpoint:     strings.TrimSpace(m.fields[configFieldTestEndpoint].Value()),
	}
}

func (m *APIConfigModel) cmdLoad() tea.Cmd {
	ctx, keys := m.ctx, m.keys
	return func() tea.Msg {
		cfg, err := keys.LoadConfiguration(ctx)
		return configLoadedMsg{cfg: cfg, err: err}
	}
}

func (m *APIConfigModel) cmdSave() tea.Cmd {
	ctx, keys, cfg := m.ctx, m.keys, m.configuration()
	return func() tea.Msg {
		return configSavedMsg{err: keys.SaveConfiguration(ctx, cfg)}
	}
}

// cmdClearKey removes only the API key. The other fields stay stored.
func (m *APIConfigModel) cmdClearKey() tea.Cmd {
	ctx, keys := m.ctx, m.keys
	return func() tea.Msg {
		return keyClearedMsg{err: keys.ClearSecret(ctx)}
	}
}

// cmdTest saves the panel first so the test runs against what the user sees.
func (m *APIConfigModel) cmdTest() tea.Cmd {
	ctx, keys, games, cfg := newRequestContext(m.ctx, m.logger), m.keys, m.games, m.configuration()
	return func() tea.Msg {
		if err := keys.SaveConfiguration(ctx, cfg); err != nil {
			return connectionTestedMsg{err: err}
		}
		return connectionTestedMsg{err: games.TestConnection(ctx, cfg.TestEndpoint)}
	}
}

func (m *APIConfigModel) View() string {
	var b strings.Builder

	for i := range m.fields {
		cursor := " "
		if i == m.focus {
			cursor = ">"
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(labelStyle.Render(configFieldLabels[i]))
		b.WriteString("\n  ")
		b.WriteString(m.fields[i].View())
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString("\nWorking...")
	} else if status := renderStatus(m.status, m.errMsg); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}

	return renderPage("API CONFIGURATION", strings.TrimRight(b.String(), "\n"),
		"ctrl+s: save │ ctrl+t: save & test │ ctrl+x: remove key │ tab: next field │ esc: back")
}
