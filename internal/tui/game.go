package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/gamegenius/internal/adapter"
	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/internal/service"
	"github.com/MKhiriev/gamegenius/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// GameModel runs a generation request and shows the resulting game.
//
// Only one request is in flight at a time. esc cancels it through the
// request context; regenerating supersedes it.
type GameModel struct {
	ctx    context.Context
	games  service.GameService
	logger *logger.Logger

	spinner spinner.Model

	request models.GameRequest
	origin  string

	game       *models.GeneratedGame
	generating bool
	generation int
	cancel     context.CancelFunc

	status  string
	overlay *errorOverlayModel

	copyToClipboard func(string) error
}

func NewGameModel(ctx context.Context, games service.GameService, log *logger.Logger) *GameModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &GameModel{
		ctx:             ctx,
		games:           games,
		logger:          log,
		spinner:         s,
		origin:          pageMenu,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m *GameModel) Init() tea.Cmd {
	return nil
}

func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startGenerationMsg:
		m.request = msg.request
		m.origin = msg.origin
		if m.origin == "" {
			m.origin = pageMenu
		}
		m.game = nil
		return m, m.start()

	case gameGeneratedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.finish()
		if msg.err != nil {
			if isCancellation(msg.err) {
				m.status = service.UserMessage(adapter.ErrRequestCanceled)
				return m, nil
			}
			m.overlay = &errorOverlayModel{message: service.UserMessage(msg.err)}
			return m, nil
		}
		game := msg.game
		m.game = &game
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *GameModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = nil
			if m.game == nil {
				return m.back()
			}
		}
		return nil
	}

	if m.generating {
		if key.Matches(msg, keys.esc) && m.cancel != nil {
			m.cancel()
			m.status = "Cancelling..."
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m.back()
	case key.Matches(msg, keys.menu):
		return func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(msg, keys.regenerate):
		if m.request.Mode.Valid() {
			return m.start()
		}
	case key.Matches(msg, keys.export):
		m.export()
	}
	return nil
}

func (m *GameModel) start() tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	m.generation++
	ctx, cancel := context.WithCancel(newRequestContext(m.ctx, m.logger))
	m.cancel = cancel
	m.generating = true
	m.status = ""
	m.overlay = nil

	games, req, generation := m.games, m.request, m.generation
	generate := func() tea.Msg {
		game, err := games.Generate(ctx, req)
		return gameGeneratedMsg{generation: generation, game: game, err: err}
	}
	return tea.Batch(m.spinner.Tick, generate)
}

func (m *GameModel) finish() {
	m.generating = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *GameModel) back() tea.Cmd {
	origin := m.origin
	return func() tea.Msg { return NavigateTo{Page: origin} }
}

func (m *GameModel) export() {
	if m.game == nil {
		m.status = "Nothing to export yet"
		return
	}
	if err := m.copyToClipboard(m.games.Export(*m.game)); err != nil {
		m.status = "Could not copy to the clipboard"
		return
	}
	m.status = "Game copied to the clipboard as Markdown"
}

func isCancellation(err error) bool {
	return errors.Is(err, adapter.ErrRequestCanceled) || errors.Is(err, context.Canceled)
}

func (m *GameModel) View() string {
	if m.overlay != nil {
		return renderPage("GENERATED GAME", m.overlay.View(), "")
	}

	if m.generating {
		body := m.spinner.View() + " Ben is inventing your game..."
		if m.status != "" {
			body += "\n\n" + m.status
		}
		return renderPage("GENERATED GAME", body, "esc: cancel")
	}

	if m.game == nil {
		return renderPage("GENERATED GAME", renderStatus(m.status, ""), "r: try again │ esc: back │ m: menu")
	}

	var b strings.Builder
	title := strings.TrimSpace(m.game.Title)
	if title == "" {
		title = "Untitled game"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	writeGameSection(&b, "Setup", m.game.Setup)
	writeGameSection(&b, "Rules", m.game.Rules)
	writeGameSection(&b, "Scoring", m.game.Scoring)
	if status := renderStatus(m.status, ""); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}

	return renderPage("GENERATED GAME", strings.TrimRight(b.String(), "\n"),
		"r: regenerate │ e: export to clipboard │ esc: back │ m: menu")
}

func writeGameSection(b *strings.Builder, name, text string) {
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(name))
	b.WriteString("\n")
	b.WriteString(valueOrDash(strings.TrimSpace(text)))
	b.WriteString("\n")
}
