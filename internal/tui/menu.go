package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	title string
	page  string
}

// MenuModel is the start page. It selects the input mode or opens the API
// configuration.
type MenuModel struct {
	items []menuItem
	idx   int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Describe your game idea", page: pageDescription},
			{title: "Answer the game survey", page: pageSurvey},
			{title: "API configuration", page: pageConfig},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		page := m.items[m.idx].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString("How would you like to create your game?\n\n")
	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item.title))
	}

	return renderPage("BEN THE GAMEGENIUS", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
