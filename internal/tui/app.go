package tui

import (
	"github.com/MKhiriev/gamegenius/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel routes messages between the registered pages.
//
// Key presses and page results go to the active page only. Window size
// changes reach every page, so a page opened later is already laid out.
type RootModel struct {
	pages  map[string]tea.Model
	active string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		active:    startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if page, ok := r.pages[r.active]; ok {
		return page.Init()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showBuildInfo {
			if msg.String() == "esc" || msg.String() == "v" {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if msg.String() == "v" && r.active == pageMenu {
			r.showBuildInfo = true
			return r, nil
		}

	case tea.WindowSizeMsg:
		return r, r.broadcast(msg)

	case NavigateTo:
		return r.navigate(msg)
	}

	page, ok := r.pages[r.active]
	if !ok {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.active] = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.showBuildInfo = false
	r.active = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, next.Init()
}

func (r RootModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for name, page := range r.pages {
		updated, cmd := page.Update(msg)
		r.pages[name] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.active]
	if !ok {
		return renderPage("BEN THE GAMEGENIUS", "", "")
	}
	return page.View()
}
