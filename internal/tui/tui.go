package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/internal/service"
	"github.com/MKhiriev/gamegenius/internal/utils"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

var ErrUserQuit = errors.New("user quit the program")

const (
	pageMenu        = "menu"
	pageDescription = "description"
	pageSurvey      = "survey"
	pageConfig      = "config"
	pageGame        = "game"
)

type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	return &TUI{services: services, logger: log}, nil
}

// Run shows the generator until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal program stopped with error")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:        NewMenuModel(),
		pageDescription: NewDescriptionModel(),
		pageSurvey:      NewSurveyModel(),
		pageConfig:      NewAPIConfigModel(ctx, t.services.APIKeyService, t.services.GameService, t.logger),
		pageGame:        NewGameModel(ctx, t.services.GameService, t.logger),
	}
	return NewRootModel(pages, pageMenu, t.services.AppInfo.GetBuildInfo(ctx))
}

// newRequestContext tags ctx with a fresh request id and a child logger that
// reports it on every entry.
func newRequestContext(ctx context.Context, log *logger.Logger) context.Context {
	requestID := utils.NewUUIDGenerator().Generate()

	child := log.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", requestID)
	})

	return child.WithContext(utils.WithRequestID(ctx, requestID))
}
