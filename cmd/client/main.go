package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/gamegenius/internal/client"
	"github.com/MKhiriev/gamegenius/internal/config"
	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("gamegenius-client").Fatal().Err(err).Msg("error getting configs")
	}

	log, closeLog := logger.NewClientLogger("gamegenius-client", cfg.Log.FilePath, cfg.Log.Level)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		_ = closeLog()
		os.Exit(1)
	}
}
