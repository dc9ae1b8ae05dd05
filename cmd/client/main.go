package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-dict-keeper/internal/client"
	"github.com/MKhiriev/go-dict-keeper/internal/config"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-dict-client", cfg.LogFile)
	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("starting client")

	app, err := client.NewApp(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
