package main

import (
	"context"
	"fmt"

	"github.com/evgkondr/bidpilot/internal/adapter"
	"github.com/evgkondr/bidpilot/internal/client"
	"github.com/evgkondr/bidpilot/internal/config"
	"github.com/evgkondr/bidpilot/internal/logger"
	"github.com/evgkondr/bidpilot/internal/service"
	"github.com/evgkondr/bidpilot/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("bidpilot-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App)

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)

	app := client.NewApp(services, serverAdapter, log)
	if err := app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
