package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/consent-keeper/internal/adapter"
	"github.com/MKhiriev/consent-keeper/internal/config"
	"github.com/MKhiriev/consent-keeper/internal/handler"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/server"
	"github.com/MKhiriev/consent-keeper/internal/service"
	"github.com/MKhiriev/consent-keeper/internal/store"
	"github.com/MKhiriev/consent-keeper/internal/workers"
	"github.com/MKhiriev/consent-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("consent-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Str("backend", cfg.Storage.Backend).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	cms, err := adapter.NewHTTPCMSClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating CMS client")
	}

	services, err := service.NewServices(storages, cms, buildInfo, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
