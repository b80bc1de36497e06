package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notes-and-tags/internal/config"
	"github.com/MKhiriev/notes-and-tags/internal/handler"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/internal/server"
	"github.com/MKhiriev/notes-and-tags/internal/service"
	"github.com/MKhiriev/notes-and-tags/internal/store"
	"github.com/MKhiriev/notes-and-tags/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewLogger("notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// a version linked into the binary wins over the configured one
	if buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.Version
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
