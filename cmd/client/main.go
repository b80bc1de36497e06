package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/notes-and-tags/internal/adapter"
	"github.com/MKhiriev/notes-and-tags/internal/client"
	"github.com/MKhiriev/notes-and-tags/internal/config"
	"github.com/MKhiriev/notes-and-tags/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewClientLogger("notes-client", os.Stderr)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Error().Err(err).Msg("error setting log level")
		return 1
	}

	api, err := adapter.NewHTTPNotesAPI(*cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create notes api client")
		return 1
	}

	sessions, err := client.NewSessionStore(cfg.SessionFile)
	if err != nil {
		log.Error().Err(err).Msg("open session store")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := client.NewApp(api, sessions, os.Stdout, log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
