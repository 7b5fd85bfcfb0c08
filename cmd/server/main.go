package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/brand-snap/internal/config"
	"github.com/MKhiriev/brand-snap/internal/handler"
	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/server"
	"github.com/MKhiriev/brand-snap/internal/service"
	"github.com/MKhiriev/brand-snap/internal/store"
	"github.com/MKhiriev/brand-snap/internal/synthesizer"
	"github.com/MKhiriev/brand-snap/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("brand-snap-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("synthesizer_endpoint", cfg.Synthesizer.Endpoint).
		Dur("synthesizer_timeout", cfg.Synthesizer.Timeout).
		Bool("auto_migrate", cfg.Storage.DB.AutoMigrate).
		Msg("received configs")

	db, err := store.NewDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.AutoMigrate {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
	}

	storages := store.NewStorages(db, log)
	imageSynthesizer := synthesizer.NewClient(cfg.Synthesizer, log)

	services, err := service.NewServices(storages, imageSynthesizer, *cfg, log)
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
