package main

import (
	"os"

	"clinicdesk/internal/config"
	"clinicdesk/internal/database"
	"clinicdesk/internal/export"
	"clinicdesk/internal/handlers"
	"clinicdesk/internal/store"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DatabaseDriver).Msg("failed to open database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}
	logger.Info().Str("driver", cfg.DatabaseDriver).Msg("database ready")

	patients := store.NewPatientStore(db, logger)
	visits := store.NewVisitStore(db, logger)
	exporter := export.NewExporter(patients)

	r := handlers.NewRouter(patients, visits, exporter)
	logger.Info().Str("port", cfg.ListenPort).Msg("listening")
	if err := r.Run(":" + cfg.ListenPort); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
