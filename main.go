// Package main is the entry point for the socialid API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"socialid/src/app/server"
	"socialid/src/core/domain"
	"socialid/src/core/ports"
	"socialid/src/infra/config"
	"socialid/src/infra/db"
	"socialid/src/infra/logger"
	"socialid/src/infra/metrics"
	"socialid/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"scalar_values", cfg.Codec.ScalarValues,
		"database", cfg.Database.Enabled,
	)

	var encOpts []domain.EncoderOption
	if cfg.Codec.ScalarValues {
		encOpts = append(encOpts, domain.WithScalarValues())
	}
	enc := domain.NewEncoder(encOpts...)

	ctx := context.Background()

	var providers ports.ProviderRepository
	if cfg.Database.Enabled {
		pg, err := db.New(ctx, cfg.Database, log)
		if err != nil {
			return err
		}
		defer pg.Close()

		if cfg.Database.AutoMigrate {
			if err := db.Migrate(ctx, pg, log); err != nil {
				return err
			}
		}
		providers = repo.NewPostgresRepository(pg, logger.WithComponent(log, "repo"))
	} else {
		log.Warn("database disabled, providers are kept in memory")
		providers = repo.NewMemoryRepository(logger.WithComponent(log, "repo"))
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	srv := server.New(cfg, log, enc, providers, m)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
