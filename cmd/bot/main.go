package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tscatalog/internal/adapters/discord"
	"tscatalog/internal/application"
	"tscatalog/internal/config"
	"tscatalog/internal/infrastructure/database"
	"tscatalog/internal/infrastructure/database/sqlc_generated"
	"tscatalog/internal/infrastructure/i18n"
	"tscatalog/internal/infrastructure/tsfile"
	"tscatalog/internal/logging"
	"tscatalog/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, logging.LevelFromString(cfg.LogLevel))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("bot stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	sources, err := tsfile.Sources(cfg.TranslationsDir)
	if err != nil {
		return err
	}
	registry := application.NewRegistry(logger, sources)
	if err := registry.Preload(); err != nil {
		// Broken catalogs are served as empty; keep running.
		logger.Warn("some catalogs failed to load", slog.Any("error", err))
	}
	logger.Info("catalogs loaded", slog.Int("sources", len(sources)), slog.Int("locales", len(registry.Locales())))

	var (
		coverageRepo output.CoverageRepository
		missRepo     output.MissRepository
	)
	if cfg.PersistenceEnabled() {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer pool.Close()

		q := sqlc_generated.New(pool)
		coverageRepo = database.NewCoverageRepository(pool, q)
		missRepo = database.NewMissRepository(q)
	} else {
		logger.Info("DATABASE_URL not set, misses and snapshots are not persisted")
	}

	service := application.NewCatalogService(registry, coverageRepo, missRepo, logger)
	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)

	bot, err := discord.NewBot(cfg, service, translator, logger)
	if err != nil {
		return err
	}
	return bot.Start(ctx)
}
