package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/assetcatalog/catalog-api/internal/config"
	"github.com/assetcatalog/catalog-api/internal/database"
	"github.com/assetcatalog/catalog-api/internal/seed"
	"github.com/assetcatalog/catalog-api/internal/telemetry"
	"github.com/assetcatalog/catalog-api/internal/usecase"
)

func main() {
	var (
		mode = flag.String("mode", "migrate", "Mode to run: 'migrate', 'seed'")
		file = flag.String("file", "assets.yaml", "Seed file (YAML or JSON) used in 'seed' mode")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", slog.String("err", err.Error()))
		os.Exit(1)
	}

	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})
	logger := slog.New(telemetry.NewTraceHandler(jsonHandler))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "migrate":
		err = runMigrate(logger, cfg)
	case "seed":
		err = runSeed(ctx, logger, cfg, *file)
	default:
		logger.Error("Invalid mode. Use 'migrate' or 'seed'", slog.String("mode", *mode))
		os.Exit(1)
	}
	if err != nil {
		logger.Error("Command failed", slog.String("mode", *mode), slog.String("err", err.Error()))
		os.Exit(1)
	}
}

// runMigrate only opens the store; opening ensures the schema exists.
func runMigrate(logger *slog.Logger, cfg config.Config) error {
	logger.Info("Starting in MIGRATE mode...", slog.String("driver", cfg.DB.Driver))

	repo, err := database.New(cfg.DB, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	logger.Info("Schema is up to date")
	return nil
}

func runSeed(ctx context.Context, logger *slog.Logger, cfg config.Config, path string) error {
	logger.Info("Starting in SEED mode...", slog.String("file", path))

	assets, err := seed.Load(path)
	if err != nil {
		return err
	}

	repo, err := database.New(cfg.DB, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	n, err := usecase.New(repo).SeedCatalogAssets(ctx, assets)
	if err != nil {
		return err
	}

	logger.Info("Seeded catalog assets", slog.Int("count", n))
	return nil
}
