package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/assetcatalog/catalog-api/internal/config"
	"github.com/assetcatalog/catalog-api/internal/server"
	"github.com/assetcatalog/catalog-api/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.IsLocal() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(telemetry.NewTraceHandler(handler))
	slog.SetDefault(logger)

	app, err := server.NewApp(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to start API", slog.String("err", err.Error()))
		os.Exit(1)
	}

	// Server startup
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("API server starting", slog.String("addr", app.Addr()))
		serveErr <- app.ListenAndServe()
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serveErr:
		if err != nil {
			logger.Error("Server error", slog.String("err", err.Error()))
		}
	}

	logger.Info("Shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", slog.String("err", err.Error()))
		os.Exit(1)
	}

	logger.Info("API server exited properly")
}
