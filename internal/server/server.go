package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/assetcatalog/catalog-api/internal/config"
	"github.com/assetcatalog/catalog-api/internal/database"
	"github.com/assetcatalog/catalog-api/internal/telemetry"
	"github.com/assetcatalog/catalog-api/internal/usecase"
)

// Service represents the catalog operations the HTTP surface depends on.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health(context.Context) map[string]string

	// Close terminates the database connection.
	// It returns an error if the connection cannot be closed.
	Close() error

	ListCatalogPage(ctx context.Context, page string) (usecase.CatalogPage, error)
	CountCatalogPages(context.Context) (int, error)
}

type Server struct {
	server Service
	logger *slog.Logger
	cfg    config.Config
}

func NewServer(sv Service, cfg config.Config, l *slog.Logger) *Server {
	return &Server{
		server: sv,
		logger: l,
		cfg:    cfg,
	}
}

// App owns everything the API process starts and has to stop again.
type App struct {
	httpServer *http.Server
	service    Service
	shutdown   telemetry.ShutdownFunc
	logger     *slog.Logger
}

func NewApp(ctx context.Context, cfg config.Config, l *slog.Logger) (*App, error) {
	shutdown, err := telemetry.Setup(ctx, cfg.OtelServiceName, cfg.OtelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("setup telemetry: %w", err)
	}

	repo, err := database.New(cfg.DB, l)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("open database: %w", err)
	}
	sv := usecase.New(repo)

	s := NewServer(sv, cfg, l)

	// Declare Server config
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return &App{
		httpServer: httpServer,
		service:    sv,
		shutdown:   shutdown,
		logger:     l,
	}, nil
}

func (a *App) Addr() string {
	return a.httpServer.Addr
}

// ListenAndServe blocks until the server stops. A graceful shutdown is not
// reported as an error.
func (a *App) ListenAndServe() error {
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains HTTP and flushes telemetry in parallel, then closes the
// store once no request can reach it anymore.
func (a *App) Shutdown(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.httpServer.Shutdown(gctx)
	})
	g.Go(func() error {
		return a.shutdown(gctx)
	})
	err := g.Wait()

	if cerr := a.service.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
