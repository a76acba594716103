package server

import (
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/time/rate"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler(e)

	e.Pre(IsolationHeaders)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(otelecho.Middleware(s.cfg.OtelServiceName, otelecho.WithSkipper(skipper)))
	e.Use(NewEchoLogger(s.logger))
	e.Use(middleware.Recover())

	if s.cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Skipper: skipper,
			Store:        middleware.NewRateLimiterMemoryStore(rate.Limit(s.cfg.RateLimit)),
			ErrorHandler: rateLimitErrorHandler,
			DenyHandler:  rateLimitDenyHandler,
		}))
	}

	if dir := s.cfg.StaticDir; dir != "" {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
				Root: dir,
			}))
		}
	}

	e.GET("/api", s.HelloWorldHandler)

	e.GET("/api/health", s.healthHandler)

	e.GET("/api/catalog-assets", s.ListCatalogAssets)
	e.GET("/api/catalog-pages", s.GetCatalogPages)

	return e
}
