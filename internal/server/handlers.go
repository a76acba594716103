package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) HelloWorldHandler(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"hello": "world"})
}

func (s *Server) healthHandler(ctx echo.Context) error {
	stats := s.server.Health(ctx.Request().Context())
	if stats["status"] != "up" {
		// keep the store error out of the public body
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{"status": stats["status"]})
	}
	return ctx.JSON(http.StatusOK, stats)
}

// errorHandler keeps echo's handling of client errors (404, 405, ...) but
// gives every 5xx, recovered panics included, the fixed internal error body.
func (s *Server) errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}
		if code < http.StatusInternalServerError {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		s.logger.ErrorContext(c.Request().Context(), "unhandled error",
			slog.String("uri", c.Request().RequestURI),
			slog.String("err", err.Error()),
		)

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, ErrorRes{Error: MSG_INTERNAL_ERROR})
		}
		if err != nil {
			s.logger.ErrorContext(c.Request().Context(), "write error response", slog.String("err", err.Error()))
		}
	}
}

// rateLimitErrorHandler runs when no client identifier can be extracted.
func rateLimitErrorHandler(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, ErrorRes{Error: MSG_INTERNAL_ERROR})
}

func rateLimitDenyHandler(c echo.Context, identifier string, err error) error {
	return c.JSON(http.StatusTooManyRequests, ErrorRes{Error: "Too many requests"})
}
