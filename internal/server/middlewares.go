package server

import (
	"github.com/labstack/echo/v4"
)

const (
	HEADER_KEY_COOP = "Cross-Origin-Opener-Policy"
	HEADER_KEY_COEP = "Cross-Origin-Embedder-Policy"
)

// IsolationHeaders marks every response cross-origin isolated. It has to run
// before routing so 404s and static files carry the headers as well.
func IsolationHeaders(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(HEADER_KEY_COOP, "same-origin")
		h.Set(HEADER_KEY_COEP, "require-corp")
		return next(c)
	}
}
