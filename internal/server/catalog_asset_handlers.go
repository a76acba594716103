package server

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/assetcatalog/catalog-api/internal/usecase"
)

type ListCatalogAssetsRequest struct {
	// Page is kept as a string: malformed values fall back to page 1
	// instead of failing the bind.
	Page string `query:"page"`
}

func (s *Server) ListCatalogAssets(ctx echo.Context) error {
	var req ListCatalogAssetsRequest
	if err := ctx.Bind(&req); err != nil {
		req.Page = ""
	}

	page, err := s.server.ListCatalogPage(ctx.Request().Context(), req.Page)
	if err != nil {
		return s.writeError(ctx, err)
	}

	keys := page.Order
	if len(keys) != len(page.Assets) {
		keys = slices.Sorted(maps.Keys(page.Assets))
	}

	assets := CatalogAssets{
		Keys:   keys,
		Values: make(map[string]CatalogAsset, len(page.Assets)),
	}
	for name, a := range page.Assets {
		assets.Values[name] = CatalogAsset{
			Title:       a.Title,
			Description: a.Description,
			Tags:        a.Tags,
			Version:     a.Version,
			Image:       a.Image,
			Video:       a.Video,
			Payload:     a.Payload,
			Type:        a.Type,
		}
	}

	return ctx.JSON(http.StatusOK, ListCatalogAssetsRes{Assets: assets})
}

func (s *Server) GetCatalogPages(ctx echo.Context) error {
	pages, err := s.server.CountCatalogPages(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CatalogPagesRes{Pages: pages})
}

// writeError maps usecase errors onto fixed bodies. Nothing from the
// underlying cause reaches the client; it is logged instead.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return ctx.JSON(http.StatusBadRequest, ErrorRes{Error: MSG_INVALID_PAGE})
	}

	attrs := []any{
		slog.String("uri", ctx.Request().RequestURI),
		slog.String("err", err.Error()),
	}
	var ierr *usecase.InternalError
	if errors.As(err, &ierr) {
		attrs = append(attrs, slog.String("detail", ierr.Detail()))
	}
	s.logger.ErrorContext(ctx.Request().Context(), "catalog request failed", attrs...)

	return ctx.JSON(http.StatusInternalServerError, ErrorRes{Error: MSG_INTERNAL_ERROR})
}
