package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type CatalogAsset struct {
	PackageName string   `validate:"required"`
	Title       string   `validate:"required"`
	Description string   `validate:"required"`
	Tags        []string `validate:"omitempty,dive,required"`
	Version     string   `validate:"required"`
	Image       *string
	Video       *string
	Payload     string `validate:"required"`
	Type        string
}

// CatalogEntry is a catalog asset without its package name, which is the
// key it is listed under.
type CatalogEntry struct {
	Title       string
	Description string
	Tags        []string
	Version     string
	Image       *string
	Video       *string
	Payload     string
	Type        string
}

type CatalogPage struct {
	Page   int
	Assets map[string]CatalogEntry
	// Order lists the package names in store order.
	Order []string
}

// ParsePage reads the leading base-10 integer of a page query value, so
// "2x" and "2.9" both mean page 2. Values without one fall back to the
// first page. Out-of-range values clamp to the int bounds; range checking
// is left to ListCatalogPage.
func ParsePage(raw string) int {
	s := strings.TrimSpace(raw)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 1
	}

	page, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		if s[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}
	if err != nil {
		return 1
	}
	return page
}

func (u Usecase) ListCatalogPage(ctx context.Context, pageParam string) (CatalogPage, error) {
	page := ParsePage(pageParam)
	if page < 1 {
		return CatalogPage{}, ErrInvalidPage
	}

	offset, limit := ToOffsetLimit(page)

	assets, err := u.repo.ListCatalogAssets(ctx, offset, limit)
	if err != nil {
		return CatalogPage{}, &InternalError{Op: "list catalog assets", Err: err}
	}

	res := CatalogPage{
		Page:   page,
		Assets: make(map[string]CatalogEntry, len(assets)),
		Order:  make([]string, 0, len(assets)),
	}
	for _, a := range assets {
		if _, dup := res.Assets[a.PackageName]; !dup {
			res.Order = append(res.Order, a.PackageName)
		}
		res.Assets[a.PackageName] = a.Entry()
	}

	return res, nil
}

func (u Usecase) CountCatalogPages(ctx context.Context) (int, error) {
	count, err := u.repo.CountCatalogAssets(ctx)
	if err != nil {
		return 0, &InternalError{Op: "count catalog assets", Err: err}
	}
	return TotalPages(count), nil
}

// SeedCatalogAssets validates and upserts assets keyed by package name.
// It is used by the admin tooling, never by the HTTP surface.
func (u Usecase) SeedCatalogAssets(ctx context.Context, assets []CatalogAsset) (int, error) {
	seen := make(map[string]struct{}, len(assets))
	for i, a := range assets {
		if err := u.validator.Struct(a); err != nil {
			return 0, fmt.Errorf("asset #%d (%q): %w", i, a.PackageName, err)
		}
		if _, ok := seen[a.PackageName]; ok {
			return 0, fmt.Errorf("asset #%d: duplicate package_name %q", i, a.PackageName)
		}
		seen[a.PackageName] = struct{}{}
	}
	if len(assets) == 0 {
		return 0, nil
	}
	return u.repo.UpsertCatalogAssets(ctx, assets)
}

func (a CatalogAsset) Entry() CatalogEntry {
	return CatalogEntry{
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
