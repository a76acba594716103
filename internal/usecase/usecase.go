package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
)

func New(repo Repository) Usecase {
	return Usecase{
		repo:      repo,
		validator: validator.New(),
	}
}

type Repository interface {
	Health(context.Context) map[string]string
	Close() error

	ListCatalogAssets(ctx context.Context, offset, limit int) ([]CatalogAsset, error)
	CountCatalogAssets(context.Context) (int, error)
	UpsertCatalogAssets(context.Context, []CatalogAsset) (int, error)
}

type Usecase struct {
	repo      Repository
	validator *validator.Validate
}

func (u Usecase) Health(ctx context.Context) map[string]string {
	return u.repo.Health(ctx)
}

func (u Usecase) Close() error {
	return u.repo.Close()
}
