package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"github.com/assetcatalog/catalog-api/internal/usecase"
)

type CatalogAsset struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement"`
	PackageName string    `gorm:"column:package_name;type:text;not null;uniqueIndex"`
	Title       string    `gorm:"column:title;type:text;not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	Tags        []string  `gorm:"column:tags;type:json;serializer:json"`
	Version     string    `gorm:"column:version;type:text;not null"`
	Image       *string   `gorm:"column:image;type:text"`
	Video       *string   `gorm:"column:video;type:text"`
	Payload     string    `gorm:"column:payload;type:text;not null"`
	Type        string    `gorm:"column:type;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (CatalogAsset) TableName() string {
	return "catalog_assets"
}

// ListCatalogAssets reads one window of assets ordered by primary key, so
// pages stay stable across calls.
func (s *service) ListCatalogAssets(ctx context.Context, offset, limit int) ([]usecase.CatalogAsset, error) {
	var assets []CatalogAsset

	err := s.db.WithContext(ctx).
		Model([]CatalogAsset{}).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&assets).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "query catalog_assets")
	}

	list := make([]usecase.CatalogAsset, 0, len(assets))
	for _, a := range assets {
		list = append(list, a.ConvertToUsecase())
	}
	return list, nil
}

func (s *service) CountCatalogAssets(ctx context.Context) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model([]CatalogAsset{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count catalog_assets")
	}
	return int(count), nil
}

// UpsertCatalogAssets inserts assets, replacing the content of rows whose
// package_name already exists. Existing rows keep their id and so their
// position in the listing.
func (s *service) UpsertCatalogAssets(ctx context.Context, assets []usecase.CatalogAsset) (int, error) {
	rows := make([]CatalogAsset, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, FromUsecase(a))
	}

	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "package_name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "description", "tags", "version",
				"image", "video", "payload", "type", "updated_at",
			}),
		}).
		CreateInBatches(rows, 100)
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "upsert catalog_assets")
	}
	return len(rows), nil
}

// Convert core model to Usecase
func (a CatalogAsset) ConvertToUsecase() usecase.CatalogAsset {
	return usecase.CatalogAsset{
		PackageName: a.PackageName,
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

func FromUsecase(a usecase.CatalogAsset) CatalogAsset {
	return CatalogAsset{
		PackageName: a.PackageName,
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
