package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mentorhub/internal/domain/catalog"
	"mentorhub/internal/infrastructure/persistence/mappers"
	"mentorhub/internal/infrastructure/persistence/models"
	"mentorhub/internal/shared/db"
)

type CatalogRepository struct {
	db     *gorm.DB
	mapper mappers.ContentDomainMapper
}

func NewCatalogRepository(database *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		db:     database,
		mapper: mappers.NewContentDomainMapper(),
	}
}

func (r *CatalogRepository) Create(ctx context.Context, d *catalog.Domain) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map domain: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create content domain: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	d.SetID(model.ID)
	return nil
}

func (r *CatalogRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Domain, error) {
	var model models.ContentDomainModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("slug = ?", slug).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrDomainNotFound
		}
		return nil, fmt.Errorf("failed to get content domain: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CatalogRepository) List(ctx context.Context) ([]*catalog.Domain, error) {
	var domainModels []*models.ContentDomainModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("display_name ASC").
		Find(&domainModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list content domains: %w", err)
	}

	return r.mapper.ToEntities(domainModels)
}

func (r *CatalogRepository) Update(ctx context.Context, d *catalog.Domain) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map domain: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ContentDomainModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"display_name": model.DisplayName,
			"description":  model.Description,
			"banner_key":   model.BannerKey,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update content domain: %w", result.Error)
	}
	return nil
}
