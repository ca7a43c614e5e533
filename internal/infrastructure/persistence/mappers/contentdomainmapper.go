package mappers

import (
	"fmt"

	"mentorhub/internal/domain/catalog"
	"mentorhub/internal/infrastructure/persistence/models"
	"mentorhub/internal/shared/mapper"
)

type ContentDomainMapper interface {
	ToEntity(model *models.ContentDomainModel) (*catalog.Domain, error)
	ToModel(entity *catalog.Domain) (*models.ContentDomainModel, error)
	ToEntities(models []*models.ContentDomainModel) ([]*catalog.Domain, error)
}

type ContentDomainMapperImpl struct{}

func NewContentDomainMapper() ContentDomainMapper {
	return &ContentDomainMapperImpl{}
}

func (m *ContentDomainMapperImpl) ToEntity(model *models.ContentDomainModel) (*catalog.Domain, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructDomain(
		model.ID,
		model.SID,
		model.Slug,
		model.DisplayName,
		model.Description,
		model.BannerKey,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct domain entity: %w", err)
	}
	return entity, nil
}

func (m *ContentDomainMapperImpl) ToModel(entity *catalog.Domain) (*models.ContentDomainModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ContentDomainModel{
		ID:          entity.DBID(),
		SID:         entity.SID(),
		Slug:        entity.Slug(),
		DisplayName: entity.DisplayName(),
		Description: entity.Description(),
		BannerKey:   entity.BannerKey(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *ContentDomainMapperImpl) ToEntities(domainModels []*models.ContentDomainModel) ([]*catalog.Domain, error) {
	return mapper.MapSlicePtrWithID(domainModels, m.ToEntity, func(mm *models.ContentDomainModel) uint { return mm.ID })
}
