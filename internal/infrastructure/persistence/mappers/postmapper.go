package mappers

import (
	"fmt"

	"mentorhub/internal/domain/resource"
	"mentorhub/internal/infrastructure/persistence/models"
	"mentorhub/internal/shared/mapper"
)

type PostMapper interface {
	ToEntity(model *models.PostModel) (*resource.Post, error)
	ToModel(entity *resource.Post) (*models.PostModel, error)
	ToEntities(models []*models.PostModel) ([]*resource.Post, error)
}

type PostMapperImpl struct{}

func NewPostMapper() PostMapper {
	return &PostMapperImpl{}
}

func (m *PostMapperImpl) ToEntity(model *models.PostModel) (*resource.Post, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := resource.ReconstructPost(
		model.ID,
		model.SID,
		model.DomainSlug,
		model.AuthorID,
		resource.Kind(model.Kind),
		model.Title,
		model.Body,
		model.BannerKey,
		resource.PublishState(model.State),
		model.ScheduledAt,
		model.PublishedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct post entity: %w", err)
	}
	return entity, nil
}

func (m *PostMapperImpl) ToModel(entity *resource.Post) (*models.PostModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PostModel{
		ID:          entity.DBID(),
		SID:         entity.SID(),
		DomainSlug:  entity.DomainSlug(),
		AuthorID:    entity.AuthorID(),
		Kind:        string(entity.Kind()),
		Title:       entity.Title(),
		Body:        entity.Body(),
		BannerKey:   entity.BannerKey(),
		State:       string(entity.State()),
		ScheduledAt: entity.ScheduledAt(),
		PublishedAt: entity.PublishedAt(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *PostMapperImpl) ToEntities(postModels []*models.PostModel) ([]*resource.Post, error) {
	return mapper.MapSlicePtrWithID(postModels, m.ToEntity, func(mm *models.PostModel) uint { return mm.ID })
}
