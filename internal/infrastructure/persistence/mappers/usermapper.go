package mappers

import (
	"fmt"

	"mentorhub/internal/domain/user"
	"mentorhub/internal/infrastructure/persistence/models"
	"mentorhub/internal/shared/mapper"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.SID,
		model.Email,
		model.PasswordHash,
		model.DisplayName,
		user.Role(model.Role),
		model.Bio,
		model.PhotoKey,
		model.ResumeKey,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:           entity.DBID(),
		SID:          entity.SID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		DisplayName:  entity.DisplayName(),
		Role:         string(entity.Role()),
		Bio:          entity.Bio(),
		PhotoKey:     entity.PhotoKey(),
		ResumeKey:    entity.ResumeKey(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSlicePtrWithID(userModels, m.ToEntity, func(mm *models.UserModel) uint { return mm.ID })
}
