package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mentorhub/internal/domain/user"
	"mentorhub/internal/infrastructure/persistence/mappers"
	"mentorhub/internal/infrastructure/persistence/models"
	"mentorhub/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return fmt.Errorf("failed to map user: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.SetID(model.ID)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return fmt.Errorf("failed to map user: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"display_name": model.DisplayName,
			"bio":          model.Bio,
			"photo_key":    model.PhotoKey,
			"resume_key":   model.ResumeKey,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, dbID uint) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, dbID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) ListMentors(ctx context.Context) ([]*user.User, error) {
	var userModels []*models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("role = ?", string(user.RoleMentor)).
		Order("display_name ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}

	return r.mapper.ToEntities(userModels)
}
