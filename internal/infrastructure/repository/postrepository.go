package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mentorhub/internal/domain/resource"
	"mentorhub/internal/infrastructure/persistence/mappers"
	"mentorhub/internal/infrastructure/persistence/models"
	"mentorhub/internal/shared/db"
)

type PostRepository struct {
	db     *gorm.DB
	mapper mappers.PostMapper
}

func NewPostRepository(database *gorm.DB) *PostRepository {
	return &PostRepository{
		db:     database,
		mapper: mappers.NewPostMapper(),
	}
}

func (r *PostRepository) Create(ctx context.Context, p *resource.Post) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map post: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

func (r *PostRepository) Update(ctx context.Context, p *resource.Post) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map post: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PostModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":        model.Title,
			"body":         model.Body,
			"banner_key":   model.BannerKey,
			"state":        model.State,
			"scheduled_at": model.ScheduledAt,
			"published_at": model.PublishedAt,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	return nil
}

func (r *PostRepository) GetBySID(ctx context.Context, sid string) (*resource.Post, error) {
	var model models.PostModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, resource.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PostRepository) ListPublishedByDomain(ctx context.Context, domainSlug string, kind resource.Kind, offset, limit int) ([]*resource.Post, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.PostModel{}).
		Where("domain_slug = ? AND state = ?", domainSlug, string(resource.StatePublished))
	if kind != "" {
		query = query.Where("kind = ?", string(kind))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	var postModels []*models.PostModel
	if err := query.
		Order("published_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&postModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	posts, err := r.mapper.ToEntities(postModels)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepository) ListScheduledDue(ctx context.Context, now time.Time) ([]*resource.Post, error) {
	var postModels []*models.PostModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("state = ? AND scheduled_at <= ?", string(resource.StateScheduled), now).
		Order("scheduled_at ASC").
		Find(&postModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list due posts: %w", err)
	}

	return r.mapper.ToEntities(postModels)
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*resource.Post, error) {
	var postModels []*models.PostModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}

	return r.mapper.ToEntities(postModels)
}
