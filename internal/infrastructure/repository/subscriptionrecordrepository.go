package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/infrastructure/persistence/mappers"
	"mentorhub/internal/infrastructure/persistence/models"
	"mentorhub/internal/shared/db"
)

// SubscriptionRecordRepository persists the ledger. The "at most one
// non-terminal record per (user, domain)" invariant is enforced by the
// unique active_pair_key column; a racing insert surfaces as a duplicate-key
// error for the caller to handle.
type SubscriptionRecordRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionRecordMapper
}

func NewSubscriptionRecordRepository(database *gorm.DB) *SubscriptionRecordRepository {
	return &SubscriptionRecordRepository{
		db:     database,
		mapper: mappers.NewSubscriptionRecordMapper(),
	}
}

func (r *SubscriptionRecordRepository) Create(ctx context.Context, record *subscription.Record) error {
	model, err := r.mapper.ToModel(record)
	if err != nil {
		return fmt.Errorf("failed to map record: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subscription record: %w", err)
	}

	if err := record.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to bind record ID: %w", err)
	}
	return nil
}

func (r *SubscriptionRecordRepository) Update(ctx context.Context, record *subscription.Record) error {
	model, err := r.mapper.ToModel(record)
	if err != nil {
		return fmt.Errorf("failed to map record: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionRecordModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":             model.Status,
			"expires_at":         model.ExpiresAt,
			"activation_pending": model.ActivationPending,
			"active_pair_key":    model.ActivePairKey,
			"metadata":           model.Metadata,
			"version":            model.Version,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update subscription record: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.
	return nil
}

func (r *SubscriptionRecordRepository) GetBySID(ctx context.Context, sid string) (*subscription.Record, error) {
	var model models.SubscriptionRecordModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscription.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get subscription record: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRecordRepository) FindByUserAndDomain(ctx context.Context, userEmail, domainSlug string) (*subscription.Record, error) {
	var model models.SubscriptionRecordModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_email = ? AND domain_slug = ?", userEmail, domainSlug).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscription.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find subscription record: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRecordRepository) ListActiveForUser(ctx context.Context, userEmail string, now time.Time) ([]*subscription.Record, error) {
	var recordModels []*models.SubscriptionRecordModel

	// Expiry is evaluated against the caller's clock, not the stored status.
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_email = ? AND status = ? AND expires_at > ?", userEmail, string(subscription.StatusActive), now).
		Order("domain_slug ASC").
		Find(&recordModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list active subscription records: %w", err)
	}

	return r.mapper.ToEntities(recordModels)
}

func (r *SubscriptionRecordRepository) ListByUser(ctx context.Context, userEmail string) ([]*subscription.Record, error) {
	var recordModels []*models.SubscriptionRecordModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_email = ?", userEmail).
		Order("created_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscription records: %w", err)
	}

	return r.mapper.ToEntities(recordModels)
}

func (r *SubscriptionRecordRepository) ListActivationPending(ctx context.Context) ([]*subscription.Record, error) {
	var recordModels []*models.SubscriptionRecordModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("activation_pending = ?", true).
		Order("created_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list activation-pending records: %w", err)
	}

	return r.mapper.ToEntities(recordModels)
}
