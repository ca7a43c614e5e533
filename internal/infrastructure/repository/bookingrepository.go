package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mentorhub/internal/domain/booking"
	"mentorhub/internal/infrastructure/persistence/mappers"
	"mentorhub/internal/infrastructure/persistence/models"
	"mentorhub/internal/shared/db"
)

type BookingRepository struct {
	db     *gorm.DB
	mapper mappers.BookingMapper
}

func NewBookingRepository(database *gorm.DB) *BookingRepository {
	return &BookingRepository{
		db:     database,
		mapper: mappers.NewBookingMapper(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	model, err := r.mapper.ToModel(b)
	if err != nil {
		return fmt.Errorf("failed to map booking: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	b.SetID(model.ID)
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	model, err := r.mapper.ToModel(b)
	if err != nil {
		return fmt.Errorf("failed to map booking: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BookingModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"note":       model.Note,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	return nil
}

func (r *BookingRepository) GetBySID(ctx context.Context, sid string) (*booking.Booking, error) {
	var model models.BookingModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *BookingRepository) ListByMentee(ctx context.Context, menteeID uint) ([]*booking.Booking, error) {
	var bookingModels []*models.BookingModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("mentee_id = ?", menteeID).
		Order("starts_at DESC").
		Find(&bookingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list mentee bookings: %w", err)
	}

	return r.mapper.ToEntities(bookingModels)
}

func (r *BookingRepository) ListByMentor(ctx context.Context, mentorID uint) ([]*booking.Booking, error) {
	var bookingModels []*models.BookingModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("mentor_id = ?", mentorID).
		Order("starts_at DESC").
		Find(&bookingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list mentor bookings: %w", err)
	}

	return r.mapper.ToEntities(bookingModels)
}
