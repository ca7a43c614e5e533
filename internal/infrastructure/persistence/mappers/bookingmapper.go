package mappers

import (
	"fmt"

	"mentorhub/internal/domain/booking"
	"mentorhub/internal/infrastructure/persistence/models"
	"mentorhub/internal/shared/mapper"
)

type BookingMapper interface {
	ToEntity(model *models.BookingModel) (*booking.Booking, error)
	ToModel(entity *booking.Booking) (*models.BookingModel, error)
	ToEntities(models []*models.BookingModel) ([]*booking.Booking, error)
}

type BookingMapperImpl struct{}

func NewBookingMapper() BookingMapper {
	return &BookingMapperImpl{}
}

func (m *BookingMapperImpl) ToEntity(model *models.BookingModel) (*booking.Booking, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := booking.ReconstructBooking(
		model.ID,
		model.SID,
		model.MenteeID,
		model.MentorID,
		model.Topic,
		model.StartsAt,
		model.EndsAt,
		booking.Status(model.Status),
		model.Note,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct booking entity: %w", err)
	}
	return entity, nil
}

func (m *BookingMapperImpl) ToModel(entity *booking.Booking) (*models.BookingModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.BookingModel{
		ID:        entity.DBID(),
		SID:       entity.SID(),
		MenteeID:  entity.MenteeID(),
		MentorID:  entity.MentorID(),
		Topic:     entity.Topic(),
		StartsAt:  entity.StartsAt(),
		EndsAt:    entity.EndsAt(),
		Status:    string(entity.Status()),
		Note:      entity.Note(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *BookingMapperImpl) ToEntities(bookingModels []*models.BookingModel) ([]*booking.Booking, error) {
	return mapper.MapSlicePtrWithID(bookingModels, m.ToEntity, func(mm *models.BookingModel) uint { return mm.ID })
}
