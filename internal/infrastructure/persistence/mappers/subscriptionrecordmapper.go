package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/infrastructure/persistence/models"
	"mentorhub/internal/shared/mapper"
)

type SubscriptionRecordMapper interface {
	ToEntity(model *models.SubscriptionRecordModel) (*subscription.Record, error)
	ToModel(entity *subscription.Record) (*models.SubscriptionRecordModel, error)
	ToEntities(models []*models.SubscriptionRecordModel) ([]*subscription.Record, error)
}

type SubscriptionRecordMapperImpl struct{}

func NewSubscriptionRecordMapper() SubscriptionRecordMapper {
	return &SubscriptionRecordMapperImpl{}
}

func (m *SubscriptionRecordMapperImpl) ToEntity(model *models.SubscriptionRecordModel) (*subscription.Record, error) {
	if model == nil {
		return nil, nil
	}

	var metadata map[string]interface{}
	if model.Metadata != nil {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	entity, err := subscription.ReconstructRecord(
		model.ID,
		model.SID,
		model.UserID,
		model.UserEmail,
		model.DomainSlug,
		subscription.Status(model.Status),
		model.ExpiresAt,
		model.ActivationPending,
		metadata,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription record: %w", err)
	}
	return entity, nil
}

func (m *SubscriptionRecordMapperImpl) ToModel(entity *subscription.Record) (*models.SubscriptionRecordModel, error) {
	if entity == nil {
		return nil, nil
	}

	var metadataJSON datatypes.JSON
	if metadata := entity.Metadata(); len(metadata) > 0 {
		data, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadataJSON = data
	}

	// The unique pair key exists only while the record is non-terminal,
	// backing the one-open-record-per-pair constraint.
	var pairKey *string
	if entity.Status() == subscription.StatusPending || entity.Status() == subscription.StatusActive {
		k := entity.UserEmail() + "|" + entity.DomainSlug()
		pairKey = &k
	}

	return &models.SubscriptionRecordModel{
		ID:                entity.DBID(),
		SID:               entity.SID(),
		UserID:            entity.UserID(),
		UserEmail:         entity.UserEmail(),
		DomainSlug:        entity.DomainSlug(),
		Status:            string(entity.Status()),
		ExpiresAt:         entity.ExpiresAt(),
		ActivationPending: entity.ActivationPending(),
		ActivePairKey:     pairKey,
		Metadata:          metadataJSON,
		Version:           entity.Version(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *SubscriptionRecordMapperImpl) ToEntities(recordModels []*models.SubscriptionRecordModel) ([]*subscription.Record, error) {
	return mapper.MapSlicePtrWithID(recordModels, m.ToEntity, func(mm *models.SubscriptionRecordModel) uint { return mm.ID })
}
