package usecases

import (
	"context"
	"fmt"

	"mentorhub/internal/domain/catalog"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

// CreateDomainCommand adds a content domain to the catalog. Admin only; the
// role check happens at the interface layer.
type CreateDomainCommand struct {
	Slug        string
	DisplayName string
	Description string
}

type CreateDomainUseCase struct {
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewCreateDomainUseCase(catalogRepo catalog.Repository, log logger.Interface) *CreateDomainUseCase {
	return &CreateDomainUseCase{catalogRepo: catalogRepo, logger: log}
}

func (uc *CreateDomainUseCase) Execute(ctx context.Context, cmd CreateDomainCommand) (*catalog.Domain, error) {
	domain, err := catalog.NewDomain(cmd.Slug, cmd.DisplayName)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid content domain", err.Error())
	}
	if cmd.Description != "" {
		domain.UpdateDescription(cmd.Description)
	}

	if err := uc.catalogRepo.Create(ctx, domain); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("content domain already exists", cmd.Slug)
		}
		return nil, fmt.Errorf("failed to create content domain: %w", err)
	}

	uc.logger.Infow("content domain created", "slug", domain.Slug(), "sid", domain.SID())
	return domain, nil
}
