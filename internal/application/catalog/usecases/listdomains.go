package usecases

import (
	"context"

	"mentorhub/internal/domain/catalog"
	"mentorhub/internal/shared/logger"
)

// DomainView is one catalog entry decorated with the caller's access state.
type DomainView struct {
	Domain   *catalog.Domain
	Unlocked bool
}

// ContentGate answers whether a user currently holds access to a domain.
type ContentGate interface {
	UnlockedDomains(ctx context.Context, userEmail string) map[string]bool
}

// ListDomainsCommand lists the catalog. UserEmail may be empty for anonymous
// browsing, in which case every domain renders locked.
type ListDomainsCommand struct {
	UserEmail string
}

// ListDomainsUseCase returns the catalog with per-domain lock state. A
// catalog read failure degrades to an empty listing rather than an error
// page; the catalog is decoration, not a gate.
type ListDomainsUseCase struct {
	catalogRepo catalog.Repository
	gate        ContentGate
	logger      logger.Interface
}

func NewListDomainsUseCase(catalogRepo catalog.Repository, gate ContentGate, log logger.Interface) *ListDomainsUseCase {
	return &ListDomainsUseCase{catalogRepo: catalogRepo, gate: gate, logger: log}
}

func (uc *ListDomainsUseCase) Execute(ctx context.Context, cmd ListDomainsCommand) ([]DomainView, error) {
	domains, err := uc.catalogRepo.List(ctx)
	if err != nil {
		uc.logger.Warnw("catalog listing failed, returning empty catalog", "error", err)
		return []DomainView{}, nil
	}

	var unlocked map[string]bool
	if cmd.UserEmail != "" {
		unlocked = uc.gate.UnlockedDomains(ctx, cmd.UserEmail)
	}

	views := make([]DomainView, 0, len(domains))
	for _, d := range domains {
		views = append(views, DomainView{
			Domain:   d,
			Unlocked: unlocked[d.Slug()],
		})
	}
	return views, nil
}
