package catalog

import "context"

// Repository is the persistence port for the domain catalog.
type Repository interface {
	Create(ctx context.Context, d *Domain) error
	GetBySlug(ctx context.Context, slug string) (*Domain, error)
	// List returns the catalog ordered by display name. Reflects current
	// state at call time.
	List(ctx context.Context) ([]*Domain, error)
	Update(ctx context.Context, d *Domain) error
}
