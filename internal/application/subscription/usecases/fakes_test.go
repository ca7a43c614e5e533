package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentorhub/internal/domain/catalog"
	"mentorhub/internal/domain/subscription"
)

// fakeRecordRepo is an in-memory subscription.Repository. It enforces the
// one-open-record-per-pair rule the same way the database constraint does.
type fakeRecordRepo struct {
	records     []*subscription.Record
	nextID      uint
	createErr   error
	updateErr   error
	findErr     error
	findErrOnce error
	updates     int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{nextID: 1}
}

func pairOpen(r *subscription.Record) bool {
	return r.Status() == subscription.StatusPending || r.Status() == subscription.StatusActive
}

func (f *fakeRecordRepo) Create(ctx context.Context, r *subscription.Record) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.records {
		if existing.UserEmail() == r.UserEmail() && existing.DomainSlug() == r.DomainSlug() && pairOpen(existing) {
			return errors.New("UNIQUE constraint failed: subscription_records.active_pair_key")
		}
	}
	if err := r.SetID(f.nextID); err != nil {
		return err
	}
	f.nextID++
	f.records = append(f.records, r)
	return nil
}

func (f *fakeRecordRepo) Update(ctx context.Context, r *subscription.Record) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	for i, existing := range f.records {
		if existing.SID() == r.SID() {
			f.records[i] = r
			return nil
		}
	}
	return subscription.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetBySID(ctx context.Context, sid string) (*subscription.Record, error) {
	for _, r := range f.records {
		if r.SID() == sid {
			return r, nil
		}
	}
	return nil, subscription.ErrRecordNotFound
}

func (f *fakeRecordRepo) FindByUserAndDomain(ctx context.Context, userEmail, domainSlug string) (*subscription.Record, error) {
	if f.findErrOnce != nil {
		err := f.findErrOnce
		f.findErrOnce = nil
		return nil, err
	}
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := len(f.records) - 1; i >= 0; i-- {
		r := f.records[i]
		if r.UserEmail() == userEmail && r.DomainSlug() == domainSlug {
			return r, nil
		}
	}
	return nil, subscription.ErrRecordNotFound
}

func (f *fakeRecordRepo) ListActiveForUser(ctx context.Context, userEmail string, now time.Time) ([]*subscription.Record, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*subscription.Record
	for _, r := range f.records {
		if r.UserEmail() == userEmail && r.IsActiveAt(now) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListByUser(ctx context.Context, userEmail string) ([]*subscription.Record, error) {
	var out []*subscription.Record
	for _, r := range f.records {
		if r.UserEmail() == userEmail {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListActivationPending(ctx context.Context) ([]*subscription.Record, error) {
	var out []*subscription.Record
	for _, r := range f.records {
		if r.ActivationPending() {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeCatalogRepo is an in-memory catalog.Repository.
type fakeCatalogRepo struct {
	domains map[string]*catalog.Domain
}

func newFakeCatalogRepo(slugs ...string) *fakeCatalogRepo {
	f := &fakeCatalogRepo{domains: make(map[string]*catalog.Domain)}
	for i, slug := range slugs {
		d, err := catalog.NewDomain(slug, fmt.Sprintf("Domain %d", i+1))
		if err != nil {
			panic(err)
		}
		d.SetID(uint(i + 1))
		f.domains[slug] = d
	}
	return f
}

func (f *fakeCatalogRepo) Create(ctx context.Context, d *catalog.Domain) error {
	if _, ok := f.domains[d.Slug()]; ok {
		return errors.New("UNIQUE constraint failed: content_domains.slug")
	}
	d.SetID(uint(len(f.domains) + 1))
	f.domains[d.Slug()] = d
	return nil
}

func (f *fakeCatalogRepo) GetBySlug(ctx context.Context, slug string) (*catalog.Domain, error) {
	d, ok := f.domains[slug]
	if !ok {
		return nil, catalog.ErrDomainNotFound
	}
	return d, nil
}

func (f *fakeCatalogRepo) List(ctx context.Context) ([]*catalog.Domain, error) {
	out := make([]*catalog.Domain, 0, len(f.domains))
	for _, d := range f.domains {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeCatalogRepo) Update(ctx context.Context, d *catalog.Domain) error {
	f.domains[d.Slug()] = d
	return nil
}
