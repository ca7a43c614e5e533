package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"mentorhub/internal/domain/catalog"
	"mentorhub/internal/domain/subscription"
)

// fakeRecordRepo is an in-memory subscription.Repository enforcing the
// one-open-record-per-pair rule like the database constraint does.
type fakeRecordRepo struct {
	mu        sync.Mutex
	records   []*subscription.Record
	nextID    uint
	updateErr error
	updates   int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{nextID: 1}
}

func (f *fakeRecordRepo) Create(ctx context.Context, r *subscription.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.records {
		open := existing.Status() == subscription.StatusPending || existing.Status() == subscription.StatusActive
		if existing.UserEmail() == r.UserEmail() && existing.DomainSlug() == r.DomainSlug() && open {
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
	f.mu.Lock()
	defer f.mu.Unlock()
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
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.SID() == sid {
			return r, nil
		}
	}
	return nil, subscription.ErrRecordNotFound
}

func (f *fakeRecordRepo) FindByUserAndDomain(ctx context.Context, userEmail, domainSlug string) (*subscription.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.records) - 1; i >= 0; i-- {
		r := f.records[i]
		if r.UserEmail() == userEmail && r.DomainSlug() == domainSlug {
			return r, nil
		}
	}
	return nil, subscription.ErrRecordNotFound
}

func (f *fakeRecordRepo) ListActiveForUser(ctx context.Context, userEmail string, now time.Time) ([]*subscription.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*subscription.Record
	for _, r := range f.records {
		if r.UserEmail() == userEmail && r.IsActiveAt(now) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListByUser(ctx context.Context, userEmail string) ([]*subscription.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*subscription.Record
	for _, r := range f.records {
		if r.UserEmail() == userEmail {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListActivationPending(ctx context.Context) ([]*subscription.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*subscription.Record
	for _, r := range f.records {
		if r.ActivationPending() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) setUpdateErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateErr = err
}

// fakeCatalogRepo is an in-memory catalog.Repository.
type fakeCatalogRepo struct {
	domains map[string]*catalog.Domain
}

func newFakeCatalogRepo(slugs ...string) *fakeCatalogRepo {
	f := &fakeCatalogRepo{domains: make(map[string]*catalog.Domain)}
	for i, slug := range slugs {
		d, err := catalog.NewDomain(slug, "Domain "+slug)
		if err != nil {
			panic(err)
		}
		d.SetID(uint(i + 1))
		f.domains[slug] = d
	}
	return f
}

func (f *fakeCatalogRepo) Create(ctx context.Context, d *catalog.Domain) error {
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

// fakeSessionIndex implements SessionIndex with switchable behavior.
type fakeSessionIndex struct {
	mu         sync.Mutex
	denyNext   bool
	acquireErr error
	acquires   int
	releases   int
}

func (f *fakeSessionIndex) Acquire(ctx context.Context, userEmail, domainSlug string, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.acquireErr != nil {
		return false, f.acquireErr
	}
	f.acquires++
	if f.denyNext {
		return false, nil
	}
	return true, nil
}

func (f *fakeSessionIndex) Release(ctx context.Context, userEmail, domainSlug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.releases++
	return nil
}

func (f *fakeSessionIndex) releaseCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.releases
}

// fakeNotifier records activation-failure notifications.
type fakeNotifier struct {
	mu       sync.Mutex
	notified []string
}

func (f *fakeNotifier) NotifyActivationFailure(ctx context.Context, record *subscription.Record, cause error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, record.SID())
	return nil
}

func (f *fakeNotifier) notifiedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notified)
}
