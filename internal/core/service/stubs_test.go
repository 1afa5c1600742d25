package service

import (
	"context"
	"sync"

	"github.com/ridehail/admin-api/internal/cache"
	"github.com/ridehail/admin-api/internal/core/domain"
)

// --- shared in-memory stubs for service tests ---

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, exists := r.users[u.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *u
	if clone.ID == "" {
		clone.ID = "user-" + u.Email
	}
	r.users[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubTripRepo struct {
	trips map[string]*domain.Trip
}

func newStubTripRepo() *stubTripRepo {
	return &stubTripRepo{trips: make(map[string]*domain.Trip)}
}

func (r *stubTripRepo) List(_ context.Context) ([]domain.Trip, error) {
	out := make([]domain.Trip, 0, len(r.trips))
	for _, t := range r.trips {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTripRepo) FindByID(_ context.Context, id string) (*domain.Trip, error) {
	t, ok := r.trips[id]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTripRepo) Create(_ context.Context, t *domain.Trip) error {
	clone := *t
	r.trips[t.ID] = &clone
	return nil
}

func (r *stubTripRepo) Update(_ context.Context, t *domain.Trip) error {
	if _, ok := r.trips[t.ID]; !ok {
		return domain.ErrTripNotFound
	}
	clone := *t
	r.trips[t.ID] = &clone
	return nil
}

func (r *stubTripRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.trips[id]; !ok {
		return domain.ErrTripNotFound
	}
	delete(r.trips, id)
	return nil
}

func (r *stubTripRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.trips)), nil
}

type stubRiderRepo struct {
	riders map[string]*domain.Rider
}

func newStubRiderRepo(riders ...domain.Rider) *stubRiderRepo {
	r := &stubRiderRepo{riders: make(map[string]*domain.Rider)}
	for i := range riders {
		r.riders[riders[i].ID] = &riders[i]
	}
	return r
}

func (r *stubRiderRepo) List(_ context.Context) ([]domain.Rider, error) {
	out := make([]domain.Rider, 0, len(r.riders))
	for _, v := range r.riders {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubRiderRepo) FindByID(_ context.Context, id string) (*domain.Rider, error) {
	v, ok := r.riders[id]
	if !ok {
		return nil, domain.ErrRiderNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *stubRiderRepo) Create(_ context.Context, v *domain.Rider) error {
	clone := *v
	r.riders[v.ID] = &clone
	return nil
}

func (r *stubRiderRepo) Update(_ context.Context, v *domain.Rider) error {
	if _, ok := r.riders[v.ID]; !ok {
		return domain.ErrRiderNotFound
	}
	clone := *v
	r.riders[v.ID] = &clone
	return nil
}

func (r *stubRiderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.riders[id]; !ok {
		return domain.ErrRiderNotFound
	}
	delete(r.riders, id)
	return nil
}

func (r *stubRiderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.riders)), nil
}

type stubDriverRepo struct {
	drivers map[string]*domain.Driver
}

func newStubDriverRepo(drivers ...domain.Driver) *stubDriverRepo {
	r := &stubDriverRepo{drivers: make(map[string]*domain.Driver)}
	for i := range drivers {
		r.drivers[drivers[i].ID] = &drivers[i]
	}
	return r
}

func (r *stubDriverRepo) List(_ context.Context) ([]domain.Driver, error) {
	out := make([]domain.Driver, 0, len(r.drivers))
	for _, v := range r.drivers {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubDriverRepo) FindByID(_ context.Context, id string) (*domain.Driver, error) {
	v, ok := r.drivers[id]
	if !ok {
		return nil, domain.ErrDriverNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *stubDriverRepo) Create(_ context.Context, v *domain.Driver) error {
	clone := *v
	r.drivers[v.ID] = &clone
	return nil
}

func (r *stubDriverRepo) Update(_ context.Context, v *domain.Driver) error {
	if _, ok := r.drivers[v.ID]; !ok {
		return domain.ErrDriverNotFound
	}
	clone := *v
	r.drivers[v.ID] = &clone
	return nil
}

func (r *stubDriverRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.drivers[id]; !ok {
		return domain.ErrDriverNotFound
	}
	delete(r.drivers, id)
	return nil
}

func (r *stubDriverRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.drivers)), nil
}

type stubAuditRepo struct {
	events []domain.AuditEvent
}

func (r *stubAuditRepo) Insert(_ context.Context, ev *domain.AuditEvent) error {
	r.events = append(r.events, *ev)
	return nil
}

func (r *stubAuditRepo) ListRecent(_ context.Context, limit int) ([]domain.AuditEvent, error) {
	if limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]domain.AuditEvent, limit)
	for i := 0; i < limit; i++ {
		out[i] = r.events[len(r.events)-1-i]
	}
	return out, nil
}

type stubRecorder struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *stubRecorder) Record(ev domain.AuditEvent) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

type stubLimiter struct {
	blocked  bool
	failures int
	resets   int
}

func (l *stubLimiter) TooManyFailures(_ context.Context, _ string) (bool, error) {
	return l.blocked, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

// countingCache wraps the real cache so tests can observe invalidations.
type countingCache struct {
	inner         *cache.ActiveTrips
	invalidations int
}

func (c *countingCache) GetOrFetch(ctx context.Context, fetch cache.FetchFunc) ([]domain.Trip, bool, error) {
	return c.inner.GetOrFetch(ctx, fetch)
}

func (c *countingCache) Invalidate() {
	c.invalidations++
	c.inner.Invalidate()
}
