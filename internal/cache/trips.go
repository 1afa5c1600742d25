// Package cache holds the in-process read cache for the active-trips
// listing. It is a single logical slot shared by every request; entries use
// absolute expiration, so repeated reads never extend an entry's life and
// staleness is bounded by the TTL.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/ridehail/admin-api/internal/core/domain"
)

// FetchFunc loads the trip listing from the source of truth on a cache miss.
type FetchFunc func(ctx context.Context) ([]domain.Trip, error)

// ActiveTrips is a cache-aside slot for the trip listing.
//
// Concurrent misses are thundering-herd tolerant: the lock is released while
// the fetch runs, so racing readers may each hit the store and the last
// completed fetch wins the slot. Coalescing was deliberately not added to
// match the behavior of the system this replaces.
type ActiveTrips struct {
	mu        sync.Mutex
	trips     []domain.Trip
	expiresAt time.Time
	valid     bool

	ttl time.Duration
	now func() time.Time
}

func NewActiveTrips(ttl time.Duration) *ActiveTrips {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ActiveTrips{ttl: ttl, now: time.Now}
}

// GetOrFetch returns the cached listing when a live entry exists, otherwise
// invokes fetch and stores its result with expiry = now + TTL. The returned
// bool reports a cache hit. A failed fetch leaves the slot untouched and
// propagates the error.
func (c *ActiveTrips) GetOrFetch(ctx context.Context, fetch FetchFunc) ([]domain.Trip, bool, error) {
	c.mu.Lock()
	if c.valid && c.now().Before(c.expiresAt) {
		trips := c.trips
		c.mu.Unlock()
		return trips, true, nil
	}
	c.mu.Unlock()

	trips, err := fetch(ctx)
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	c.trips = trips
	c.expiresAt = c.now().Add(c.ttl)
	c.valid = true
	c.mu.Unlock()

	return trips, false, nil
}

// Invalidate clears the slot. No-op when the slot is already empty. Callers
// must invoke it after the underlying write commits, never before.
func (c *ActiveTrips) Invalidate() {
	c.mu.Lock()
	c.trips = nil
	c.valid = false
	c.mu.Unlock()
}
