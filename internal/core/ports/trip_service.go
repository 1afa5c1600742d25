package ports

import (
	"context"

	"github.com/ridehail/admin-api/internal/core/domain"
)

// CreateTripInput carries the client-supplied part of a new trip. The server
// assigns id, driver, fare, and request time.
type CreateTripInput struct {
	RiderID string
	Start   domain.Location
	End     domain.Location
}

// UpdateTripInput re-routes an existing trip; the fare is recomputed.
type UpdateTripInput struct {
	Start domain.Location
	End   domain.Location
}

// TripService defines use-case operations for trips. Mutations take the
// acting user's id for the audit trail and invalidate the listing cache
// after the write commits.
type TripService interface {
	// ListActive returns the trip listing; the bool reports whether it was
	// served from the cache.
	ListActive(ctx context.Context) ([]domain.Trip, bool, error)
	Get(ctx context.Context, id string) (*domain.Trip, error)
	Create(ctx context.Context, actorID string, in CreateTripInput) (*domain.Trip, error)
	Update(ctx context.Context, actorID, id string, in UpdateTripInput) (*domain.Trip, error)
	Delete(ctx context.Context, actorID, id string) error
}
