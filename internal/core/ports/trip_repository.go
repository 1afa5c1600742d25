package ports

import (
	"context"

	"github.com/ridehail/admin-api/internal/core/domain"
)

// TripRepository defines persistence operations for trips.
type TripRepository interface {
	List(ctx context.Context) ([]domain.Trip, error)
	FindByID(ctx context.Context, id string) (*domain.Trip, error)
	Create(ctx context.Context, t *domain.Trip) error
	Update(ctx context.Context, t *domain.Trip) error
	// Delete removes a trip, returning domain.ErrTripNotFound when absent.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
