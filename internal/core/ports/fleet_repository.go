package ports

import (
	"context"

	"github.com/ridehail/admin-api/internal/core/domain"
)

// RiderRepository defines persistence operations for rider profiles.
type RiderRepository interface {
	List(ctx context.Context) ([]domain.Rider, error)
	FindByID(ctx context.Context, id string) (*domain.Rider, error)
	Create(ctx context.Context, r *domain.Rider) error
	Update(ctx context.Context, r *domain.Rider) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// DriverRepository defines persistence operations for driver profiles.
type DriverRepository interface {
	List(ctx context.Context) ([]domain.Driver, error)
	FindByID(ctx context.Context, id string) (*domain.Driver, error)
	Create(ctx context.Context, d *domain.Driver) error
	Update(ctx context.Context, d *domain.Driver) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
