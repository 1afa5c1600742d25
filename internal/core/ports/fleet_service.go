package ports

import (
	"context"

	"github.com/ridehail/admin-api/internal/core/domain"
)

// RiderInput carries the admin-editable rider fields.
type RiderInput struct {
	Name  string
	Phone string
}

// DriverInput carries the admin-editable driver fields.
type DriverInput struct {
	Name  string
	Phone string
	Plate string
}

// RiderService defines admin-only CRUD over rider profiles.
type RiderService interface {
	List(ctx context.Context) ([]domain.Rider, error)
	Get(ctx context.Context, id string) (*domain.Rider, error)
	Create(ctx context.Context, actorID string, in RiderInput) (*domain.Rider, error)
	Update(ctx context.Context, actorID, id string, in RiderInput) (*domain.Rider, error)
	Delete(ctx context.Context, actorID, id string) error
}

// DriverService defines admin-only CRUD over driver profiles.
type DriverService interface {
	List(ctx context.Context) ([]domain.Driver, error)
	Get(ctx context.Context, id string) (*domain.Driver, error)
	Create(ctx context.Context, actorID string, in DriverInput) (*domain.Driver, error)
	Update(ctx context.Context, actorID, id string, in DriverInput) (*domain.Driver, error)
	Delete(ctx context.Context, actorID, id string) error
}
