package ports

import (
	"context"

	"github.com/ridehail/admin-api/internal/core/domain"
)

// CreateUserInput carries an admin-created account.
type CreateUserInput struct {
	Email    string
	FullName string
	Password string
	Roles    []string
}

// StatsResult aggregates platform-wide counters for the admin dashboard.
type StatsResult struct {
	Trips     int64   `json:"trips"`
	Riders    int64   `json:"riders"`
	Drivers   int64   `json:"drivers"`
	Users     int64   `json:"users"`
	TotalFare float64 `json:"totalFare"`
}

// AdminService defines the admin-only user management and reporting
// operations.
type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, actorID string, in CreateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, actorID, id string) error
	Stats(ctx context.Context) (*StatsResult, error)
	ListAudit(ctx context.Context, limit int) ([]domain.AuditEvent, error)
	// Read-only aggregate views over the platform stores.
	ListTrips(ctx context.Context) ([]domain.Trip, error)
	ListRiders(ctx context.Context) ([]domain.Rider, error)
	ListDrivers(ctx context.Context) ([]domain.Driver, error)
}
