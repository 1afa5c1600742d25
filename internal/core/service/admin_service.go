package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ridehail/admin-api/internal/core/domain"
	"github.com/ridehail/admin-api/internal/core/ports"
)

const defaultAuditLimit = 100

// AdminService implements user management and platform reporting.
type AdminService struct {
	users   ports.UserRepository
	trips   ports.TripRepository
	riders  ports.RiderRepository
	drivers ports.DriverRepository
	events  ports.AuditRepository
	audit   ports.AuditRecorder
	log     zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	trips ports.TripRepository,
	riders ports.RiderRepository,
	drivers ports.DriverRepository,
	events ports.AuditRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:   users,
		trips:   trips,
		riders:  riders,
		drivers: drivers,
		events:  events,
		audit:   audit,
		log:     log,
	}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) CreateUser(ctx context.Context, actorID string, in ports.CreateUserInput) (*domain.User, error) {
	if len(in.Roles) == 0 {
		return nil, domain.ErrInvalidRole
	}
	for _, r := range in.Roles {
		if !domain.ValidRole(r) {
			return nil, domain.ErrInvalidRole
		}
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: string(hash),
		Roles:        in.Roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		ActorID:  actorID,
		Action:   domain.AuditActionCreate,
		Entity:   "user",
		EntityID: user.ID,
		At:       time.Now().UTC(),
	})
	s.log.Info().Str("user_id", user.ID).Strs("roles", user.Roles).Msg("user created by admin")
	return user, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, actorID, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		ActorID:  actorID,
		Action:   domain.AuditActionDelete,
		Entity:   "user",
		EntityID: id,
		At:       time.Now().UTC(),
	})
	return nil
}

// Stats aggregates entity counts and the total fare across all trips.
func (s *AdminService) Stats(ctx context.Context) (*ports.StatsResult, error) {
	tripCount, err := s.trips.Count(ctx)
	if err != nil {
		return nil, err
	}
	riderCount, err := s.riders.Count(ctx)
	if err != nil {
		return nil, err
	}
	driverCount, err := s.drivers.Count(ctx)
	if err != nil {
		return nil, err
	}
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}
	var totalFare float64
	for _, t := range trips {
		totalFare += t.Fare
	}

	return &ports.StatsResult{
		Trips:     tripCount,
		Riders:    riderCount,
		Drivers:   driverCount,
		Users:     userCount,
		TotalFare: totalFare,
	}, nil
}

func (s *AdminService) ListAudit(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 || limit > defaultAuditLimit {
		limit = defaultAuditLimit
	}
	return s.events.ListRecent(ctx, limit)
}

func (s *AdminService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	return s.trips.List(ctx)
}

func (s *AdminService) ListRiders(ctx context.Context) ([]domain.Rider, error) {
	return s.riders.List(ctx)
}

func (s *AdminService) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	return s.drivers.List(ctx)
}
