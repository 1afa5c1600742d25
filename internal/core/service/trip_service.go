package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ridehail/admin-api/internal/cache"
	"github.com/ridehail/admin-api/internal/core/domain"
	"github.com/ridehail/admin-api/internal/core/ports"
)

// TripCache is the listing cache contract the service depends on.
type TripCache interface {
	GetOrFetch(ctx context.Context, fetch cache.FetchFunc) ([]domain.Trip, bool, error)
	Invalidate()
}

// TripService implements trip CRUD with a cached listing. Every committed
// mutation invalidates the cache before returning, so a subsequent listing
// miss observes the write.
type TripService struct {
	repo    ports.TripRepository
	riders  ports.RiderRepository
	drivers ports.DriverRepository
	cache   TripCache
	audit   ports.AuditRecorder
	log     zerolog.Logger

	fareBase    float64
	farePerUnit float64
}

func NewTripService(
	repo ports.TripRepository,
	riders ports.RiderRepository,
	drivers ports.DriverRepository,
	tripCache TripCache,
	audit ports.AuditRecorder,
	fareBase, farePerUnit float64,
	log zerolog.Logger,
) *TripService {
	return &TripService{
		repo:        repo,
		riders:      riders,
		drivers:     drivers,
		cache:       tripCache,
		audit:       audit,
		log:         log,
		fareBase:    fareBase,
		farePerUnit: farePerUnit,
	}
}

func (s *TripService) ListActive(ctx context.Context) ([]domain.Trip, bool, error) {
	return s.cache.GetOrFetch(ctx, s.repo.List)
}

func (s *TripService) Get(ctx context.Context, id string) (*domain.Trip, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TripService) Create(ctx context.Context, actorID string, in ports.CreateTripInput) (*domain.Trip, error) {
	if _, err := s.riders.FindByID(ctx, in.RiderID); err != nil {
		return nil, err
	}

	driverID, err := s.assignDriver(ctx)
	if err != nil {
		return nil, err
	}

	trip := &domain.Trip{
		ID:          uuid.NewString(),
		RiderID:     in.RiderID,
		DriverID:    driverID,
		Start:       in.Start,
		End:         in.End,
		Fare:        domain.Fare(in.Start, in.End, s.fareBase, s.farePerUnit),
		RequestTime: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, err
	}

	// Invalidation must follow the commit; invalidating first would let a
	// concurrent read repopulate the slot with pre-write data.
	s.cache.Invalidate()
	s.record(actorID, domain.AuditActionCreate, trip.ID)

	s.log.Info().Str("trip_id", trip.ID).Str("driver_id", driverID).Float64("fare", trip.Fare).Msg("trip created")
	return trip, nil
}

func (s *TripService) Update(ctx context.Context, actorID, id string, in ports.UpdateTripInput) (*domain.Trip, error) {
	trip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	trip.Start = in.Start
	trip.End = in.End
	trip.Fare = domain.Fare(in.Start, in.End, s.fareBase, s.farePerUnit)

	if err := s.repo.Update(ctx, trip); err != nil {
		return nil, err
	}

	s.cache.Invalidate()
	s.record(actorID, domain.AuditActionUpdate, trip.ID)

	s.log.Info().Str("trip_id", trip.ID).Float64("fare", trip.Fare).Msg("trip rerouted")
	return trip, nil
}

func (s *TripService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate()
	s.record(actorID, domain.AuditActionDelete, id)

	s.log.Info().Str("trip_id", id).Msg("trip deleted")
	return nil
}

// assignDriver picks a random registered driver for a new trip.
func (s *TripService) assignDriver(ctx context.Context) (string, error) {
	drivers, err := s.drivers.List(ctx)
	if err != nil {
		return "", err
	}
	if len(drivers) == 0 {
		return "", domain.ErrNoDriversAvailable
	}
	return drivers[rand.Intn(len(drivers))].ID, nil
}

func (s *TripService) record(actorID, action, tripID string) {
	s.audit.Record(domain.AuditEvent{
		ActorID:  actorID,
		Action:   action,
		Entity:   "trip",
		EntityID: tripID,
		At:       time.Now().UTC(),
	})
}
