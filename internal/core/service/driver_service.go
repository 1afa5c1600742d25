package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ridehail/admin-api/internal/core/domain"
	"github.com/ridehail/admin-api/internal/core/ports"
)

// DriverService implements admin CRUD over driver profiles.
type DriverService struct {
	repo  ports.DriverRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewDriverService(repo ports.DriverRepository, audit ports.AuditRecorder, log zerolog.Logger) *DriverService {
	return &DriverService{repo: repo, audit: audit, log: log}
}

func (s *DriverService) List(ctx context.Context) ([]domain.Driver, error) {
	return s.repo.List(ctx)
}

func (s *DriverService) Get(ctx context.Context, id string) (*domain.Driver, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DriverService) Create(ctx context.Context, actorID string, in ports.DriverInput) (*domain.Driver, error) {
	driver := &domain.Driver{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Phone: in.Phone,
		Plate: in.Plate,
	}
	if err := s.repo.Create(ctx, driver); err != nil {
		return nil, err
	}

	s.record(actorID, domain.AuditActionCreate, driver.ID)
	s.log.Info().Str("driver_id", driver.ID).Msg("driver created")
	return driver, nil
}

func (s *DriverService) Update(ctx context.Context, actorID, id string, in ports.DriverInput) (*domain.Driver, error) {
	driver, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	driver.Name = in.Name
	driver.Phone = in.Phone
	driver.Plate = in.Plate
	if err := s.repo.Update(ctx, driver); err != nil {
		return nil, err
	}

	s.record(actorID, domain.AuditActionUpdate, driver.ID)
	return driver, nil
}

func (s *DriverService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.record(actorID, domain.AuditActionDelete, id)
	return nil
}

func (s *DriverService) record(actorID, action, driverID string) {
	s.audit.Record(domain.AuditEvent{
		ActorID:  actorID,
		Action:   action,
		Entity:   "driver",
		EntityID: driverID,
		At:       time.Now().UTC(),
	})
}
