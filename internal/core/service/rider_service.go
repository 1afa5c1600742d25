package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ridehail/admin-api/internal/core/domain"
	"github.com/ridehail/admin-api/internal/core/ports"
)

// RiderService implements admin CRUD over rider profiles.
type RiderService struct {
	repo  ports.RiderRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewRiderService(repo ports.RiderRepository, audit ports.AuditRecorder, log zerolog.Logger) *RiderService {
	return &RiderService{repo: repo, audit: audit, log: log}
}

func (s *RiderService) List(ctx context.Context) ([]domain.Rider, error) {
	return s.repo.List(ctx)
}

func (s *RiderService) Get(ctx context.Context, id string) (*domain.Rider, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RiderService) Create(ctx context.Context, actorID string, in ports.RiderInput) (*domain.Rider, error) {
	rider := &domain.Rider{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Phone: in.Phone,
	}
	if err := s.repo.Create(ctx, rider); err != nil {
		return nil, err
	}

	s.record(actorID, domain.AuditActionCreate, rider.ID)
	s.log.Info().Str("rider_id", rider.ID).Msg("rider created")
	return rider, nil
}

func (s *RiderService) Update(ctx context.Context, actorID, id string, in ports.RiderInput) (*domain.Rider, error) {
	rider, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rider.Name = in.Name
	rider.Phone = in.Phone
	if err := s.repo.Update(ctx, rider); err != nil {
		return nil, err
	}

	s.record(actorID, domain.AuditActionUpdate, rider.ID)
	return rider, nil
}

func (s *RiderService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.record(actorID, domain.AuditActionDelete, id)
	return nil
}

func (s *RiderService) record(actorID, action, riderID string) {
	s.audit.Record(domain.AuditEvent{
		ActorID:  actorID,
		Action:   action,
		Entity:   "rider",
		EntityID: riderID,
		At:       time.Now().UTC(),
	})
}
