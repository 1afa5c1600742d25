package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ridehail/admin-api/internal/core/domain"
	"github.com/ridehail/admin-api/internal/core/ports"
)

func newAdminFixture() (*AdminService, *stubUserRepo, *stubTripRepo) {
	users := newStubUserRepo()
	trips := newStubTripRepo()
	riders := newStubRiderRepo(domain.Rider{ID: "rider-1"})
	drivers := newStubDriverRepo(domain.Driver{ID: "driver-1"})
	svc := NewAdminService(users, trips, riders, drivers, &stubAuditRepo{}, &stubRecorder{}, zerolog.Nop())
	return svc, users, trips
}

func TestAdminService_CreateUser_RequiresRoles(t *testing.T) {
	svc, _, _ := newAdminFixture()

	_, err := svc.CreateUser(context.Background(), "admin-1", ports.CreateUserInput{
		Email: "new@example.com", FullName: "New", Password: "longenough",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole for empty roles, got %v", err)
	}

	_, err = svc.CreateUser(context.Background(), "admin-1", ports.CreateUserInput{
		Email: "new@example.com", FullName: "New", Password: "longenough", Roles: []string{"Root"},
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole for unknown role, got %v", err)
	}
}

func TestAdminService_CreateUser_Duplicate(t *testing.T) {
	svc, _, _ := newAdminFixture()

	in := ports.CreateUserInput{
		Email: "dup@example.com", FullName: "Dup", Password: "longenough",
		Roles: []string{domain.RoleAdmin},
	}
	if _, err := svc.CreateUser(context.Background(), "admin-1", in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), "admin-1", in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAdminService_DeleteUser_NotFound(t *testing.T) {
	svc, _, _ := newAdminFixture()

	if err := svc.DeleteUser(context.Background(), "admin-1", "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminService_Stats(t *testing.T) {
	svc, users, trips := newAdminFixture()

	_, _ = users.Create(context.Background(), &domain.User{Email: "a@example.com"})
	_ = trips.Create(context.Background(), &domain.Trip{ID: "t1", Fare: 10})
	_ = trips.Create(context.Background(), &domain.Trip{ID: "t2", Fare: 2.5})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Trips != 2 || stats.Riders != 1 || stats.Drivers != 1 || stats.Users != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.TotalFare != 12.5 {
		t.Fatalf("unexpected total fare: %v", stats.TotalFare)
	}
}
