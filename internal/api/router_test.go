package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ridehail/admin-api/internal/auth"
	"github.com/ridehail/admin-api/internal/core/domain"
	"github.com/ridehail/admin-api/internal/core/ports"
)

type stubAdminService struct{}

func (stubAdminService) ListUsers(context.Context) ([]domain.User, error) {
	return []domain.User{{ID: "u-1", Email: "root@example.com"}}, nil
}

func (stubAdminService) CreateUser(context.Context, string, ports.CreateUserInput) (*domain.User, error) {
	return &domain.User{ID: "u-2"}, nil
}

func (stubAdminService) DeleteUser(context.Context, string, string) error { return nil }

func (stubAdminService) Stats(context.Context) (*ports.StatsResult, error) {
	return &ports.StatsResult{}, nil
}

func (stubAdminService) ListAudit(context.Context, int) ([]domain.AuditEvent, error) {
	return nil, nil
}

func (stubAdminService) ListTrips(context.Context) ([]domain.Trip, error) {
	return []domain.Trip{{ID: "t-1", RiderID: "r-1", DriverID: "d-1"}}, nil
}

func (stubAdminService) ListRiders(context.Context) ([]domain.Rider, error) {
	return []domain.Rider{{ID: "r-1", Name: "Ann"}}, nil
}

func (stubAdminService) ListDrivers(context.Context) ([]domain.Driver, error) {
	return []domain.Driver{{ID: "d-1", Name: "Bob"}}, nil
}

func issueToken(t *testing.T, tokens *auth.TokenService, roles ...string) string {
	t.Helper()
	signed, err := tokens.Issue(auth.Identity{
		UserID: "u-1", Email: "root@example.com", FullName: "Root", Roles: roles,
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func TestRouter_AdminReadOnlyViews(t *testing.T) {
	tokens := auth.NewTokenService("secret", "ridehail-admin", "ridehail-portal", time.Hour)
	e := NewRouter(Services{Admin: stubAdminService{}}, tokens, nil, nil, zerolog.Nop())
	adminToken := issueToken(t, tokens, domain.RoleAdmin)

	paths := []string{
		"/api/admin/users",
		"/api/admin/stats",
		"/api/admin/trips",
		"/api/admin/riders",
		"/api/admin/drivers",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d (%s)", path, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_AdminViewsForbiddenForRider(t *testing.T) {
	tokens := auth.NewTokenService("secret", "ridehail-admin", "ridehail-portal", time.Hour)
	e := NewRouter(Services{Admin: stubAdminService{}}, tokens, nil, nil, zerolog.Nop())
	riderToken := issueToken(t, tokens, domain.RoleRider)

	for _, path := range []string{"/api/admin/trips", "/api/admin/riders", "/api/admin/drivers"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+riderToken)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("GET %s: expected 403, got %d", path, rec.Code)
		}
	}
}
