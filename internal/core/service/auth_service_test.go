package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ridehail/admin-api/internal/auth"
	"github.com/ridehail/admin-api/internal/core/domain"
	"github.com/ridehail/admin-api/internal/core/ports"
	"github.com/rs/zerolog"
)

func newAuthService(repo *stubUserRepo, limiter *stubLimiter) *AuthService {
	tokens := auth.NewTokenService("secret", "ridehail-admin", "ridehail-portal", time.Hour)
	return NewAuthService(repo, tokens, limiter, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubLimiter{})

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "alice@example.com",
		Password: "longenough",
		FullName: "Alice Doe",
		Role:     domain.RoleRider,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "longenough" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(user.Roles) != 1 || user.Roles[0] != domain.RoleRider {
		t.Fatalf("unexpected roles: %v", user.Roles)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubLimiter{})

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "bob@example.com", Password: "longenough", FullName: "Bob", Role: "Superuser",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubLimiter{})

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "bob@example.com", Password: "short", FullName: "Bob", Role: domain.RoleDriver,
	})
	if !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubLimiter{})

	in := ports.RegisterInput{Email: "bob@example.com", Password: "longenough", FullName: "Bob", Role: domain.RoleRider}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := newAuthService(repo, limiter)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "carol@example.com", Password: "s3cretpass", FullName: "Carol", Role: domain.RoleRider,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected limiter reset on success, got %d", limiter.resets)
	}

	// The issued token must round-trip through validation with role intact.
	claims, err := auth.NewTokenService("secret", "ridehail-admin", "ridehail-portal", time.Hour).Validate(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if !claims.HasRole(domain.RoleRider) {
		t.Fatalf("expected Rider role in claims, got %v", claims.Roles)
	}
	if claims.Email != "carol@example.com" {
		t.Fatalf("unexpected email claim: %s", claims.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := newAuthService(repo, limiter)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Email: "dave@example.com", Password: "goodpass1", FullName: "Dave", Role: domain.RoleRider,
	})

	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected one recorded failure, got %d", limiter.failures)
	}
}

func TestAuthService_Login_UnknownEmailUniformError(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubLimiter{})

	// Unknown account must be indistinguishable from a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubLimiter{blocked: true})

	if _, _, err := svc.Login(context.Background(), "eve@example.com", "whatever1"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}
