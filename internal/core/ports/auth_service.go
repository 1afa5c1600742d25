package ports

import (
	"context"

	"github.com/ridehail/admin-api/internal/core/domain"
)

// RegisterInput carries a self-service registration request.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token together
	// with the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
