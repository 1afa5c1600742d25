package domain

import "errors"

var (
	ErrTripNotFound   = errors.New("trip not found")
	ErrRiderNotFound  = errors.New("rider not found")
	ErrDriverNotFound = errors.New("driver not found")
	ErrUserNotFound   = errors.New("user not found")

	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrWeakPassword       = errors.New("password too weak")
	ErrNoDriversAvailable = errors.New("no drivers available")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)
