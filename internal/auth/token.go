// Package auth issues and validates the bearer tokens that identify API
// callers. Tokens are stateless HS256 JWTs; expiry is the only lifecycle
// bound (there is no revocation list).
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single validation outcome exposed to callers.
// The underlying cause is wrapped for logging but must never reach a client.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the caller identity encoded into a token at issue time.
type Identity struct {
	UserID   string
	Email    string
	FullName string
	Roles    []string
}

// Claims is the verified token payload. It lives for one request and is
// reconstructed from the token on every request, never persisted.
type Claims struct {
	Email    string   `json:"email"`
	FullName string   `json:"name"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether the claims carry the given role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenService signs and verifies tokens with a process-wide secret loaded
// once at startup.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokenService(secret, issuer, audience string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue signs a token for the given identity with issued-at = now and
// expiry = now + TTL.
func (s *TokenService) Issue(id Identity) (string, error) {
	now := s.now().UTC()
	claims := &Claims{
		Email:    id.Email,
		FullName: id.FullName,
		Roles:    id.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a token: structure, HS256 signature, issuer,
// audience, and time window, with zero clock-skew tolerance. Every failure
// collapses into ErrInvalidToken; the cause is wrapped for logging only.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
