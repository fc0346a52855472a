package ports

import (
	"context"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

// AuthService issues and revokes bearer tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the raw token until its natural expiry.
	Logout(ctx context.Context, token string) error
}

// TokenDenylist records revoked tokens until they expire on their own.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttlSeconds int64) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
