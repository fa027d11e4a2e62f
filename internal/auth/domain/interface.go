package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/PrincyBhingradiya/auth-posts-api/internal/auth/domain UserRepository

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error

	// UpdateLastLogin is a single atomic field write; concurrent logins are
	// last-write-wins without a lost-update window.
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	UpdateLastLogout(ctx context.Context, id string, at time.Time) error

	// BlacklistToken inserts idempotently and prunes rows whose expiry has
	// already passed.
	BlacklistToken(ctx context.Context, bt *BlacklistedToken) error
	IsTokenBlacklisted(ctx context.Context, userID, token string) (bool, error)

	SetResetToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error
	GetByResetTokenHash(ctx context.Context, tokenHash string, now time.Time) (*User, error)
	// UpdatePasswordAndClearReset replaces the password hash and clears both
	// reset fields in one statement.
	UpdatePasswordAndClearReset(ctx context.Context, id, passwordHash string, at time.Time) error
}
