package domain

import "time"

type User struct {
	ID                  string
	Name                string
	Email               string
	PasswordHash        string
	ResetTokenHash      *string
	ResetTokenExpiresAt *time.Time
	LastLoginAt         *time.Time
	LastLogoutAt        *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// BlacklistedToken is a bearer token revoked by logout before its natural
// expiry. Membership checks are exact-string matches on Token.
type BlacklistedToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
