package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PrincyBhingradiya/auth-posts-api/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, name, email, password_hash, reset_token_hash, reset_token_expires_at,
		last_login_at, last_logout_at, created_at, updated_at`

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.ResetTokenHash, &user.ResetTokenExpiresAt,
		&user.LastLoginAt, &user.LastLogoutAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)

	return err
}

func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET last_login_at = $2, updated_at = $2 WHERE id = $1
	`, id, at)
	return err
}

func (r *PostgresRepository) UpdateLastLogout(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET last_logout_at = $2, updated_at = $2 WHERE id = $1
	`, id, at)
	return err
}

func (r *PostgresRepository) BlacklistToken(ctx context.Context, bt *domain.BlacklistedToken) error {
	// Lazy pruning: drop entries whose token has expired on its own, they can
	// never pass signature validation again.
	if _, err := r.db.Exec(ctx, `
		DELETE FROM blacklisted_tokens WHERE expires_at < $1
	`, bt.CreatedAt); err != nil {
		return fmt.Errorf("failed to prune blacklist: %w", err)
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO blacklisted_tokens (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token) DO NOTHING
	`, bt.Token, bt.UserID, bt.ExpiresAt, bt.CreatedAt)
	return err
}

func (r *PostgresRepository) IsTokenBlacklisted(ctx context.Context, userID, token string) (bool, error) {
	var blacklisted bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM blacklisted_tokens WHERE user_id = $1 AND token = $2
		)
	`, userID, token).Scan(&blacklisted)
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return blacklisted, nil
}

func (r *PostgresRepository) SetResetToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET reset_token_hash = $2, reset_token_expires_at = $3 WHERE id = $1
	`, id, tokenHash, expiresAt)
	return err
}

func (r *PostgresRepository) GetByResetTokenHash(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE reset_token_hash = $1 AND reset_token_expires_at > $2
		LIMIT 1;
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, tokenHash, now))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) UpdatePasswordAndClearReset(ctx context.Context, id, passwordHash string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, reset_token_hash = NULL, reset_token_expires_at = NULL, updated_at = $3
		WHERE id = $1
	`, id, passwordHash, at)
	return err
}
