package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/PrincyBhingradiya/auth-posts-api/internal/auth/domain"
	repo "github.com/PrincyBhingradiya/auth-posts-api/internal/auth/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "reset_token_hash", "reset_token_expires_at",
	"last_login_at", "last_logout_at", "created_at", "updated_at",
}

// TestGetByEmail covers the GetByEmail repository method.
func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	userEmail := "ann@x.com"
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs(userEmail).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-1", "Ann", userEmail, "hash", nil, nil, nil, nil, time.Now(), time.Now()))

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-1", user.ID)
		assert.Nil(t, user.ResetTokenHash)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs(userEmail).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err) // Should return nil user, nil error
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs(userEmail).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, userEmail)
		assert.Error(t, err)
	})
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs("user-1").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-1", "Ann", "ann@x.com", "hash", nil, nil, nil, nil, time.Now(), time.Now()))

		user, err := r.GetByID(ctx, "user-1")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "ann@x.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByID(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

// TestCreate covers the Create repository method.
func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)
	userToCreate := &domain.User{
		ID:           "user-1",
		Name:         "Ann",
		Email:        "new@x.com",
		PasswordHash: "new-hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(userToCreate.ID, userToCreate.Name, userToCreate.Email, userToCreate.PasswordHash,
				userToCreate.CreatedAt, userToCreate.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, userToCreate)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(userToCreate.ID, userToCreate.Name, userToCreate.Email, userToCreate.PasswordHash,
				userToCreate.CreatedAt, userToCreate.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, userToCreate)
		assert.Error(t, err)
	})
}

func TestUpdateLastLoginAndLogout(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)
	now := time.Now()

	t.Run("last login", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET last_login_at").
			WithArgs("user-1", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.UpdateLastLogin(ctx, "user-1", now))
	})

	t.Run("last logout", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET last_logout_at").
			WithArgs("user-1", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.UpdateLastLogout(ctx, "user-1", now))
	})
}

// TestBlacklistToken verifies the prune-then-insert sequence.
func TestBlacklistToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)
	bt := &domain.BlacklistedToken{
		Token:     "the-token",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(15 * 24 * time.Hour),
		CreatedAt: time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM blacklisted_tokens").
			WithArgs(bt.CreatedAt).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec("INSERT INTO blacklisted_tokens").
			WithArgs(bt.Token, bt.UserID, bt.ExpiresAt, bt.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.BlacklistToken(ctx, bt))
	})

	t.Run("idempotent re-insert", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM blacklisted_tokens").
			WithArgs(bt.CreatedAt).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		// ON CONFLICT DO NOTHING: zero rows affected is still success.
		mock.ExpectExec("INSERT INTO blacklisted_tokens").
			WithArgs(bt.Token, bt.UserID, bt.ExpiresAt, bt.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		assert.NoError(t, r.BlacklistToken(ctx, bt))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM blacklisted_tokens").
			WithArgs(bt.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.BlacklistToken(ctx, bt))
	})
}

func TestIsTokenBlacklisted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)

	t.Run("blacklisted", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("user-1", "the-token").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		blacklisted, err := r.IsTokenBlacklisted(ctx, "user-1", "the-token")
		require.NoError(t, err)
		assert.True(t, blacklisted)
	})

	t.Run("not blacklisted", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("user-1", "other-token").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		blacklisted, err := r.IsTokenBlacklisted(ctx, "user-1", "other-token")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})
}

func TestResetTokenQueries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)
	now := time.Now()
	expiresAt := now.Add(10 * time.Minute)

	t.Run("set reset token", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET reset_token_hash").
			WithArgs("user-1", "digest", expiresAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.SetResetToken(ctx, "user-1", "digest", expiresAt))
	})

	t.Run("lookup by digest with future expiry", func(t *testing.T) {
		digest := "digest"
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs(digest, now).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-1", "Ann", "ann@x.com", "hash", &digest, &expiresAt, nil, nil, now, now))

		user, err := r.GetByResetTokenHash(ctx, "digest", now)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("expired or unknown digest", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs("stale-digest", now).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByResetTokenHash(ctx, "stale-digest", now)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("replace password and clear reset fields", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("user-1", "new-hash", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.UpdatePasswordAndClearReset(ctx, "user-1", "new-hash", now))
	})
}
