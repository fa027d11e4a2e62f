package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/PrincyBhingradiya/auth-posts-api/internal/post/domain"
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

const postColumns = `id, title, body, created_by, is_active, latitude, longitude, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, post *domain.Post) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO posts (`+postColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, post.ID, post.Title, post.Body, post.CreatedBy, post.IsActive,
		post.Latitude, post.Longitude, post.CreatedAt, post.UpdatedAt)
	return err
}

func (r *PostgresRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Post, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE id = $1 AND created_by = $2
		LIMIT 1;
	`, id, ownerID)

	var post domain.Post
	err := row.Scan(&post.ID, &post.Title, &post.Body, &post.CreatedBy, &post.IsActive,
		&post.Latitude, &post.Longitude, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Post, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE created_by = $1
		ORDER BY created_at DESC;
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostgresRepository) Update(ctx context.Context, post *domain.Post) error {
	_, err := r.db.Exec(ctx, `
		UPDATE posts
		SET title = $3, body = $4, is_active = $5, updated_at = $6
		WHERE id = $1 AND created_by = $2
	`, post.ID, post.CreatedBy, post.Title, post.Body, post.IsActive, post.UpdatedAt)
	return err
}

func (r *PostgresRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM posts WHERE id = $1 AND created_by = $2
	`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) ListByOwnerAndLocation(ctx context.Context, ownerID string, latitude, longitude float64) ([]domain.Post, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE created_by = $1 AND latitude = $2 AND longitude = $3
		ORDER BY created_at DESC;
	`, ownerID, latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by location: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostgresRepository) CountByOwner(ctx context.Context, ownerID string) (*domain.PostStats, error) {
	var stats domain.PostStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_active),
		       COUNT(*) FILTER (WHERE NOT is_active)
		FROM posts
		WHERE created_by = $1
	`, ownerID).Scan(&stats.TotalPosts, &stats.ActiveCount, &stats.InactiveCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}
	return &stats, nil
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.CreatedBy, &post.IsActive,
			&post.Latitude, &post.Longitude, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}
	return posts, nil
}
