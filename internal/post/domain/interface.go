package domain

//go:generate mockgen -destination=../../mocks/mock_post_repository.go -package=mocks github.com/PrincyBhingradiya/auth-posts-api/internal/post/domain PostRepository

import "context"

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*Post, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Post, error)
	Update(ctx context.Context, post *Post) error
	// DeleteByIDAndOwner reports whether a row was actually deleted.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) (bool, error)
	ListByOwnerAndLocation(ctx context.Context, ownerID string, latitude, longitude float64) ([]Post, error)
	CountByOwner(ctx context.Context, ownerID string) (*PostStats, error)
}
