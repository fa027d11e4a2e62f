package service

import (
	"context"
	"strings"
	"time"

	autherror "github.com/PrincyBhingradiya/auth-posts-api/internal/errors"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/post/domain"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/post/dto"
	"github.com/google/uuid"
)

type PostService struct {
	repo domain.PostRepository
}

func NewPostService(repo domain.PostRepository) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) Create(ctx context.Context, ownerID string, input dto.CreatePostInput) (*dto.PostOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, autherror.ErrTitleRequired
	}
	if strings.TrimSpace(input.Body) == "" {
		return nil, autherror.ErrBodyRequired
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()

	post := &domain.Post{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Body:      input.Body,
		CreatedBy: ownerID,
		IsActive:  isActive,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	out := dto.NewPostOutput(post)
	return &out, nil
}

func (s *PostService) List(ctx context.Context, ownerID string) ([]dto.PostOutput, error) {
	posts, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return dto.NewPostOutputs(posts), nil
}

func (s *PostService) Update(ctx context.Context, ownerID, id string, input dto.UpdatePostInput) (*dto.PostOutput, error) {
	post, err := s.repo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, autherror.ErrPostNotFound
	}

	titleEmpty := strings.TrimSpace(input.Title) == ""
	bodyEmpty := strings.TrimSpace(input.Body) == ""
	if titleEmpty && bodyEmpty {
		return nil, autherror.ErrTitleAndBodyRequired
	}
	if titleEmpty {
		return nil, autherror.ErrTitleRequired
	}
	if bodyEmpty {
		return nil, autherror.ErrBodyRequired
	}

	post.Title = input.Title
	post.Body = input.Body
	if input.IsActive != nil {
		post.IsActive = *input.IsActive
	}
	post.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	out := dto.NewPostOutput(post)
	return &out, nil
}

func (s *PostService) Delete(ctx context.Context, ownerID, id string) error {
	deleted, err := s.repo.DeleteByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return autherror.ErrPostNotFound
	}
	return nil
}

func (s *PostService) FilterByLocation(ctx context.Context, ownerID string, latitude, longitude float64) ([]dto.PostOutput, error) {
	posts, err := s.repo.ListByOwnerAndLocation(ctx, ownerID, latitude, longitude)
	if err != nil {
		return nil, err
	}
	return dto.NewPostOutputs(posts), nil
}

func (s *PostService) Stats(ctx context.Context, ownerID string) (*domain.PostStats, error) {
	return s.repo.CountByOwner(ctx, ownerID)
}
