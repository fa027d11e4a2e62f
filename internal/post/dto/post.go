package dto

import (
	"time"

	"github.com/PrincyBhingradiya/auth-posts-api/internal/post/domain"
)

type CreatePostInput struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	IsActive  *bool    `json:"isActive"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type UpdatePostInput struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	IsActive *bool  `json:"isActive"`
}

type PostOutput struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedBy string    `json:"createdBy"`
	IsActive  bool      `json:"isActive"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewPostOutput(p *domain.Post) PostOutput {
	return PostOutput{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		CreatedBy: p.CreatedBy,
		IsActive:  p.IsActive,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewPostOutputs(posts []domain.Post) []PostOutput {
	out := make([]PostOutput, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostOutput(&posts[i]))
	}
	return out
}
