package domain

import "time"

// Post is owned exclusively by its creator; every read and write goes
// through an id+owner compound lookup.
type Post struct {
	ID        string
	Title     string
	Body      string
	CreatedBy string
	IsActive  bool
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PostStats struct {
	TotalPosts    int
	ActiveCount   int
	InactiveCount int
}
