package errors

import (
	"errors"
)

// Validation failures.
var (
	ErrNameRequired             = errors.New("name is required")
	ErrEmailRequired            = errors.New("email is required")
	ErrInvalidEmail             = errors.New("valid email required")
	ErrPasswordRequired         = errors.New("password is required")
	ErrPasswordTooShort         = errors.New("password must be 6+ chars")
	ErrEmailAndPasswordRequired = errors.New("email and password required")
	ErrTitleRequired            = errors.New("title is required")
	ErrBodyRequired             = errors.New("body is required")
	ErrTitleAndBodyRequired     = errors.New("title and body are required")
	ErrLocationRequired         = errors.New("latitude and longitude required")
)

// Auth failures.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email is already registered")
	ErrNoToken            = errors.New("no token provided")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenBlacklisted   = errors.New("token is blacklisted, please login again")
	ErrInvalidResetToken  = errors.New("invalid or expired token")
)

// Resource failures.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")
)

// Collaborator failures.
var (
	ErrEmailDelivery = errors.New("email could not be sent, try again later")
)
