package errors

import (
	"errors"
	"net/http"
)

var badRequestErrors = []error{
	ErrNameRequired,
	ErrEmailRequired,
	ErrInvalidEmail,
	ErrPasswordRequired,
	ErrPasswordTooShort,
	ErrEmailAndPasswordRequired,
	ErrTitleRequired,
	ErrBodyRequired,
	ErrTitleAndBodyRequired,
	ErrLocationRequired,
	ErrInvalidCredentials,
	ErrEmailAlreadyInUse,
	ErrNoToken,
	ErrInvalidToken,
	ErrInvalidResetToken,
}

// HTTPStatus maps a service error to the status its handler should return.
// Anything unrecognized is a 500 with the message passed through.
func HTTPStatus(err error) int {
	if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrPostNotFound) {
		return http.StatusNotFound
	}
	for _, candidate := range badRequestErrors {
		if errors.Is(err, candidate) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
