package service

import (
	"errors"
	"fmt"

	"github.com/PrincyBhingradiya/auth-posts-api/pkg/constant"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword applies bcrypt with a per-call random salt embedded in the
// digest.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), constant.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches digest. A mismatch is not an
// error; only a malformed digest is.
func VerifyPassword(plain, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("malformed password digest: %w", err)
}
