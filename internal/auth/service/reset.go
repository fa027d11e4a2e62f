package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/PrincyBhingradiya/auth-posts-api/pkg/constant"
)

// newResetToken returns a fresh random reset secret and its storable digest.
// Only the digest is ever persisted; the plaintext goes into the email link.
func newResetToken() (plain, digest string, err error) {
	buf := make([]byte, constant.ResetTokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	plain = hex.EncodeToString(buf)
	return plain, hashResetToken(plain), nil
}

// hashResetToken is a fast one-way hash. Reset secrets are single-use and
// expire in minutes, so bcrypt-grade cost is unnecessary here.
func hashResetToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
