package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of a raw credential. Hashing is
// idempotent: a value that is already a bcrypt hash is passed through
// unchanged, so a user record can be re-saved without double-hashing.
func HashPassword(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("password is empty")
	}

	if isHashed(raw) {
		return raw, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the raw credential matches the stored hash.
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}

// isHashed reports whether the value parses as a bcrypt hash.
func isHashed(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}
