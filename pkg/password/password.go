// Package password wraps bcrypt hashing for stored credentials. The salt is
// generated per call and embedded in the hash, so verification needs nothing
// beyond the stored string.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash returns a salted bcrypt hash of the plaintext.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
func Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
