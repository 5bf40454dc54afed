// Package password wraps bcrypt behind the two operations the rest of the
// system needs: one-way hashing and constant-time verification.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt digest from plaintext. The digest differs on
// every call for the same input. Errors (cost out of range, entropy failure)
// are surfaced to the caller and must be treated as internal errors, never
// as a mismatch.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest is a
// mismatch, not an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
