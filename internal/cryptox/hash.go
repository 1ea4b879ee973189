package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 of password+salt. The salt is
// a fixed application-wide string, not per-user. Callers compare the result
// with plain string equality, not in constant time.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// HashAnswer returns the hex-encoded SHA-256 of the literal chosen option
// text, unsalted. Identical option strings hash identically across
// questions.
func HashAnswer(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
