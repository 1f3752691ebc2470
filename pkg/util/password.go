package util

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BCryptCost is the cost factor used when hashing credentials.
const BCryptCost = 12

// HashPassword hashes a password using bcrypt. Stored records use plaintext
// by default for compatibility with pre-existing data; operators migrating
// to hashed credentials write the output of this function into the record.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BCryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a supplied password against the stored credential.
// Bcrypt-formatted stored values are verified with bcrypt; anything else is
// treated as a legacy plaintext credential and compared exactly.
func CheckPassword(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
