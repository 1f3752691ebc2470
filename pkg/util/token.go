package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const (
	// SessionTokenPrefix marks bearer tokens issued by the login endpoint
	SessionTokenPrefix = "sess"
	// SessionTokenLength is the length of the random part in bytes
	SessionTokenLength = 32
)

// GenerateSessionToken generates a secure bearer token with format: sess_<random_base64>
func GenerateSessionToken() (string, error) {
	randomBytes := make([]byte, SessionTokenLength)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	// URL-safe base64 encoding without padding for cleaner tokens
	randomPart := base64.RawURLEncoding.EncodeToString(randomBytes)
	return fmt.Sprintf("%s_%s", SessionTokenPrefix, randomPart), nil
}
