package util

import "github.com/google/uuid"

// NewID generates a new unique record identifier. UUIDv4 carries 122 random
// bits, which is collision-resistant for the lifetime of a store.
func NewID() string {
	return uuid.NewString()
}

// IsValidID returns true if the provided string parses as a UUID.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
