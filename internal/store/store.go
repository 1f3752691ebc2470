package store

import (
	"errors"

	"minecoin/internal/model"
)

// Adapter is the lowest-level persistence primitive of the local-store
// family: the whole aggregate is the unit of read and write. Every LoadAll
// passes through Normalize, so callers always receive a valid aggregate.
type Adapter interface {
	LoadAll() (*model.SiteData, error)
	SaveAll(*model.SiteData) error
}

var (
	// ErrCorruptPayload signals that the stored blob failed to deserialize.
	// The adapter recovers by treating the slot as absent and re-seeding.
	ErrCorruptPayload = errors.New("corrupt payload")

	// ErrWriteFailure signals that the underlying medium rejected a write.
	// Surfaced to the end user as a retryable failure, never swallowed.
	ErrWriteFailure = errors.New("write failure")
)
