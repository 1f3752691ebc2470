package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"minecoin/internal/model"
)

// MemoryStore keeps the serialized aggregate in a single in-memory slot. It
// mirrors the FileStore contract (including the serialize/deserialize round
// trip, so shared slices can never alias) and backs tests and ephemeral runs.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte
}

// NewMemoryStore returns an empty in-memory store; the first LoadAll seeds it.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadAll() (*model.SiteData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raw *model.SiteData
	if len(s.blob) > 0 {
		var data model.SiteData
		if err := json.Unmarshal(s.blob, &data); err == nil {
			raw = &data
		}
	}

	data, dirty := Normalize(raw)
	if dirty {
		if err := s.writeLocked(data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func (s *MemoryStore) SaveAll(data *model.SiteData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(data)
}

func (s *MemoryStore) writeLocked(data *model.SiteData) error {
	buf, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	s.blob = buf
	return nil
}

// Reset wipes the slot back to bootstrap defaults.
func (s *MemoryStore) Reset() error {
	s.mu.Lock()
	s.blob = nil
	s.mu.Unlock()
	_, err := s.LoadAll()
	return err
}
