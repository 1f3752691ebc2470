package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"minecoin/internal/model"

	"github.com/charmbracelet/log"
)

// FileStore persists the whole aggregate as one JSON document in a single
// file slot. Writers are serialized per process; there is no cross-process
// isolation, so concurrent processes race with last-write-wins semantics.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// OpenFileStore prepares the slot's directory and returns a store. The slot
// itself is created lazily by the first LoadAll.
func OpenFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to prepare store directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// LoadAll reads the slot, self-heals it through Normalize, and persists any
// correction before returning. A corrupt slot is logged and re-seeded.
func (s *FileStore) LoadAll() (*model.SiteData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *FileStore) loadLocked() (*model.SiteData, error) {
	raw, err := s.readSlot()
	if err != nil {
		log.Warn("store slot unreadable, reinitializing", "path", s.path, "err", err)
		raw = nil
	}

	data, dirty := Normalize(raw)
	if dirty {
		if err := s.writeSlot(data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func (s *FileStore) readSlot() (*model.SiteData, error) {
	buf, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, nil
	}

	var data model.SiteData
	if err := json.Unmarshal(buf, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	return &data, nil
}

// SaveAll serializes and writes the aggregate. A rejected write (quota,
// permissions) surfaces as ErrWriteFailure for the caller to show the user.
func (s *FileStore) SaveAll(data *model.SiteData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeSlot(data)
}

func (s *FileStore) writeSlot(data *model.SiteData) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if err := os.WriteFile(s.path, buf, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return nil
}

// Reset wipes the slot back to bootstrap defaults.
func (s *FileStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	_, err := s.loadLocked()
	return err
}
