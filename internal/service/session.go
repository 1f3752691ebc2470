package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"minecoin/internal/model"
	"minecoin/internal/repository"
	"minecoin/pkg/util"
)

type sessionEntry struct {
	userID    string
	expiresAt time.Time
}

// SessionService issues bearer tokens for logged-in users. Sessions live in
// memory with lazy expiry; the user record is re-read on every resolve so
// role and status changes take effect immediately.
type SessionService struct {
	users    repository.UserRepository
	mu       sync.RWMutex
	sessions map[string]sessionEntry
	ttl      time.Duration
}

// NewSessionService creates a new session service.
func NewSessionService(users repository.UserRepository, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionService{
		users:    users,
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
	}
}

// Create issues a token for the given user.
func (s *SessionService) Create(user *model.User) (string, error) {
	token, err := util.GenerateSessionToken()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.mu.Lock()
	s.sessions[token] = sessionEntry{userID: user.ID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

// Resolve maps a token to its current user record. Expired or unknown
// tokens, and sessions whose user has since been deleted, fail with
// ErrInvalidSession.
func (s *SessionService) Resolve(ctx context.Context, token string) (*model.User, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	user, err := s.users.FindByID(ctx, entry.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidSession
	}
	return user, nil
}

// Delete revokes a token. Unknown tokens are ignored.
func (s *SessionService) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
