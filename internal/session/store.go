// Package session holds server-side session state for the access
// control gateway. Tokens are opaque and live only in process memory:
// a restart logs everyone out, and there is no expiry or refresh.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
)

// tokenBytes gives 256 bits of entropy per token.
const tokenBytes = 32

// Identity is the snapshot of the authenticated user attached to a
// token at login time.
type Identity struct {
	UserID uint
	Name   string
	Email  string
}

// Store maps opaque tokens to identities. Implementations must be safe
// for concurrent use; logins and logouts from different requests race
// freely and last-write-wins per token is acceptable.
type Store interface {
	Set(token string, identity Identity)
	Get(token string) (Identity, bool)
	Delete(token string)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Identity
}

// NewMemoryStore creates an empty in-process session store. It is
// constructed once in main and handed to the request-handling layer.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]Identity)}
}

func (s *memoryStore) Set(token string, identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = identity
}

func (s *memoryStore) Get(token string) (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.sessions[token]
	return identity, ok
}

func (s *memoryStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// NewToken generates a cryptographically secure opaque session token.
func NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
