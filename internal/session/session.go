// Package session provides the in-memory bearer-token identity layer.
// Tokens are opaque UUIDs mapped to the account email; there is no
// expiry, matching the store's process-lifetime data model.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager holds active bearer tokens
type Manager struct {
	mu      sync.RWMutex
	byToken map[string]string // token -> email
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{
		byToken: make(map[string]string),
	}
}

// Create issues a new token bound to email
func (m *Manager) Create(email string) string {
	token := uuid.New().String()
	m.mu.Lock()
	m.byToken[token] = email
	m.mu.Unlock()
	return token
}

// Resolve returns the email bound to token
func (m *Manager) Resolve(token string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	email, ok := m.byToken[token]
	return email, ok
}

// Destroy revokes token. Revoking an unknown token is a no-op.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	delete(m.byToken, token)
	m.mu.Unlock()
}

// Count returns the number of active sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byToken)
}
