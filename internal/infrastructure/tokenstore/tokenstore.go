// Package tokenstore abstracts where the admin bearer token lives so the
// booking client never touches a concrete storage mechanism directly.
package tokenstore

import "sync"

// Slot identifies one of the two token storage locations.
type Slot int

const (
	// SlotPersistent survives restarts (file backed in production).
	SlotPersistent Slot = iota
	// SlotSession lives only for the lifetime of the process.
	SlotSession
)

// Store is the capability the booking client is handed. Token resolution is
// first-match-wins: the persistent slot is consulted before the session slot.
type Store interface {
	// Token returns the active bearer token, if any slot holds one.
	Token() (string, bool)

	// SetToken writes a token into the given slot.
	SetToken(slot Slot, token string) error

	// Clear removes tokens from both slots.
	Clear()
}

// Memory is an in-process Store used in tests and when no token file is
// configured.
type Memory struct {
	mu         sync.RWMutex
	persistent string
	session    string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Token returns the persistent token when set, otherwise the session token.
func (m *Memory) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.persistent != "" {
		return m.persistent, true
	}
	if m.session != "" {
		return m.session, true
	}
	return "", false
}

// SetToken writes a token into the given slot.
func (m *Memory) SetToken(slot Slot, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch slot {
	case SlotPersistent:
		m.persistent = token
	case SlotSession:
		m.session = token
	}
	return nil
}

// Clear removes tokens from both slots.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.persistent = ""
	m.session = ""
}
