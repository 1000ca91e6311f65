// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/hexaco-protocol/models"
)

// Store holds live sessions in memory, keyed by an unguessable UUID. There
// is no persistence: abandoning a session abandons its state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a fresh session in the Landing state.
func (st *Store) Create() *Session {
	s := &Session{
		ID:    uuid.NewString(),
		State: models.StateLanding,
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given id.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	return s, ok
}

// ResumeUnlocked creates a fresh session directly in PremiumUnlocked. This
// covers re-entry from the payment redirect: the browser returns with
// paid=true&tier=... and no prior in-memory history. Tier is recovered
// best-effort; an unknown or missing tier falls back to premium, matching
// the checkout default.
func (st *Store) ResumeUnlocked(tier string) *Session {
	if !ValidTier(tier) {
		tier = models.TierPremium
	}
	s := &Session{
		ID:          uuid.NewString(),
		State:       models.StatePremiumUnlocked,
		Tier:        tier,
		StartedAt:   time.Now(),
		CompletedAt: time.Now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Delete removes a session from the store.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
