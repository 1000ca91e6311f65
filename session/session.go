// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/hexaco-protocol/models"
)

var (
	ErrAlreadyStarted  = errors.New("session already started")
	ErrNotInProgress   = errors.New("session is not in progress")
	ErrNotCompleted    = errors.New("questionnaire is not completed")
	ErrPaywallNotShown = errors.New("paywall has not been shown")
	ErrUnknownTier     = errors.New("unknown tier")
	ErrNotFound        = errors.New("session not found")
)

// Session is the in-memory record of one user's progress through the
// questionnaire and the flow states that follow it. The answer sequence is
// the single source of truth: scores are recomputed from it on demand and
// never stored.
//
// Each session is driven by one interactive user in strict sequence; the
// store guards the session map, not individual sessions.
type Session struct {
	ID          string
	State       string
	Answers     []int
	Cursor      int
	StartedAt   time.Time
	CompletedAt time.Time
	Tier        string
}

// Start transitions Landing -> InProgress and records the start timestamp.
// Calling it mid-session is a programmer error and fails loudly; Restart is
// the sanctioned reset path.
func (s *Session) Start() error {
	if s.State != models.StateLanding {
		return ErrAlreadyStarted
	}
	s.State = models.StateInProgress
	s.Answers = s.Answers[:0]
	s.Cursor = 0
	s.StartedAt = time.Now()
	s.CompletedAt = time.Time{}
	return nil
}

// Answer records value at the current cursor and advances it. The 60th
// answer transitions InProgress -> Completed and records the completion
// timestamp.
func (s *Session) Answer(value int) error {
	if s.State != models.StateInProgress {
		return ErrNotInProgress
	}
	if value < models.AnswerMin || value > models.AnswerMax {
		return fmt.Errorf("answer value %d out of range %d..%d", value, models.AnswerMin, models.AnswerMax)
	}
	s.Answers = append(s.Answers, value)
	s.Cursor++
	if s.Cursor == models.TotalItems {
		s.State = models.StateCompleted
		s.CompletedAt = time.Now()
	}
	return nil
}

// Back undoes the last recorded answer. At cursor 0 it is a no-op, matching
// the front end which disables the control on the first question.
func (s *Session) Back() error {
	if s.State != models.StateInProgress {
		return ErrNotInProgress
	}
	if s.Cursor == 0 {
		return nil
	}
	s.Cursor--
	s.Answers = s.Answers[:s.Cursor]
	return nil
}

// RequestPaywall transitions Completed -> PaywallShown. The full answer
// sequence and elapsed duration stay on the session so the paywall and
// premium views can recompute scores independently.
func (s *Session) RequestPaywall() error {
	if s.State != models.StateCompleted {
		return ErrNotCompleted
	}
	s.State = models.StatePaywallShown
	return nil
}

// Unlock records the purchased tier and transitions PaywallShown ->
// PremiumUnlocked. The caller is responsible for having verified (or chosen
// to trust) the payment marker.
func (s *Session) Unlock(tier string) error {
	if s.State != models.StatePaywallShown {
		return ErrPaywallNotShown
	}
	if !ValidTier(tier) {
		return fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	s.Tier = tier
	s.State = models.StatePremiumUnlocked
	return nil
}

// Restart clears all fields and returns to Landing. Valid from any state.
func (s *Session) Restart() {
	s.State = models.StateLanding
	s.Answers = nil
	s.Cursor = 0
	s.StartedAt = time.Time{}
	s.CompletedAt = time.Time{}
	s.Tier = ""
}

// Elapsed returns the questionnaire duration, zero until completed.
func (s *Session) Elapsed() time.Duration {
	if s.CompletedAt.IsZero() {
		return 0
	}
	return s.CompletedAt.Sub(s.StartedAt)
}

// ValidTier reports whether tier is a purchasable access level.
func ValidTier(tier string) bool {
	switch tier {
	case models.TierBasic, models.TierPremium, models.TierDual:
		return true
	}
	return false
}
