// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/hexaco-protocol/cliparse"
	"github.com/danielhkuo/hexaco-protocol/models"
	"github.com/danielhkuo/hexaco-protocol/session"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3321,
		PublicOrigin:    "http://localhost:5173",
		StripeSecretKey: "sk_test_key",
		BasicPriceID:    "price_basic",
		PremiumPriceID:  "price_premium",
		DualPriceID:     "price_dual",
	}
}

// StartedSession creates a session already advanced to InProgress
func StartedSession(t *testing.T, store *session.Store) *session.Session {
	t.Helper()

	sess := store.Create()
	if err := sess.Start(); err != nil {
		t.Fatalf("Failed to start test session: %v", err)
	}
	return sess
}

// CompletedSession creates a session with all questions answered neutrally
func CompletedSession(t *testing.T, store *session.Store) *session.Session {
	t.Helper()

	sess := StartedSession(t, store)
	for i := 0; i < models.TotalItems; i++ {
		if err := sess.Answer(models.AnswerNeutral); err != nil {
			t.Fatalf("Failed to answer question %d: %v", i+1, err)
		}
	}
	if sess.State != models.StateCompleted {
		t.Fatalf("Expected completed state, got %q", sess.State)
	}
	return sess
}

// PaywallSession creates a completed session with the paywall shown
func PaywallSession(t *testing.T, store *session.Store) *session.Session {
	t.Helper()

	sess := CompletedSession(t, store)
	if err := sess.RequestPaywall(); err != nil {
		t.Fatalf("Failed to show paywall: %v", err)
	}
	return sess
}

// UnlockedSession creates a session with the premium tier unlocked
func UnlockedSession(t *testing.T, store *session.Store) *session.Session {
	t.Helper()

	sess := PaywallSession(t, store)
	if err := sess.Unlock(models.TierPremium); err != nil {
		t.Fatalf("Failed to unlock session: %v", err)
	}
	return sess
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
