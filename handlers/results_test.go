// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/hexaco-protocol/cliparse"
	"github.com/danielhkuo/hexaco-protocol/models"
	"github.com/danielhkuo/hexaco-protocol/questions"
	"github.com/danielhkuo/hexaco-protocol/session"
	"github.com/danielhkuo/hexaco-protocol/testutil"
)

func newResultsHandler(t *testing.T, cfg cliparse.Config) (*ResultsHandler, *session.Store) {
	t.Helper()
	store := session.NewStore()
	return NewResultsHandler(store, questions.Default(), cfg), store
}

func TestGetResults(t *testing.T) {
	h, store := newResultsHandler(t, testutil.GetTestConfig())
	s := testutil.CompletedSession(t, store)

	req := testutil.MakeRequest("GET", "/sessions/"+s.ID+"/results", nil, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Scores.Domains) != 6 {
		t.Fatalf("Expected 6 domains, got %d", len(resp.Scores.Domains))
	}
	// All-neutral answers score 3.0 everywhere
	for _, d := range resp.Scores.Domains {
		if d.Score != 3.0 {
			t.Errorf("Domain %s score = %f, want 3.0", d.Domain, d.Score)
		}
		if len(d.Facets) != 4 {
			t.Errorf("Domain %s has %d facets, want 4", d.Domain, len(d.Facets))
		}
	}
	if resp.Insight.PersonalityType == "" {
		t.Error("Expected a personality type in the insight")
	}
	if !strings.Contains(resp.Elapsed, "m ") {
		t.Errorf("Unexpected elapsed format %q", resp.Elapsed)
	}
}

func TestGetResults_AvailableAfterPaywallAndUnlock(t *testing.T) {
	h, store := newResultsHandler(t, testutil.GetTestConfig())

	for _, build := range []func(*testing.T, *session.Store) *session.Session{
		testutil.PaywallSession,
		testutil.UnlockedSession,
	} {
		s := build(t, store)
		req := testutil.MakeRequest("GET", "/sessions/"+s.ID+"/results", nil, nil)
		req.SetPathValue("id", s.ID)
		w := httptest.NewRecorder()
		h.GetResults(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
	}
}

func TestGetResults_BeforeCompletion(t *testing.T) {
	h, store := newResultsHandler(t, testutil.GetTestConfig())
	s := testutil.StartedSession(t, store)

	req := testutil.MakeRequest("GET", "/sessions/"+s.ID+"/results", nil, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestGetResults_NotFound(t *testing.T) {
	h, _ := newResultsHandler(t, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/sessions/nope/results", nil, nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	h.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestShowPaywall(t *testing.T) {
	h, store := newResultsHandler(t, testutil.GetTestConfig())
	s := testutil.CompletedSession(t, store)

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/paywall", nil, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.ShowPaywall(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PaywallResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.State != models.StatePaywallShown {
		t.Errorf("Expected state %q, got %q", models.StatePaywallShown, resp.State)
	}
	if len(resp.Tiers) != 4 {
		t.Fatalf("Expected 4 pricing cards, got %d", len(resp.Tiers))
	}

	// Free, Basic $9.99, Premium $19.99 (anchored $200), Dual $34.99
	if resp.Tiers[0].PriceCents != 0 {
		t.Errorf("Free tier price = %d", resp.Tiers[0].PriceCents)
	}
	if resp.Tiers[1].Tier != models.TierBasic || resp.Tiers[1].PriceCents != 999 {
		t.Errorf("Unexpected basic card: %+v", resp.Tiers[1])
	}
	if resp.Tiers[2].Tier != models.TierPremium || resp.Tiers[2].PriceCents != 1999 || resp.Tiers[2].AnchorCents != 20000 {
		t.Errorf("Unexpected premium card: %+v", resp.Tiers[2])
	}
	if resp.Tiers[3].Tier != models.TierDual || resp.Tiers[3].PriceCents != 3499 || resp.Tiers[3].AnchorCents != 4998 {
		t.Errorf("Unexpected dual card: %+v", resp.Tiers[3])
	}

	if resp.CountdownSeconds != 86400 {
		t.Errorf("Countdown = %d, want 86400", resp.CountdownSeconds)
	}
	// Social proof count is rendered with a thousands separator
	if !strings.Contains(resp.SocialProof, "2,847") {
		t.Errorf("Unexpected social proof %q", resp.SocialProof)
	}
}

func TestShowPaywall_RequiresCompletion(t *testing.T) {
	h, store := newResultsHandler(t, testutil.GetTestConfig())
	s := testutil.StartedSession(t, store)

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/paywall", nil, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.ShowPaywall(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestUnlock(t *testing.T) {
	h, store := newResultsHandler(t, testutil.GetTestConfig())
	s := testutil.PaywallSession(t, store)

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/unlock",
		models.UnlockRequest{Tier: models.TierPremium, Paid: true}, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.Unlock(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.UnlockResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.State != models.StatePremiumUnlocked {
		t.Errorf("Expected state %q, got %q", models.StatePremiumUnlocked, resp.State)
	}
	if resp.Tier != models.TierPremium {
		t.Errorf("Expected tier premium, got %q", resp.Tier)
	}
}

func TestUnlock_RequiresPaidMarker(t *testing.T) {
	h, store := newResultsHandler(t, testutil.GetTestConfig())
	s := testutil.PaywallSession(t, store)

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/unlock",
		models.UnlockRequest{Tier: models.TierPremium}, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.Unlock(w, req)

	testutil.AssertStatus(t, w, http.StatusPaymentRequired)
}

func TestUnlock_SkipPaymentConfig(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.SkipPayment = true
	h, store := newResultsHandler(t, cfg)
	s := testutil.PaywallSession(t, store)

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/unlock",
		models.UnlockRequest{Tier: models.TierBasic}, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.Unlock(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestUnlock_UnknownTier(t *testing.T) {
	h, store := newResultsHandler(t, testutil.GetTestConfig())
	s := testutil.PaywallSession(t, store)

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/unlock",
		models.UnlockRequest{Tier: "platinum", Paid: true}, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.Unlock(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestUnlock_BeforePaywall(t *testing.T) {
	h, store := newResultsHandler(t, testutil.GetTestConfig())
	s := testutil.CompletedSession(t, store)

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/unlock",
		models.UnlockRequest{Tier: models.TierPremium, Paid: true}, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.Unlock(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}
