// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/hexaco-protocol/models"
	"github.com/danielhkuo/hexaco-protocol/questions"
	"github.com/danielhkuo/hexaco-protocol/session"
	"github.com/danielhkuo/hexaco-protocol/testutil"
)

func newSessionHandler(t *testing.T) (*SessionHandler, *session.Store) {
	t.Helper()
	store := session.NewStore()
	return NewSessionHandler(store, questions.Default(), testutil.GetTestConfig()), store
}

func TestStartSession(t *testing.T) {
	h, store := newSessionHandler(t)

	req := testutil.MakeRequest("POST", "/sessions", nil, nil)
	w := httptest.NewRecorder()
	h.StartSession(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.StartSessionResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.SessionID == "" {
		t.Fatal("Expected a session id")
	}
	if resp.State != models.StateInProgress {
		t.Errorf("Expected state %q, got %q", models.StateInProgress, resp.State)
	}
	if resp.Item.ID != 1 {
		t.Errorf("Expected first question, got item %d", resp.Item.ID)
	}
	if resp.TotalQuestions != models.TotalItems {
		t.Errorf("Expected %d total questions, got %d", models.TotalItems, resp.TotalQuestions)
	}

	if _, ok := store.Get(resp.SessionID); !ok {
		t.Error("Session not registered in store")
	}
}

func TestGetSession_InProgress(t *testing.T) {
	h, store := newSessionHandler(t)
	s := testutil.StartedSession(t, store)
	s.Answer(3)
	s.Answer(4)

	req := testutil.MakeRequest("GET", "/sessions/"+s.ID, nil, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.GetSession(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SessionStateResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Cursor != 2 {
		t.Errorf("Expected cursor 2, got %d", resp.Cursor)
	}
	if resp.Item == nil || resp.Item.ID != 3 {
		t.Errorf("Expected item 3, got %+v", resp.Item)
	}
	if len(resp.Options) != 5 {
		t.Errorf("Expected 5 Likert options, got %d", len(resp.Options))
	}
	if resp.MinutesLeft != models.TotalItems-3 {
		t.Errorf("Expected %d minutes left, got %d", models.TotalItems-3, resp.MinutesLeft)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	h, _ := newSessionHandler(t)

	req := testutil.MakeRequest("GET", "/sessions/missing", nil, nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	h.GetSession(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestSubmitAnswer(t *testing.T) {
	h, store := newSessionHandler(t)
	s := testutil.StartedSession(t, store)

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/answers", models.AnswerRequest{Value: 4}, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.SubmitAnswer(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AnswerResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Completed {
		t.Error("First answer should not complete the questionnaire")
	}
	if resp.Cursor != 1 {
		t.Errorf("Expected cursor 1, got %d", resp.Cursor)
	}
	if resp.Item == nil || resp.Item.ID != 2 {
		t.Errorf("Expected next item 2, got %+v", resp.Item)
	}
}

func TestSubmitAnswer_FinalAnswerCompletes(t *testing.T) {
	h, store := newSessionHandler(t)
	s := testutil.StartedSession(t, store)
	for i := 0; i < models.TotalItems-1; i++ {
		if err := s.Answer(3); err != nil {
			t.Fatal(err)
		}
	}

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/answers", models.AnswerRequest{Value: 5}, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.SubmitAnswer(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AnswerResponse
	testutil.AssertJSON(t, w, &resp)

	if !resp.Completed {
		t.Error("Expected completion on the final answer")
	}
	if resp.State != models.StateCompleted {
		t.Errorf("Expected state %q, got %q", models.StateCompleted, resp.State)
	}
	if resp.Item != nil {
		t.Error("No next item expected after completion")
	}
}

func TestSubmitAnswer_Validation(t *testing.T) {
	h, store := newSessionHandler(t)
	s := testutil.StartedSession(t, store)

	testCases := []struct {
		name   string
		value  int
		status int
	}{
		{"too low", 0, http.StatusBadRequest},
		{"too high", 6, http.StatusBadRequest},
		{"negative", -1, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/answers", models.AnswerRequest{Value: tc.value}, nil)
			req.SetPathValue("id", s.ID)
			w := httptest.NewRecorder()
			h.SubmitAnswer(w, req)

			testutil.AssertStatus(t, w, tc.status)
		})
	}

	if s.Cursor != 0 {
		t.Errorf("Rejected answers advanced the cursor to %d", s.Cursor)
	}
}

func TestSubmitAnswer_AfterCompletion(t *testing.T) {
	h, store := newSessionHandler(t)
	s := testutil.CompletedSession(t, store)

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/answers", models.AnswerRequest{Value: 3}, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.SubmitAnswer(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestGoBack(t *testing.T) {
	h, store := newSessionHandler(t)
	s := testutil.StartedSession(t, store)
	s.Answer(5)
	s.Answer(2)

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/back", nil, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.GoBack(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.BackResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Cursor != 1 {
		t.Errorf("Expected cursor 1, got %d", resp.Cursor)
	}
	if resp.Item == nil || resp.Item.ID != 2 {
		t.Errorf("Expected to re-show item 2, got %+v", resp.Item)
	}
}

func TestGoBack_AtFirstQuestion(t *testing.T) {
	h, store := newSessionHandler(t)
	s := testutil.StartedSession(t, store)

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/back", nil, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.GoBack(w, req)

	// No-op, still question 1
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.BackResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Cursor != 0 || resp.Item == nil || resp.Item.ID != 1 {
		t.Errorf("Expected to stay on item 1, got cursor %d item %+v", resp.Cursor, resp.Item)
	}
}

func TestRestart(t *testing.T) {
	h, store := newSessionHandler(t)
	s := testutil.UnlockedSession(t, store)

	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/restart", nil, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()
	h.Restart(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.RestartResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.State != models.StateLanding {
		t.Errorf("Expected state %q, got %q", models.StateLanding, resp.State)
	}
	if len(s.Answers) != 0 || s.Tier != "" {
		t.Error("Restart left residual progress")
	}
}

func TestResume_FromPaymentRedirect(t *testing.T) {
	h, store := newSessionHandler(t)

	req := testutil.MakeRequest("POST", "/sessions/resume?paid=true&tier=dual", nil, nil)
	w := httptest.NewRecorder()
	h.Resume(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.UnlockResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.State != models.StatePremiumUnlocked {
		t.Errorf("Expected state %q, got %q", models.StatePremiumUnlocked, resp.State)
	}
	if resp.Tier != models.TierDual {
		t.Errorf("Expected tier dual, got %q", resp.Tier)
	}

	s, ok := store.Get(resp.SessionID)
	if !ok {
		t.Fatal("Resumed session not in store")
	}
	if len(s.Answers) != 0 {
		t.Error("Resumed session should carry no answers")
	}
}

func TestResume_UnknownTierDefaultsToPremium(t *testing.T) {
	h, _ := newSessionHandler(t)

	req := testutil.MakeRequest("POST", "/sessions/resume?paid=true&tier=platinum", nil, nil)
	w := httptest.NewRecorder()
	h.Resume(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.UnlockResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Tier != models.TierPremium {
		t.Errorf("Expected premium fallback, got %q", resp.Tier)
	}
}

func TestResume_RequiresPaidMarker(t *testing.T) {
	h, _ := newSessionHandler(t)

	req := testutil.MakeRequest("POST", "/sessions/resume?tier=premium", nil, nil)
	w := httptest.NewRecorder()
	h.Resume(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestResume_SkipPaymentConfig(t *testing.T) {
	store := session.NewStore()
	cfg := testutil.GetTestConfig()
	cfg.SkipPayment = true
	h := NewSessionHandler(store, questions.Default(), cfg)

	req := testutil.MakeRequest("POST", "/sessions/resume", nil, nil)
	w := httptest.NewRecorder()
	h.Resume(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
}
