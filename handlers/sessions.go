// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/hexaco-protocol/cliparse"
	"github.com/danielhkuo/hexaco-protocol/middleware"
	"github.com/danielhkuo/hexaco-protocol/models"
	"github.com/danielhkuo/hexaco-protocol/questions"
	"github.com/danielhkuo/hexaco-protocol/session"
)

type SessionHandler struct {
	store *session.Store
	bank  *questions.Bank
	cfg   cliparse.Config
}

func NewSessionHandler(store *session.Store, bank *questions.Bank, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{store: store, bank: bank, cfg: cfg}
}

// StartSession handles POST /sessions. It creates a session and immediately
// starts the questionnaire.
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	s := h.store.Create()
	if err := s.Start(); err != nil {
		slog.Error("failed to start fresh session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	first := h.bank.Items()[0]
	slog.Info("session started", "session_id", s.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.StartSessionResponse{
		SessionID:      s.ID,
		State:          s.State,
		Item:           first,
		TotalQuestions: models.TotalItems,
		StartedAt:      s.StartedAt,
	})
}

// GetSession handles GET /sessions/{id}: a state snapshot for rendering.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	resp := models.SessionStateResponse{
		SessionID:      s.ID,
		State:          s.State,
		Cursor:         s.Cursor,
		TotalQuestions: models.TotalItems,
		Tier:           s.Tier,
	}
	if s.State == models.StateInProgress {
		item := h.bank.Items()[s.Cursor]
		resp.Item = &item
		resp.Options = questions.LikertOptions()
		// The front end shows ~1 minute per remaining question.
		resp.MinutesLeft = models.TotalItems - (s.Cursor + 1)
		if resp.MinutesLeft < 0 {
			resp.MinutesLeft = 0
		}
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// SubmitAnswer handles POST /sessions/{id}/answers. The 60th answer
// completes the questionnaire.
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.AnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Value < models.AnswerMin || req.Value > models.AnswerMax {
		middleware.ErrorResponse(w, http.StatusBadRequest, "value must be between 1 and 5")
		return
	}

	if err := s.Answer(req.Value); err != nil {
		if errors.Is(err, session.ErrNotInProgress) {
			middleware.ErrorResponse(w, http.StatusConflict, "Session is not accepting answers")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := models.AnswerResponse{
		State:     s.State,
		Cursor:    s.Cursor,
		Completed: s.State == models.StateCompleted,
	}
	if resp.Completed {
		resp.ElapsedSeconds = int(s.Elapsed().Seconds())
		slog.Info("questionnaire completed", "session_id", s.ID, "elapsed_seconds", resp.ElapsedSeconds)
	} else {
		item := h.bank.Items()[s.Cursor]
		resp.Item = &item
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GoBack handles POST /sessions/{id}/back: a true undo of the last answer.
func (h *SessionHandler) GoBack(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := s.Back(); err != nil {
		middleware.ErrorResponse(w, http.StatusConflict, "Session is not in progress")
		return
	}

	item := h.bank.Items()[s.Cursor]
	middleware.JSONResponse(w, http.StatusOK, models.BackResponse{
		State:  s.State,
		Cursor: s.Cursor,
		Item:   &item,
	})
}

// Restart handles POST /sessions/{id}/restart. Valid from any state.
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	s.Restart()
	slog.Info("session restarted", "session_id", s.ID)
	middleware.JSONResponse(w, http.StatusOK, models.RestartResponse{State: s.State})
}

// Resume handles POST /sessions/resume: re-entry from the payment redirect.
// The URL carries paid=true and the chosen tier; a fresh session is created
// directly in PremiumUnlocked with no prior in-memory history. The paid
// marker is client-trusted; there is no webhook verification.
func (h *SessionHandler) Resume(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	paid := q.Get("paid") == "true"
	tier := q.Get("tier")

	if !paid && !h.cfg.SkipPayment {
		middleware.ErrorResponse(w, http.StatusBadRequest, "paid=true marker required")
		return
	}

	s := h.store.ResumeUnlocked(tier)
	slog.Info("session resumed from payment redirect", "session_id", s.ID, "tier", s.Tier)

	middleware.JSONResponse(w, http.StatusCreated, models.UnlockResponse{
		SessionID: s.ID,
		State:     s.State,
		Tier:      s.Tier,
	})
}

// lookup resolves the {id} path value, writing a 404 on failure.
func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return nil, false
	}
	s, ok := h.store.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return s, true
}
