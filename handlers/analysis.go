// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/hexaco-protocol/cliparse"
	"github.com/danielhkuo/hexaco-protocol/middleware"
	"github.com/danielhkuo/hexaco-protocol/models"
	"github.com/danielhkuo/hexaco-protocol/narrative"
	"github.com/danielhkuo/hexaco-protocol/questions"
	"github.com/danielhkuo/hexaco-protocol/session"
)

const exportFilename = "hexaco-personality-analysis.txt"

type AnalysisHandler struct {
	store *session.Store
	bank  *questions.Bank
	cfg   cliparse.Config
	svc   *narrative.Service
}

func NewAnalysisHandler(store *session.Store, bank *questions.Bank, cfg cliparse.Config, svc *narrative.Service) *AnalysisHandler {
	return &AnalysisHandler{store: store, bank: bank, cfg: cfg, svc: svc}
}

// GetAnalysis handles GET /sessions/{id}/analysis: the premium narrative,
// generated from scores recomputed on the spot. Sessions resumed from a
// payment redirect carry no answers; they get the empty-profile fallback.
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	s, ok := h.unlocked(w, r)
	if !ok {
		return
	}

	text, sections, source := h.svc.Analyze(r.Context(), h.premiumScores(s))
	slog.Info("analysis generated", "session_id", s.ID, "source", source)

	middleware.JSONResponse(w, http.StatusOK, models.AnalysisResponse{
		Analysis:    text,
		Sections:    sections,
		GeneratedBy: source,
	})
}

// ExportAnalysis handles GET /sessions/{id}/analysis/export: the raw
// narrative as a plain-text attachment.
func (h *AnalysisHandler) ExportAnalysis(w http.ResponseWriter, r *http.Request) {
	s, ok := h.unlocked(w, r)
	if !ok {
		return
	}

	text, _, _ := h.svc.Analyze(r.Context(), h.premiumScores(s))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		slog.Error("failed to write export", "error", err, "session_id", s.ID)
	}
}

// ShareAnalysis handles GET /sessions/{id}/analysis/share: the payload for
// the platform share sheet, with Text doubling as the clipboard fallback.
func (h *AnalysisHandler) ShareAnalysis(w http.ResponseWriter, r *http.Request) {
	_, ok := h.unlocked(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ShareResponse{
		Title: "My HEXACO Personality Analysis",
		Text: fmt.Sprintf("I just discovered fascinating insights about my personality! Join %s others who took the assessment.",
			humanize.Comma(unlockedThisMonth)),
		URL: h.cfg.PublicOrigin,
	})
}

// premiumScores recomputes scores from the session's raw answers, tolerating
// answer-less resumed sessions with an empty result.
func (h *AnalysisHandler) premiumScores(s *session.Session) models.ScoreResult {
	if len(s.Answers) == 0 {
		return models.ScoreResult{}
	}
	result, err := scoreAnswers(h.bank, h.cfg, s.Answers)
	if err != nil {
		slog.Warn("failed to score answers for analysis", "error", err, "session_id", s.ID)
		return models.ScoreResult{}
	}
	return result
}

func (h *AnalysisHandler) unlocked(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")
	s, ok := h.store.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	if s.State != models.StatePremiumUnlocked {
		middleware.ErrorResponse(w, http.StatusForbidden, "Premium analysis is locked")
		return nil, false
	}
	return s, true
}
