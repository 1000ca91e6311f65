// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/hexaco-protocol/cliparse"
	"github.com/danielhkuo/hexaco-protocol/middleware"
	"github.com/danielhkuo/hexaco-protocol/models"
	"github.com/danielhkuo/hexaco-protocol/questions"
	"github.com/danielhkuo/hexaco-protocol/scoring"
	"github.com/danielhkuo/hexaco-protocol/session"
)

// Paywall presentation constants. The countdown is decorative urgency copy,
// not an actual expiry; sessions live until the process exits.
const (
	paywallCountdownSeconds = 24 * 60 * 60
	unlockedThisMonth       = 2847
)

type ResultsHandler struct {
	store *session.Store
	bank  *questions.Bank
	cfg   cliparse.Config
}

func NewResultsHandler(store *session.Store, bank *questions.Bank, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{store: store, bank: bank, cfg: cfg}
}

// GetResults handles GET /sessions/{id}/results. Scores are recomputed from
// the raw answer sequence on every call; nothing derived is cached across
// views.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	switch s.State {
	case models.StateCompleted, models.StatePaywallShown, models.StatePremiumUnlocked:
	default:
		middleware.ErrorResponse(w, http.StatusConflict, "Questionnaire is not completed")
		return
	}

	result, err := scoreAnswers(h.bank, h.cfg, s.Answers)
	if err != nil {
		slog.Error("failed to score answers", "error", err, "session_id", s.ID)
		middleware.ErrorResponse(w, http.StatusConflict, "No scorable answers recorded for this session")
		return
	}

	elapsed := int(s.Elapsed().Seconds())
	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Scores:         result,
		Insight:        scoring.DeriveInsight(result),
		ElapsedSeconds: elapsed,
		Elapsed:        fmt.Sprintf("%dm %02ds", elapsed/60, elapsed%60),
	})
}

// ShowPaywall handles POST /sessions/{id}/paywall: Completed -> PaywallShown
// with the pricing cards.
func (h *ResultsHandler) ShowPaywall(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := s.RequestPaywall(); err != nil {
		middleware.ErrorResponse(w, http.StatusConflict, "Complete the questionnaire before the paywall")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PaywallResponse{
		State:            s.State,
		Tiers:            pricingTiers(),
		CountdownSeconds: paywallCountdownSeconds,
		SocialProof: fmt.Sprintf("%s people unlocked their full profile this month",
			humanize.Comma(unlockedThisMonth)),
	})
}

// Unlock handles POST /sessions/{id}/unlock. The paid marker is trusted
// as-is per the return-from-payment contract; the skip-payment config flag
// allows unlocking without it in development.
func (h *ResultsHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.UnlockRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !req.Paid && !h.cfg.SkipPayment {
		middleware.ErrorResponse(w, http.StatusPaymentRequired, "Payment marker required")
		return
	}

	if err := s.Unlock(req.Tier); err != nil {
		if errors.Is(err, session.ErrUnknownTier) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		middleware.ErrorResponse(w, http.StatusConflict, "Paywall has not been shown")
		return
	}

	slog.Info("premium unlocked", "session_id", s.ID, "tier", s.Tier)
	middleware.JSONResponse(w, http.StatusOK, models.UnlockResponse{
		SessionID: s.ID,
		State:     s.State,
		Tier:      s.Tier,
	})
}

func (h *ResultsHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
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

// scoreAnswers applies the configured scoring mode. Strict mode rejects
// partial sequences; lenient mode pads them with neutral.
func scoreAnswers(bank *questions.Bank, cfg cliparse.Config, answers []int) (models.ScoreResult, error) {
	if cfg.LenientScoring {
		return scoring.ScoreLenient(bank, answers)
	}
	return scoring.Score(bank, answers)
}

// pricingTiers returns the paywall cards, free tier included.
func pricingTiers() []models.PricingTier {
	return []models.PricingTier{
		{
			Tier: "", Name: "Free", PriceCents: 0,
			Features: []string{
				"Scores across 6 domains",
				"Interactive radar chart",
				"2-sentence per-domain summary",
				"Highest & lowest dimension insight",
			},
		},
		{
			Tier: models.TierBasic, Name: "Basic", PriceCents: 999,
			Features: []string{
				"Everything in Free",
				"Facet-level breakdown",
				"Extended domain analysis",
				"Personality type label",
			},
		},
		{
			Tier: models.TierPremium, Name: "Premium", PriceCents: 1999, AnchorCents: 20000,
			Features: []string{
				"Everything in Basic",
				"AI-powered deep analysis",
				"Career & relationship insights",
				"Stress management guide",
				"Downloadable PDF report",
			},
		},
		{
			Tier: models.TierDual, Name: "Dual Profile: HEXACO + Archetype Protocol", PriceCents: 3499, AnchorCents: 4998,
			Features: []string{
				"Complete personality mapping across both frameworks",
			},
		},
	}
}
