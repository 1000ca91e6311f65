// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/hexaco-protocol/checkout"
	"github.com/danielhkuo/hexaco-protocol/middleware"
	"github.com/danielhkuo/hexaco-protocol/models"
	"github.com/danielhkuo/hexaco-protocol/session"
)

type CheckoutHandler struct {
	store  *session.Store
	client *checkout.Client
}

func NewCheckoutHandler(store *session.Store, client *checkout.Client) *CheckoutHandler {
	return &CheckoutHandler{store: store, client: client}
}

// CreateCheckout handles POST /sessions/{id}/checkout. It maps the selected
// tier to a hosted checkout session and returns the redirect URL. An unknown
// tier is a validation failure surfaced before any network call; collaborator
// failures surface as a retryable payment error. The user re-initiates —
// there is no automatic retry.
func (h *CheckoutHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s, ok := h.store.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	if s.State != models.StatePaywallShown {
		middleware.ErrorResponse(w, http.StatusConflict, "Paywall has not been shown")
		return
	}

	var req models.CheckoutRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	url, err := h.client.CreateSession(r.Context(), req.Tier)
	if err != nil {
		if errors.Is(err, checkout.ErrUnknownTier) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid tier: "+req.Tier)
			return
		}
		slog.Error("checkout session creation failed", "error", err, "session_id", s.ID, "tier", req.Tier)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Payment failed, please try again")
		return
	}

	slog.Info("checkout session created", "session_id", s.ID, "tier", req.Tier)
	middleware.JSONResponse(w, http.StatusOK, models.CheckoutResponse{URL: url})
}
