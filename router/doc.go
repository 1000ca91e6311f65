// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the HEXACO Protocol API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(bank, store, cfg, checkoutClient, narrativeSvc)

# Endpoints

Health:

	GET /health

Question bank (static):

	GET /questions

Session lifecycle:

	POST /sessions                - Start a new assessment
	POST /sessions/resume         - Resume after a payment redirect
	GET  /sessions/{id}           - Current state snapshot
	POST /sessions/{id}/answers   - Submit an answer (auto-advance)
	POST /sessions/{id}/back      - Step back one question
	POST /sessions/{id}/restart   - Discard and return to landing

Results and paywall:

	GET  /sessions/{id}/results - Domain/facet scores and free insight
	POST /sessions/{id}/paywall - Show pricing tiers
	POST /sessions/{id}/unlock  - Mark a tier as unlocked

Checkout:

	POST /sessions/{id}/checkout - Create a hosted checkout session

Premium narrative (unlocked sessions only):

	GET /sessions/{id}/analysis        - Full narrative with sections
	GET /sessions/{id}/analysis/export - Plain-text download
	GET /sessions/{id}/analysis/share  - Share payload

# Handler Initialization

The router creates handler instances with dependency injection:

	bankHandler := handlers.NewBankHandler(bank)
	sessionHandler := handlers.NewSessionHandler(store, bank, cfg)
	resultsHandler := handlers.NewResultsHandler(store, bank, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(store, checkoutClient)
	analysisHandler := handlers.NewAnalysisHandler(store, bank, cfg, narrativeSvc)
*/
package router
