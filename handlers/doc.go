// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the HEXACO Protocol API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - BankHandler: question bank retrieval
  - SessionHandler: session lifecycle (start, answer, back, restart, resume)
  - ResultsHandler: scores + free insight, paywall, unlock
  - CheckoutHandler: hosted checkout session creation
  - AnalysisHandler: premium narrative, export, share

# Assessment Flow

Sessions progress landing → in_progress → completed → paywall_shown →
premium_unlocked:

	POST /sessions                     → StartSession
	POST /sessions/{id}/answers        → SubmitAnswer (60th completes)
	POST /sessions/{id}/back           → GoBack (true undo)
	POST /sessions/{id}/restart        → Restart (any state)
	GET  /sessions/{id}/results        → GetResults (recomputed scores)
	POST /sessions/{id}/paywall        → ShowPaywall
	POST /sessions/{id}/checkout       → CreateCheckout (returns redirect URL)
	POST /sessions/{id}/unlock         → Unlock (paid marker or skip-payment)
	POST /sessions/resume              → Resume (paid=true&tier=... re-entry)

# Premium

	GET /sessions/{id}/analysis         → GetAnalysis
	GET /sessions/{id}/analysis/export  → ExportAnalysis (text attachment)
	GET /sessions/{id}/analysis/share   → ShareAnalysis

Scores are always recomputed from the raw answer sequence at display time;
the answers are the single source of truth and nothing derived is cached
across views.
*/
package handlers
