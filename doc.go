// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the HEXACO Protocol API server.

HEXACO Protocol is the backend for a 60-item personality assessment: it
serves the question bank, walks a session through the questionnaire one
answer at a time, computes domain and facet scores with reverse-keyed
items, and gates a generated narrative analysis behind a paywall.

# Starting the Server

The server reads environment variables (a .env file is loaded if present)
or CLI flags:

	GEMINI_API_KEY=... STRIPE_SECRET_KEY=sk_... go run main.go

Or with flags:

	go run main.go -p 3321 -origin "https://hexaco.example.com"

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3321)
  - PUBLIC_ORIGIN (-origin): Front-end origin for redirects and share links
  - STRIPE_SECRET_KEY (-stripe-key): Hosted checkout credentials
  - HEXACO_BASIC_PRICE_ID, HEXACO_PREMIUM_PRICE_ID, HEXACO_DUAL_PRICE_ID
  - GEMINI_API_KEY (-gemini-key): Narrative generation credentials
  - GEMINI_MODEL (-gemini-model): Model override
  - SKIP_PAYMENT (-skip-payment): Unlock without a completed payment
  - LENIENT_SCORING (-lenient-scoring): Score incomplete answer sets

Neither collaborator credential is required at startup: without a Gemini
key the analysis falls back to deterministic text, and without a Stripe
key only the checkout endpoint fails.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (sessions, results, checkout, analysis)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - questions: The 60-item bank and its scale structure
  - scoring: Reverse-keying, facet and domain means, free insight
  - session: State machine and in-memory store
  - checkout: Hosted checkout collaborator
  - narrative: Generated analysis with fallback and section parsing
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
