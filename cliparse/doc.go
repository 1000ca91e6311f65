// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

Flags win over environment variables; both are optional except where noted:

  - PORT (-p): server port (default 3321)
  - PUBLIC_ORIGIN (-origin): origin for payment success/cancel redirect URLs
  - STRIPE_SECRET_KEY (-stripe-key): checkout collaborator credential
  - HEXACO_BASIC_PRICE_ID / HEXACO_PREMIUM_PRICE_ID / HEXACO_DUAL_PRICE_ID:
    tier to Stripe price mapping (env only)
  - GEMINI_API_KEY (-gemini-key), GEMINI_MODEL (-gemini-model): narrative
    generation collaborator
  - SKIP_PAYMENT (-skip-payment): dev-only unlock without a payment marker
  - LENIENT_SCORING (-lenient-scoring): neutral substitution for missing
    answers

Collaborator credentials are deliberately not required at startup: narrative
generation degrades to a local fallback and checkout reports a user-visible
failure instead.
*/
package cliparse
