// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AnswerRequest: value (1-5)
  - CheckoutRequest: tier
  - UnlockRequest: tier, paid

# Response Types

Types for JSON responses:

  - StartSessionResponse: session_id, state, item, total_questions, started_at
  - SessionStateResponse: state, cursor, current item, likert options
  - AnswerResponse: state, cursor, completed, next item
  - ResultsResponse: scores, insight, elapsed
  - PaywallResponse: tiers, countdown_seconds, social_proof
  - CheckoutResponse: url
  - AnalysisResponse: analysis, sections, generated_by
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Item: questionnaire statement with reverse-scoring flag
  - Facet: named group of up to 4 item ids
  - Scale: HEXACO domain with 4 facets
  - FacetScore / DomainScore / ScoreResult: derived scores in [1,5]
  - Insight: free teaser (personality type, dominant trait, growth area)
  - PricingTier: paywall card data
  - Section: parsed narrative block

# Constants

Session states:

	StateLanding         = "landing"
	StateInProgress      = "in_progress"
	StateCompleted       = "completed"
	StatePaywallShown    = "paywall_shown"
	StatePremiumUnlocked = "premium_unlocked"

Tiers:

	TierBasic   = "basic"
	TierPremium = "premium"
	TierDual    = "dual"

Likert bounds:

	AnswerMin     = 1
	AnswerMax     = 5
	AnswerNeutral = 3
*/
package models
