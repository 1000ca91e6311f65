// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package checkout is the hosted-checkout collaborator client.

It creates Stripe Checkout sessions over the REST API (form-encoded POST to
/v1/checkout/sessions) and returns the redirect URL:

	url, err := client.CreateSession(ctx, models.TierPremium)

Tier selection is validated against the configured price mapping before any
network call; an unknown or unmapped tier fails with ErrUnknownTier and no
redirect occurs. Failures surface to the user as a retryable "payment failed"
message — the client never retries on its own.

The success URL carries paid=true&tier=<tier>, which is the contract the
session store's ResumeUnlocked honors on re-entry.
*/
package checkout
