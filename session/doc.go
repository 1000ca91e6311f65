// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements the assessment flow state machine and the
in-memory session store.

# States

	Landing -> InProgress -> Completed -> PaywallShown -> PremiumUnlocked

Restart returns to Landing from any state. InProgress tracks a cursor that
moves forward by recording an answer and backward by undoing the last one.

# Transitions

  - Start: Landing -> InProgress (fails with ErrAlreadyStarted mid-session)
  - Answer: appends a value in [1,5]; the 60th answer completes the session
  - Back: true undo of the last answer; no-op at cursor 0
  - RequestPaywall: Completed -> PaywallShown
  - Unlock: PaywallShown -> PremiumUnlocked, records the tier
  - Restart: any -> Landing

State-violating calls fail loudly with sentinel errors rather than being
silently ignored.

# Payment re-entry

ResumeUnlocked creates a fresh session directly in PremiumUnlocked for the
return-from-payment redirect (paid=true&tier=... in the URL), with no prior
in-memory history. The tier is recovered best-effort.

# Storage

Sessions live only in memory, keyed by UUID. The store's lock guards the map;
each session is mutated by one user in strict sequence.
*/
package session
