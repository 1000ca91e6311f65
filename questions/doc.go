// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package questions holds the static HEXACO-60 question bank.

The bank is 60 Likert items (ids 1..60) partitioned into 6 domains of 4
facets each, with 2-3 items per facet. Each item carries a reverse-scoring
flag; 29 of the 60 items are reverse-keyed.

# Usage

	bank := questions.Default()
	if err := bank.Validate(); err != nil {
		// refuse to start: scores against a malformed bank would be wrong
	}

Validate enforces the partition invariant: every facet's items exist and
belong to the claimed domain, and every item id 1..60 appears in exactly one
facet. main treats a validation failure as fatal.

# Domains

In declaration (and output) order:

	H  Honesty-Humility
	E  Emotionality
	X  Extraversion
	A  Agreeableness (versus Anger)
	C  Conscientiousness
	O  Openness to Experience

DisplayName shortens "Agreeableness (versus Anger)" to "Agreeableness" for
chart labels and insights.
*/
package questions
