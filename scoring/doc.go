// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring turns raw Likert answers into HEXACO domain and facet scores.

The engine is a pure function over the question bank and an answer sequence:

	result, err := scoring.Score(bank, answers)

Per item: look up the raw answer by 1-based id, reflect reverse-scored items
(v -> 6-v), accumulate into the facet total. Facet score = facet mean; domain
score = mean of the domain's 4 facet means. All scores lie in [1,5] for valid
input, and identical input always yields identical output.

Two modes:

  - Score: strict, requires exactly 60 answers (IncompleteAnswersError
    otherwise).
  - ScoreLenient: pads missing trailing answers with neutral 3.

DeriveInsight computes the free results teaser (personality type label,
dominant trait, growth area) from a ScoreResult.
*/
package scoring
