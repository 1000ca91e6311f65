// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"

	"github.com/danielhkuo/hexaco-protocol/models"
	"github.com/danielhkuo/hexaco-protocol/questions"
)

// IncompleteAnswersError reports an answer sequence of the wrong length in
// strict mode.
type IncompleteAnswersError struct {
	Got  int
	Want int
}

func (e *IncompleteAnswersError) Error() string {
	return fmt.Sprintf("incomplete answers: got %d, want %d", e.Got, e.Want)
}

// Score computes domain and facet scores from a complete answer sequence.
// Strict mode: exactly 60 answers, each in [1,5]. The computation is pure and
// deterministic; callers recompute from raw answers rather than caching.
//
// Per facet, reverse-scored items are reflected (v -> 6-v) before averaging.
// The domain score is the mean of its 4 facet means, so facets with fewer
// items weigh the same as larger ones.
func Score(bank *questions.Bank, answers []int) (models.ScoreResult, error) {
	if len(answers) != models.TotalItems {
		return models.ScoreResult{}, &IncompleteAnswersError{Got: len(answers), Want: models.TotalItems}
	}
	return compute(bank, answers)
}

// ScoreLenient computes scores from a possibly-partial answer sequence,
// substituting the neutral value 3 for any missing answer. The substitution
// mirrors the behavior the original front end exhibited by index-based
// lookup; it is opt-in here (see the lenient-scoring config flag) rather
// than a silent default.
func ScoreLenient(bank *questions.Bank, answers []int) (models.ScoreResult, error) {
	if len(answers) > models.TotalItems {
		return models.ScoreResult{}, &IncompleteAnswersError{Got: len(answers), Want: models.TotalItems}
	}
	padded := make([]int, models.TotalItems)
	copy(padded, answers)
	for i := len(answers); i < models.TotalItems; i++ {
		padded[i] = models.AnswerNeutral
	}
	return compute(bank, padded)
}

func compute(bank *questions.Bank, answers []int) (models.ScoreResult, error) {
	for i, v := range answers {
		if v < models.AnswerMin || v > models.AnswerMax {
			return models.ScoreResult{}, fmt.Errorf("answer %d has value %d, want %d..%d",
				i+1, v, models.AnswerMin, models.AnswerMax)
		}
	}

	result := models.ScoreResult{Domains: make([]models.DomainScore, 0, len(bank.Scales()))}
	for _, scale := range bank.Scales() {
		domainTotal := 0.0
		facetScores := make([]models.FacetScore, 0, len(scale.Facets))

		for _, facet := range scale.Facets {
			facetTotal := 0
			for _, id := range facet.Items {
				item, ok := bank.Item(id)
				if !ok {
					return models.ScoreResult{}, fmt.Errorf("facet %q references unknown item %d", facet.Name, id)
				}
				v := answers[item.ID-1]
				if item.ReverseScored {
					v = 6 - v
				}
				facetTotal += v
			}
			score := float64(facetTotal) / float64(len(facet.Items))
			facetScores = append(facetScores, models.FacetScore{Name: facet.Name, Score: score})
			domainTotal += score
		}

		result.Domains = append(result.Domains, models.DomainScore{
			Domain:      scale.Domain,
			DisplayName: questions.DisplayName(scale.Domain),
			Score:       domainTotal / float64(len(scale.Facets)),
			Facets:      facetScores,
		})
	}
	return result, nil
}
