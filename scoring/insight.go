// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"sort"

	"github.com/danielhkuo/hexaco-protocol/models"
	"github.com/danielhkuo/hexaco-protocol/questions"
)

// DeriveInsight produces the free teaser shown with the results: a
// personality type label plus the highest (dominant) and lowest (growth)
// domains. Ties keep bank declaration order.
func DeriveInsight(result models.ScoreResult) models.Insight {
	if len(result.Domains) == 0 {
		return models.Insight{}
	}

	sorted := make([]models.DomainScore, len(result.Domains))
	copy(sorted, result.Domains)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	highest := sorted[0]
	lowest := sorted[len(sorted)-1]

	return models.Insight{
		PersonalityType: personalityType(highest.Domain, lowest.Domain, result),
		DominantTrait:   highest.DisplayName,
		DominantScore:   highest.Score,
		GrowthArea:      lowest.DisplayName,
		GrowthScore:     lowest.Score,
	}
}

func personalityType(high, low string, result models.ScoreResult) string {
	switch {
	case high == questions.DomainOpenness && low == questions.DomainConscientiousness:
		return "The Creative Visionary"
	case high == questions.DomainConscientiousness && low == questions.DomainOpenness:
		return "The Methodical Achiever"
	case high == questions.DomainExtraversion && domainScore(result, questions.DomainAgreeableness) > 3.5:
		return "The Social Harmonizer"
	case high == questions.DomainHonesty:
		return "The Authentic Leader"
	case high == questions.DomainEmotionality:
		return "The Empathetic Connector"
	default:
		return "The Balanced Individual"
	}
}

func domainScore(result models.ScoreResult, domain string) float64 {
	for _, d := range result.Domains {
		if d.Domain == domain {
			return d.Score
		}
	}
	return 0
}
