// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package narrative

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danielhkuo/hexaco-protocol/models"
)

// Fallback produces the deterministic local analysis used when the
// generation collaborator is unavailable. It follows the same section
// convention ("## Title" / "### Title") as generated output, so the parser
// and the premium view treat both identically.
func Fallback(scores models.ScoreResult) string {
	if len(scores.Domains) == 0 {
		return "## Your Personality Profile\n\nNo scores are available yet. Complete the assessment to see your analysis."
	}

	sorted := make([]models.DomainScore, len(scores.Domains))
	copy(sorted, scores.Domains)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	highest := sorted[0]
	lowest := sorted[len(sorted)-1]

	return fmt.Sprintf(`## Your Personality Profile

Your HEXACO results reveal a unique personality pattern centered around your strongest trait: **%s** (%.1f/5). This dominant characteristic significantly influences how you approach relationships, work, and personal growth.

### Relationship Insights

Your personality suggests you approach relationships with a blend of emotional intelligence and practical consideration. Your %s trait means you likely value authentic connections and bring stability to your relationships. You may find that you're naturally drawn to people who appreciate your %s nature.

### Career Recommendations

Based on your profile, you would thrive in environments that leverage your natural %s. Consider roles that allow you to utilize this strength while providing opportunities to develop your %s (%.1f/5), which represents your biggest growth area.

### Personal Development

Focus on developing your %s skills through deliberate practice and mindful attention. This balanced approach will help you become more well-rounded while maintaining your natural strengths in %s.

*Note: This is a simplified analysis. For the full AI-powered insights, please ensure your internet connection is stable and try again.*`,
		highest.DisplayName, highest.Score,
		highest.DisplayName, strings.ToLower(highest.DisplayName),
		strings.ToLower(highest.DisplayName), strings.ToLower(lowest.DisplayName), lowest.Score,
		lowest.DisplayName, strings.ToLower(highest.DisplayName))
}
