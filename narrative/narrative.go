// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package narrative

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/hexaco-protocol/models"
)

// Generated-by markers in AnalysisResponse.
const (
	SourceGemini   = "gemini"
	SourceFallback = "fallback"
)

// Generator produces free text from a prompt. The Gemini client implements
// it; tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service orchestrates narrative generation: build the prompt, await the
// generator once, and substitute the deterministic local fallback on any
// failure or timeout. No retries — the user re-initiates if they want
// another attempt.
type Service struct {
	gen     Generator
	timeout time.Duration
}

// NewService wraps gen. A nil gen means the collaborator is unconfigured and
// every request takes the fallback path.
func NewService(gen Generator) *Service {
	return &Service{gen: gen, timeout: 60 * time.Second}
}

// Analyze returns the narrative text, its parsed sections, and which source
// produced it.
func (s *Service) Analyze(ctx context.Context, scores models.ScoreResult) (string, []models.Section, string) {
	if s.gen != nil {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		text, err := s.gen.Generate(ctx, BuildPrompt(scores))
		if err == nil && strings.TrimSpace(text) != "" {
			return text, ParseSections(text), SourceGemini
		}
		slog.Warn("narrative generation failed, using fallback", "error", err)
	}

	text := Fallback(scores)
	return text, ParseSections(text), SourceFallback
}

// BuildPrompt embeds the per-domain scores in the fixed instruction
// template. Scores are formatted "<Domain>: <score>/5" with two decimals,
// joined by commas.
func BuildPrompt(scores models.ScoreResult) string {
	parts := make([]string, 0, len(scores.Domains))
	for _, d := range scores.Domains {
		parts = append(parts, fmt.Sprintf("%s: %.2f/5", d.Domain, d.Score))
	}

	return fmt.Sprintf(`Based on these HEXACO personality test scores: %s

Please provide a comprehensive personality analysis that includes:

1. **Personality Overview** (2-3 paragraphs about their core personality)
2. **Relationship Insights** (how they interact with others, love languages, potential challenges)
3. **Career Recommendations** (ideal work environments, leadership style, team dynamics)
4. **Personal Growth Areas** (specific development opportunities with actionable advice)
5. **Decision-Making Style** (how they approach choices and problem-solving)
6. **Stress Management** (what causes stress and how to handle it based on their profile)

Make it personal, insightful, and actionable. Write as if speaking directly to the person. Be specific about how their unique combination of traits creates their personality pattern.`,
		strings.Join(parts, ", "))
}
