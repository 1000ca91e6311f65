// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questions

import (
	"fmt"

	"github.com/danielhkuo/hexaco-protocol/models"
)

// HEXACO domain names as used in the scoring key. Agreeableness carries its
// full instrument name; use DisplayName for the short form shown to users.
const (
	DomainHonesty           = "Honesty-Humility"
	DomainEmotionality      = "Emotionality"
	DomainExtraversion      = "Extraversion"
	DomainAgreeableness     = "Agreeableness (versus Anger)"
	DomainConscientiousness = "Conscientiousness"
	DomainOpenness          = "Openness to Experience"
)

// Bank is an immutable question bank: the ordered 60-item list plus the six
// domain scales that partition it.
type Bank struct {
	items  []models.Item
	scales []models.Scale
}

// New builds a Bank from explicit items and scales. Callers should run
// Validate before scoring against it.
func New(items []models.Item, scales []models.Scale) *Bank {
	return &Bank{items: items, scales: scales}
}

// Default returns the standard HEXACO-60 bank.
func Default() *Bank {
	items := make([]models.Item, 0, len(itemDefs))
	for _, d := range itemDefs {
		items = append(items, models.Item{
			ID:            d.id,
			Text:          d.text,
			Domain:        d.domain,
			ReverseScored: d.reverse,
		})
	}
	return &Bank{items: items, scales: scaleDefs}
}

// Items returns the ordered item list (ids 1..60).
func (b *Bank) Items() []models.Item {
	return b.items
}

// Scales returns the six domains in declaration order.
func (b *Bank) Scales() []models.Scale {
	return b.scales
}

// Item looks up an item by its 1-based id.
func (b *Bank) Item(id int) (models.Item, bool) {
	for _, it := range b.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Item{}, false
}

// Validate checks the partition invariant: every facet's items exist and
// belong to the claimed domain, and every item id 1..60 appears in exactly
// one facet. A failure here is fatal at startup; scoring against a malformed
// bank would be silently wrong.
func (b *Bank) Validate() error {
	if len(b.items) != models.TotalItems {
		return fmt.Errorf("bank has %d items, want %d", len(b.items), models.TotalItems)
	}

	byID := make(map[int]models.Item, len(b.items))
	for _, it := range b.items {
		if it.ID < 1 || it.ID > models.TotalItems {
			return fmt.Errorf("item id %d out of range 1..%d", it.ID, models.TotalItems)
		}
		if _, dup := byID[it.ID]; dup {
			return fmt.Errorf("duplicate item id %d", it.ID)
		}
		byID[it.ID] = it
	}

	seen := make(map[int]string)
	for _, scale := range b.scales {
		if len(scale.Facets) != 4 {
			return fmt.Errorf("domain %q has %d facets, want 4", scale.Domain, len(scale.Facets))
		}
		for _, facet := range scale.Facets {
			if len(facet.Items) == 0 || len(facet.Items) > 4 {
				return fmt.Errorf("facet %q has %d items, want 1..4", facet.Name, len(facet.Items))
			}
			for _, id := range facet.Items {
				item, ok := byID[id]
				if !ok {
					return fmt.Errorf("facet %q references unknown item %d", facet.Name, id)
				}
				if item.Domain != scale.Domain {
					return fmt.Errorf("item %d belongs to domain %q but facet %q claims %q",
						id, item.Domain, facet.Name, scale.Domain)
				}
				if prev, dup := seen[id]; dup {
					return fmt.Errorf("item %d appears in both facet %q and facet %q", id, prev, facet.Name)
				}
				seen[id] = facet.Name
			}
		}
	}

	if len(seen) != models.TotalItems {
		return fmt.Errorf("facets cover %d items, want %d", len(seen), models.TotalItems)
	}
	return nil
}

// DisplayName maps a domain to the short form used in charts and insights.
func DisplayName(domain string) string {
	if domain == DomainAgreeableness {
		return "Agreeableness"
	}
	return domain
}

// LikertOptions returns the five response options in ascending order.
func LikertOptions() []models.Likert {
	return []models.Likert{
		{Value: 1, Label: "Strongly Disagree"},
		{Value: 2, Label: "Disagree"},
		{Value: 3, Label: "Neutral"},
		{Value: 4, Label: "Agree"},
		{Value: 5, Label: "Strongly Agree"},
	}
}
