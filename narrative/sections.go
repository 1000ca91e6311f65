// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package narrative

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/danielhkuo/hexaco-protocol/models"
)

// ParseSections splits narrative text into discrete sections using the
// documented micro-format: level 2 or 3 markdown headings introduce a
// section, and everything up to the next heading is its body. Text before
// the first heading, or text with no headings at all, becomes a single
// "Overview" section.
func ParseSections(source string) []models.Section {
	src := []byte(source)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	type headingMark struct {
		title     string
		lineStart int // offset of the heading line, including the marker
		bodyStart int // offset just past the heading text
	}
	var heads []headingMark

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || (h.Level != 2 && h.Level != 3) {
			return ast.WalkContinue, nil
		}
		lines := h.Lines()
		if lines.Len() == 0 {
			return ast.WalkContinue, nil
		}
		first := lines.At(0)
		last := lines.At(lines.Len() - 1)
		heads = append(heads, headingMark{
			title:     strings.TrimSpace(string(src[first.Start:last.Stop])),
			lineStart: startOfLine(src, first.Start),
			bodyStart: last.Stop,
		})
		return ast.WalkContinue, nil
	})

	if len(heads) == 0 {
		body := strings.TrimSpace(source)
		if body == "" {
			return nil
		}
		return []models.Section{{Title: "Overview", Body: body}}
	}

	var sections []models.Section
	if preamble := strings.TrimSpace(string(src[:heads[0].lineStart])); preamble != "" {
		sections = append(sections, models.Section{Title: "Overview", Body: preamble})
	}
	for i, h := range heads {
		end := len(src)
		if i+1 < len(heads) {
			end = heads[i+1].lineStart
		}
		sections = append(sections, models.Section{
			Title: h.title,
			Body:  strings.TrimSpace(string(src[h.bodyStart:end])),
		})
	}
	return sections
}

// startOfLine walks back to the first byte of the line containing off.
func startOfLine(src []byte, off int) int {
	for off > 0 && src[off-1] != '\n' {
		off--
	}
	return off
}
