// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package narrative is the narrative-generation collaborator: it turns computed
HEXACO scores into a sectioned free-text analysis.

# Flow

	svc := narrative.NewService(gen) // gen may be nil
	text, sections, source := svc.Analyze(ctx, scores)

BuildPrompt embeds the per-domain scores ("<Domain>: 3.20/5", comma-joined)
in a fixed instruction template requesting six named sections. The Gemini
generator is awaited once with a timeout; on failure, timeout, or when no
generator is configured, the deterministic Fallback text substitutes. There
is no retry loop.

# Micro-format

Generated and fallback text both follow a markdown heading convention:

	## <Title>
	<body>
	### <Title>
	<body>

ParseSections parses this into discrete sections via the goldmark AST.
Text without headings yields a single "Overview" section.
*/
package narrative
