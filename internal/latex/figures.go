// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"

	"github.com/pdiddy/texclean/pkg/types"
)

var (
	figureEnv      = regexp.MustCompile(`(?s)\\begin\{(?:figure|sidewaysfigure|wrapfigure)\*?\}(.*?)\\end\{(?:figure|sidewaysfigure|wrapfigure)\*?\}`)
	captionPattern = commandPattern("caption")
)

// convertFigures replaces each figure environment with a "**Figure:**"
// paragraph holding its captions followed by its label markers.
func convertFigures(doc string, p *Pass) string {
	return replaceMatches(figureEnv, doc, func(g []string) string {
		inner := g[1]
		var b strings.Builder
		b.WriteString("\n\n**Figure:** ")
		b.WriteString(collectCaptions(inner, "figure", p))
		if labels := collectLabels(inner); len(labels) > 0 {
			b.WriteString(" " + p.verbatim.putLabels(labels))
		}
		b.WriteString("\n\n")
		return b.String()
	})
}

// collectCaptions joins every \caption argument in text with a space, with
// labels removed and inline formatting applied. An unbalanced caption takes
// the rest of the text and ends the scan.
func collectCaptions(text, kind string, p *Pass) string {
	var captions []string
	pos := 0
	for {
		c, ok := nextCommand(text, captionPattern, pos)
		if !ok {
			break
		}
		captions = append(captions, strings.TrimSpace(stripLabels(c.Arg(text))))
		if !c.Balanced {
			p.Diags.Warn(types.WarnUnbalancedCaption, kind+"s", "unbalanced braces in "+kind+" caption")
			break
		}
		pos = c.End
	}
	return FormatInline(strings.TrimSpace(strings.Join(captions, " ")))
}

// removeCaptionsAndLabels deletes every \caption and \label from text. An
// unbalanced caption removes the rest of the text.
func removeCaptionsAndLabels(text string) string {
	var b strings.Builder
	pos := 0
	for {
		c, ok := nextCommand(text, captionPattern, pos)
		if !ok {
			break
		}
		b.WriteString(text[pos:c.Start])
		pos = c.End
	}
	if pos < len(text) {
		b.WriteString(text[pos:])
	}
	return stripLabels(b.String())
}
