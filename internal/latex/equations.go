// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"
)

var equationEnv = regexp.MustCompile(`(?s)\\begin\{equation\*?\}(.*?)\\end\{equation\*?\}`)

// convertEquations wraps each equation body in a $$ block. Label markers
// move to their own lines at the top of the block; the rest of the body is
// shelved so no later stage touches it.
func convertEquations(doc string, p *Pass) string {
	return replaceMatches(equationEnv, doc, func(g []string) string {
		body := strings.TrimSpace(g[1])
		labels := collectLabels(body)
		if len(labels) > 0 {
			body = strings.TrimSpace(stripLabels(body))
		}
		var b strings.Builder
		b.WriteString("$$\n")
		for _, label := range labels {
			b.WriteString(labelMarker(label))
			b.WriteByte('\n')
		}
		b.WriteString(body)
		b.WriteString("\n$$")
		return "\n\n" + p.verbatim.put(b.String()) + "\n\n"
	})
}
