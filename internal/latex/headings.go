// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import "strings"

const labelOpen = `\label{`

var (
	headingPattern = commandPattern("section", "subsection", "subsubsection", "paragraph", "runningtitle")
	headingLevels  = map[string]int{
		"section":       1,
		"subsection":    2,
		"subsubsection": 3,
		"paragraph":     4,
		"runningtitle":  1,
	}
)

// convertHeadings rewrites sectioning commands as Markdown headings. A
// \label directly after the command goes on the line below the heading.
func convertHeadings(doc string, _ *Pass) string {
	var b strings.Builder
	pos := 0
	for {
		c, ok := nextCommand(doc, headingPattern, pos)
		if !ok || !c.Balanced {
			break
		}
		b.WriteString(doc[pos:c.Start])
		pos = c.End

		label := ""
		next := pos
		for next < len(doc) && isBlank(doc[next]) {
			next++
		}
		if strings.HasPrefix(doc[next:], labelOpen) {
			if end, ok := MatchBrace(doc, next+len(labelOpen)); ok {
				label = doc[next+len(labelOpen) : end-1]
				pos = end
			}
		}
		b.WriteString(heading(headingLevels[c.Name], strings.TrimSpace(c.Arg(doc)), label))
	}
	b.WriteString(doc[pos:])
	return b.String()
}

func heading(level int, title, label string) string {
	s := "\n\n" + strings.Repeat("#", level) + " " + title
	if label != "" {
		s += "\n" + labelMarker(label)
	}
	return s + "\n\n"
}
