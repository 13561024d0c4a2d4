// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"
)

var (
	// spacingCommands take a brace argument that is removed with them.
	spacingCommands = regexp.MustCompile(`\\(?:vspace|hspace|ignore|bibliographystyle)\b\*?(?:\[[^\]]*\])?[ \t]*`)
	bareCommands    = regexp.MustCompile(`\\(?:bigskip|smallskip|medskip|noindent|centering)\b[ \t]*`)
	breakCommands   = regexp.MustCompile(`\\(?:newpage|pagebreak|linebreak|clearpage|cleardoublepage)\b\*?(?:\[[^\]]*\])?\s*`)

	spaceAroundNewline = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	spaceRun           = regexp.MustCompile(` {2,}`)
	newlineRun         = regexp.MustCompile(`\n{3,}`)
)

// StripLeftovers removes spacing commands that carry no content and turns
// page and line break commands into paragraph breaks.
func StripLeftovers(text string) string {
	var b strings.Builder
	pos := 0
	for _, loc := range spacingCommands.FindAllStringIndex(text, -1) {
		if loc[0] < pos {
			continue
		}
		b.WriteString(text[pos:loc[0]])
		pos = loc[1]
		if pos < len(text) && text[pos] == '{' {
			pos, _ = MatchBrace(text, pos+1)
		}
	}
	b.WriteString(text[pos:])

	text = bareCommands.ReplaceAllString(b.String(), "")
	text = breakCommands.ReplaceAllString(text, "\n\n")
	return newlineRun.ReplaceAllString(text, "\n\n")
}

// FinalCleanup strips blanks around newlines, collapses runs of spaces and
// of blank lines, trims the text and ends it with exactly one newline.
// Applying it twice gives the same result as applying it once.
func FinalCleanup(text string) string {
	text = spaceAroundNewline.ReplaceAllString(text, "\n")
	text = spaceRun.ReplaceAllString(text, " ")
	text = newlineRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text) + "\n"
}
