// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"
)

var maketitlePattern = regexp.MustCompile(`\\maketitle\b`)

// convertAbstract turns the abstract environment into an unnumbered
// "Abstract" section so the heading stage picks it up.
func convertAbstract(doc string) string {
	doc = strings.ReplaceAll(doc, `\begin{abstract}`, `\section*{Abstract}`)
	return strings.ReplaceAll(doc, `\end{abstract}`, "")
}

// insertTitle replaces every \maketitle with the title heading and author line.
func insertTitle(doc string, p *Pass) string {
	return maketitlePattern.ReplaceAllLiteralString(doc, TitleBlock(p.Meta))
}

// TitleBlock renders meta as a level-one heading followed by a bold
// "Authors:" line. Missing parts are omitted; with neither it is empty.
func TitleBlock(meta Metadata) string {
	var b strings.Builder
	if title := TitleText(meta); title != "" {
		b.WriteString("# " + title + "\n\n")
	}
	if len(meta.Authors) > 0 {
		names := make([]string, len(meta.Authors))
		for i, a := range meta.Authors {
			names[i] = FormatInline(a)
		}
		b.WriteString("**Authors:** " + strings.Join(names, ", ") + "\n\n")
	}
	return b.String()
}

// TitleText returns the title with \thanks notes removed and inline
// formatting applied.
func TitleText(meta Metadata) string {
	return FormatInline(strings.TrimSpace(removeCommands(meta.Title, thanksPattern)))
}
