// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"

	"github.com/pdiddy/texclean/pkg/types"
)

// Metadata holds the document-level values pulled out of the preamble.
type Metadata struct {
	// Title is the trimmed \title argument, empty when absent.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// RawAuthors is the trimmed \author argument, empty when absent.
	RawAuthors string `json:"raw_authors,omitempty" yaml:"raw_authors,omitempty"`

	// Authors is RawAuthors split into names, see SplitAuthors.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`
}

var (
	titlePattern    = commandPattern("title")
	authorPattern   = commandPattern("author")
	thanksPattern   = commandPattern("thanks")
	authorSeparator = regexp.MustCompile(`\\and\b|,`)
)

// ExtractMetadata removes the first \title and the first \author declaration
// from text and returns them. Later declarations stay in the body untouched.
func ExtractMetadata(text string, diags *Diagnostics) (string, Metadata) {
	var meta Metadata
	text, meta.Title = extractDeclaration(text, titlePattern, diags)
	text, meta.RawAuthors = extractDeclaration(text, authorPattern, diags)
	meta.Authors = SplitAuthors(removeCommands(meta.RawAuthors, thanksPattern))
	return text, meta
}

// extractDeclaration cuts the first command matched by re out of text. An
// unbalanced argument swallows the rest of the text.
func extractDeclaration(text string, re *regexp.Regexp, diags *Diagnostics) (string, string) {
	c, ok := nextCommand(text, re, 0)
	if !ok {
		return text, ""
	}
	if !c.Balanced {
		diags.Warn(types.WarnUnbalancedBraces, "metadata", `unbalanced braces in \`+c.Name+` command`)
		return text[:c.Start], strings.TrimSpace(text[c.ArgStart:])
	}
	return text[:c.Start] + text[c.End:], strings.TrimSpace(c.Arg(text))
}

// SplitAuthors splits a raw author field on \and and commas, trims each name
// and drops empty ones. Order and duplicates are kept.
func SplitAuthors(raw string) []string {
	var authors []string
	for _, part := range authorSeparator.Split(raw, -1) {
		if name := strings.TrimSpace(part); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// SelectBody returns the text between \begin{document} and \end{document},
// or the whole text when there is no document environment.
func SelectBody(text string) string {
	if m := documentBody.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

var documentBody = regexp.MustCompile(`(?s)\\begin\{document\}(.*?)\\end\{document\}`)
