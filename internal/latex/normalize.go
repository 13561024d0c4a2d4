// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"
)

// paragraphBreak matches a blank line and any whitespace that follows it.
var paragraphBreak = regexp.MustCompile(`\n[ \t]*\n\s*`)

// Normalize removes comments and reflows the text: paragraphs are separated
// by exactly one blank line and every other run of whitespace, newlines
// included, becomes a single space.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = stripComments(text)

	paragraphs := paragraphBreak.Split(text, -1)
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p = strings.Join(strings.Fields(p), " "); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}

// stripComments drops everything from an unescaped % to the end of its line.
// Lines holding nothing but a comment are dropped whole so they do not split
// the surrounding paragraph.
func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		i := commentStart(line)
		switch {
		case i < 0:
			out = append(out, line)
		case strings.TrimSpace(line[:i]) != "":
			out = append(out, line[:i])
		}
	}
	return strings.Join(out, "\n")
}

func commentStart(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] == '%' && (i == 0 || line[i-1] != '\\') {
			return i
		}
	}
	return -1
}
