// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"
)

// command is one occurrence of \name{arg} whose argument was delimited with
// MatchBrace.
type command struct {
	Name     string
	Start    int // backslash
	ArgStart int // just past '{'
	ArgEnd   int // closing '}', or len(text) when unbalanced
	End      int // just past '}'
	Balanced bool
}

// Arg returns the command's argument within text.
func (c command) Arg(text string) string {
	return text[c.ArgStart:c.ArgEnd]
}

// commandPattern matches a backslash, one of names, an optional star and an
// optional [...] argument, up to and including the '{' of the mandatory
// argument. The first submatch is the command name.
func commandPattern(names ...string) *regexp.Regexp {
	return regexp.MustCompile(`\\(` + strings.Join(names, "|") + `)\*?(?:\[[^\]]*\])?\{`)
}

// nextCommand finds the first command matched by re at or after from.
func nextCommand(text string, re *regexp.Regexp, from int) (command, bool) {
	c, ok := findCommand(text, re, from)
	if ok {
		c.delimit(text)
	}
	return c, ok
}

// findCommand locates the next match of re without delimiting its argument.
func findCommand(text string, re *regexp.Regexp, from int) (command, bool) {
	if from >= len(text) {
		return command{}, false
	}
	loc := re.FindStringSubmatchIndex(text[from:])
	if loc == nil {
		return command{}, false
	}
	return command{
		Name:     text[from+loc[2] : from+loc[3]],
		Start:    from + loc[0],
		ArgStart: from + loc[1],
	}, true
}

func (c *command) delimit(text string) {
	c.End, c.Balanced = MatchBrace(text, c.ArgStart)
	c.ArgEnd = c.End
	if c.Balanced {
		c.ArgEnd = c.End - 1
	}
}

// braceDepths answers whether an argument opened at a given offset ever
// closes, in constant time. prefix[i] is the brace depth of text[:i] and
// lowest[i] the minimum of prefix over [i, len(text)].
type braceDepths struct {
	prefix, lowest []int
}

func newBraceDepths(text string) *braceDepths {
	d := &braceDepths{prefix: make([]int, len(text)+1), lowest: make([]int, len(text)+1)}
	for i := 0; i < len(text); i++ {
		d.prefix[i+1] = d.prefix[i]
		switch text[i] {
		case '{':
			d.prefix[i+1]++
		case '}':
			d.prefix[i+1]--
		}
	}
	d.lowest[len(text)] = d.prefix[len(text)]
	for i := len(text) - 1; i >= 0; i-- {
		d.lowest[i] = min(d.prefix[i], d.lowest[i+1])
	}
	return d
}

// closes reports whether MatchBrace(text, argStart) would find a match.
func (d *braceDepths) closes(argStart int) bool {
	return d.lowest[argStart] < d.prefix[argStart]
}

// rewriteCommands replaces every balanced command matched by re with the
// result of repl. Unbalanced commands are left in place. After the first
// unbalanced argument the remaining ones are detected from brace depths
// instead of rescanning to the end of text each time.
func rewriteCommands(text string, re *regexp.Regexp, repl func(name, arg string) string) string {
	var (
		b      strings.Builder
		depths *braceDepths
	)
	pos := 0
	for {
		c, ok := findCommand(text, re, pos)
		if !ok {
			break
		}
		if depths == nil || depths.closes(c.ArgStart) {
			c.delimit(text)
			if !c.Balanced && depths == nil {
				depths = newBraceDepths(text)
			}
		}
		if !c.Balanced {
			b.WriteString(text[pos:c.ArgStart])
			pos = c.ArgStart
			continue
		}
		b.WriteString(text[pos:c.Start])
		b.WriteString(repl(c.Name, c.Arg(text)))
		pos = c.End
	}
	b.WriteString(text[pos:])
	return b.String()
}

// removeCommands deletes every balanced command matched by re, argument included.
func removeCommands(text string, re *regexp.Regexp) string {
	return rewriteCommands(text, re, func(string, string) string { return "" })
}

// replaceMatches calls repl with the submatches of every match of re and
// splices the result in place of the match.
func replaceMatches(re *regexp.Regexp, text string, repl func(groups []string) string) string {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if locs == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(repl(groups))
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

var labelPattern = commandPattern("label")

// collectLabels returns the arguments of every \label in text, in order.
func collectLabels(text string) []string {
	var labels []string
	pos := 0
	for {
		c, ok := nextCommand(text, labelPattern, pos)
		if !ok || !c.Balanced {
			return labels
		}
		labels = append(labels, c.Arg(text))
		pos = c.End
	}
}

// stripLabels removes every \label from text.
func stripLabels(text string) string {
	return removeCommands(text, labelPattern)
}

func labelMarker(label string) string {
	return `\label{` + label + `}`
}

// labelMarkers renders labels as space separated \label markers.
func labelMarkers(labels []string) string {
	markers := make([]string, len(labels))
	for i, l := range labels {
		markers[i] = labelMarker(l)
	}
	return strings.Join(markers, " ")
}
