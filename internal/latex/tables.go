// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/texclean/pkg/types"
)

var (
	tableEnv = regexp.MustCompile(`(?s)\\begin\{(?:table|sidewaystable|wraptable)\*?\}.*?\\end\{(?:table|sidewaystable|wraptable)\*?\}`)

	gridToken          = regexp.MustCompile(`\\(begin|end)\{(tabular\*?|tabularx)\}`)
	optionalArg        = regexp.MustCompile(`^\s*\[[^\]]*\]`)
	scalingPattern     = commandPattern("scalebox", "resizebox")
	spanPattern        = commandPattern("multicolumn", "multirow")
	colorPattern       = commandPattern("textcolor", "cellcolor", "rowcolor")
	rulePattern        = regexp.MustCompile(`\\(?:toprule|midrule|bottomrule|hline)\b(?:\[[^\]]*\])?|\\(?:cmidrule|cline)(?:\([^)]*\))?\{[^}]*\}`)
	rowSeparator       = regexp.MustCompile(`\\\\(?:\s*\[[^\]]*\])?`)
	gridArgumentCounts = map[string]int{"tabular": 1, "tabular*": 2, "tabularx": 2}
)

// convertTables replaces each table environment with a "**Table:**" line
// (captions and label markers) followed by a Markdown table per grid. Tables
// that cannot be converted are kept as a fenced LaTeX block.
func convertTables(doc string, p *Pass) string {
	return replaceMatches(tableEnv, doc, func(g []string) string {
		env := g[0]
		head := "\n\n**Table:** " + collectCaptions(env, "table", p) + " " + p.verbatim.putLabels(collectLabels(env)) + "\n\n"

		md, nested := convertGrids(env)
		switch {
		case nested:
			p.Diags.Warn(types.WarnNestedTable, "tables", "nested tabular environments detected; retaining tabular content as LaTeX")
			spans, _ := scanGrids(env)
			sources := make([]string, len(spans))
			for i, s := range spans {
				sources[i] = env[s.start:s.end]
			}
			return head + p.verbatim.put(fence(strings.Join(sources, "\n"))) + "\n\n"
		case md == "":
			p.Diags.Warn(types.WarnTableConversion, "tables", "table conversion failed or no tabulars found")
			return head + p.verbatim.put(fence(removeCaptionsAndLabels(env))) + "\n\n"
		}
		return head + md + "\n"
	})
}

// convertGrids renders every grid in text as a Markdown table. nested
// reports that a grid sits inside another grid, in which case nothing is
// rendered.
func convertGrids(text string) (md string, nested bool) {
	text = unwrapScaling(text)
	spans, nested := scanGrids(text)
	if nested {
		return "", true
	}
	var b strings.Builder
	for _, s := range spans {
		rows := parseRows(text[s.bodyStart:s.bodyEnd])
		if len(rows) == 0 {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(NewTableGrid(rows).Markdown())
		b.WriteString("\n\n")
	}
	return b.String(), false
}

// gridSpan locates one outermost grid environment.
type gridSpan struct {
	start, bodyStart, bodyEnd, end int
}

// scanGrids walks the grid begin/end tokens left to right with a depth
// counter. It returns the outermost closed grids and whether the depth ever
// exceeded one. Stray end tokens are ignored and an unclosed grid is dropped.
func scanGrids(text string) ([]gridSpan, bool) {
	var (
		spans  []gridSpan
		cur    gridSpan
		depth  int
		nested bool
	)
	for _, loc := range gridToken.FindAllStringSubmatchIndex(text, -1) {
		if text[loc[2]:loc[3]] == "begin" {
			depth++
			if depth > 1 {
				nested = true
			}
			if depth == 1 {
				name := text[loc[4]:loc[5]]
				cur = gridSpan{start: loc[0], bodyStart: skipGridArguments(text, loc[1], gridArgumentCounts[name])}
			}
			continue
		}
		if depth == 0 {
			continue
		}
		depth--
		if depth == 0 {
			cur.bodyEnd, cur.end = loc[0], loc[1]
			if cur.bodyStart > cur.bodyEnd {
				cur.bodyStart = cur.bodyEnd
			}
			spans = append(spans, cur)
		}
	}
	return spans, nested
}

// skipGridArguments steps over an optional [pos] argument and n brace groups
// (width and column spec) following \begin{tabular}.
func skipGridArguments(text string, pos, n int) int {
	if loc := optionalArg.FindStringIndex(text[pos:]); loc != nil {
		pos += loc[1]
	}
	for i := 0; i < n; i++ {
		_, end, ok := braceGroup(text, pos)
		if !ok {
			break
		}
		pos = end
	}
	return pos
}

// unwrapScaling replaces \scalebox{f}{X} and \resizebox{w}{h}{X} with X
// until none remain.
func unwrapScaling(text string) string {
	for {
		c, ok := nextCommand(text, scalingPattern, 0)
		if !ok {
			return text
		}
		if !c.Balanced {
			text = text[:c.Start] + text[c.ArgStart:]
			continue
		}
		pos := c.End
		if c.Name == "resizebox" {
			_, pos, _ = braceGroup(text, pos)
		}
		inner, end, _ := braceGroup(text, pos)
		text = text[:c.Start] + inner + text[end:]
	}
}

// parseRows drops rule commands, splits body on \\ and each row on
// unescaped &.
func parseRows(body string) [][]string {
	body = rulePattern.ReplaceAllString(body, "")
	var rows [][]string
	for _, row := range rowSeparator.Split(body, -1) {
		if row = strings.TrimSpace(row); row == "" {
			continue
		}
		rows = append(rows, parseCells(row))
	}
	return rows
}

func parseCells(row string) []string {
	parts := splitUnescaped(expandSpans(row), '&')
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = formatCell(part)
	}
	return cells
}

// expandSpans replaces \multicolumn{n}{spec}{X} with X followed by n-1 empty
// cells and \multirow{n}{width}{X} with X.
func expandSpans(row string) string {
	var b strings.Builder
	pos := 0
	for {
		c, ok := nextCommand(row, spanPattern, pos)
		if !ok || !c.Balanced {
			break
		}
		_, specEnd, ok := braceGroup(row, c.End)
		if !ok {
			break
		}
		content, end, ok := braceGroup(row, specEnd)
		if !ok {
			break
		}
		span := 1
		if c.Name == "multicolumn" {
			if n, err := strconv.Atoi(strings.TrimSpace(c.Arg(row))); err == nil && n > 1 {
				span = n
			}
		}
		b.WriteString(row[pos:c.Start])
		b.WriteString(content)
		b.WriteString(strings.Repeat(" &", span-1))
		pos = end
	}
	b.WriteString(row[pos:])
	return b.String()
}

// splitUnescaped splits s on sep bytes not preceded by a backslash.
func splitUnescaped(s string, sep byte) []string {
	var parts []string
	last := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep && (i == 0 || s[i-1] != '\\') {
			parts = append(parts, s[last:i])
			last = i + 1
		}
	}
	return append(parts, s[last:])
}

func formatCell(cell string) string {
	cell = unwrapColor(cell)
	cell = FormatInline(cell)
	cell = strings.ReplaceAll(cell, `\&`, "&")
	cell = strings.ReplaceAll(cell, "|", `\|`)
	return strings.TrimSpace(cell)
}

// unwrapColor replaces \textcolor{c}{X} with X and drops \cellcolor{c} and
// \rowcolor{c}.
func unwrapColor(text string) string {
	var b strings.Builder
	pos := 0
	for {
		c, ok := nextCommand(text, colorPattern, pos)
		if !ok || !c.Balanced {
			break
		}
		b.WriteString(text[pos:c.Start])
		pos = c.End
		if c.Name == "textcolor" {
			if inner, end, ok := braceGroup(text, c.End); ok {
				b.WriteString(inner)
				pos = end
			}
		}
	}
	b.WriteString(text[pos:])
	return b.String()
}
