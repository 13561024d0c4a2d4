// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	listToken = regexp.MustCompile(`\\(begin|end)\{(enumerate|itemize|description)\}`)
	itemToken = regexp.MustCompile(`\\item\b`)
	strayItem = regexp.MustCompile(`\\item\s+`)
)

// listSpan locates one list environment and its body.
type listSpan struct {
	kind                           string
	start, bodyStart, bodyEnd, end int
}

type openList struct {
	kind             string
	start, bodyStart int
}

// convertLists renders enumerate, itemize and description environments as
// Markdown lists, innermost first, then turns any \item left outside a list
// into a bullet.
func convertLists(doc string, _ *Pass) string {
	for {
		span, ok := innermostList(doc)
		if !ok {
			break
		}
		doc = doc[:span.start] + renderList(span.kind, doc[span.bodyStart:span.bodyEnd]) + doc[span.end:]
	}
	return strayItem.ReplaceAllString(doc, "\n- ")
}

// innermostList pairs the first list end token with the closest preceding
// begin token of the same kind.
func innermostList(doc string) (listSpan, bool) {
	var open []openList
	for _, loc := range listToken.FindAllStringSubmatchIndex(doc, -1) {
		kind := doc[loc[4]:loc[5]]
		if doc[loc[2]:loc[3]] == "begin" {
			bodyStart := loc[1]
			if opt := optionalArg.FindStringIndex(doc[bodyStart:]); opt != nil {
				bodyStart += opt[1]
			}
			open = append(open, openList{kind: kind, start: loc[0], bodyStart: bodyStart})
			continue
		}
		for i := len(open) - 1; i >= 0; i-- {
			if open[i].kind == kind {
				return listSpan{kind: kind, start: open[i].start, bodyStart: open[i].bodyStart, bodyEnd: loc[0], end: loc[1]}, true
			}
		}
	}
	return listSpan{}, false
}

// renderList splits body on \item and emits one Markdown list line per
// non-empty item. An \item[term] label is rendered bold before the text.
func renderList(kind, body string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	n := 0
	for _, item := range itemToken.Split(body, -1) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		term := ""
		if strings.HasPrefix(item, "[") {
			if j := strings.IndexByte(item, ']'); j > 0 {
				term = strings.TrimSpace(item[1:j])
				item = strings.TrimSpace(item[j+1:])
			}
		}
		n++
		if kind == "enumerate" {
			fmt.Fprintf(&b, "%d. ", n)
		} else {
			b.WriteString("- ")
		}
		if term != "" {
			b.WriteString("**" + FormatInline(term) + "**")
			if item != "" {
				b.WriteByte(' ')
			}
		}
		b.WriteString(FormatInline(item))
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	return b.String()
}
