// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview renders converted Markdown as HTML for review in a
// browser.
package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/texclean/internal/convert"
)

// Heading is one entry of a document outline.
type Heading struct {
	Level int
	Text  string
	ID    string
}

// Renderer converts Markdown to HTML with GitHub-style tables.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer with the table and strikethrough extensions and
// automatic heading IDs.
func New() *Renderer {
	return &Renderer{md: goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Strikethrough),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)}
}

// Fragment writes the HTML body for markdown. Raw HTML in the input is
// not passed through.
func (r *Renderer) Fragment(w io.Writer, markdown string) error {
	if err := r.md.Convert([]byte(markdown), w); err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	return nil
}

// Outline lists the headings of markdown in document order.
func (r *Renderer) Outline(markdown string) []Heading {
	src := []byte(markdown)
	doc := r.md.Parser().Parse(text.NewReader(src))

	var out []Heading
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		heading := Heading{Level: h.Level, Text: plainText(h, src)}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				heading.ID = string(b)
			}
		}
		out = append(out, heading)
		return ast.WalkSkipChildren, nil
	})
	return out
}

// plainText concatenates the text segments below n.
func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { max-width: 48rem; margin: 2rem auto; padding: 0 1rem; font-family: sans-serif; line-height: 1.5; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 0.25rem 0.5rem; }
pre { background: #f4f4f4; padding: 0.75rem; overflow-x: auto; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// Page writes a standalone HTML document for converted output. A YAML
// frontmatter block is removed first and its title, when present, names
// the page; otherwise fallbackTitle does.
func (r *Renderer) Page(w io.Writer, converted, fallbackTitle string) error {
	fm, body, err := convert.SplitFrontmatter(converted)
	if err != nil {
		return err
	}
	title := fallbackTitle
	if fm != nil && fm.Title != "" {
		title = fm.Title
	}

	var buf bytes.Buffer
	if err := r.Fragment(&buf, body); err != nil {
		return err
	}
	return pageTemplate.Execute(w, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(buf.String())})
}
