// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"log/slog"

	"github.com/pdiddy/texclean/pkg/types"
)

// Pass carries the values shared by the stages of one conversion: the
// extracted metadata, the warning collector and the blocks shelved for
// verbatim output.
type Pass struct {
	Meta     Metadata
	Diags    *Diagnostics
	verbatim *shelf
}

// NewPass starts a conversion pass.
func NewPass(meta Metadata, diags *Diagnostics) *Pass {
	return &Pass{Meta: meta, Diags: diags, verbatim: &shelf{}}
}

// Restore puts the shelved verbatim blocks back in place of their tokens.
func (p *Pass) Restore(doc string) string {
	return p.verbatim.restore(doc)
}

// Stage is one rewrite pass over the document body.
type Stage struct {
	Name  string
	Apply func(doc string, p *Pass) string
}

// Stages returns the rewrite passes in the order they must run. Later
// stages rely on earlier ones having consumed their environments: lists
// must not see table cells, inline formatting must come after captions are
// extracted, and cleanup runs last.
func Stages() []Stage {
	return []Stage{
		{Name: "abstract", Apply: func(doc string, _ *Pass) string { return convertAbstract(doc) }},
		{Name: "title", Apply: insertTitle},
		{Name: "figures", Apply: convertFigures},
		{Name: "tables", Apply: convertTables},
		{Name: "equations", Apply: convertEquations},
		{Name: "headings", Apply: convertHeadings},
		{Name: "lists", Apply: convertLists},
		{Name: "inline", Apply: func(doc string, _ *Pass) string { return FormatInline(doc) }},
		{Name: "leftovers", Apply: func(doc string, _ *Pass) string { return StripLeftovers(doc) }},
		{Name: "cleanup", Apply: func(doc string, _ *Pass) string { return FinalCleanup(doc) }},
	}
}

// Result is the outcome of converting one document.
type Result struct {
	// Text is the converted document, ending in exactly one newline.
	Text string
	// Metadata holds the extracted title and authors.
	Metadata Metadata
	// Warnings lists the diagnostics raised during conversion.
	Warnings []types.Warning
}

// Converter turns LaTeX source into Markdown-like text. It holds no state
// between calls.
type Converter struct {
	logger *slog.Logger
	stages []Stage
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger mirrors conversion warnings to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// New returns a Converter running Stages in order.
func New(opts ...Option) *Converter {
	c := &Converter{stages: Stages()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert normalizes src, extracts its metadata, selects the document body
// and runs every stage over it. It always returns a complete document.
func (c *Converter) Convert(src string) Result {
	diags := NewDiagnostics(c.logger)

	doc := Normalize(shelfScrubber.Replace(src))
	doc, meta := ExtractMetadata(doc, diags)
	doc = SelectBody(doc)

	p := NewPass(meta, diags)
	for _, stage := range c.stages {
		doc = stage.Apply(doc, p)
	}

	return Result{
		Text:     p.Restore(doc),
		Metadata: meta,
		Warnings: diags.Warnings(),
	}
}
