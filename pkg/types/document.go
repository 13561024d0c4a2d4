// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the state of LaTeX-to-Markdown conversion for a document.
type ConversionStatus string

const (
	ConversionNone    ConversionStatus = "none"
	ConversionDone    ConversionStatus = "converted"
	ConversionPartial ConversionStatus = "partial"
	ConversionFailed  ConversionStatus = "failed"
)

// Document holds metadata and file paths for a converted source document.
type Document struct {
	// ID is a slug derived from the source file name (e.g. "paper" for paper.tex).
	ID string `json:"id" yaml:"id"`

	// SourcePath is the local path or URL the LaTeX source was read from.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputPath is the path of the written Markdown file, empty for stdout.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	// Title is the extracted \title argument, empty when absent.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Authors lists the extracted authors in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Size is the byte length of the converted output.
	Size int64 `json:"size" yaml:"size"`

	// RunID groups documents converted by the same batch invocation.
	RunID string `json:"run_id,omitempty" yaml:"run_id,omitempty"`

	// ConvertedAt is when the conversion finished.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`

	// Warnings are the diagnostics emitted while converting.
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// ConversionStatus records the outcome of the conversion.
	ConversionStatus ConversionStatus `json:"conversion_status" yaml:"conversion_status"`
}

// WarningKind classifies a conversion diagnostic.
type WarningKind string

const (
	// WarnUnbalancedBraces marks a \title or \author argument with no closing brace.
	WarnUnbalancedBraces WarningKind = "unbalanced_braces"
	// WarnUnbalancedCaption marks a figure or table caption with no closing brace.
	WarnUnbalancedCaption WarningKind = "unbalanced_caption"
	// WarnNestedTable marks a table whose grids nest; it is kept as LaTeX.
	WarnNestedTable WarningKind = "nested_table"
	// WarnTableConversion marks a table with no convertible grid.
	WarnTableConversion WarningKind = "table_conversion"
)

// Warning is an advisory diagnostic. It never aborts a conversion.
type Warning struct {
	Kind    WarningKind `json:"kind" yaml:"kind"`
	Stage   string      `json:"stage" yaml:"stage"`
	Message string      `json:"message" yaml:"message"`
}

// String renders the warning as "stage: message".
func (w Warning) String() string {
	if w.Stage == "" {
		return w.Message
	}
	return w.Stage + ": " + w.Message
}
