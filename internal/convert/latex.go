// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"log/slog"

	"github.com/pdiddy/texclean/internal/latex"
	"github.com/pdiddy/texclean/internal/source"
)

// LaTeXConverter converts sources with the built-in LaTeX transformer.
type LaTeXConverter struct {
	logger *slog.Logger
}

// NewLaTeXConverter returns a converter that mirrors warnings to logger,
// tagged with the document ID. A nil logger discards them.
func NewLaTeXConverter(logger *slog.Logger) *LaTeXConverter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LaTeXConverter{logger: logger}
}

// Convert runs the transformer over src. A panic inside the transformer is
// reported as an error for this document only.
func (c *LaTeXConverter) Convert(src source.Source) (out Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transformer panic: %v", r)
		}
	}()

	conv := latex.New(latex.WithLogger(c.logger.With(slog.String("document", src.ID))))
	res := conv.Convert(src.Content)
	return Output{
		Text:     res.Text,
		Title:    latex.TitleText(res.Metadata),
		Authors:  res.Metadata.Authors,
		Warnings: res.Warnings,
	}, nil
}
