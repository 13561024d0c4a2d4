// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/texclean/pkg/types"
)

const frontmatterDelim = "---\n"

// Frontmatter is the YAML header written ahead of converted documents.
type Frontmatter struct {
	ID          string   `yaml:"id"`
	Source      string   `yaml:"source"`
	Title       string   `yaml:"title,omitempty"`
	Authors     []string `yaml:"authors,omitempty"`
	ConvertedAt string   `yaml:"converted_at"`
	Status      string   `yaml:"status"`
	Warnings    []string `yaml:"warnings,omitempty"`
}

// AddFrontmatter prepends a YAML block describing doc to body.
func AddFrontmatter(doc types.Document, body string) (string, error) {
	fm := Frontmatter{
		ID:          doc.ID,
		Source:      doc.SourcePath,
		Title:       doc.Title,
		Authors:     doc.Authors,
		ConvertedAt: doc.ConvertedAt.UTC().Format(time.RFC3339),
		Status:      string(doc.ConversionStatus),
	}
	for _, w := range doc.Warnings {
		fm.Warnings = append(fm.Warnings, w.String())
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}
	return frontmatterDelim + buf.String() + frontmatterDelim + "\n" + body, nil
}

// SplitFrontmatter separates a leading YAML block from the Markdown body.
// Text without frontmatter is returned unchanged with a nil header.
func SplitFrontmatter(text string) (*Frontmatter, string, error) {
	if !strings.HasPrefix(text, frontmatterDelim) {
		return nil, text, nil
	}
	rest := text[len(frontmatterDelim):]
	end := strings.Index(rest, "\n"+frontmatterDelim)
	if end < 0 {
		return nil, text, errors.New("frontmatter: missing closing delimiter")
	}
	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(rest[:end+1]), &fm); err != nil {
		return nil, text, fmt.Errorf("frontmatter: %w", err)
	}
	body := strings.TrimPrefix(rest[end+1+len(frontmatterDelim):], "\n")
	return &fm, body, nil
}
