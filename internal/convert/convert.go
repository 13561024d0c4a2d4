// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives LaTeX-to-Markdown conversion of single documents
// and batches, writing output files and recording them in the catalog.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/texclean/internal/source"
	"github.com/pdiddy/texclean/pkg/types"
)

// DefaultExtension is the output file extension when none is configured.
const DefaultExtension = ".md"

// Output is the converted form of one source document.
type Output struct {
	Text     string
	Title    string
	Authors  []string
	Warnings []types.Warning
}

// Converter transforms a loaded source into Markdown text.
type Converter interface {
	Convert(src source.Source) (Output, error)
}

// Loader resolves an input reference to its decoded content.
type Loader interface {
	Load(ctx context.Context, ref string) (source.Source, error)
}

// Recorder receives every document written by a conversion run.
type Recorder interface {
	Record(ctx context.Context, doc types.Document, body string) error
}

// Options controls where and how converted documents are written.
type Options struct {
	Config types.ConversionConfig
	// Recorder, when set, receives each converted document.
	Recorder Recorder
	// RunID tags documents converted together. Empty gets a fresh UUID per
	// ConvertBatch call.
	RunID string
	// Now stamps documents; nil uses time.Now.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now().UTC()
	}
	return time.Now().UTC()
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	RunID     string
	Converted int
	Partial   int
	Skipped   int
	Failed    int
	Documents []types.Document
}

// Total returns the total number of inputs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Partial + r.Skipped + r.Failed
}

// HasFailures reports whether any input failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Render loads ref and converts it without writing anything. The returned
// document carries the extracted metadata, warnings and status.
func Render(ctx context.Context, c Converter, l Loader, ref string) (types.Document, string, error) {
	doc := types.Document{ID: source.ID(ref), SourcePath: ref}

	src, err := l.Load(ctx, ref)
	if err != nil {
		return doc, "", err
	}
	out, err := c.Convert(src)
	if err != nil {
		return doc, "", fmt.Errorf("converting %s: %w", src.ID, err)
	}

	doc.Title = out.Title
	doc.Authors = out.Authors
	doc.Warnings = out.Warnings
	doc.Size = int64(len(out.Text))
	doc.ConversionStatus = types.ConversionDone
	if len(out.Warnings) > 0 {
		doc.ConversionStatus = types.ConversionPartial
	}
	return doc, out.Text, nil
}

// OutputPath returns the file a converted ref is written to:
// <dir>/<name><ext>. Files keep their base name and default to their own
// directory; other inputs use their ID under the configured directory or
// the working directory.
func OutputPath(ref string, cfg types.ConversionConfig) string {
	ext := cfg.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	dir := cfg.OutputDir
	name := source.ID(ref)
	if source.Classify(ref) == source.KindFile {
		name = strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
		if dir == "" {
			dir = filepath.Dir(ref)
		}
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name+ext)
}

// ConvertDocument converts one input and writes it to OutputPath. Existing
// output is skipped, with status ConversionNone, unless opts.Config.Force
// is set. Progress lines go to w.
func ConvertDocument(ctx context.Context, c Converter, l Loader, ref string, opts Options, w io.Writer) types.Document {
	outPath := OutputPath(ref, opts.Config)
	name := source.ID(ref)

	if !opts.Config.Force {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
			return types.Document{ID: name, SourcePath: ref, OutputPath: outPath, ConversionStatus: types.ConversionNone}
		}
	}

	doc, body, err := Render(ctx, c, l, ref)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		doc.ConversionStatus = types.ConversionFailed
		return doc
	}
	doc.OutputPath = outPath
	doc.RunID = opts.RunID
	doc.ConvertedAt = opts.now()

	content := body
	if opts.Config.Frontmatter {
		content, err = AddFrontmatter(doc, body)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
			doc.ConversionStatus = types.ConversionFailed
			return doc
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		doc.ConversionStatus = types.ConversionFailed
		return doc
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		doc.ConversionStatus = types.ConversionFailed
		return doc
	}
	doc.Size = int64(len(content))

	if doc.ConversionStatus == types.ConversionPartial {
		fmt.Fprintf(w, "partial: %s (%d warnings)\n", name, len(doc.Warnings))
	} else {
		fmt.Fprintf(w, "converted: %s\n", name)
	}

	if opts.Recorder != nil {
		if err := opts.Recorder.Record(ctx, doc, body); err != nil {
			fmt.Fprintf(w, "catalog: %s (%v)\n", name, err)
		}
	}
	return doc
}

// ConvertBatch converts refs in order, printing per-input status to w and
// returning a summary.
func ConvertBatch(ctx context.Context, c Converter, l Loader, refs []string, opts Options, w io.Writer) BatchResult {
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	result := BatchResult{RunID: opts.RunID}
	for _, ref := range refs {
		if ctx.Err() != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", source.ID(ref), ctx.Err())
			result.Failed++
			continue
		}
		doc := ConvertDocument(ctx, c, l, ref, opts, w)
		switch doc.ConversionStatus {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionPartial:
			result.Partial++
		case types.ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
		result.Documents = append(result.Documents, doc)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d partial, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Partial, result.Skipped, result.Failed, result.Total())
	return result
}

// ConvertPaths expands directories in paths to the .tex files below them
// and converts everything as one batch.
func ConvertPaths(ctx context.Context, c Converter, l Loader, paths []string, opts Options, w io.Writer) (BatchResult, error) {
	var refs []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			refs = append(refs, p)
			continue
		}
		found, err := CollectSources(p)
		if err != nil {
			return BatchResult{}, err
		}
		refs = append(refs, found...)
	}
	return ConvertBatch(ctx, c, l, refs, opts, w), nil
}

// CollectSources returns every .tex file under dir in lexical order.
// Hidden directories are not entered.
func CollectSources(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if source.IsTeX(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collecting sources in %s: %w", dir, err)
	}
	return paths, nil
}
