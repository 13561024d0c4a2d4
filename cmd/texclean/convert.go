// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/texclean/internal/catalog"
	"github.com/pdiddy/texclean/internal/convert"
	"github.com/pdiddy/texclean/internal/httputil"
	"github.com/pdiddy/texclean/internal/source"
	"github.com/pdiddy/texclean/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [inputs...]",
	Short: "Convert LaTeX sources to Markdown",
	Long: `Convert transforms LaTeX sources into Markdown. Each input may be a .tex
file, a directory (every .tex file below it is converted), an http(s) URL,
or "-" to read standard input.

Output goes to <name>.md next to each source, or under --out-dir. Existing
outputs are skipped unless --force is given. With --stdout the converted
text is printed instead of written. Conversion warnings never stop a
document; they mark it partial and are listed after the run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	conv := convert.NewLaTeXConverter(logger)
	loader := newSourceLoader(cfg, logger)

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		return convertToWriter(ctx, conv, loader, args, cfg.Conversion.Frontmatter, os.Stdout)
	}

	opts := convert.Options{Config: cfg.Conversion}
	if record, _ := cmd.Flags().GetBool("catalog"); record {
		store, err := catalog.NewStore(cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Recorder = store
	}

	if cfg.Conversion.OutputDir != "" {
		unlock, err := convert.LockOutput(cfg.Conversion.OutputDir)
		if err != nil {
			return err
		}
		defer unlock()
	}

	result, err := convert.ConvertPaths(ctx, conv, loader, args, opts, os.Stdout)
	if err != nil {
		return err
	}
	printWarnings(os.Stderr, result.Documents)

	if result.HasFailures() {
		return fmt.Errorf("%d input(s) failed conversion", result.Failed)
	}
	return nil
}

// convertToWriter renders every input to w, separated by blank lines.
func convertToWriter(ctx context.Context, conv convert.Converter, loader convert.Loader, refs []string, frontmatter bool, w io.Writer) error {
	var docs []types.Document
	for i, ref := range refs {
		doc, text, err := convert.Render(ctx, conv, loader, ref)
		if err != nil {
			return err
		}
		if frontmatter {
			doc.ConvertedAt = timeNow()
			if text, err = convert.AddFrontmatter(doc, text); err != nil {
				return err
			}
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		docs = append(docs, doc)
	}
	printWarnings(os.Stderr, docs)
	return nil
}

// newSourceLoader wires stdin and an HTTP fetcher into a source loader.
func newSourceLoader(cfg types.Config, logger *slog.Logger) *source.Loader {
	client := &http.Client{Timeout: cfg.Fetch.Timeout}
	return source.NewLoader(httputil.NewFetcher(client, cfg.Fetch, logger), os.Stdin)
}

func init() {
	convertCmd.Flags().Bool("stdout", false, "print converted text instead of writing files")
	convertCmd.Flags().String("out-dir", "", "directory for converted files (default: next to each source)")
	convertCmd.Flags().String("ext", ".md", "output file extension")
	convertCmd.Flags().Bool("frontmatter", false, "prepend a YAML block with source, title, authors and warnings")
	convertCmd.Flags().Bool("force", false, "overwrite existing outputs")
	convertCmd.Flags().Bool("catalog", false, "record converted documents in the catalog")

	viper.BindPFlag("conversion.output_dir", convertCmd.Flags().Lookup("out-dir"))
	viper.BindPFlag("conversion.extension", convertCmd.Flags().Lookup("ext"))
	viper.BindPFlag("conversion.frontmatter", convertCmd.Flags().Lookup("frontmatter"))
	viper.BindPFlag("conversion.force", convertCmd.Flags().Lookup("force"))

	rootCmd.AddCommand(convertCmd)
}
