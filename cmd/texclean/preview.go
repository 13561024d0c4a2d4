// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/texclean/internal/convert"
	"github.com/pdiddy/texclean/internal/preview"
	"github.com/pdiddy/texclean/internal/source"
	"github.com/pdiddy/texclean/pkg/types"
)

var previewCmd = &cobra.Command{
	Use:   "preview INPUT",
	Short: "Render a document as HTML",
	Long: `Preview renders converted Markdown as a standalone HTML page. A .md file
is rendered as it is; any other input (.tex file, URL or "-") is converted
first. The page goes to standard output unless --out is given. With
--outline only the heading structure is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	ref := args[0]
	markdown, name, err := previewSource(cmd.Context(), ref)
	if err != nil {
		return err
	}

	r := preview.New()
	if outline, _ := cmd.Flags().GetBool("outline"); outline {
		for _, h := range r.Outline(markdown) {
			fmt.Printf("%s%s\n", strings.Repeat("  ", h.Level-1), h.Text)
		}
		return nil
	}

	var w io.Writer = os.Stdout
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	return r.Page(w, markdown, name)
}

// previewSource returns the Markdown to render and a name for the page.
func previewSource(ctx context.Context, ref string) (string, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.EqualFold(filepath.Ext(ref), ".md") {
		data, err := os.ReadFile(ref)
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", ref, err)
		}
		text, _ := source.Decode(data)
		return text, strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref)), nil
	}

	cfg := loadConfig()
	logger, err := newLogger(cfg)
	if err != nil {
		return "", "", err
	}
	doc, text, err := convert.Render(ctx, convert.NewLaTeXConverter(logger), newSourceLoader(cfg, logger), ref)
	if err != nil {
		return "", "", err
	}
	printWarnings(os.Stderr, []types.Document{doc})
	name := doc.Title
	if name == "" {
		name = doc.ID
	}
	return text, name, nil
}

func init() {
	previewCmd.Flags().StringP("out", "o", "", "write the HTML page to this file")
	previewCmd.Flags().Bool("outline", false, "print the heading outline instead of HTML")

	rootCmd.AddCommand(previewCmd)
}
