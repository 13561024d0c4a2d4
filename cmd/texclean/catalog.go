// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/texclean/internal/catalog"
	"github.com/pdiddy/texclean/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the catalog of converted documents",
	Long: `Catalog manages the local SQLite catalog filled by "convert --catalog".
Use subcommands to list, search, show, export or remove documents.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogued documents, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCatalogSearch,
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search catalogued documents by text and filters",
	Long: `Search matches the query against document titles and converted text
using SQLite full-text search, optionally narrowed by --status, --warning
and --run.`,
	RunE: runCatalogSearch,
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if cmd.Name() == "search" && opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --status, --warning, or --run")
	}

	docs, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}

	if len(docs) == 0 {
		fmt.Println("No documents found.")
		return nil
	}
	fmt.Println(renderTable(documentHeaders, documentRows(docs, shouldColorize(os.Stdout)), documentAligns))
	fmt.Printf("%d document(s)\n", len(docs))
	return nil
}

var catalogShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one catalogued document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCatalog()
		if err != nil {
			return err
		}
		defer store.Close()

		doc, body, err := store.Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		colorize := shouldColorize(os.Stdout)
		fmt.Printf("ID:        %s\n", doc.ID)
		fmt.Printf("Status:    %s\n", statusLabel(doc.ConversionStatus, colorize))
		fmt.Printf("Title:     %s\n", doc.Title)
		fmt.Printf("Authors:   %s\n", strings.Join(doc.Authors, ", "))
		fmt.Printf("Source:    %s\n", doc.SourcePath)
		fmt.Printf("Output:    %s\n", doc.OutputPath)
		fmt.Printf("Size:      %s\n", humanize.Bytes(uint64(doc.Size)))
		fmt.Printf("Run:       %s\n", doc.RunID)
		if !doc.ConvertedAt.IsZero() {
			fmt.Printf("Converted: %s (%s)\n", doc.ConvertedAt.Format("2006-01-02 15:04:05 MST"), humanize.Time(doc.ConvertedAt))
		}
		printWarnings(os.Stdout, []types.Document{doc})

		if showBody, _ := cmd.Flags().GetBool("body"); showBody {
			fmt.Println()
			fmt.Print(body)
		}
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the catalog (or a filtered subset) to export.yaml or
export.json in the catalog directory. It accepts the same filters as search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		store, err := openCatalog()
		if err != nil {
			return err
		}
		defer store.Close()

		opts := queryOptsFromFlags(cmd, args)
		var path string
		switch format {
		case "yaml", "":
			path, err = store.ExportYAML(context.Background(), opts)
		case "json":
			path, err = store.ExportJSON(context.Background(), opts)
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
		if err != nil {
			return err
		}
		fmt.Println("Exported to", path)
		return nil
	},
}

var catalogRemoveCmd = &cobra.Command{
	Use:   "remove ID...",
	Short: "Remove documents from the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCatalog()
		if err != nil {
			return err
		}
		defer store.Close()

		for _, id := range args {
			if err := store.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Println("removed:", id)
		}
		return nil
	},
}

func openCatalog() (*catalog.Store, error) {
	return catalog.NewStore(loadConfig().Catalog)
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}
	status, _ := cmd.Flags().GetString("status")
	warning, _ := cmd.Flags().GetString("warning")
	runID, _ := cmd.Flags().GetString("run")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:       queryText,
		Status:      types.ConversionStatus(status),
		WarningKind: types.WarningKind(warning),
		RunID:       runID,
		MaxResults:  limit,
	}
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("status", "", "filter by status: converted, partial, failed")
	cmd.Flags().String("warning", "", "filter by warning kind, e.g. nested_table")
	cmd.Flags().String("run", "", "filter by batch run ID")
	cmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
}

func init() {
	catalogCmd.PersistentFlags().String("catalog-dir", "", "catalog directory (default: .texclean)")
	viper.BindPFlag("catalog.dir", catalogCmd.PersistentFlags().Lookup("catalog-dir"))

	for _, c := range []*cobra.Command{catalogListCmd, catalogSearchCmd, catalogExportCmd} {
		addFilterFlags(c)
	}
	catalogListCmd.Flags().Bool("json", false, "output results as JSON")
	catalogSearchCmd.Flags().String("query", "", "full-text search query")
	catalogSearchCmd.Flags().Bool("json", false, "output results as JSON")
	catalogShowCmd.Flags().Bool("body", false, "also print the converted text")
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("query", "", "full-text search filter for partial export")

	catalogCmd.AddCommand(catalogListCmd, catalogSearchCmd, catalogShowCmd, catalogExportCmd, catalogRemoveCmd)
	rootCmd.AddCommand(catalogCmd)
}
