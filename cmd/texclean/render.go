// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/pdiddy/texclean/pkg/types"
)

// timeNow stamps documents rendered to stdout.
var timeNow = func() time.Time { return time.Now().UTC() }

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// statusLabel renders a conversion status, coloured on terminals.
func statusLabel(status types.ConversionStatus, colorize bool) string {
	s := string(status)
	if !colorize {
		return s
	}
	switch status {
	case types.ConversionDone:
		return text.FgGreen.Sprint(s)
	case types.ConversionPartial:
		return text.FgYellow.Sprint(s)
	case types.ConversionFailed:
		return text.FgRed.Sprint(s)
	default:
		return s
	}
}

// printWarnings lists the warnings of docs as a table. Nothing is printed
// when there are none.
func printWarnings(w io.Writer, docs []types.Document) {
	var rows [][]string
	for _, doc := range docs {
		for _, warn := range doc.Warnings {
			rows = append(rows, []string{doc.ID, string(warn.Kind), warn.Stage, warn.Message})
		}
	}
	if len(rows) == 0 {
		return
	}
	title := fmt.Sprintf("%d warning(s)", len(rows))
	if shouldColorize(w) {
		title = text.FgYellow.Sprint(title)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, renderTable([]string{"Document", "Kind", "Stage", "Message"}, rows, nil))
}

// documentRows formats docs for the catalog listing.
func documentRows(docs []types.Document, colorize bool) [][]string {
	rows := make([][]string, len(docs))
	for i, d := range docs {
		converted := ""
		if !d.ConvertedAt.IsZero() {
			converted = humanize.Time(d.ConvertedAt)
		}
		rows[i] = []string{
			d.ID,
			statusLabel(d.ConversionStatus, colorize),
			truncate(d.Title, 40),
			strconv.Itoa(len(d.Warnings)),
			humanize.Bytes(uint64(d.Size)),
			converted,
		}
	}
	return rows
}

var documentHeaders = []string{"ID", "Status", "Title", "Warnings", "Size", "Converted"}
var documentAligns = []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
