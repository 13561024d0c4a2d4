// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/texclean/internal/convert"
	"github.com/pdiddy/texclean/internal/source"
	"github.com/pdiddy/texclean/pkg/types"
)

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"1"}, {"2", "3"}}, []columnAlignment{alignLeft, alignRight})
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "3")
	assert.Equal(t, 6, strings.Count(out, "\n")+1, "top, header, separator, two rows, bottom")

	assert.Empty(t, renderTable(nil, nil, nil))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "partial", statusLabel(types.ConversionPartial, false))
	assert.Contains(t, statusLabel(types.ConversionPartial, true), "partial")
	assert.Equal(t, "none", statusLabel(types.ConversionNone, true))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééééééé...", truncate(strings.Repeat("é", 20), 10))
}

func TestDocumentRows(t *testing.T) {
	docs := []types.Document{{
		ID:               "paper",
		Title:            "A Study",
		Size:             2048,
		ConvertedAt:      time.Now().Add(-2 * time.Hour),
		ConversionStatus: types.ConversionDone,
		Warnings:         []types.Warning{{Kind: types.WarnNestedTable}},
	}}
	rows := documentRows(docs, false)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"paper", "converted", "A Study", "1", "2.0 kB", "2 hours ago"}, rows[0])
}

func TestPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	printWarnings(&buf, []types.Document{{ID: "clean"}})
	assert.Empty(t, buf.String())

	printWarnings(&buf, []types.Document{{ID: "p", Warnings: []types.Warning{
		{Kind: types.WarnTableConversion, Stage: "tables", Message: "no grid"},
	}}})
	out := buf.String()
	assert.Contains(t, out, "1 warning(s)")
	assert.Contains(t, out, "table_conversion")
	assert.Contains(t, out, "no grid")
}

func TestConvertToWriter(t *testing.T) {
	loader := source.NewLoader(nil, strings.NewReader(`\section{From Stdin}`))
	conv := convert.NewLaTeXConverter(nil)

	var buf bytes.Buffer
	err := convertToWriter(context.Background(), conv, loader, []string{"-", "\\emph{inline}\n"}, false, &buf)
	require.NoError(t, err)
	assert.Equal(t, "# From Stdin\n\n*inline*\n", buf.String())
}

func TestConvertToWriterFrontmatter(t *testing.T) {
	old := timeNow
	timeNow = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { timeNow = old }()

	var buf bytes.Buffer
	err := convertToWriter(context.Background(), convert.NewLaTeXConverter(nil), source.NewLoader(nil, nil),
		[]string{"\\title{T}\n\\maketitle"}, true, &buf)
	require.NoError(t, err)

	fm, body, err := convert.SplitFrontmatter(buf.String())
	require.NoError(t, err)
	require.NotNil(t, fm)
	assert.Equal(t, "inline", fm.ID)
	assert.Equal(t, "T", fm.Title)
	assert.Equal(t, "2026-05-01T00:00:00Z", fm.ConvertedAt)
	assert.Equal(t, "# T\n", body)
}

func TestConvertToWriterRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer
	err := convertToWriter(context.Background(), convert.NewLaTeXConverter(nil), source.NewLoader(nil, nil),
		[]string{"paper.txt"}, false, &buf)
	assert.ErrorContains(t, err, ".tex extension")
}
