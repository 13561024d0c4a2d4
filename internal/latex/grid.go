// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import "strings"

// TableGrid is a rectangular table: the first row is the header and fixes
// the width of every other row.
type TableGrid struct {
	Rows [][]string
}

// NewTableGrid copies rows into a grid, padding short rows with empty cells
// and truncating long ones to the header's width.
func NewTableGrid(rows [][]string) TableGrid {
	if len(rows) == 0 {
		return TableGrid{}
	}
	width := len(rows[0])
	grid := TableGrid{Rows: make([][]string, len(rows))}
	for i, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		grid.Rows[i] = cells
	}
	return grid
}

// Width returns the number of columns.
func (g TableGrid) Width() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// Markdown renders the grid as a pipe table with a dash separator row after
// the header.
func (g TableGrid) Markdown() string {
	if len(g.Rows) == 0 {
		return ""
	}
	var b strings.Builder
	writeRow(&b, g.Rows[0])
	sep := make([]string, g.Width())
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(&b, sep)
	for _, row := range g.Rows[1:] {
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}
