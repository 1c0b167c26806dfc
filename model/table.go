package model

import "strings"

// Cell is one cell of a detected table. ColSpan grows when trailing empty
// cells are merged into their left neighbor; RowSpan is always 1 in this
// design.
type Cell struct {
	Text    string
	ColSpan int
	RowSpan int
}

// Table is a reconstructed grid of rows and cells inferred from the spatial
// regularity of a run of lines, not from explicit table markup.
type Table struct {
	// Rows are the table rows, top to bottom
	Rows [][]Cell

	// ColumnCount is the number of columns in the reconstructed grid
	ColumnCount int

	// BBox is the union of the consumed lines' boxes
	BBox BBox

	// HasHeader marks the first row as a header (bold words or all caps)
	HasHeader bool
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// NonEmptyRowCount returns the number of rows with at least one
// non-blank cell.
func (t *Table) NonEmptyRowCount() int {
	count := 0
	for _, row := range t.Rows {
		for _, cell := range row {
			if strings.TrimSpace(cell.Text) != "" {
				count++
				break
			}
		}
	}
	return count
}

// RowText returns a row's cell texts joined with single spaces, used for
// matching a table row back to its originating line.
func (t *Table) RowText(row int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	var parts []string
	for _, cell := range t.Rows[row] {
		if cell.Text != "" {
			parts = append(parts, cell.Text)
		}
	}
	return strings.Join(parts, " ")
}
