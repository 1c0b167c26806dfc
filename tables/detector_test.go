package tables

import (
	"testing"

	"github.com/tsawler/pagedown/model"
)

const testPageWidth = 612.0

func makeWordAt(text string, left, top, size float64, font string) model.Word {
	var glyphs []model.Glyph
	x := left
	for _, r := range text {
		glyphs = append(glyphs, model.Glyph{
			Text:     string(r),
			FontName: font,
			FontSize: size,
			Color:    model.Black,
			BBox:     model.NewBBoxFromEdges(x, top-size, x+size/2, top),
		})
		x += size / 2
	}
	return model.NewWord(glyphs)
}

// tableRow builds a line with one word per cell at the given column
// positions, producing the wide regular gaps the detector looks for.
func tableRow(cells []string, columns []float64, top float64, font string) model.Line {
	var words []model.Word
	for i, cell := range cells {
		words = append(words, makeWordAt(cell, columns[i], top, 10, font))
	}
	return model.NewLine(words)
}

func proseLine(text string, top float64) model.Line {
	var words []model.Word
	x := 72.0
	current := ""
	flush := func() {
		if current != "" {
			words = append(words, makeWordAt(current, x, top, 10, "Times"))
			x += float64(len(current))*5 + 4
			current = ""
		}
	}
	for _, r := range text {
		if r == ' ' {
			flush()
			continue
		}
		current += string(r)
	}
	flush()
	return model.NewLine(words)
}

var testColumns = []float64{72, 200, 330}

func TestDetector_SingleRowIsNeverATable(t *testing.T) {
	detector := NewDetector()

	lines := []model.Line{
		tableRow([]string{"Name", "Qty", "Price"}, testColumns, 700, "Times"),
	}

	tables, consumed := detector.Detect(lines, testPageWidth)

	if len(tables) != 0 {
		t.Fatalf("Expected no tables from a single row, got %d", len(tables))
	}
	if consumed[0] {
		t.Error("Single row must not be consumed")
	}
}

func TestDetector_TwoCloseRowsFormATable(t *testing.T) {
	detector := NewDetector()

	lines := []model.Line{
		tableRow([]string{"Name", "Qty", "Price"}, testColumns, 700, "Times"),
		tableRow([]string{"Bolt", "12", "0.40"}, testColumns, 685, "Times"),
	}

	tables, consumed := detector.Detect(lines, testPageWidth)

	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}
	if tables[0].RowCount() < 2 {
		t.Errorf("Expected at least 2 rows, got %d", tables[0].RowCount())
	}
	if !consumed[0] || !consumed[1] {
		t.Error("Both rows should be consumed")
	}
}

func TestDetector_ColumnStructure(t *testing.T) {
	detector := NewDetector()

	lines := []model.Line{
		tableRow([]string{"Name", "Qty", "Price"}, testColumns, 700, "Times"),
		tableRow([]string{"Bolt", "12", "0.40"}, testColumns, 685, "Times"),
		tableRow([]string{"Washer", "100", "0.05"}, testColumns, 670, "Times"),
	}

	tables, _ := detector.Detect(lines, testPageWidth)

	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}

	table := tables[0]
	if table.ColumnCount != 3 {
		t.Fatalf("Expected 3 columns, got %d", table.ColumnCount)
	}
	if table.Rows[1][0].Text != "Bolt" || table.Rows[1][1].Text != "12" || table.Rows[1][2].Text != "0.40" {
		t.Errorf("Unexpected second row: %+v", table.Rows[1])
	}
}

func TestDetector_WideVerticalGapBreaksRun(t *testing.T) {
	detector := NewDetector()

	// Second candidate row is 80 points below the first: beyond
	// 2.5 x 10pt, so the run breaks and neither forms a table.
	lines := []model.Line{
		tableRow([]string{"Name", "Qty", "Price"}, testColumns, 700, "Times"),
		tableRow([]string{"Bolt", "12", "0.40"}, testColumns, 610, "Times"),
	}

	tables, _ := detector.Detect(lines, testPageWidth)

	if len(tables) != 0 {
		t.Errorf("Expected no tables across a wide gap, got %d", len(tables))
	}
}

func TestDetector_ProseIsNotConsumed(t *testing.T) {
	detector := NewDetector()

	lines := []model.Line{
		proseLine("This paragraph is ordinary running prose without columns", 700),
		tableRow([]string{"Name", "Qty", "Price"}, testColumns, 680, "Times"),
		tableRow([]string{"Bolt", "12", "0.40"}, testColumns, 665, "Times"),
	}

	tables, consumed := detector.Detect(lines, testPageWidth)

	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}
	if consumed[0] {
		t.Error("Prose line must not be consumed")
	}
	if !consumed[1] || !consumed[2] {
		t.Error("Table rows should be consumed")
	}
}

func TestDetector_BoldFirstRowIsHeader(t *testing.T) {
	detector := NewDetector()

	lines := []model.Line{
		tableRow([]string{"Name", "Qty", "Price"}, testColumns, 700, "Times-Bold"),
		tableRow([]string{"Bolt", "12", "0.40"}, testColumns, 685, "Times"),
	}

	tables, _ := detector.Detect(lines, testPageWidth)

	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}
	if !tables[0].HasHeader {
		t.Error("Expected bold first row to be flagged as header")
	}
}

func TestDetector_UpperCaseFirstRowIsHeader(t *testing.T) {
	detector := NewDetector()

	lines := []model.Line{
		tableRow([]string{"NAME", "QTY", "PRICE"}, testColumns, 700, "Times"),
		tableRow([]string{"Bolt", "12", "0.40"}, testColumns, 685, "Times"),
	}

	tables, _ := detector.Detect(lines, testPageWidth)

	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}
	if !tables[0].HasHeader {
		t.Error("Expected all-caps first row to be flagged as header")
	}
}

func TestMergeTrailingEmpty(t *testing.T) {
	row := []model.Cell{
		{Text: "Subtotal", ColSpan: 1},
		{Text: "112", ColSpan: 1},
		{Text: "", ColSpan: 1},
		{Text: " ", ColSpan: 1},
	}

	merged := mergeTrailingEmpty(row)

	if len(merged) != 2 {
		t.Fatalf("Expected trailing empty cells merged, got %d cells", len(merged))
	}
	if merged[1].ColSpan != 3 {
		t.Errorf("Expected accumulated span 3, got %d", merged[1].ColSpan)
	}
	if len(row) != 4 {
		t.Errorf("Expected input row to be unchanged, got %d cells", len(row))
	}

	full := []model.Cell{{Text: "a", ColSpan: 1}, {Text: "b", ColSpan: 1}}
	if got := mergeTrailingEmpty(full); len(got) != 2 {
		t.Errorf("Expected full row untouched, got %d cells", len(got))
	}
}

func TestDetector_PipeRuleQualifiesRow(t *testing.T) {
	detector := NewDetector()

	lines := []model.Line{
		proseLine("alpha | beta | gamma", 700),
		proseLine("delta | epsilon | zeta", 685),
	}

	tables, _ := detector.Detect(lines, testPageWidth)

	if len(tables) != 1 {
		t.Errorf("Expected pipe-separated rows to form a table, got %d", len(tables))
	}
}
