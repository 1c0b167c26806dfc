package tables

import (
	"math"
	"strings"
	"unicode"

	"github.com/tsawler/pagedown/model"
)

// Config holds detector configuration.
type Config struct {
	// MinRows is the minimum number of non-empty rows for a valid table;
	// a single qualifying row is never a table
	MinRows int

	// MinPipes: a line containing at least this many pipe characters is a
	// row candidate
	MinPipes int

	// MinAlignedWords is the minimum word count for the regular-spacing
	// candidate rule
	MinAlignedWords int

	// GapFilterRatio filters inter-word gaps to those wider than the
	// first word's font size times this factor
	GapFilterRatio float64

	// GapStdDevRatio: filtered gaps whose standard deviation is below
	// their mean times this factor count as regular column spacing
	GapStdDevRatio float64

	// NarrowWidthRatio bounds a narrow line's width as a fraction of the
	// page width for the segment candidate rule
	NarrowWidthRatio float64

	// MinSegments and MaxSegmentLength control the segment candidate rule
	MinSegments      int
	MaxSegmentLength int

	// RunGapRatio caps the vertical gap between consecutive run lines as
	// a factor of the pair's average font size
	RunGapRatio float64

	// ColumnGapRatio sets the 1-D clustering threshold as a fraction of
	// the page width
	ColumnGapRatio float64

	// EdgeIgnoreRatio drops word edges beyond the page width times this
	// factor from column clustering
	EdgeIgnoreRatio float64
}

// DefaultConfig returns the reference detector configuration.
func DefaultConfig() Config {
	return Config{
		MinRows:          2,
		MinPipes:         2,
		MinAlignedWords:  3,
		GapFilterRatio:   0.5,
		GapStdDevRatio:   0.3,
		NarrowWidthRatio: 0.7,
		MinSegments:      3,
		MaxSegmentLength: 50,
		RunGapRatio:      2.5,
		ColumnGapRatio:   0.03,
		EdgeIgnoreRatio:  0.95,
	}
}

// Detector identifies runs of lines that form tabular data and extracts
// their row and column structure.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return NewDetectorWithConfig(DefaultConfig())
}

// NewDetectorWithConfig creates a detector with the given configuration.
func NewDetectorWithConfig(config Config) *Detector {
	return &Detector{config: config}
}

// Detect finds tables among the page's lines. The second return value marks,
// by index, the lines consumed by a table; the caller excludes those from
// further text processing.
func (d *Detector) Detect(lines []model.Line, pageWidth float64) ([]*model.Table, []bool) {
	consumed := make([]bool, len(lines))
	if len(lines) == 0 {
		return nil, consumed
	}

	var tables []*model.Table
	var run []int

	flush := func() {
		if len(run) >= d.config.MinRows {
			if table := d.buildTable(lines, run, pageWidth); table != nil {
				tables = append(tables, table)
				for _, idx := range run {
					consumed[idx] = true
				}
			}
		}
		run = run[:0]
	}

	for i, line := range lines {
		if !d.isRowCandidate(line, pageWidth) {
			flush()
			continue
		}
		if len(run) > 0 {
			prev := lines[run[len(run)-1]]
			gap := prev.BBox.Bottom() - line.BBox.Top()
			limit := d.config.RunGapRatio * (prev.FontSize + line.FontSize) / 2
			if gap > limit {
				flush()
			}
		}
		run = append(run, i)
	}
	flush()

	return tables, consumed
}

// isRowCandidate reports whether a line looks like one row of a table.
func (d *Detector) isRowCandidate(line model.Line, pageWidth float64) bool {
	text := line.Text()

	// Rule (a): explicit pipe separators.
	if strings.Count(text, "|") >= d.config.MinPipes {
		return true
	}

	// Rule (b): regular column spacing.
	if d.hasRegularSpacing(line) {
		return true
	}

	// Rule (c): a narrow line splitting into several short segments.
	if line.BBox.Width < d.config.NarrowWidthRatio*pageWidth {
		segments := d.segments(line)
		if len(segments) >= d.config.MinSegments {
			ok := true
			for _, seg := range segments {
				if len(seg) >= d.config.MaxSegmentLength {
					ok = false
					break
				}
			}
			if ok {
				return true
			}
		}
	}

	return false
}

// hasRegularSpacing checks rule (b): enough words whose wide inter-word
// gaps have a low standard deviation relative to their mean.
func (d *Detector) hasRegularSpacing(line model.Line) bool {
	if len(line.Words) < d.config.MinAlignedWords {
		return false
	}

	floor := d.config.GapFilterRatio * line.Words[0].FontSize
	var gaps []float64
	for i := 1; i < len(line.Words); i++ {
		gap := line.Words[i].BBox.Left() - line.Words[i-1].BBox.Right()
		if gap > floor {
			gaps = append(gaps, gap)
		}
	}
	if len(gaps) < 2 {
		return false
	}

	var sum float64
	for _, g := range gaps {
		sum += g
	}
	mean := sum / float64(len(gaps))

	var variance float64
	for _, g := range gaps {
		variance += (g - mean) * (g - mean)
	}
	stddev := math.Sqrt(variance / float64(len(gaps)))

	return stddev < d.config.GapStdDevRatio*mean
}

// segments splits a line's words into column-like segments wherever the gap
// to the previous word is wider than a space run (one font size or more).
func (d *Detector) segments(line model.Line) []string {
	var segments []string
	var current []string

	for i, w := range line.Words {
		if i > 0 {
			gap := w.BBox.Left() - line.Words[i-1].BBox.Right()
			if gap > line.Words[0].FontSize {
				segments = append(segments, strings.Join(current, " "))
				current = current[:0]
			}
		}
		current = append(current, w.Text())
	}
	if len(current) > 0 {
		segments = append(segments, strings.Join(current, " "))
	}

	return segments
}

// buildTable reconstructs row/column structure for a candidate run. Returns
// nil when the run does not yield at least MinRows non-empty rows.
func (d *Detector) buildTable(lines []model.Line, run []int, pageWidth float64) *model.Table {
	boundaries := d.columnBoundaries(lines, run, pageWidth)
	cols := len(boundaries) - 1

	table := &model.Table{ColumnCount: cols}

	bbox := lines[run[0]].BBox
	for _, idx := range run {
		line := lines[idx]
		bbox = bbox.Union(line.BBox)

		cells := make([][]string, cols)
		for _, w := range line.Words {
			col := assignColumn(w, boundaries)
			cells[col] = append(cells[col], w.Text())
		}

		row := make([]model.Cell, cols)
		for j := range row {
			row[j] = model.Cell{
				Text:    strings.Join(cells[j], " "),
				ColSpan: 1,
				RowSpan: 1,
			}
		}
		table.Rows = append(table.Rows, mergeTrailingEmpty(row))
	}
	table.BBox = bbox

	if table.NonEmptyRowCount() < d.config.MinRows {
		return nil
	}

	table.HasHeader = d.isHeaderRow(lines[run[0]])
	return table
}

// columnBoundaries clusters word left edges across the run into column
// boundaries. The first cluster is the table's own left edge, which the
// prepended 0 already covers; remaining cluster centers become interior
// boundaries. Falls back to an even two-column split when clustering finds
// too little structure.
func (d *Detector) columnBoundaries(lines []model.Line, run []int, pageWidth float64) []float64 {
	var edges []float64
	limit := d.config.EdgeIgnoreRatio * pageWidth
	for _, idx := range run {
		for _, w := range lines[idx].Words {
			if left := w.BBox.Left(); left <= limit {
				edges = append(edges, left)
			}
		}
	}

	centers := ClusterColumns(edges, d.config.ColumnGapRatio*pageWidth)
	if len(centers) < 2 {
		return []float64{0, pageWidth / 2, pageWidth}
	}

	boundaries := make([]float64, 0, len(centers)+1)
	boundaries = append(boundaries, 0)
	boundaries = append(boundaries, centers[1:]...)
	boundaries = append(boundaries, pageWidth)
	return boundaries
}

// assignColumn picks the column whose span overlaps the word most, falling
// back to the column whose midpoint is nearest the word's center.
func assignColumn(w model.Word, boundaries []float64) int {
	best, bestOverlap := -1, 0.0
	for j := 0; j < len(boundaries)-1; j++ {
		overlap := w.BBox.HorizontalOverlap(boundaries[j], boundaries[j+1])
		if overlap > bestOverlap {
			best, bestOverlap = j, overlap
		}
	}
	if best >= 0 {
		return best
	}

	center := w.BBox.Center().X
	bestDist := math.Inf(1)
	for j := 0; j < len(boundaries)-1; j++ {
		mid := (boundaries[j] + boundaries[j+1]) / 2
		if dist := math.Abs(center - mid); dist < bestDist {
			best, bestDist = j, dist
		}
	}
	return best
}

// mergeTrailingEmpty folds trailing empty cells into the last non-empty
// cell by accumulating its column span.
func mergeTrailingEmpty(row []model.Cell) []model.Cell {
	end := len(row)
	for end > 1 && strings.TrimSpace(row[end-1].Text) == "" {
		end--
	}
	if end == len(row) {
		return row
	}
	merged := make([]model.Cell, end)
	copy(merged, row[:end])
	merged[end-1].ColSpan += len(row) - end
	return merged
}

// isHeaderRow reports whether a run's first line looks like a header: it
// contains bold words or is entirely upper-case.
func (d *Detector) isHeaderRow(line model.Line) bool {
	if line.Bold() {
		return true
	}

	hasLetter := false
	for _, r := range line.Text() {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
