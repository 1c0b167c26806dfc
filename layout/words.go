package layout

import (
	"math"
	"sort"

	"github.com/tsawler/pagedown/model"
)

// WordConfig holds configuration for glyph-to-word grouping.
type WordConfig struct {
	// MaxVerticalJumpRatio: a top-coordinate difference beyond this factor
	// of the current glyph's font size starts a new word
	MaxVerticalJumpRatio float64

	// MaxGapRatio: a horizontal gap beyond this factor of the current
	// glyph's font size starts a new word
	MaxGapRatio float64
}

// DefaultWordConfig returns the reference configuration for word grouping.
func DefaultWordConfig() WordConfig {
	return WordConfig{
		MaxVerticalJumpRatio: 0.4,
		MaxGapRatio:          0.6,
	}
}

// WordGrouper clusters a page's glyphs into words using proximity rules
// relative to font size.
type WordGrouper struct {
	config WordConfig
}

// NewWordGrouper creates a word grouper with default configuration.
func NewWordGrouper() *WordGrouper {
	return NewWordGrouperWithConfig(DefaultWordConfig())
}

// NewWordGrouperWithConfig creates a word grouper with the given
// configuration.
func NewWordGrouperWithConfig(config WordConfig) *WordGrouper {
	return &WordGrouper{config: config}
}

// Group sorts the glyphs into reading order (descending top, then ascending
// left) and splits them into words wherever the gap to the previous glyph
// exceeds the configured thresholds.
func (g *WordGrouper) Group(glyphs []model.Glyph) []model.Word {
	if len(glyphs) == 0 {
		return nil
	}

	sorted := make([]model.Glyph, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Top() != sorted[j].BBox.Top() {
			return sorted[i].BBox.Top() > sorted[j].BBox.Top()
		}
		return sorted[i].BBox.Left() < sorted[j].BBox.Left()
	})

	var words []model.Word
	current := []model.Glyph{sorted[0]}

	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1]
		cur := sorted[i]

		verticalJump := math.Abs(cur.BBox.Top() - prev.BBox.Top())
		gap := cur.BBox.Left() - prev.BBox.Right()

		if verticalJump > g.config.MaxVerticalJumpRatio*cur.FontSize ||
			gap > g.config.MaxGapRatio*cur.FontSize {
			words = append(words, model.NewWord(current))
			current = []model.Glyph{cur}
			continue
		}
		current = append(current, cur)
	}

	words = append(words, model.NewWord(current))
	return words
}
