package layout

import (
	"math"
	"sort"

	"github.com/tsawler/pagedown/model"
)

// LineConfig holds configuration for word-to-line grouping.
type LineConfig struct {
	// BandRatio sets the vertical band size as a fraction of the average
	// line height; words whose tops fall in the same band form one line
	BandRatio float64
}

// DefaultLineConfig returns the reference configuration for line grouping.
func DefaultLineConfig() LineConfig {
	return LineConfig{BandRatio: 0.3}
}

// LineGrouper clusters words into lines by banding their top coordinates
// relative to the page's estimated line height.
type LineGrouper struct {
	config LineConfig
}

// NewLineGrouper creates a line grouper with default configuration.
func NewLineGrouper() *LineGrouper {
	return NewLineGrouperWithConfig(DefaultLineConfig())
}

// NewLineGrouperWithConfig creates a line grouper with the given
// configuration.
func NewLineGrouperWithConfig(config LineConfig) *LineGrouper {
	return &LineGrouper{config: config}
}

// Group bands the words by top coordinate and emits one line per band,
// ordered by descending band (top of page first). Words within a line are
// ordered by ascending left coordinate.
func (g *LineGrouper) Group(words []model.Word, metrics model.PageMetrics) []model.Line {
	if len(words) == 0 {
		return nil
	}

	bandSize := metrics.AverageLineHeight * g.config.BandRatio
	if bandSize <= 0 {
		bandSize = 1
	}

	bands := make(map[int][]model.Word)
	for _, w := range words {
		key := int(math.Round(w.BBox.Top() / bandSize))
		bands[key] = append(bands[key], w)
	}

	keys := make([]int, 0, len(bands))
	for key := range bands {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	lines := make([]model.Line, 0, len(keys))
	for _, key := range keys {
		members := bands[key]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].BBox.Left() < members[j].BBox.Left()
		})
		lines = append(lines, model.NewLine(members))
	}

	return lines
}
