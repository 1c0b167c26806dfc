package layout

import (
	"math"
	"sort"

	"github.com/tsawler/pagedown/model"
)

// MetricsConfig holds configuration for per-page metrics estimation.
type MetricsConfig struct {
	// HeadingRatio: a size group larger than normal by this factor is a
	// heading candidate
	HeadingRatio float64

	// SubheadingRatio: sizes above normal by this factor (but below the
	// heading size) are subheading candidates
	SubheadingRatio float64

	// LineGapCeilingRatio caps usable baseline gaps at normal size times
	// this factor
	LineGapCeilingRatio float64

	// DefaultLineHeightRatio sets the line height when a page has no
	// distinct glyph positions
	DefaultLineHeightRatio float64

	// MarginSearchRatio restricts margin estimation to glyphs left of
	// page width times this factor
	MarginSearchRatio float64

	// DefaultLeftMargin is used when no glyph qualifies for margin
	// estimation
	DefaultLeftMargin float64

	// DefaultFontSize seeds the metrics for a document whose first page
	// has no glyphs
	DefaultFontSize float64
}

// DefaultMetricsConfig returns the reference configuration for metrics
// estimation.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		HeadingRatio:           1.3,
		SubheadingRatio:        1.1,
		LineGapCeilingRatio:    3.0,
		DefaultLineHeightRatio: 1.2,
		MarginSearchRatio:      0.8,
		DefaultLeftMargin:      50,
		DefaultFontSize:        12,
	}
}

// MetricsAnalyzer derives a PageMetrics profile from one page's glyphs.
// Fields the page cannot supply are retained from the previous page's
// metrics, so page N+1's output depends on page N when N+1 lacks signal.
type MetricsAnalyzer struct {
	config MetricsConfig
}

// NewMetricsAnalyzer creates a metrics analyzer with default configuration.
func NewMetricsAnalyzer() *MetricsAnalyzer {
	return NewMetricsAnalyzerWithConfig(DefaultMetricsConfig())
}

// NewMetricsAnalyzerWithConfig creates a metrics analyzer with the given
// configuration.
func NewMetricsAnalyzerWithConfig(config MetricsConfig) *MetricsAnalyzer {
	return &MetricsAnalyzer{config: config}
}

// DefaultMetrics returns the seed metrics used when the first page of a
// document has no glyphs.
func (a *MetricsAnalyzer) DefaultMetrics() model.PageMetrics {
	size := a.config.DefaultFontSize
	return model.PageMetrics{
		MostCommonFontSize: size,
		NormalFontSize:     size,
		AverageLineHeight:  size * a.config.DefaultLineHeightRatio,
		LeftMargin:         a.config.DefaultLeftMargin,
		FontUsage:          map[string]int{},
	}
}

// Analyze computes the page's metrics. A glyph-less page returns the
// previous metrics unchanged (or the defaults when no history exists).
func (a *MetricsAnalyzer) Analyze(glyphs []model.Glyph, prev model.PageMetrics, pageWidth float64) model.PageMetrics {
	if len(glyphs) == 0 {
		if prev.NormalFontSize > 0 {
			return prev
		}
		return a.DefaultMetrics()
	}

	m := model.PageMetrics{FontUsage: make(map[string]int)}

	// Font-size histogram, one decimal place of precision.
	sizeCounts := make(map[float64]int)
	for _, g := range glyphs {
		sizeCounts[roundTenth(g.FontSize)]++
		m.FontUsage[g.FontName]++
	}

	m.NormalFontSize = largestGroup(sizeCounts)
	m.MostCommonFontSize = m.NormalFontSize

	// Heading: the largest size exceeding normal by HeadingRatio.
	for size := range sizeCounts {
		if size > m.NormalFontSize*a.config.HeadingRatio && size > m.HeadingFontSize {
			m.HeadingFontSize = size
		}
	}

	// Subheading: the largest size strictly between normal+10% and the
	// heading size.
	for size := range sizeCounts {
		if size > m.NormalFontSize*a.config.SubheadingRatio &&
			size < m.HeadingFontSize && size > m.SubheadingFontSize {
			m.SubheadingFontSize = size
		}
	}

	// Carry thresholds forward when this page lacks large fonts.
	if m.HeadingFontSize == 0 && prev.HeadingFontSize > 0 {
		m.HeadingFontSize = prev.HeadingFontSize
	}
	if m.SubheadingFontSize == 0 && prev.SubheadingFontSize > 0 {
		m.SubheadingFontSize = prev.SubheadingFontSize
	}

	m.AverageLineHeight = a.averageLineHeight(glyphs, m.NormalFontSize)
	m.LeftMargin = a.leftMargin(glyphs, pageWidth)

	return m
}

// averageLineHeight averages the gaps between consecutive distinct glyph
// top coordinates, keeping only positive gaps below normal size times the
// ceiling ratio.
func (a *MetricsAnalyzer) averageLineHeight(glyphs []model.Glyph, normalSize float64) float64 {
	seen := make(map[float64]bool)
	var tops []float64
	for _, g := range glyphs {
		top := roundTenth(g.BBox.Top())
		if !seen[top] {
			seen[top] = true
			tops = append(tops, top)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(tops)))

	var sum float64
	var count int
	ceiling := normalSize * a.config.LineGapCeilingRatio
	for i := 1; i < len(tops); i++ {
		gap := tops[i-1] - tops[i]
		if gap > 0 && gap < ceiling {
			sum += gap
			count++
		}
	}

	if count == 0 {
		return normalSize * a.config.DefaultLineHeightRatio
	}
	return sum / float64(count)
}

// leftMargin is the minimum left coordinate among glyphs within the body of
// the page (left of pageWidth times the search ratio).
func (a *MetricsAnalyzer) leftMargin(glyphs []model.Glyph, pageWidth float64) float64 {
	margin := math.Inf(1)
	limit := pageWidth * a.config.MarginSearchRatio
	for _, g := range glyphs {
		if left := g.BBox.Left(); left < limit && left < margin {
			margin = left
		}
	}
	if math.IsInf(margin, 1) {
		return a.config.DefaultLeftMargin
	}
	return margin
}

// largestGroup returns the key with the highest count, breaking ties toward
// the smaller size so the result is deterministic.
func largestGroup(counts map[float64]int) float64 {
	var best float64
	bestCount := -1
	for size, n := range counts {
		if n > bestCount || (n == bestCount && size < best) {
			best, bestCount = size, n
		}
	}
	return best
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
