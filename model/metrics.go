package model

// PageMetrics is the per-page statistical profile that parameterizes every
// heuristic in the pipeline. Metrics thread across pages as an explicit
// value: when a page yields no usable signal for a field, the previous
// page's value is retained, so metrics are never reset to zero once history
// exists.
type PageMetrics struct {
	// MostCommonFontSize is the size of the largest font-size group
	MostCommonFontSize float64

	// NormalFontSize is the body-text font size (same as MostCommonFontSize)
	NormalFontSize float64

	// HeadingFontSize is the largest size exceeding normal by 30%, or 0 if
	// the page (and all prior pages) had no such size
	HeadingFontSize float64

	// SubheadingFontSize is the largest size between normal+10% and the
	// heading size, or 0 if unset
	SubheadingFontSize float64

	// AverageLineHeight is the mean vertical gap between distinct glyph
	// baselines on the page
	AverageLineHeight float64

	// LeftMargin is the minimum glyph left coordinate within the body of
	// the page
	LeftMargin float64

	// FontUsage counts glyphs per raw font name
	FontUsage map[string]int
}

// HasHeadingSize reports whether a usable heading threshold exists.
// A threshold below the normal size is treated as unset.
func (m PageMetrics) HasHeadingSize() bool {
	return m.HeadingFontSize >= m.NormalFontSize && m.HeadingFontSize > 0
}

// HasSubheadingSize reports whether a usable subheading threshold exists.
func (m PageMetrics) HasSubheadingSize() bool {
	return m.SubheadingFontSize >= m.NormalFontSize && m.SubheadingFontSize > 0
}
