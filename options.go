package pagedown

import (
	"github.com/tsawler/pagedown/layout"
	"github.com/tsawler/pagedown/markdown"
	"github.com/tsawler/pagedown/tables"
)

// ConvertOptions holds the per-stage configuration for a conversion. The
// defaults reproduce the reference heuristics; individual stage configs can
// be adjusted without forking any constants.
type ConvertOptions struct {
	// Metrics configures per-page font/layout statistics estimation
	Metrics layout.MetricsConfig

	// Words configures glyph-to-word grouping
	Words layout.WordConfig

	// Lines configures word-to-line grouping
	Lines layout.LineConfig

	// Classify configures the structure classifier
	Classify layout.ClassifyConfig

	// Merge configures element merging
	Merge layout.MergeConfig

	// Tables configures table detection
	Tables tables.Config

	// Render configures Markdown rendering
	Render markdown.RenderConfig

	// DetectTables enables the table detection stage
	DetectTables bool
}

// DefaultOptions returns the reference conversion options with table
// detection enabled.
func DefaultOptions() ConvertOptions {
	return ConvertOptions{
		Metrics:      layout.DefaultMetricsConfig(),
		Words:        layout.DefaultWordConfig(),
		Lines:        layout.DefaultLineConfig(),
		Classify:     layout.DefaultClassifyConfig(),
		Merge:        layout.DefaultMergeConfig(),
		Tables:       tables.DefaultConfig(),
		Render:       markdown.DefaultRenderConfig(),
		DetectTables: true,
	}
}

// WithOptions returns a copy of the converter using the given options.
// The original converter is unchanged, so option chains are safe to share.
func (c *Converter) WithOptions(options ConvertOptions) *Converter {
	clone := *c
	clone.options = options
	return &clone
}

// WithoutTables returns a copy of the converter with table detection
// disabled; every line flows through the text pipeline instead.
func (c *Converter) WithoutTables() *Converter {
	options := c.options
	options.DetectTables = false
	return c.WithOptions(options)
}
