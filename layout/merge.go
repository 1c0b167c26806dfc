package layout

import (
	"math"
	"strings"

	"github.com/tsawler/pagedown/model"
)

// MergeConfig holds configuration for element merging.
type MergeConfig struct {
	// MaxFontSizeDelta: elements differing in font size by this much or
	// more never merge
	MaxFontSizeDelta float64

	// MaxVerticalGapRatio caps the vertical gap between merged elements
	// as a factor of the font size
	MaxVerticalGapRatio float64

	// MaxHorizontalShiftRatio caps the left-edge shift between merged
	// elements as a factor of the font size
	MaxHorizontalShiftRatio float64
}

// DefaultMergeConfig returns the reference configuration for merging.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		MaxFontSizeDelta:        0.5,
		MaxVerticalGapRatio:     2.5,
		MaxHorizontalShiftRatio: 2.0,
	}
}

// Merger coalesces adjacent same-type, same-style elements that are really
// one logical block split across lines. Headings, rules, list items, and
// tables never merge; flagged continuations always fold into their parent.
type Merger struct {
	config MergeConfig
}

// NewMerger creates a merger with default configuration.
func NewMerger() *Merger {
	return NewMergerWithConfig(DefaultMergeConfig())
}

// NewMergerWithConfig creates a merger with the given configuration.
func NewMergerWithConfig(config MergeConfig) *Merger {
	return &Merger{config: config}
}

// Merge folds qualifying adjacent elements together. Text is joined with a
// single space, bounding boxes are unioned, and the merged confidence is
// the minimum of the pair.
func (m *Merger) Merge(elements []model.Element) []model.Element {
	if len(elements) == 0 {
		return nil
	}

	var out []model.Element
	for _, el := range elements {
		if len(out) > 0 && m.shouldMerge(out[len(out)-1], el) {
			prev := &out[len(out)-1]
			prev.Text = joinText(prev.Text, el.Text)
			prev.BBox = prev.BBox.Union(el.BBox)
			prev.Confidence = math.Min(prev.Confidence, el.Confidence)
			continue
		}
		el.IsContinuation = false
		out = append(out, el)
	}

	return out
}

func (m *Merger) shouldMerge(prev, cur model.Element) bool {
	if cur.IsContinuation && cur.Type == prev.Type {
		return true
	}

	if cur.Type != prev.Type {
		return false
	}
	if !mergeableType(cur.Type) {
		return false
	}
	if math.Abs(cur.Format.FontSize-prev.Format.FontSize) >= m.config.MaxFontSizeDelta {
		return false
	}
	if cur.Format.Bold != prev.Format.Bold || cur.Format.Italic != prev.Format.Italic {
		return false
	}

	size := cur.Format.FontSize
	gap := prev.BBox.Bottom() - cur.BBox.Top()
	if gap >= m.config.MaxVerticalGapRatio*size {
		return false
	}
	shift := math.Abs(cur.BBox.Left() - prev.BBox.Left())
	return shift < m.config.MaxHorizontalShiftRatio*size
}

// mergeableType reports whether a type participates in style-based merging.
// Headings, rules, list items, and tables are always standalone.
func mergeableType(t model.ElementType) bool {
	if t.IsHeading() || t.IsListItem() {
		return false
	}
	switch t {
	case model.ElementTypeHorizontalRule, model.ElementTypeTable:
		return false
	}
	return true
}

func joinText(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return strings.TrimRight(a, " ") + " " + strings.TrimLeft(b, " ")
}
