package layout

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/pagedown/model"
)

// ClassifyConfig holds configuration for the structure classifier.
type ClassifyConfig struct {
	// ContinuationMarginRatio: both lines must start beyond leftMargin
	// times this factor for the current line to be a continuation
	ContinuationMarginRatio float64

	// ContinuationGapRatio caps the vertical gap (as a factor of the
	// average line height) for a continuation
	ContinuationGapRatio float64

	// PageNumberSizeRatio: page numbers are smaller than normal by this
	// factor
	PageNumberSizeRatio float64

	// PageNumberXRatio: page numbers sit beyond leftMargin times this
	// factor
	PageNumberXRatio float64

	// HeadingTolerance is the relative band around the heading and
	// subheading sizes
	HeadingTolerance float64

	// BoldHeadingRatio: a bold line larger than normal by this factor is
	// at least a tier-3 heading
	BoldHeadingRatio float64

	// FootnoteSizeRatio: footnotes are smaller than normal by this factor
	FootnoteSizeRatio float64

	// IndentZeroRatio and IndentStepRatio translate a list item's x
	// position into a source indent level
	IndentZeroRatio float64
	IndentStepRatio float64

	// QuoteMinRatio and QuoteMaxRatio bound the indentation band (as
	// factors of leftMargin) that marks a block quote
	QuoteMinRatio float64
	QuoteMaxRatio float64

	// RuleMinLength and RuleDominanceRatio control horizontal-rule
	// detection
	RuleMinLength      int
	RuleDominanceRatio float64

	// MonospaceKeywords identify code fonts by name
	MonospaceKeywords []string
}

// DefaultClassifyConfig returns the reference configuration for the
// classifier.
func DefaultClassifyConfig() ClassifyConfig {
	return ClassifyConfig{
		ContinuationMarginRatio: 0.8,
		ContinuationGapRatio:    1.5,
		PageNumberSizeRatio:     0.9,
		PageNumberXRatio:        3.0,
		HeadingTolerance:        0.15,
		BoldHeadingRatio:        1.2,
		FootnoteSizeRatio:       0.9,
		IndentZeroRatio:         1.2,
		IndentStepRatio:         0.5,
		QuoteMinRatio:           1.5,
		QuoteMaxRatio:           4.0,
		RuleMinLength:           3,
		RuleDominanceRatio:      0.8,
		MonospaceKeywords: []string{
			"mono", "courier", "consolas", "terminal", "source code",
			"dejavu mono", "liberation mono", "lucida mono", "monaco",
			"andale mono", "roboto mono",
		},
	}
}

// List marker patterns, tried in order. The numbered pattern alone yields a
// NumberedListItem; every other marker yields a ListItem.
var (
	numberedMarkerPattern = regexp.MustCompile(`^(\d+)[.)]\s*`)
	listMarkerPatterns    = []*regexp.Regexp{
		numberedMarkerPattern,
		regexp.MustCompile(`^[•◦▪‣·]\s*`),
		regexp.MustCompile(`^[-–—*]\s+`),
		regexp.MustCompile(`^[a-zA-Z][.)]\s+`),
		regexp.MustCompile(`^[ivxlcdmIVXLCDM]+[.)]\s+`),
		regexp.MustCompile(`^\((?:\d+|[a-zA-Z])\)\s*`),
		regexp.MustCompile(`^\[(?:\d+|[a-zA-Z])\]\s*`),
	}

	digitsOnlyPattern     = regexp.MustCompile(`^\d+$`)
	footnoteMarkerPattern = regexp.MustCompile(`^(\[|[†‡*#]|\d+[.)]?\s)`)
	underscoreWrapPattern = regexp.MustCompile(`^_(.+)_$`)
	underlineTagPattern   = regexp.MustCompile(`^<u>(.+)</u>$`)
)

// Classifier assigns each non-table line a semantic type using ordered
// heuristic rules, and flags soft continuations of the previous line.
type Classifier struct {
	config ClassifyConfig
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultClassifyConfig())
}

// NewClassifierWithConfig creates a classifier with the given configuration.
func NewClassifierWithConfig(config ClassifyConfig) *Classifier {
	return &Classifier{config: config}
}

// Classify converts lines into classified elements in reading order.
// Continuation lines are flagged and inherit the previous element's type;
// they are merged into their parent by the Merger, not here.
func (c *Classifier) Classify(lines []model.Line, metrics model.PageMetrics) []model.Element {
	var elements []model.Element

	for i, line := range lines {
		text := strings.TrimSpace(line.Text())
		if text == "" {
			continue
		}

		if len(elements) > 0 && c.isContinuation(lines, i, metrics) {
			prev := elements[len(elements)-1]
			el := c.newElement(line, text)
			el.Type = prev.Type
			el.IsContinuation = true
			elements = append(elements, el)
			continue
		}

		elements = append(elements, c.classifyLine(line, text, metrics))
	}

	return elements
}

// isContinuation applies the soft-continuation test to line i relative to
// line i-1.
func (c *Classifier) isContinuation(lines []model.Line, i int, metrics model.PageMetrics) bool {
	if i == 0 {
		return false
	}
	prev, cur := lines[i-1], lines[i]

	marginFloor := metrics.LeftMargin * c.config.ContinuationMarginRatio
	if prev.BBox.Left() <= marginFloor || cur.BBox.Left() <= marginFloor {
		return false
	}

	gap := prev.BBox.Bottom() - cur.BBox.Top()
	if gap >= c.config.ContinuationGapRatio*metrics.AverageLineHeight {
		return false
	}

	prevText := strings.TrimSpace(prev.Text())
	if endsWithAny(prevText, ".!?:") {
		return false
	}

	curText := strings.TrimSpace(cur.Text())
	if startsUpper(curText) {
		return false
	}

	if matchListMarker(curText) != nil {
		return false
	}

	return true
}

// classifyLine applies the ordered classification rules; the first match
// wins.
func (c *Classifier) classifyLine(line model.Line, text string, metrics model.PageMetrics) model.Element {
	el := c.newElement(line, text)
	normal := metrics.NormalFontSize
	size := line.FontSize
	x := line.BBox.Left()
	bold := line.Bold()

	switch {
	case size < normal*c.config.PageNumberSizeRatio &&
		x > metrics.LeftMargin*c.config.PageNumberXRatio &&
		digitsOnlyPattern.MatchString(el.Text):
		el.Type = model.ElementTypePageNumber
		el.Confidence = c.confidence(line, 0.9)

	case metrics.HasHeadingSize() && c.withinTolerance(size, metrics.HeadingFontSize):
		if bold {
			el.Type = model.ElementTypeHeading1
		} else {
			el.Type = model.ElementTypeHeading2
		}
		el.Confidence = c.confidence(line, 0.85)

	case metrics.HasSubheadingSize() && c.withinTolerance(size, metrics.SubheadingFontSize):
		if bold {
			el.Type = model.ElementTypeHeading2
		} else {
			el.Type = model.ElementTypeHeading3
		}
		el.Confidence = c.confidence(line, 0.8)

	case size > normal*c.config.BoldHeadingRatio && bold:
		el.Type = model.ElementTypeHeading3
		el.Confidence = c.confidence(line, 0.7)

	case size > normal && bold:
		el.Type = model.ElementTypeHeading4
		el.Confidence = c.confidence(line, 0.6)

	case matchListMarker(el.Text) != nil:
		marker := matchListMarker(el.Text)
		if marker == numberedMarkerPattern {
			el.Type = model.ElementTypeNumberedListItem
		} else {
			el.Type = model.ElementTypeListItem
		}
		el.Text = strings.TrimSpace(marker.ReplaceAllString(el.Text, ""))
		el.Indent = c.indentLevel(x, metrics.LeftMargin)
		el.Confidence = c.confidence(line, 0.8)

	case c.isMonospace(line.FontName):
		el.Type = model.ElementTypeCodeBlock
		el.Confidence = c.confidence(line, 0.7)

	case x > metrics.LeftMargin*c.config.QuoteMinRatio &&
		x < metrics.LeftMargin*c.config.QuoteMaxRatio:
		el.Type = model.ElementTypeBlockQuote
		el.Confidence = c.confidence(line, 0.6)

	case c.isHorizontalRule(el.Text):
		el.Type = model.ElementTypeHorizontalRule
		el.Confidence = c.confidence(line, 0.9)

	case size < normal*c.config.FootnoteSizeRatio &&
		footnoteMarkerPattern.MatchString(el.Text):
		el.Type = model.ElementTypeFootnote
		el.Confidence = c.confidence(line, 0.7)

	default:
		el.Type = model.ElementTypeParagraph
		el.Confidence = c.confidence(line, 0.6)
	}

	return el
}

// newElement builds an element shell from a line, detecting underline
// wrapping independently of the type rules.
func (c *Classifier) newElement(line model.Line, text string) model.Element {
	el := model.Element{
		Text: text,
		BBox: line.BBox,
		Format: model.TextFormat{
			FontSize: line.FontSize,
			Bold:     line.Bold(),
			Italic:   line.Italic(),
			Color:    line.Color,
		},
	}

	if m := underscoreWrapPattern.FindStringSubmatch(el.Text); m != nil {
		el.Text = m[1]
		el.Format.Underline = true
	} else if underlineTagPattern.MatchString(el.Text) {
		el.Format.Underline = true
	}

	return el
}

// confidence applies the rule's base confidence, reduced when the line's
// font name is missing and style inference had nothing to work with.
func (c *Classifier) confidence(line model.Line, base float64) float64 {
	if line.FontName == "" {
		return base * 0.9
	}
	return base
}

func (c *Classifier) withinTolerance(size, target float64) bool {
	return math.Abs(size-target) <= c.config.HeadingTolerance*target
}

// indentLevel translates a list item's x position into a source indent
// level relative to the left margin.
func (c *Classifier) indentLevel(x, margin float64) int {
	if margin <= 0 || x <= margin*c.config.IndentZeroRatio {
		return 0
	}
	level := int(math.Round((x - margin) / (margin * c.config.IndentStepRatio)))
	if level < 0 {
		return 0
	}
	return level
}

func (c *Classifier) isMonospace(fontName string) bool {
	name := strings.ToLower(fontName)
	if name == "" {
		return false
	}
	for _, kw := range c.config.MonospaceKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// isHorizontalRule reports whether the text is a run of rule characters:
// at least RuleMinLength long, starting with one of - _ * = ~, with that
// character making up more than the dominance ratio of the text.
func (c *Classifier) isHorizontalRule(text string) bool {
	runes := []rune(text)
	if len(runes) < c.config.RuleMinLength {
		return false
	}
	first := runes[0]
	if !strings.ContainsRune("-_*=~", first) {
		return false
	}
	count := 0
	for _, r := range runes {
		if r == first {
			count++
		}
	}
	return float64(count) > c.config.RuleDominanceRatio*float64(len(runes))
}

// matchListMarker returns the first marker pattern matching the text, or
// nil when the text does not start with a list marker.
func matchListMarker(text string) *regexp.Regexp {
	for _, pattern := range listMarkerPatterns {
		if pattern.MatchString(text) {
			return pattern
		}
	}
	return nil
}

func endsWithAny(text, chars string) bool {
	if text == "" {
		return false
	}
	return strings.ContainsRune(chars, rune(text[len(text)-1]))
}

func startsUpper(text string) bool {
	for _, r := range text {
		return unicode.IsUpper(r)
	}
	return false
}
