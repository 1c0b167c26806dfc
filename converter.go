package pagedown

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/pagedown/layout"
	"github.com/tsawler/pagedown/markdown"
	"github.com/tsawler/pagedown/model"
	"github.com/tsawler/pagedown/tables"
)

// pageSeparator joins consecutive page fragments in the output document.
const pageSeparator = "\n\n---\n\n"

// Converter runs the reconstruction pipeline over an ordered page list.
// Converters are cheap values; each terminal operation processes the pages
// from scratch, so a Converter may be reused.
type Converter struct {
	pages   []model.Page
	options ConvertOptions
}

// Markdown converts the pages and returns the reconstructed document as a
// single Markdown string, along with any non-fatal warnings. Pages are
// processed strictly in order because the metrics profile carries forward
// across page boundaries.
func (c *Converter) Markdown() (string, []Warning, error) {
	analyzer := layout.NewMetricsAnalyzerWithConfig(c.options.Metrics)
	wordGrouper := layout.NewWordGrouperWithConfig(c.options.Words)
	lineGrouper := layout.NewLineGrouperWithConfig(c.options.Lines)
	detector := tables.NewDetectorWithConfig(c.options.Tables)
	classifier := layout.NewClassifierWithConfig(c.options.Classify)
	nester := layout.NewListNester()
	merger := layout.NewMergerWithConfig(c.options.Merge)
	renderer := markdown.NewRendererWithConfig(c.options.Render)

	var warnings []Warning
	var metrics model.PageMetrics
	fragments := make([]string, 0, len(c.pages))

	for i, page := range c.pages {
		pageNum := page.Number
		if pageNum == 0 {
			pageNum = i + 1
		}

		if page.Width <= 0 || page.Height <= 0 {
			return "", warnings, &ConversionError{
				Stage: "metrics",
				Page:  pageNum,
				Err:   fmt.Errorf("page has non-positive dimensions (%gx%g)", page.Width, page.Height),
			}
		}

		metrics = analyzer.Analyze(page.Glyphs, metrics, page.Width)

		if len(page.Glyphs) == 0 {
			warnings = append(warnings, Warning{
				Page:    pageNum,
				Message: "page has no glyphs; metrics carried forward",
			})
			fragments = append(fragments, "")
			continue
		}

		fragment, err := convertPage(page, pageNum, metrics, c.options.DetectTables,
			wordGrouper, lineGrouper, detector, classifier, nester, merger, renderer)
		if err != nil {
			return "", warnings, err
		}
		fragments = append(fragments, fragment)
	}

	doc := strings.Join(fragments, pageSeparator)

	post := markdown.NewPostProcessor()
	return post.Process(doc), warnings, nil
}

// convertPage runs the per-page stages in fixed order. Any panic raised by
// a stage surfaces as a ConversionError rather than partial output.
func convertPage(
	page model.Page,
	pageNum int,
	metrics model.PageMetrics,
	detectTables bool,
	wordGrouper *layout.WordGrouper,
	lineGrouper *layout.LineGrouper,
	detector *tables.Detector,
	classifier *layout.Classifier,
	nester *layout.ListNester,
	merger *layout.Merger,
	renderer *markdown.Renderer,
) (fragment string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ConversionError{
				Stage: "pipeline",
				Page:  pageNum,
				Err:   fmt.Errorf("%v", r),
			}
		}
	}()

	words := wordGrouper.Group(page.Glyphs)
	lines := lineGrouper.Group(words, metrics)

	var detected []*model.Table
	textLines := lines
	if detectTables {
		var consumed []bool
		detected, consumed = detector.Detect(lines, page.Width)
		if len(detected) > 0 {
			textLines = textLines[:0:0]
			for i, line := range lines {
				if !consumed[i] {
					textLines = append(textLines, line)
				}
			}
		}
	}

	elements := classifier.Classify(textLines, metrics)
	elements = nester.Resolve(elements)
	elements = merger.Merge(elements)
	elements = interleaveTables(elements, detected)

	return renderer.RenderPage(elements), nil
}

// interleaveTables inserts detected tables among the classified elements in
// reading order (descending top coordinate).
func interleaveTables(elements []model.Element, detected []*model.Table) []model.Element {
	if len(detected) == 0 {
		return elements
	}

	out := make([]model.Element, 0, len(elements)+len(detected))
	out = append(out, elements...)
	for _, table := range detected {
		out = append(out, model.Element{
			Type:       model.ElementTypeTable,
			BBox:       table.BBox,
			Table:      table,
			Confidence: 1.0,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BBox.Top() > out[j].BBox.Top()
	})

	return out
}
