package markdown

import (
	"strings"
	"testing"

	"github.com/tsawler/pagedown/model"
)

func element(text string, t model.ElementType) model.Element {
	return model.Element{Text: text, Type: t}
}

func TestRenderer_Headings(t *testing.T) {
	renderer := NewRenderer()

	tests := []struct {
		elementType model.ElementType
		expected    string
	}{
		{model.ElementTypeHeading1, "# Title"},
		{model.ElementTypeHeading2, "## Title"},
		{model.ElementTypeHeading3, "### Title"},
		{model.ElementTypeHeading4, "#### Title"},
	}

	for _, tt := range tests {
		got := renderer.RenderPage([]model.Element{element("Title", tt.elementType)})
		if got != tt.expected {
			t.Errorf("Expected %q for %s, got %q", tt.expected, tt.elementType, got)
		}
	}
}

func TestRenderer_HeadingNeverBold(t *testing.T) {
	renderer := NewRenderer()

	el := element("Overview", model.ElementTypeHeading1)
	el.Format.Bold = true

	got := renderer.RenderPage([]model.Element{el})
	if got != "# Overview" {
		t.Errorf("Expected bold to be absorbed by the heading marker, got %q", got)
	}
}

func TestRenderer_ListItems(t *testing.T) {
	renderer := NewRenderer()

	first := element("first", model.ElementTypeListItem)
	second := element("second", model.ElementTypeListItem)
	second.Indent = 1
	numbered := element("third", model.ElementTypeNumberedListItem)

	got := renderer.RenderPage([]model.Element{first, second, numbered})
	expected := "* first\n  * second\n1. third"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestRenderer_NumberedPlaceholder(t *testing.T) {
	renderer := NewRenderer()

	// Every numbered item renders as 1.; renumbering happens later.
	items := []model.Element{
		element("alpha", model.ElementTypeNumberedListItem),
		element("beta", model.ElementTypeNumberedListItem),
	}

	got := renderer.RenderPage(items)
	if got != "1. alpha\n1. beta" {
		t.Errorf("Expected placeholder numerals, got %q", got)
	}
}

func TestRenderer_CodeBlocks(t *testing.T) {
	renderer := NewRenderer()

	short := renderer.RenderPage([]model.Element{element("x := 1", model.ElementTypeCodeBlock)})
	if short != "`x := 1`" {
		t.Errorf("Expected inline code span, got %q", short)
	}

	multi := renderer.RenderPage([]model.Element{element("a\nb", model.ElementTypeCodeBlock)})
	if multi != "```\na\nb\n```" {
		t.Errorf("Expected fenced block for multi-line code, got %q", multi)
	}

	long := strings.Repeat("x", 61)
	fenced := renderer.RenderPage([]model.Element{element(long, model.ElementTypeCodeBlock)})
	if fenced != "```\n"+long+"\n```" {
		t.Errorf("Expected fenced block for long code, got %q", fenced)
	}
}

func TestRenderer_BlockQuote(t *testing.T) {
	renderer := NewRenderer()

	got := renderer.RenderPage([]model.Element{element("one\ntwo", model.ElementTypeBlockQuote)})
	if got != "> one\n> two" {
		t.Errorf("Expected every quoted line prefixed, got %q", got)
	}
}

func TestRenderer_HorizontalRule(t *testing.T) {
	renderer := NewRenderer()

	got := renderer.RenderPage([]model.Element{element("----------", model.ElementTypeHorizontalRule)})
	if got != "---" {
		t.Errorf("Expected rule marker, got %q", got)
	}
}

func TestRenderer_FootnoteSequence(t *testing.T) {
	renderer := NewRenderer()

	got := renderer.RenderPage([]model.Element{
		element("1. First note", model.ElementTypeFootnote),
		element("2. Second note", model.ElementTypeFootnote),
	})

	expected := "[^fn1] 1. First note\n\n[^fn2] 2. Second note"
	if got != expected {
		t.Errorf("Expected sequential footnote ids, got %q", got)
	}
}

func TestRenderer_PageNumberSuppressed(t *testing.T) {
	renderer := NewRenderer()

	got := renderer.RenderPage([]model.Element{
		element("Intro text.", model.ElementTypeParagraph),
		element("42", model.ElementTypePageNumber),
	})

	if got != "Intro text." {
		t.Errorf("Expected page number dropped, got %q", got)
	}
}

func TestRenderer_InlineFormatting(t *testing.T) {
	renderer := NewRenderer()

	bold := element("important", model.ElementTypeParagraph)
	bold.Format.Bold = true
	if got := renderer.RenderPage([]model.Element{bold}); got != "**important**" {
		t.Errorf("Expected bold wrapping, got %q", got)
	}

	italic := element("aside", model.ElementTypeParagraph)
	italic.Format.Italic = true
	if got := renderer.RenderPage([]model.Element{italic}); got != "*aside*" {
		t.Errorf("Expected italic wrapping, got %q", got)
	}

	underline := element("term", model.ElementTypeParagraph)
	underline.Format.Underline = true
	if got := renderer.RenderPage([]model.Element{underline}); got != "<u>term</u>" {
		t.Errorf("Expected underline tags, got %q", got)
	}
}

func TestRenderer_InlineFormattingNotDoubled(t *testing.T) {
	renderer := NewRenderer()

	el := element("**already**", model.ElementTypeParagraph)
	el.Format.Bold = true

	if got := renderer.RenderPage([]model.Element{el}); got != "**already**" {
		t.Errorf("Expected existing markers preserved, got %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	renderer := NewRenderer()

	table := &model.Table{
		Rows: [][]model.Cell{
			{{Text: "Name", ColSpan: 1}, {Text: "Qty", ColSpan: 1}, {Text: "Price", ColSpan: 1}},
			{{Text: "Bolt", ColSpan: 1}, {Text: "12", ColSpan: 1}, {Text: "0.40", ColSpan: 1}},
		},
		ColumnCount: 3,
		HasHeader:   true,
	}

	got := renderer.RenderTable(table)
	expected := "| Name | Qty | Price |\n" +
		"|----|---|-----|\n" +
		"| Bolt | 12 | 0.40 |\n"
	if got != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestRenderTable_SeparatorBounds(t *testing.T) {
	renderer := NewRenderer()

	long := strings.Repeat("h", 30)
	table := &model.Table{
		Rows: [][]model.Cell{
			{{Text: "a", ColSpan: 1}, {Text: long, ColSpan: 1}},
		},
		ColumnCount: 2,
	}

	got := renderer.RenderTable(table)
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("Expected header and separator rows, got %q", got)
	}

	separator := lines[1]
	if !strings.Contains(separator, "|---|") {
		t.Errorf("Expected minimum of 3 dashes for a short cell, got %q", separator)
	}
	if strings.Contains(separator, strings.Repeat("-", 21)) {
		t.Errorf("Expected dash run capped at 20, got %q", separator)
	}
	if !strings.Contains(separator, strings.Repeat("-", 20)) {
		t.Errorf("Expected long cell capped to 20 dashes, got %q", separator)
	}
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	renderer := NewRenderer()

	table := &model.Table{
		Rows: [][]model.Cell{
			{{Text: "a", ColSpan: 1}, {Text: "b", ColSpan: 1}, {Text: "c", ColSpan: 1}},
			{{Text: "only", ColSpan: 3}},
		},
		ColumnCount: 3,
	}

	got := renderer.RenderTable(table)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	last := lines[len(lines)-1]
	if strings.Count(last, "|") != 4 {
		t.Errorf("Expected short row padded to 3 columns, got %q", last)
	}
}

func TestRenderTable_MultiLineCellFlattened(t *testing.T) {
	renderer := NewRenderer()

	table := &model.Table{
		Rows: [][]model.Cell{
			{{Text: "head", ColSpan: 1}},
			{{Text: "two\nlines", ColSpan: 1}},
		},
		ColumnCount: 1,
	}

	got := renderer.RenderTable(table)
	if !strings.Contains(got, "two lines") {
		t.Errorf("Expected line break replaced with space, got %q", got)
	}
}

func TestRenderPage_TrimsTrailingBlank(t *testing.T) {
	renderer := NewRenderer()

	got := renderer.RenderPage([]model.Element{element("Body.", model.ElementTypeParagraph)})
	if strings.HasSuffix(got, "\n") {
		t.Errorf("Expected trailing newlines trimmed, got %q", got)
	}
}
