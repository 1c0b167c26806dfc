package markdown

import (
	"fmt"
	"strings"

	"github.com/tsawler/pagedown/model"
)

// RenderConfig holds configuration for the renderer.
type RenderConfig struct {
	// MaxInlineCodeLength: code text at or under this length (with no
	// line break) renders as an inline backtick span instead of a fence
	MaxInlineCodeLength int

	// MaxSeparatorDashes caps the dash count per cell in a table
	// separator row
	MaxSeparatorDashes int
}

// DefaultRenderConfig returns the reference renderer configuration.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxInlineCodeLength: 60,
		MaxSeparatorDashes:  20,
	}
}

// Renderer converts classified elements into Markdown fragments. A renderer
// carries only the footnote id sequence, so one renderer should serve one
// document conversion.
type Renderer struct {
	config      RenderConfig
	footnoteSeq int
}

// NewRenderer creates a renderer with default configuration.
func NewRenderer() *Renderer {
	return NewRendererWithConfig(DefaultRenderConfig())
}

// NewRendererWithConfig creates a renderer with the given configuration.
func NewRendererWithConfig(config RenderConfig) *Renderer {
	return &Renderer{config: config}
}

// RenderPage renders one page's elements, in order, as a Markdown fragment.
func (r *Renderer) RenderPage(elements []model.Element) string {
	var sb strings.Builder
	for _, el := range elements {
		sb.WriteString(r.renderElement(el))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *Renderer) renderElement(el model.Element) string {
	text := r.applyInline(el.Text, el.Format, el.Type)

	switch el.Type {
	case model.ElementTypeHeading1, model.ElementTypeHeading2,
		model.ElementTypeHeading3, model.ElementTypeHeading4:
		level := int(el.Type-model.ElementTypeHeading1) + 1
		return strings.Repeat("#", level) + " " + text + "\n\n"

	case model.ElementTypeListItem:
		return strings.Repeat("  ", el.Indent) + "* " + text + "\n"

	case model.ElementTypeNumberedListItem:
		// Placeholder numeral; the post-processor renumbers.
		return strings.Repeat("  ", el.Indent) + "1. " + text + "\n"

	case model.ElementTypeCodeBlock:
		if strings.Contains(el.Text, "\n") || len(el.Text) > r.config.MaxInlineCodeLength {
			return "```\n" + el.Text + "\n```\n\n"
		}
		return "`" + el.Text + "`\n\n"

	case model.ElementTypeBlockQuote:
		var sb strings.Builder
		for _, line := range strings.Split(text, "\n") {
			sb.WriteString("> " + line + "\n")
		}
		sb.WriteString("\n")
		return sb.String()

	case model.ElementTypeHorizontalRule:
		return "---\n\n"

	case model.ElementTypeFootnote:
		r.footnoteSeq++
		return fmt.Sprintf("[^fn%d] %s\n\n", r.footnoteSeq, text)

	case model.ElementTypePageNumber:
		return ""

	case model.ElementTypeTable:
		if el.Table == nil {
			return ""
		}
		return r.RenderTable(el.Table) + "\n"

	default:
		return text + "\n\n"
	}
}

// applyInline wraps the text in Markdown styling markers, skipping any
// wrapping already present. Bold is never applied to headings, which carry
// their weight through the heading marker itself.
func (r *Renderer) applyInline(text string, format model.TextFormat, t model.ElementType) string {
	if format.Bold && !t.IsHeading() && !wrapped(text, "**", "**") {
		text = "**" + text + "**"
	}
	if format.Italic && !wrapped(text, "*", "*") {
		text = "*" + text + "*"
	}
	if format.Underline && !wrapped(text, "<u>", "</u>") {
		text = "<u>" + text + "</u>"
	}
	return text
}

func wrapped(text, prefix, suffix string) bool {
	return len(text) > len(prefix)+len(suffix) &&
		strings.HasPrefix(text, prefix) && strings.HasSuffix(text, suffix)
}

// RenderTable renders a detected table as a Markdown pipe table: a header
// row, a separator row of dashes sized to the header cells, then the data
// rows, all padded to the table's maximum column count.
func (r *Renderer) RenderTable(table *model.Table) string {
	if len(table.Rows) == 0 {
		return ""
	}

	maxCols := 0
	for _, row := range table.Rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	var sb strings.Builder

	header := padRow(table.Rows[0], maxCols)
	writeRow(&sb, header)

	sb.WriteString("|")
	for _, cell := range header {
		dashes := len(cell)
		if dashes > r.config.MaxSeparatorDashes {
			dashes = r.config.MaxSeparatorDashes
		}
		if dashes < 3 {
			dashes = 3
		}
		sb.WriteString(strings.Repeat("-", dashes) + "|")
	}
	sb.WriteString("\n")

	for _, row := range table.Rows[1:] {
		writeRow(&sb, padRow(row, maxCols))
	}

	return sb.String()
}

func padRow(row []model.Cell, cols int) []string {
	out := make([]string, cols)
	for i := range out {
		if i < len(row) {
			out[i] = strings.ReplaceAll(row[i].Text, "\n", " ")
		}
	}
	return out
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, cell := range cells {
		sb.WriteString(" " + cell + " |")
	}
	sb.WriteString("\n")
}
