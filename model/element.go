package model

// ElementType identifies the semantic type of a classified unit of page
// text. It is a closed set: the classifier's rules are ordered and
// exhaustive, so new types must not be added without revisiting rule order.
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeHeading1
	ElementTypeHeading2
	ElementTypeHeading3
	ElementTypeHeading4
	ElementTypeListItem
	ElementTypeNumberedListItem
	ElementTypeCodeBlock
	ElementTypeBlockQuote
	ElementTypeHorizontalRule
	ElementTypeFootnote
	ElementTypePageNumber
	ElementTypeTable
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeHeading1:
		return "Heading1"
	case ElementTypeHeading2:
		return "Heading2"
	case ElementTypeHeading3:
		return "Heading3"
	case ElementTypeHeading4:
		return "Heading4"
	case ElementTypeListItem:
		return "ListItem"
	case ElementTypeNumberedListItem:
		return "NumberedListItem"
	case ElementTypeCodeBlock:
		return "CodeBlock"
	case ElementTypeBlockQuote:
		return "BlockQuote"
	case ElementTypeHorizontalRule:
		return "HorizontalRule"
	case ElementTypeFootnote:
		return "Footnote"
	case ElementTypePageNumber:
		return "PageNumber"
	case ElementTypeTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// IsHeading reports whether the type is one of the four heading tiers.
func (et ElementType) IsHeading() bool {
	return et >= ElementTypeHeading1 && et <= ElementTypeHeading4
}

// IsListItem reports whether the type is a (numbered or bulleted) list item.
func (et ElementType) IsListItem() bool {
	return et == ElementTypeListItem || et == ElementTypeNumberedListItem
}

// TextFormat captures the visual formatting of an element's text.
type TextFormat struct {
	FontSize  float64
	Bold      bool
	Italic    bool
	Underline bool
	Color     Color
}

// Element is a classified semantic unit of page text. Elements are ordered
// top to bottom, matching reading order.
type Element struct {
	// Text is the content with any list marker already stripped
	Text string

	// Type is the semantic type assigned by the classifier
	Type ElementType

	// Format is the element's visual formatting
	Format TextFormat

	// BBox is the element's position on the page
	BBox BBox

	// Indent is the nesting depth for list items (0 = top level)
	Indent int

	// Confidence is the classification confidence in [0, 1]
	Confidence float64

	// IsContinuation marks a line judged to be the soft-wrapped remainder
	// of the previous element rather than a new unit
	IsContinuation bool

	// Table carries the detected table when Type is ElementTypeTable
	Table *Table
}
