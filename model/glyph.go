package model

import "strings"

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// Black is the default glyph color when a page source provides none.
var Black = Color{0, 0, 0}

// Glyph is a single positioned character as produced by a page source.
// Glyphs are immutable inputs; the pipeline never modifies them.
//
// A missing font name or color is not an error: classification proceeds with
// defaults (empty name, black) at reduced confidence.
type Glyph struct {
	// Text is the character (one rune, possibly with combining marks)
	Text string

	// FontName is the raw font name from the source (may be empty)
	FontName string

	// FontSize is the font size in points
	FontSize float64

	// Color is the fill color (black if the source provided none)
	Color Color

	// BBox is the glyph's bounding box in page coordinates
	BBox BBox
}

// Page is the input contract of the pipeline: one page of a paginated
// document with its dimensions and an unordered collection of glyphs.
// Page values are produced by an external page source; this library performs
// no document-container parsing itself.
type Page struct {
	// Number is the 1-indexed page number
	Number int

	// Width and Height are the page dimensions in points
	Width  float64
	Height float64

	// Glyphs is the unordered set of positioned characters on the page
	Glyphs []Glyph
}

// boldKeywords and italicKeywords identify weight and slant from raw font
// names, since positioned-text sources expose style only through the name.
var (
	boldKeywords   = []string{"bold", "black", "heavy", "semibold", "demibold"}
	italicKeywords = []string{"italic", "oblique"}
)

// IsBoldFont reports whether a raw font name indicates a bold face.
func IsBoldFont(fontName string) bool {
	name := strings.ToLower(fontName)
	for _, kw := range boldKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// IsItalicFont reports whether a raw font name indicates an italic face.
func IsItalicFont(fontName string) bool {
	name := strings.ToLower(fontName)
	for _, kw := range italicKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
