package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Word is an ordered run of glyphs judged contiguous by the word grouper.
// Derived attributes are computed once at construction.
type Word struct {
	// Glyphs are the member glyphs in reading order
	Glyphs []Glyph

	// BBox is the union of the member glyph boxes
	BBox BBox

	// FontSize is the average font size of the member glyphs
	FontSize float64

	// FontName is the dominant (most frequent) font name
	FontName string

	// Bold and Italic are inferred from the dominant font name
	Bold   bool
	Italic bool

	// Color is the dominant (most frequent) glyph color
	Color Color
}

// NewWord builds a word from an ordered glyph run, computing the derived
// attributes. Returns a zero word for an empty run.
func NewWord(glyphs []Glyph) Word {
	if len(glyphs) == 0 {
		return Word{}
	}

	w := Word{Glyphs: glyphs, BBox: glyphs[0].BBox}

	var sizeSum float64
	fontCounts := make(map[string]int)
	colorCounts := make(map[Color]int)

	for _, g := range glyphs {
		w.BBox = w.BBox.Union(g.BBox)
		sizeSum += g.FontSize
		fontCounts[g.FontName]++
		colorCounts[g.Color]++
	}

	w.FontSize = sizeSum / float64(len(glyphs))
	w.FontName = dominantFont(fontCounts)
	w.Color = dominantColor(colorCounts)
	w.Bold = IsBoldFont(w.FontName)
	w.Italic = IsItalicFont(w.FontName)

	return w
}

// Text returns the word's text, NFC-normalized so that combining marks
// emitted as separate glyphs compose with their base characters.
func (w Word) Text() string {
	var sb strings.Builder
	for _, g := range w.Glyphs {
		sb.WriteString(g.Text)
	}
	return norm.NFC.String(sb.String())
}

// Line is an ordered run of words sharing a vertical band, left to right.
type Line struct {
	// Words are the member words in ascending left order
	Words []Word

	// BBox is the union of the member word boxes
	BBox BBox

	// FontSize is the average font size of the member words
	FontSize float64

	// FontName is the most frequent font name among the words
	FontName string

	// Color is the most frequent color among the words
	Color Color
}

// NewLine builds a line from an ordered word run, computing the derived
// attributes. Returns a zero line for an empty run.
func NewLine(words []Word) Line {
	if len(words) == 0 {
		return Line{}
	}

	l := Line{Words: words, BBox: words[0].BBox}

	var sizeSum float64
	fontCounts := make(map[string]int)
	colorCounts := make(map[Color]int)

	for _, w := range words {
		l.BBox = l.BBox.Union(w.BBox)
		sizeSum += w.FontSize
		fontCounts[w.FontName]++
		colorCounts[w.Color]++
	}

	l.FontSize = sizeSum / float64(len(words))
	l.FontName = dominantFont(fontCounts)
	l.Color = dominantColor(colorCounts)

	return l
}

// Text returns the line's text with single spaces between words.
func (l Line) Text() string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text()
	}
	return strings.Join(parts, " ")
}

// Height returns the line height: max word top minus min word bottom.
func (l Line) Height() float64 {
	return l.BBox.Height
}

// Bold reports whether any word in the line uses a bold face.
func (l Line) Bold() bool {
	for _, w := range l.Words {
		if w.Bold {
			return true
		}
	}
	return false
}

// Italic reports whether any word in the line uses an italic face.
func (l Line) Italic() bool {
	for _, w := range l.Words {
		if w.Italic {
			return true
		}
	}
	return false
}

func dominantFont(counts map[string]int) string {
	best, bestCount := "", -1
	for name, n := range counts {
		if n > bestCount || (n == bestCount && name < best) {
			best, bestCount = name, n
		}
	}
	return best
}

func dominantColor(counts map[Color]int) Color {
	best, bestCount := Black, -1
	for c, n := range counts {
		if n > bestCount || (n == bestCount && colorLess(c, best)) {
			best, bestCount = c, n
		}
	}
	return best
}

// colorLess imposes an arbitrary total order on colors so map iteration
// order cannot influence the result.
func colorLess(a, b Color) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}
