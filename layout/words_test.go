package layout

import (
	"testing"

	"github.com/tsawler/pagedown/model"
)

func TestWordGrouper_Empty(t *testing.T) {
	grouper := NewWordGrouper()

	if words := grouper.Group(nil); words != nil {
		t.Errorf("Expected no words, got %d", len(words))
	}
}

func TestWordGrouper_AdjacentGlyphsShareWord(t *testing.T) {
	grouper := NewWordGrouper()

	// Gap of 2 points at 12pt is well under the 0.6 ratio.
	glyphs := []model.Glyph{
		makeGlyph("H", 100, 700, 12, "Times"),
		makeGlyph("i", 108, 700, 12, "Times"),
	}

	words := grouper.Group(glyphs)

	if len(words) != 1 {
		t.Fatalf("Expected 1 word, got %d", len(words))
	}
	if words[0].Text() != "Hi" {
		t.Errorf("Expected 'Hi', got %q", words[0].Text())
	}
}

func TestWordGrouper_WideGapSplits(t *testing.T) {
	grouper := NewWordGrouper()

	// Gap of 8 points at 12pt exceeds 0.6 x 12 = 7.2.
	glyphs := []model.Glyph{
		makeGlyph("a", 100, 700, 12, "Times"),
		makeGlyph("b", 114, 700, 12, "Times"),
	}

	words := grouper.Group(glyphs)

	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
}

func TestWordGrouper_GapJustUnderThresholdStays(t *testing.T) {
	grouper := NewWordGrouper()

	// Gap of 7 points at 12pt is just under 0.6 x 12 = 7.2.
	glyphs := []model.Glyph{
		makeGlyph("a", 100, 700, 12, "Times"),
		makeGlyph("b", 113, 700, 12, "Times"),
	}

	if words := grouper.Group(glyphs); len(words) != 1 {
		t.Errorf("Expected 1 word just under threshold, got %d", len(words))
	}
}

func TestWordGrouper_VerticalJumpSplits(t *testing.T) {
	grouper := NewWordGrouper()

	// Top difference of 6 points at 12pt exceeds 0.4 x 12 = 4.8, even
	// though the glyphs touch horizontally.
	glyphs := []model.Glyph{
		makeGlyph("a", 100, 700, 12, "Times"),
		makeGlyph("b", 106, 694, 12, "Times"),
	}

	if words := grouper.Group(glyphs); len(words) != 2 {
		t.Errorf("Expected 2 words after vertical jump, got %d", len(words))
	}
}

func TestWordGrouper_SmallVerticalJitterStays(t *testing.T) {
	grouper := NewWordGrouper()

	glyphs := []model.Glyph{
		makeGlyph("a", 100, 700, 12, "Times"),
		makeGlyph("b", 106, 698, 12, "Times"),
	}

	if words := grouper.Group(glyphs); len(words) != 1 {
		t.Errorf("Expected 1 word with small jitter, got %d", len(words))
	}
}

func TestWordGrouper_SortsIntoReadingOrder(t *testing.T) {
	grouper := NewWordGrouper()

	// Supplied out of order: second line first, words reversed.
	var glyphs []model.Glyph
	glyphs = append(glyphs, glyphRow("world", 150, 680, 12, "Times")...)
	glyphs = append(glyphs, glyphRow("hello", 72, 700, 12, "Times")...)

	words := grouper.Group(glyphs)

	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
	if words[0].Text() != "hello" || words[1].Text() != "world" {
		t.Errorf("Expected hello then world, got %q then %q",
			words[0].Text(), words[1].Text())
	}
}
