// Package model defines the data types shared by every stage of the
// reconstruction pipeline.
//
// The types form a strict progression: a [Page] carries raw [Glyph] values as
// produced by an external page source; glyphs are grouped into [Word] and
// [Line] values by the layout package; lines become classified [Element]
// values and detected [Table] values; and a per-page [PageMetrics] profile
// parameterizes every heuristic along the way.
//
// # Coordinate System
//
// All geometry uses a bottom-left origin with Y increasing upward, matching
// the coordinate space of positioned-text page sources. Within a page, lines
// are ordered by descending top coordinate and words within a line by
// ascending left coordinate.
package model
