// Package pagedown reconstructs structured document semantics (headings,
// paragraphs, lists, block quotes, tables, footnotes, horizontal rules) from
// unstructured positioned text and renders the reconstruction as Markdown.
//
// Input pages expose only glyph-level facts: character, font name and size,
// color, and a bounding box in page coordinates. No structural tags exist in
// the input; everything is recovered by a multi-stage statistical pipeline
// (metrics estimation, spatial grouping, table detection, semantic
// classification, nesting, rendering, global cleanup).
//
// Basic usage:
//
//	md, warnings, err := pagedown.FromPages(pages).Markdown()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pagedown.FormatWarnings(warnings))
//	}
//
// With options:
//
//	opts := pagedown.DefaultOptions()
//	opts.DetectTables = false
//	md, _, err := pagedown.FromPages(pages).WithOptions(opts).Markdown()
//
// Pages must be supplied in document order: the metrics profile threads
// across pages, so a page without its own font signal inherits the previous
// page's thresholds. Conversion is deterministic and shares no state across
// calls; independent documents may be converted concurrently.
package pagedown

import (
	"fmt"

	"github.com/tsawler/pagedown/model"
)

// FromPages creates a Converter for the given ordered pages.
//
// Example:
//
//	md, warnings, err := pagedown.FromPages(pages).Markdown()
func FromPages(pages []model.Page) *Converter {
	return &Converter{
		pages:   pages,
		options: DefaultOptions(),
	}
}

// Convert is a convenience wrapper that converts pages with default options
// and discards warnings.
func Convert(pages []model.Page) (string, error) {
	md, _, err := FromPages(pages).Markdown()
	return md, err
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustMarkdown wraps a call to Markdown() and panics if the error is
// non-nil, discarding warnings.
//
// Example:
//
//	md := pagedown.MustMarkdown(pagedown.FromPages(pages).Markdown())
func MustMarkdown(md string, _ []Warning, err error) string {
	if err != nil {
		panic(err)
	}
	return md
}

// Warning describes a non-fatal issue encountered during conversion, such
// as a glyph-less page whose metrics were carried forward. Conversion
// succeeded but the result may be imperfect.
type Warning struct {
	// Page is the 1-indexed page the warning applies to (0 when the
	// warning is document-wide)
	Page int

	// Message describes the issue
	Message string
}

// FormatWarnings formats warnings as a single semicolon-separated string
// for logging.
func FormatWarnings(warnings []Warning) string {
	var out string
	for i, w := range warnings {
		if i > 0 {
			out += "; "
		}
		if w.Page > 0 {
			out += fmt.Sprintf("page %d: %s", w.Page, w.Message)
		} else {
			out += w.Message
		}
	}
	return out
}

// ConversionError wraps any failure raised during metrics computation,
// grouping, table detection, classification, rendering, or post-processing.
// A stage failure aborts the whole-document conversion; callers cannot rely
// on page-level partial output.
type ConversionError struct {
	// Stage names the pipeline stage that failed
	Stage string

	// Page is the 1-indexed page being processed, 0 for document-wide
	// stages
	Page int

	// Err is the original cause
	Err error
}

func (e *ConversionError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("pagedown: %s failed on page %d: %v", e.Stage, e.Page, e.Err)
	}
	return fmt.Sprintf("pagedown: %s failed: %v", e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
