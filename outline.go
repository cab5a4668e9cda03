// Package outline provides a fluent API for extracting a structured outline,
// a title plus leveled headings with page numbers, from PDF files.
//
// The outline is inferred from glyph geometry and font metadata alone: font
// sizes are ranked per document, the largest page-1 size becomes the title,
// and the remaining ranks map to heading levels H1 through H4. PDF bookmark
// metadata is never consulted, so documents without bookmarks work just as
// well as documents with them.
//
// Basic usage:
//
//	o, err := outline.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(o.Title)
//	for _, entry := range o.Entries {
//	    fmt.Printf("%s %s (page %d)\n", entry.Level, entry.Text, entry.Page)
//	}
//
// With options:
//
//	o, err := outline.Open("report.pdf").
//	    MaxPages(50).
//	    WithFilterConfig(layout.FilterConfig{MaxRunes: 100, MinRepeatPages: 2}).
//	    Outline()
//
// JSON output:
//
//	err := outline.Open("document.pdf").WriteFile("document.json")
//
// For advanced use cases, the lower-level glyph and layout packages are also
// available.
package outline

import (
	"github.com/tsawler/outline/glyph"
)

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The returned Extractor must be closed when done, either explicitly via
// Close() or implicitly when calling a terminal operation like Outline().
//
// Example:
//
//	o, err := outline.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor from an already-opened glyph source. This
// is useful for feeding glyphs from somewhere other than a file on disk.
// Note: The caller is responsible for closing the source.
//
// Example:
//
//	src, err := glyph.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//	o, err := outline.FromSource(src).Outline()
func FromSource(src glyph.Source) *Extractor {
	return &Extractor{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	o := outline.Must(outline.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
