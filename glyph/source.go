package glyph

import (
	"errors"
	"fmt"
)

// Source yields the glyphs of an open document, one page at a time.
// Implementations wrap a concrete PDF reader; see [Open].
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Page extracts the glyphs of the 1-based page n.
	Page(n int) (Page, error)

	// Close releases the underlying file. Safe to call more than once.
	Close() error
}

// Open opens the PDF at path and returns a glyph source for it. The primary
// reader is tried first; if it rejects the file the fallback reader gets a
// chance, since the two disagree about a surprising number of real-world
// documents. The caller must Close the returned source.
func Open(path string) (Source, error) {
	src, primaryErr := openLedongthuc(path)
	if primaryErr == nil {
		return src, nil
	}
	src, fallbackErr := openDslipak(path)
	if fallbackErr == nil {
		return src, nil
	}
	return nil, fmt.Errorf("open %s: %w", path, errors.Join(primaryErr, fallbackErr))
}
