// Package glyph reads positioned characters out of PDF documents.
//
// A PDF has no native notion of lines, paragraphs, or headings. What it
// actually stores is a stream of positioned text runs, each carrying a font
// name and size. This package flattens those runs into individual [Glyph]
// values, one per character, and groups them by page. Everything the rest of
// the module infers (lines, font histograms, heading levels) is computed from
// these glyphs alone; no PDF bookmark metadata is consulted.
//
// # Sources
//
// Extraction goes through the [Source] interface so the analysis layers never
// depend on a particular PDF library. [Open] builds a Source from a file on
// disk, trying the bundled readers in order of fidelity:
//
//  1. github.com/ledongthuc/pdf, which reports text-space coordinates and
//     per-run font metadata and is the primary reader.
//  2. github.com/dslipak/pdf, a simpler reader kept as a fallback for files
//     the primary reader cannot parse.
//
// Both readers are wrapped so that panics inside content stream parsing
// surface as errors from [Source.Page] rather than crashing the caller.
//
// # Coordinates
//
// Glyph positions use PDF user space: the origin sits at the bottom-left of
// the page and Y grows upward. Y is the text baseline, so two glyphs on the
// same visual line share (nearly) the same Y. Callers comparing vertical
// positions must remember that "higher on the page" means a larger Y.
//
// # Preflight
//
// [Preflight] validates a document with pdfcpu before extraction is
// attempted. It is optional but gives much more precise failure reasons
// (corrupt xref, encryption, zero pages) than the text readers, whose errors
// tend to be terse.
package glyph
