package outline

import (
	"fmt"

	"github.com/tsawler/outline/glyph"
	"github.com/tsawler/outline/layout"
)

// Extractor provides a fluent interface for extracting outlines from PDF
// files. Each configuration method returns a new Extractor instance, making
// it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	source   glyph.Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if the source has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		source:       e.source,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureSource opens the glyph source if not already open.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	src, err := glyph.Open(e.filename)
	if err != nil {
		return err
	}
	e.source = src
	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource && e.source != nil {
		err := e.source.Close()
		e.source = nil
		e.ownsSource = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// MaxPages caps how many pages are read, counted from page 1. Zero means
// all pages.
//
// Example:
//
//	o, err := outline.Open("doc.pdf").MaxPages(50).Outline()
func (e *Extractor) MaxPages(n int) *Extractor {
	newExt := e.clone()
	newExt.options.maxPages = n
	return newExt
}

// WithLineConfig replaces the line reconstruction configuration.
//
// Example:
//
//	cfg := layout.DefaultLineConfig()
//	cfg.BaselineTolerance = 0.5
//	o, err := outline.Open("doc.pdf").WithLineConfig(cfg).Outline()
func (e *Extractor) WithLineConfig(config layout.LineConfig) *Extractor {
	newExt := e.clone()
	newExt.options.lineConfig = config
	return newExt
}

// WithLevelConfig replaces the level assignment configuration.
//
// Example:
//
//	cfg := layout.DefaultLevelConfig()
//	cfg.MaxLevels = 3
//	o, err := outline.Open("doc.pdf").WithLevelConfig(cfg).Outline()
func (e *Extractor) WithLevelConfig(config layout.LevelConfig) *Extractor {
	newExt := e.clone()
	newExt.options.levelConfig = config
	return newExt
}

// WithFilterConfig replaces the content filter configuration.
//
// Example:
//
//	cfg := layout.DefaultFilterConfig()
//	cfg.MinRepeatPages = 2
//	o, err := outline.Open("doc.pdf").WithFilterConfig(cfg).Outline()
func (e *Extractor) WithFilterConfig(config layout.FilterConfig) *Extractor {
	newExt := e.clone()
	newExt.options.filterConfig = config
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Outline runs the full inference pipeline and returns the document outline.
// This is a terminal operation that closes the underlying source.
//
// The pipeline never aborts on content it cannot make sense of: a document
// with no discernible title gets an empty title, and a document with no
// heading-sized text gets an empty entry list.
//
// Example:
//
//	o, err := outline.Open("document.pdf").Outline()
func (e *Extractor) Outline() (*Outline, error) {
	if e.err != nil {
		return nil, e.err
	}

	if err := e.ensureSource(); err != nil {
		return nil, err
	}
	defer e.Close()

	pages := e.collectPages()

	builder := layout.NewLineBuilderWithConfig(e.options.lineConfig)
	lines := builder.BuildDocument(pages)

	// Running headers and footers are tallied first and kept out of the
	// histograms: a footer repeated on every page would otherwise crowd
	// real heading sizes out of the ranking.
	tally := layout.BuildRepeatTally(lines, e.options.filterConfig.MinRepeatPages)
	ranked := tally.Filter(lines)

	var page1 []layout.Line
	for _, line := range ranked {
		if line.Page == 1 {
			page1 = append(page1, line)
		}
	}

	docHist := layout.BuildHistogram(ranked)
	page1Hist := layout.BuildHistogram(page1)

	assigner := layout.NewLevelAssignerWithConfig(e.options.levelConfig)
	levelMap := assigner.Assign(docHist, page1Hist)
	title := assigner.Title(ranked, levelMap)

	// Candidates come from all lines, repeated ones included; the filter
	// rules decide their fate individually.
	filter := layout.NewContentFilterWithConfig(e.options.filterConfig, tally, title)
	accepted := filter.Apply(levelMap.Candidates(lines))

	return assemble(title.Text, accepted), nil
}

// Title runs the pipeline and returns just the document title. The title is
// empty when no page-1 size qualifies. This is a terminal operation that
// closes the underlying source.
//
// Example:
//
//	title, err := outline.Open("document.pdf").Title()
func (e *Extractor) Title() (string, error) {
	o, err := e.Outline()
	if err != nil {
		return "", err
	}
	return o.Title, nil
}

// Entries runs the pipeline and returns just the accepted heading entries.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	entries, err := outline.Open("document.pdf").Entries()
func (e *Extractor) Entries() ([]Entry, error) {
	o, err := e.Outline()
	if err != nil {
		return nil, err
	}
	return o.Entries, nil
}

// JSON runs the pipeline and returns the outline as indented JSON.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	data, err := outline.Open("document.pdf").JSON()
func (e *Extractor) JSON() ([]byte, error) {
	o, err := e.Outline()
	if err != nil {
		return nil, err
	}
	return o.JSON()
}

// WriteFile runs the pipeline and writes the outline as JSON to path.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	err := outline.Open("document.pdf").WriteFile("document.json")
func (e *Extractor) WriteFile(path string) error {
	o, err := e.Outline()
	if err != nil {
		return err
	}
	return o.WriteFile(path)
}

// Lines runs line reconstruction only and returns every reconstructed line
// in reading order. Useful for debugging why a heading was or was not
// detected. This is a terminal operation that closes the underlying source.
//
// Example:
//
//	lines, err := outline.Open("document.pdf").Lines()
func (e *Extractor) Lines() ([]layout.Line, error) {
	if e.err != nil {
		return nil, e.err
	}

	if err := e.ensureSource(); err != nil {
		return nil, err
	}
	defer e.Close()

	builder := layout.NewLineBuilderWithConfig(e.options.lineConfig)
	return builder.BuildDocument(e.collectPages()), nil
}

// PageCount returns the number of pages in the document. Unlike the
// terminal operations it leaves the source open, so it can be combined
// with a later terminal call on the same chain.
//
// Example:
//
//	ext := outline.Open("document.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	if err := e.ensureSource(); err != nil {
		return 0, err
	}

	return e.source.PageCount(), nil
}

// collectPages reads every page within the configured cap. Pages that fail
// to parse are skipped rather than failing the document; whole-document
// analysis degrades gracefully when single pages are broken.
func (e *Extractor) collectPages() []glyph.Page {
	count := e.source.PageCount()
	if e.options.maxPages > 0 && count > e.options.maxPages {
		count = e.options.maxPages
	}

	pages := make([]glyph.Page, 0, count)
	for n := 1; n <= count; n++ {
		page, err := e.source.Page(n)
		if err != nil {
			continue
		}
		pages = append(pages, page)
	}
	return pages
}
