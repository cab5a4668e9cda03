package glyph

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"
)

// ledongthucSource reads glyphs through github.com/ledongthuc/pdf. It is the
// primary reader: it reports text-space X/Y per run along with the font name
// and size, which is exactly the metadata heading inference runs on.
type ledongthucSource struct {
	file   io.Closer
	reader *lpdf.Reader
}

func openLedongthuc(path string) (Source, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ledongthuc: %w", err)
	}
	return &ledongthucSource{file: f, reader: r}, nil
}

func (s *ledongthucSource) PageCount() int {
	return s.reader.NumPage()
}

// Page extracts the glyphs of page n. The underlying reader panics on
// malformed objects in the content stream, so panics are converted to errors
// here; one broken page must not take down a whole batch.
func (s *ledongthucSource) Page(n int) (page Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ledongthuc: page %d: %v", n, r)
		}
	}()

	if n < 1 || n > s.reader.NumPage() {
		return Page{}, fmt.Errorf("ledongthuc: page %d out of range 1-%d", n, s.reader.NumPage())
	}

	p := s.reader.Page(n)
	if p.V.IsNull() {
		return Page{Number: n, Width: letterWidth, Height: letterHeight}, nil
	}

	page = Page{Number: n, Width: letterWidth, Height: letterHeight}
	if box := p.V.Key("MediaBox"); box.Kind() == lpdf.Array && box.Len() == 4 {
		if w := box.Index(2).Float64() - box.Index(0).Float64(); w > 0 {
			page.Width = w
		}
		if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
			page.Height = h
		}
	}

	for _, t := range p.Content().Text {
		page.Glyphs = append(page.Glyphs, splitRun(t.S, t.X, t.Y, t.W, t.FontSize, t.Font)...)
	}
	return page, nil
}

func (s *ledongthucSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
