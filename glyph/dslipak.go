package glyph

import (
	"fmt"

	dpdf "github.com/dslipak/pdf"
)

// dslipakSource reads glyphs through github.com/dslipak/pdf. It accepts some
// files the primary reader chokes on, at the cost of never reporting page
// dimensions, so pages are assumed US Letter.
type dslipakSource struct {
	reader *dpdf.Reader
}

func openDslipak(path string) (Source, error) {
	r, err := dpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dslipak: %w", err)
	}
	return &dslipakSource{reader: r}, nil
}

func (s *dslipakSource) PageCount() int {
	if s.reader == nil {
		return 0
	}
	return s.reader.NumPage()
}

func (s *dslipakSource) Page(n int) (page Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dslipak: page %d: %v", n, r)
		}
	}()

	if n < 1 || n > s.PageCount() {
		return Page{}, fmt.Errorf("dslipak: page %d out of range 1-%d", n, s.PageCount())
	}

	p := s.reader.Page(n)
	page = Page{Number: n, Width: letterWidth, Height: letterHeight}
	for _, t := range p.Content().Text {
		page.Glyphs = append(page.Glyphs, splitRun(t.S, t.X, t.Y, t.W, t.FontSize, t.Font)...)
	}
	return page, nil
}

// Close satisfies Source. The library holds no file handle of its own.
func (s *dslipakSource) Close() error {
	s.reader = nil
	return nil
}
