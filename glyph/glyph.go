package glyph

// Default page dimensions in points, used when a page carries no usable
// MediaBox. US Letter matches what the fallback reader assumes.
const (
	letterWidth  = 612.0
	letterHeight = 792.0
)

// Glyph is a single positioned character extracted from a page.
type Glyph struct {
	// Text is the character itself. Multi-byte characters are kept whole,
	// so len(Text) can exceed one.
	Text string

	// FontName is the PDF font resource name, e.g. "Helvetica-Bold".
	// May be empty when the reader cannot resolve it.
	FontName string

	// FontSize is the effective font size in points.
	FontSize float64

	// X is the horizontal position of the glyph origin in PDF user space.
	X float64

	// Y is the baseline position in PDF user space. Larger Y is higher on
	// the page.
	Y float64

	// Width is the horizontal advance of the glyph.
	Width float64

	// Height is the vertical extent, approximated by the font size.
	Height float64
}

// Page holds the glyphs of a single page.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Width and Height are the page dimensions in points.
	Width  float64
	Height float64

	// Glyphs are the page's characters in content stream order.
	Glyphs []Glyph
}

// splitRun fans a positioned text run out into per-character glyphs. The
// readers report one width for the whole run, so each character is assigned
// an even share; that approximation is all the downstream gap detection
// needs. Space and newline characters are dropped because the line assembler
// reinserts word spacing from geometry, but their horizontal advance is kept
// so the following characters stay in place.
func splitRun(s string, x, y, w, size float64, font string) []Glyph {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	charWidth := w / float64(len(runes))
	glyphs := make([]Glyph, 0, len(runes))
	for _, r := range runes {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			glyphs = append(glyphs, Glyph{
				Text:     string(r),
				FontName: font,
				FontSize: size,
				X:        x,
				Y:        y,
				Width:    charWidth,
				Height:   size,
			})
		}
		x += charWidth
	}
	return glyphs
}
