package layout

import (
	"math"
	"testing"

	"github.com/tsawler/outline/glyph"
)

// makeGlyph creates a glyph for line tests
func makeGlyph(text string, x, y, size float64) glyph.Glyph {
	return glyph.Glyph{
		Text:     text,
		FontSize: size,
		X:        x,
		Y:        y,
		Width:    size * 0.5,
		Height:   size,
	}
}

// glyphRun lays the characters of s out left to right starting at x on
// baseline y. Spaces advance the pen without emitting a glyph, which is how
// the PDF readers report runs.
func glyphRun(s string, x, y, size float64) []glyph.Glyph {
	var glyphs []glyph.Glyph
	w := size * 0.5
	for _, r := range s {
		if r != ' ' {
			glyphs = append(glyphs, makeGlyph(string(r), x, y, size))
		}
		x += w
	}
	return glyphs
}

func TestDefaultLineConfig(t *testing.T) {
	config := DefaultLineConfig()

	if config.BaselineTolerance != 0.40 {
		t.Errorf("Expected BaselineTolerance=0.40, got %f", config.BaselineTolerance)
	}
	if config.SpaceGapFraction != 0.3 {
		t.Errorf("Expected SpaceGapFraction=0.3, got %f", config.SpaceGapFraction)
	}
	if config.XTolerance != 0.25 {
		t.Errorf("Expected XTolerance=0.25, got %f", config.XTolerance)
	}
}

func TestBuildPageEmpty(t *testing.T) {
	builder := NewLineBuilder()
	lines := builder.BuildPage(glyph.Page{Number: 1, Width: 612, Height: 792})

	if len(lines) != 0 {
		t.Errorf("Expected 0 lines for empty page, got %d", len(lines))
	}
}

func TestBuildPageSingleLine(t *testing.T) {
	builder := NewLineBuilder()
	page := glyph.Page{Number: 1, Glyphs: glyphRun("Hello World", 72, 700, 12)}

	lines := builder.BuildPage(page)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	line := lines[0]
	if line.Text != "Hello World" {
		t.Errorf("Expected text %q, got %q", "Hello World", line.Text)
	}
	if line.FontSize != 12 {
		t.Errorf("Expected font size 12, got %f", line.FontSize)
	}
	if line.Page != 1 {
		t.Errorf("Expected page 1, got %d", line.Page)
	}
	if math.Abs(line.Y-700) > 0.001 {
		t.Errorf("Expected baseline 700, got %f", line.Y)
	}
	if math.Abs(line.X-72) > 0.001 {
		t.Errorf("Expected left edge 72, got %f", line.X)
	}
}

func TestBuildPageSeparatesLines(t *testing.T) {
	builder := NewLineBuilder()
	page := glyph.Page{Number: 1}
	page.Glyphs = append(page.Glyphs, glyphRun("First", 72, 700, 12)...)
	page.Glyphs = append(page.Glyphs, glyphRun("Second", 72, 650, 12)...)

	lines := builder.BuildPage(page)

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "First" || lines[1].Text != "Second" {
		t.Errorf("Expected top-to-bottom order, got %q then %q", lines[0].Text, lines[1].Text)
	}
}

func TestBuildPageMergesNearBaselines(t *testing.T) {
	// 12pt with 0.40 tolerance allows 4.8pt of baseline wobble
	builder := NewLineBuilder()
	page := glyph.Page{Number: 1}
	page.Glyphs = append(page.Glyphs, glyphRun("Hello", 72, 700, 12)...)
	page.Glyphs = append(page.Glyphs, glyphRun("World", 120, 698, 12)...)

	lines := builder.BuildPage(page)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 merged line, got %d", len(lines))
	}
	if lines[0].Text != "Hello World" {
		t.Errorf("Expected %q, got %q", "Hello World", lines[0].Text)
	}
}

func TestBuildPageStreamOrderIndependent(t *testing.T) {
	// Feeding the lower line first must not change the output order
	builder := NewLineBuilder()

	top := glyphRun("Top", 72, 700, 12)
	bottom := glyphRun("Bottom", 72, 600, 12)

	page := glyph.Page{Number: 1}
	page.Glyphs = append(page.Glyphs, bottom...)
	page.Glyphs = append(page.Glyphs, top...)

	lines := builder.BuildPage(page)

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "Top" {
		t.Errorf("Expected %q first, got %q", "Top", lines[0].Text)
	}
	if lines[1].Text != "Bottom" {
		t.Errorf("Expected %q second, got %q", "Bottom", lines[1].Text)
	}
}

func TestBuildPageReordersGlyphsByX(t *testing.T) {
	builder := NewLineBuilder()

	// Glyphs of one line delivered right to left
	run := glyphRun("abc", 72, 700, 12)
	page := glyph.Page{Number: 1, Glyphs: []glyph.Glyph{run[2], run[1], run[0]}}

	lines := builder.BuildPage(page)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "abc" {
		t.Errorf("Expected %q, got %q", "abc", lines[0].Text)
	}
}

func TestBuildPageInsertsSpacesAtGaps(t *testing.T) {
	builder := NewLineBuilder()
	page := glyph.Page{Number: 1, Glyphs: glyphRun("AB CD", 72, 700, 12)}

	lines := builder.BuildPage(page)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "AB CD" {
		t.Errorf("Expected %q, got %q", "AB CD", lines[0].Text)
	}
}

func TestBuildPageNoSpaceForAdjacentGlyphs(t *testing.T) {
	builder := NewLineBuilder()
	page := glyph.Page{Number: 1, Glyphs: glyphRun("ABCD", 72, 700, 12)}

	lines := builder.BuildPage(page)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "ABCD" {
		t.Errorf("Expected %q, got %q", "ABCD", lines[0].Text)
	}
}

func TestLineDominantFontSize(t *testing.T) {
	// A large drop cap must not decide the line's size
	builder := NewLineBuilder()
	page := glyph.Page{Number: 1}
	page.Glyphs = append(page.Glyphs, makeGlyph("I", 72, 700, 24))
	page.Glyphs = append(page.Glyphs, glyphRun("ntroduction", 84, 700, 12)...)

	lines := builder.BuildPage(page)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].FontSize != 12 {
		t.Errorf("Expected dominant size 12, got %f", lines[0].FontSize)
	}
}

func TestLineDominantFontSizeTie(t *testing.T) {
	// Equal spans: the smaller size wins
	builder := NewLineBuilder()
	page := glyph.Page{Number: 1}
	page.Glyphs = append(page.Glyphs, glyphRun("ab", 72, 700, 18)...)
	page.Glyphs = append(page.Glyphs, glyphRun("cd", 100, 700, 14)...)

	lines := builder.BuildPage(page)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].FontSize != 14 {
		t.Errorf("Expected tie to resolve to 14, got %f", lines[0].FontSize)
	}
}

func TestBuildPageDropsWhitespaceOnlyLines(t *testing.T) {
	builder := NewLineBuilder()
	page := glyph.Page{Number: 1, Glyphs: []glyph.Glyph{makeGlyph(" ", 72, 700, 12)}}

	lines := builder.BuildPage(page)

	if len(lines) != 0 {
		t.Errorf("Expected whitespace-only line to be dropped, got %d lines", len(lines))
	}
}

func TestBuildPageFoldsLigatures(t *testing.T) {
	builder := NewLineBuilder()
	page := glyph.Page{Number: 1}
	page.Glyphs = append(page.Glyphs, makeGlyph("ﬁ", 72, 700, 12))
	page.Glyphs = append(page.Glyphs, glyphRun("le", 78, 700, 12)...)

	lines := builder.BuildPage(page)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "file" {
		t.Errorf("Expected ligature folded to %q, got %q", "file", lines[0].Text)
	}
}

func TestBuildDocumentKeepsPageOrder(t *testing.T) {
	builder := NewLineBuilder()
	pages := []glyph.Page{
		{Number: 1, Glyphs: glyphRun("Page one", 72, 700, 12)},
		{Number: 2, Glyphs: glyphRun("Page two", 72, 700, 12)},
	}

	lines := builder.BuildDocument(pages)

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].Page != 1 || lines[1].Page != 2 {
		t.Errorf("Expected pages 1 then 2, got %d then %d", lines[0].Page, lines[1].Page)
	}
}

func TestNewLineBuilderWithConfig(t *testing.T) {
	// A huge gap fraction suppresses space insertion entirely
	config := DefaultLineConfig()
	config.SpaceGapFraction = 100

	builder := NewLineBuilderWithConfig(config)
	page := glyph.Page{Number: 1, Glyphs: glyphRun("AB CD", 72, 700, 12)}

	lines := builder.BuildPage(page)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "ABCD" {
		t.Errorf("Expected %q with spaces suppressed, got %q", "ABCD", lines[0].Text)
	}
}
