package glyph

import (
	"math"
	"os"
	"testing"
)

func TestSplitRunEvenWidths(t *testing.T) {
	glyphs := splitRun("abc", 10, 700, 30, 12, "Helvetica")

	if len(glyphs) != 3 {
		t.Fatalf("expected 3 glyphs, got %d", len(glyphs))
	}
	for i, g := range glyphs {
		wantX := 10 + float64(i)*10
		if math.Abs(g.X-wantX) > 0.001 {
			t.Errorf("glyph %d: expected X %.1f, got %.1f", i, wantX, g.X)
		}
		if math.Abs(g.Width-10) > 0.001 {
			t.Errorf("glyph %d: expected width 10, got %.1f", i, g.Width)
		}
		if g.Y != 700 || g.FontSize != 12 || g.FontName != "Helvetica" {
			t.Errorf("glyph %d: metadata not carried over: %+v", i, g)
		}
	}
}

func TestSplitRunSkipsSpaces(t *testing.T) {
	glyphs := splitRun("a b", 0, 0, 30, 12, "")

	if len(glyphs) != 2 {
		t.Fatalf("expected 2 glyphs, got %d", len(glyphs))
	}
	if glyphs[0].Text != "a" || glyphs[1].Text != "b" {
		t.Errorf("expected glyphs a and b, got %q and %q", glyphs[0].Text, glyphs[1].Text)
	}
	// The space still advances the pen, leaving a gap between a and b.
	if math.Abs(glyphs[1].X-20) > 0.001 {
		t.Errorf("expected b at X 20, got %.1f", glyphs[1].X)
	}
}

func TestSplitRunMultiByte(t *testing.T) {
	glyphs := splitRun("héllo", 0, 0, 50, 10, "")

	if len(glyphs) != 5 {
		t.Fatalf("expected 5 glyphs for 5 runes, got %d", len(glyphs))
	}
	if glyphs[1].Text != "é" {
		t.Errorf("expected second glyph é, got %q", glyphs[1].Text)
	}
}

func TestSplitRunEmpty(t *testing.T) {
	if glyphs := splitRun("", 0, 0, 0, 12, ""); glyphs != nil {
		t.Errorf("expected nil for empty run, got %d glyphs", len(glyphs))
	}
}

func TestOpenMissingFile(t *testing.T) {
	src, err := Open("testdata/does-not-exist.pdf")
	if err == nil {
		src.Close()
		t.Fatal("expected error for missing file")
	}
}

func TestPreflightMissingFile(t *testing.T) {
	if _, err := Preflight("testdata/does-not-exist.pdf"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

const samplePDF = "testdata/sample.pdf"

func TestOpenSample(t *testing.T) {
	if _, err := os.Stat(samplePDF); os.IsNotExist(err) {
		t.Skip("testdata/sample.pdf not present")
	}

	src, err := Open(samplePDF)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()

	if src.PageCount() < 1 {
		t.Fatalf("expected at least one page, got %d", src.PageCount())
	}

	page, err := src.Page(1)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if page.Number != 1 {
		t.Errorf("expected page number 1, got %d", page.Number)
	}
	if page.Width <= 0 || page.Height <= 0 {
		t.Errorf("expected positive page dimensions, got %.1fx%.1f", page.Width, page.Height)
	}

	if _, err := src.Page(src.PageCount() + 1); err == nil {
		t.Error("expected error for out-of-range page")
	}

	if err := src.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
