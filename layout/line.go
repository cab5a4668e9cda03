package layout

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outline/glyph"
)

// Line represents a single reconstructed line of text on a page. It is the
// unit every later stage classifies; a Line never spans two pages.
type Line struct {
	// Text is the assembled text content, normalized by CleanText
	Text string

	// FontSize is the size covering the largest character span of the line.
	// When two sizes cover equal spans the smaller wins, which biases away
	// from oversized decorative glyphs inside otherwise normal lines.
	FontSize float64

	// FontName is the font of the span that decided FontSize
	FontName string

	// Page is the 1-based page number the line appears on
	Page int

	// X is the left edge of the line
	X float64

	// Y is the baseline in PDF coordinates (larger Y is higher on the page)
	Y float64

	// Width is the horizontal extent from the first glyph to the right edge
	// of the last
	Width float64
}

// LineConfig holds configuration for line reconstruction
type LineConfig struct {
	// BaselineTolerance is the maximum baseline distance for a glyph to join
	// the running line, as a fraction of the line's font size
	// Default: 0.40
	BaselineTolerance float64

	// SpaceGapFraction is the horizontal gap, as a fraction of the glyph's
	// font size, above which a space is inserted between adjacent glyphs
	// Default: 0.3
	SpaceGapFraction float64

	// XTolerance is the horizontal distance, as a fraction of the glyph's
	// font size, below which overlapping glyphs keep their stream order
	// instead of being reordered by X. Some generators emit slightly
	// overlapping runs that X-sorting alone would scramble.
	// Default: 0.25
	XTolerance float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		BaselineTolerance: 0.40,
		SpaceGapFraction:  0.3,
		XTolerance:        0.25,
	}
}

// LineBuilder reconstructs text lines from page glyphs
type LineBuilder struct {
	config LineConfig
}

// NewLineBuilder creates a new line builder with default configuration
func NewLineBuilder() *LineBuilder {
	return &LineBuilder{
		config: DefaultLineConfig(),
	}
}

// NewLineBuilderWithConfig creates a line builder with custom configuration
func NewLineBuilderWithConfig(config LineConfig) *LineBuilder {
	return &LineBuilder{
		config: config,
	}
}

// BuildPage reconstructs the lines of one page, top to bottom. Lines whose
// text is empty after normalization are dropped. A page with no glyphs
// yields no lines.
func (b *LineBuilder) BuildPage(page glyph.Page) []Line {
	if len(page.Glyphs) == 0 {
		return nil
	}

	clusters := b.clusterByBaseline(page.Glyphs)

	lines := make([]Line, 0, len(clusters))
	for _, cluster := range clusters {
		if line, ok := b.buildLine(cluster, page.Number); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// BuildDocument reconstructs the lines of every page in page order.
func (b *LineBuilder) BuildDocument(pages []glyph.Page) []Line {
	var lines []Line
	for _, page := range pages {
		lines = append(lines, b.BuildPage(page)...)
	}
	return lines
}

// clusterByBaseline groups glyphs into lines by baseline proximity
func (b *LineBuilder) clusterByBaseline(glyphs []glyph.Glyph) [][]glyph.Glyph {
	// Sort by Y (descending, top of page first) only. Glyphs within
	// tolerance of each other keep their stream order; X ordering happens
	// per line below.
	sorted := make([]glyph.Glyph, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		yDiff := sorted[i].Y - sorted[j].Y
		if absFloat64(yDiff) > b.config.BaselineTolerance*sorted[i].FontSize {
			return yDiff > 0 // Higher Y first (top of page)
		}
		return false // Same line - preserve stream order
	})

	var clusters [][]glyph.Glyph
	var current []glyph.Glyph

	for _, g := range sorted {
		if len(current) == 0 {
			current = append(current, g)
			continue
		}

		// A glyph joins the running line when its baseline sits within
		// tolerance of the line's average baseline. The tolerance scales
		// with the line's average font size: large type has looser
		// baselines than small type.
		avgY, avgSize := averageBaseline(current)
		if absFloat64(g.Y-avgY) <= b.config.BaselineTolerance*avgSize {
			current = append(current, g)
		} else {
			clusters = append(clusters, b.sortByX(current))
			current = []glyph.Glyph{g}
		}
	}

	if len(current) > 0 {
		clusters = append(clusters, b.sortByX(current))
	}

	return clusters
}

// sortByX orders a line's glyphs left to right. A stable sort with tolerance
// keeps the stream order of glyphs that overlap horizontally, which some
// generators (Word, Quartz) produce.
func (b *LineBuilder) sortByX(cluster []glyph.Glyph) []glyph.Glyph {
	sort.SliceStable(cluster, func(i, j int) bool {
		xTol := cluster[i].FontSize * b.config.XTolerance
		if absFloat64(cluster[i].X-cluster[j].X) < xTol {
			return false // Treat as equal, preserve stream order
		}
		return cluster[i].X < cluster[j].X
	})
	return cluster
}

// buildLine assembles one Line from an X-ordered glyph cluster. Returns
// ok=false when the cluster normalizes to empty text.
func (b *LineBuilder) buildLine(cluster []glyph.Glyph, pageNumber int) (Line, bool) {
	if len(cluster) == 0 {
		return Line{}, false
	}

	text := b.assembleText(cluster)
	text = CleanText(text)
	if text == "" {
		return Line{}, false
	}

	size, font := dominantSpan(cluster)
	avgY, _ := averageBaseline(cluster)

	left := cluster[0].X
	right := cluster[0].X + cluster[0].Width
	for _, g := range cluster[1:] {
		if g.X < left {
			left = g.X
		}
		if g.X+g.Width > right {
			right = g.X + g.Width
		}
	}

	return Line{
		Text:     text,
		FontSize: size,
		FontName: font,
		Page:     pageNumber,
		X:        left,
		Y:        avgY,
		Width:    right - left,
	}, true
}

// assembleText concatenates cluster glyphs with spaces inserted at
// significant horizontal gaps
func (b *LineBuilder) assembleText(cluster []glyph.Glyph) string {
	var sb strings.Builder
	for i, g := range cluster {
		if i > 0 {
			prev := cluster[i-1]
			gap := g.X - (prev.X + prev.Width)
			if gap > g.FontSize*b.config.SpaceGapFraction {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(g.Text)
	}
	return sb.String()
}

// dominantSpan returns the font size and name covering the largest character
// span of the cluster. Spans are tallied per 0.1pt size bucket; on equal
// spans the smaller size wins.
func dominantSpan(cluster []glyph.Glyph) (float64, string) {
	type span struct {
		bucket int
		size   float64
		font   string
		runes  int
	}

	// Tally in first-seen order so the result never depends on map
	// iteration order.
	var spans []span
	indexOf := make(map[int]int)

	for _, g := range cluster {
		bucket := sizeBucket(g.FontSize)
		n := utf8.RuneCountInString(g.Text)
		if i, ok := indexOf[bucket]; ok {
			spans[i].runes += n
			continue
		}
		indexOf[bucket] = len(spans)
		spans = append(spans, span{bucket: bucket, size: g.FontSize, font: g.FontName, runes: n})
	}

	best := spans[0]
	for _, s := range spans[1:] {
		if s.runes > best.runes || (s.runes == best.runes && s.bucket < best.bucket) {
			best = s
		}
	}
	return best.size, best.font
}

// averageBaseline returns the average Y and average font size of a cluster
func averageBaseline(cluster []glyph.Glyph) (float64, float64) {
	if len(cluster) == 0 {
		return 0, 0
	}
	totalY := 0.0
	totalSize := 0.0
	for _, g := range cluster {
		totalY += g.Y
		totalSize += g.FontSize
	}
	n := float64(len(cluster))
	return totalY / n, totalSize / n
}

// absFloat64 returns the absolute value of a float64
func absFloat64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
