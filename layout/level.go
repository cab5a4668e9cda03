package layout

import (
	"strings"
	"unicode/utf8"
)

// Level represents the hierarchical level of an outline heading
type Level int

const (
	LevelUnknown Level = iota
	LevelH1            // H1 - Major section
	LevelH2            // H2 - Subsection
	LevelH3            // H3 - Sub-subsection
	LevelH4            // H4 - Minor heading
)

// String returns the wire name of the heading level
func (l Level) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	case LevelH4:
		return "H4"
	default:
		return "unknown"
	}
}

// Candidate is a line whose font size matched a heading level, pending
// acceptance by the content filter
type Candidate struct {
	// Line is the underlying reconstructed line
	Line Line

	// Level is the heading level its font size mapped to
	Level Level
}

// Title is the selected document title together with the identity of the
// page-1 lines it consumed, so the content filter can keep those lines out
// of the outline body.
type Title struct {
	// Text is the cleaned, joined title. Empty when no line qualified.
	Text string

	consumed map[string]bool
}

// Consumed reports whether the given line is one of the page-1 lines the
// title was assembled from
func (t Title) Consumed(line Line) bool {
	if t.consumed == nil || line.Page != 1 {
		return false
	}
	return t.consumed[strings.ToLower(line.Text)]
}

// LevelConfig holds configuration for level assignment
type LevelConfig struct {
	// MaxLevels is the deepest heading level ever assigned
	// Default: 4 (H1 through H4)
	MaxLevels int

	// MaxTitleRunes caps the assembled title length
	// Default: 200
	MaxTitleRunes int
}

// DefaultLevelConfig returns sensible default configuration
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		MaxLevels:     4,
		MaxTitleRunes: 200,
	}
}

// LevelAssigner derives the size-to-level policy for a document from its
// ranked font-size histograms
type LevelAssigner struct {
	config LevelConfig
}

// NewLevelAssigner creates a new level assigner with default configuration
func NewLevelAssigner() *LevelAssigner {
	return &LevelAssigner{
		config: DefaultLevelConfig(),
	}
}

// NewLevelAssignerWithConfig creates a level assigner with custom configuration
func NewLevelAssignerWithConfig(config LevelConfig) *LevelAssigner {
	return &LevelAssigner{
		config: config,
	}
}

// levelSize is one size-to-level binding inside a LevelMap
type levelSize struct {
	level  Level
	size   float64
	bucket int
}

// LevelMap is the size-to-level policy for one document: at most one title
// size and an ordered set of heading sizes. Built once per document by
// [LevelAssigner.Assign] and consulted for every line.
type LevelMap struct {
	titleSize   float64
	titleBucket int
	hasTitle    bool
	levels      []levelSize
	byBucket    map[int]Level
}

// Assign builds the size-to-level policy from the document-scope and
// page-1-scope histograms.
//
// The title takes the largest size on page 1, unless most of the document is
// set in that size; a size used everywhere is body text, not a title. The
// heading levels then walk the document ranks largest first, skipping the
// size claimed by the title and the document's single most frequent size,
// until the configured maximum level is reached or the sizes run out. Levels
// are never invented: a document with two distinct heading sizes gets H1 and
// H2 and nothing deeper.
func (a *LevelAssigner) Assign(doc, page1 *Histogram) *LevelMap {
	m := &LevelMap{byBucket: make(map[int]Level)}

	body, hasBody := doc.MostFrequent()

	if largest, ok := page1.Largest(); ok {
		if !hasBody || sizeBucket(largest.Size) != sizeBucket(body.Size) {
			m.hasTitle = true
			m.titleSize = largest.Size
			m.titleBucket = sizeBucket(largest.Size)
		}
	}

	level := LevelH1
	for _, stat := range doc.Stats() {
		if level > Level(a.config.MaxLevels) {
			break
		}
		bucket := sizeBucket(stat.Size)
		if m.hasTitle && bucket == m.titleBucket {
			continue // the title's size is never reused for a heading level
		}
		if hasBody && bucket == sizeBucket(body.Size) {
			continue // body text is never a heading level
		}
		m.levels = append(m.levels, levelSize{level: level, size: stat.Size, bucket: bucket})
		m.byBucket[bucket] = level
		level++
	}

	return m
}

// Title assembles the document title: the page-1 lines set at the title
// size, in reading order, cleaned and joined with single spaces. The result
// is capped at MaxTitleRunes. Returns an empty Title when the level map has
// no title size or no page-1 line qualifies.
func (a *LevelAssigner) Title(lines []Line, m *LevelMap) Title {
	if m == nil || !m.hasTitle {
		return Title{}
	}

	title := Title{consumed: make(map[string]bool)}
	var parts []string
	for _, line := range lines {
		if line.Page != 1 || sizeBucket(line.FontSize) != m.titleBucket {
			continue
		}
		cleaned := CleanHeadingText(line.Text)
		if cleaned == "" {
			continue
		}
		parts = append(parts, cleaned)
		title.consumed[strings.ToLower(line.Text)] = true
	}

	text := strings.Join(parts, " ")
	if utf8.RuneCountInString(text) > a.config.MaxTitleRunes {
		runes := []rune(text)
		text = strings.TrimSpace(string(runes[:a.config.MaxTitleRunes]))
	}
	title.Text = text
	return title
}

// LevelMap methods

// HasTitle reports whether a title size was chosen
func (m *LevelMap) HasTitle() bool {
	if m == nil {
		return false
	}
	return m.hasTitle
}

// TitleSize returns the size claimed by the title, or ok=false when no
// title size was chosen
func (m *LevelMap) TitleSize() (float64, bool) {
	if m == nil || !m.hasTitle {
		return 0, false
	}
	return m.titleSize, true
}

// LevelCount returns the number of heading levels in the map
func (m *LevelMap) LevelCount() int {
	if m == nil {
		return 0
	}
	return len(m.levels)
}

// LevelFor returns the heading level assigned to the given font size, or
// ok=false when the size maps to no level
func (m *LevelMap) LevelFor(size float64) (Level, bool) {
	if m == nil {
		return LevelUnknown, false
	}
	level, ok := m.byBucket[sizeBucket(size)]
	return level, ok
}

// SizeFor returns the font size bound to the given level, or ok=false when
// the level was never assigned
func (m *LevelMap) SizeFor(level Level) (float64, bool) {
	if m == nil {
		return 0, false
	}
	for _, ls := range m.levels {
		if ls.level == level {
			return ls.size, true
		}
	}
	return 0, false
}

// Candidates pairs every line whose size maps to a heading level with that
// level, preserving line order
func (m *LevelMap) Candidates(lines []Line) []Candidate {
	if m == nil || len(m.levels) == 0 {
		return nil
	}

	var candidates []Candidate
	for _, line := range lines {
		if level, ok := m.LevelFor(line.FontSize); ok {
			candidates = append(candidates, Candidate{Line: line, Level: level})
		}
	}
	return candidates
}
