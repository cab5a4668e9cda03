package layout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// numericOnly matches bare numbers: page numbers, section counters
	numericOnly = regexp.MustCompile(`^\d+$`)

	// pureDate matches standalone dates like 12/31/2024 or 3-1-99
	pureDate = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}$`)

	// pureVersion matches standalone version markers like 1.2 or v2.0.1
	pureVersion = regexp.MustCompile(`^v?\d+\.\d+(\.\d+)?$`)

	// revisionStamp matches revision lines like "2.1 15 March 2024":
	// a dotted number followed eventually by a four-digit year
	revisionStamp = regexp.MustCompile(`^\d+\.\d+.*\d{4}`)

	// numbersAndDots matches table-of-contents debris: digits, dots and
	// spaces with no words at all
	numbersAndDots = regexp.MustCompile(`^[\d\s.]+$`)

	// dotLeader matches the trailing half of a TOC row, ".... 17"
	dotLeader = regexp.MustCompile(`^\.{2,}\s*\d+$`)
)

// FilterRule is a single named rejection predicate. Rules are independent of
// one another so they can be added, removed, and tested in isolation.
type FilterRule struct {
	// Name identifies the rule in rejection results and tests
	Name string

	// Rejects reports whether the candidate must be discarded
	Rejects func(c Candidate) bool
}

// FilterConfig holds configuration for content filtering
type FilterConfig struct {
	// MaxRunes is the longest text accepted as a heading. Longer lines at a
	// heading size are almost always emphasized body text.
	// Default: 150
	MaxRunes int

	// MinRepeatPages is the number of distinct pages on which the same text
	// at the same size marks it as a running header or footer
	// Default: 3
	MinRepeatPages int
}

// DefaultFilterConfig returns sensible default configuration
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		MaxRunes:       150,
		MinRepeatPages: 3,
	}
}

// RepeatTally records which (text, size) pairs recur on enough distinct
// pages to count as running headers or footers. Build it once per document
// with [BuildRepeatTally].
type RepeatTally struct {
	repeated map[repeatKey]bool
}

type repeatKey struct {
	text   string
	bucket int
}

func lineRepeatKey(line Line) repeatKey {
	return repeatKey{
		text:   strings.ToLower(line.Text),
		bucket: sizeBucket(line.FontSize),
	}
}

// BuildRepeatTally scans every line of a document and marks text that
// appears, case-insensitively and at the same 0.1pt size bucket, on at
// least minPages distinct pages. Values of minPages below 1 fall back to
// the default of 3.
func BuildRepeatTally(lines []Line, minPages int) *RepeatTally {
	if minPages < 1 {
		minPages = DefaultFilterConfig().MinRepeatPages
	}

	pagesByKey := make(map[repeatKey]map[int]bool)
	for _, line := range lines {
		key := lineRepeatKey(line)
		pages := pagesByKey[key]
		if pages == nil {
			pages = make(map[int]bool)
			pagesByKey[key] = pages
		}
		pages[line.Page] = true
	}

	t := &RepeatTally{repeated: make(map[repeatKey]bool)}
	for key, pages := range pagesByKey {
		if len(pages) >= minPages {
			t.repeated[key] = true
		}
	}
	return t
}

// IsRepeated reports whether the line's text recurs on enough pages to be a
// running header or footer
func (t *RepeatTally) IsRepeated(line Line) bool {
	if t == nil {
		return false
	}
	return t.repeated[lineRepeatKey(line)]
}

// Filter returns the lines not marked as repeated, preserving order
func (t *RepeatTally) Filter(lines []Line) []Line {
	if t == nil || len(t.repeated) == 0 {
		return lines
	}
	kept := make([]Line, 0, len(lines))
	for _, line := range lines {
		if !t.IsRepeated(line) {
			kept = append(kept, line)
		}
	}
	return kept
}

// ContentFilter decides, per candidate, heading or artifact. A candidate
// must pass every rule; the first rejecting rule wins. Decisions are final
// and never surfaced as errors.
//
// The filter is built per document: the repeat tally and the title are the
// only cross-candidate state the rules consult.
type ContentFilter struct {
	config FilterConfig
	rules  []FilterRule
}

// NewContentFilter creates a content filter with default configuration for
// one document run
func NewContentFilter(tally *RepeatTally, title Title) *ContentFilter {
	return NewContentFilterWithConfig(DefaultFilterConfig(), tally, title)
}

// NewContentFilterWithConfig creates a content filter with custom
// configuration for one document run
func NewContentFilterWithConfig(config FilterConfig, tally *RepeatTally, title Title) *ContentFilter {
	f := &ContentFilter{config: config}
	f.rules = []FilterRule{
		{
			// Empty and punctuation-only lines carry no heading content
			Name: "substantive",
			Rejects: func(c Candidate) bool {
				return !hasSubstance(c.Line.Text)
			},
		},
		{
			// A bare number at heading size is a page number or counter
			Name: "numeric-only",
			Rejects: func(c Candidate) bool {
				return numericOnly.MatchString(c.Line.Text)
			},
		},
		{
			Name: "pure-date",
			Rejects: func(c Candidate) bool {
				return pureDate.MatchString(c.Line.Text)
			},
		},
		{
			Name: "pure-version",
			Rejects: func(c Candidate) bool {
				return pureVersion.MatchString(c.Line.Text)
			},
		},
		{
			Name: "revision-stamp",
			Rejects: func(c Candidate) bool {
				return revisionStamp.MatchString(c.Line.Text)
			},
		},
		{
			Name: "toc-artifact",
			Rejects: func(c Candidate) bool {
				return numbersAndDots.MatchString(c.Line.Text) ||
					dotLeader.MatchString(c.Line.Text)
			},
		},
		{
			Name: "over-length",
			Rejects: func(c Candidate) bool {
				return utf8.RuneCountInString(c.Line.Text) > config.MaxRunes
			},
		},
		{
			Name: "repeated",
			Rejects: func(c Candidate) bool {
				return tally.IsRepeated(c.Line)
			},
		},
		{
			Name: "title-line",
			Rejects: func(c Candidate) bool {
				return title.Consumed(c.Line)
			},
		},
	}
	return f
}

// Apply returns the candidates that pass every rule, preserving order.
// The returned slice is never nil.
func (f *ContentFilter) Apply(candidates []Candidate) []Candidate {
	accepted := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, rejected := f.Reject(c); !rejected {
			accepted = append(accepted, c)
		}
	}
	return accepted
}

// Reject runs the candidate through the rule table and returns the name of
// the first rule that rejects it, or ok=false when every rule passes
func (f *ContentFilter) Reject(c Candidate) (string, bool) {
	for _, rule := range f.rules {
		if rule.Rejects(c) {
			return rule.Name, true
		}
	}
	return "", false
}

// Rules returns the filter's rule table in evaluation order
func (f *ContentFilter) Rules() []FilterRule {
	return f.rules
}

// hasSubstance reports whether the text contains at least one letter or digit
func hasSubstance(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
