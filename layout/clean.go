package layout

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// leadingJunk matches decoration before the first letter or digit:
	// bullets, quotes, box-drawing characters left over from extraction.
	leadingJunk = regexp.MustCompile(`^[^\p{L}\p{N}]+`)

	// trailingJunk matches decoration after the last letter or digit.
	// Periods survive so numbered headings keep their form.
	trailingJunk = regexp.MustCompile(`[^\p{L}\p{N}\s.]+$`)
)

// CleanText normalizes extracted text: compatibility code points (ligatures,
// fullwidth forms) are folded to their plain equivalents and whitespace runs
// collapse to single spaces. The result is trimmed.
func CleanText(s string) string {
	s = norm.NFKC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// CleanHeadingText prepares text for presentation in an outline: CleanText
// plus stripping the leading and trailing symbol runs that PDF extraction
// leaves around bullets and decorated headings.
func CleanHeadingText(s string) string {
	s = CleanText(s)
	s = leadingJunk.ReplaceAllString(s, "")
	s = trailingJunk.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
