package outline

import (
	"bytes"
	"encoding/json"
	"os"
	"sort"

	"github.com/tsawler/outline/layout"
)

// Entry is one accepted heading in a document outline.
type Entry struct {
	// Level is the heading level name: "H1" through "H4"
	Level string `json:"level"`

	// Text is the heading text
	Text string `json:"text"`

	// Page is the 1-based page number the heading appears on
	Page int `json:"page"`
}

// Outline is the extraction result for one document: a title, possibly
// empty, and the accepted headings in reading order.
type Outline struct {
	// Title is the inferred document title. Empty when no page-1 font size
	// qualifies as a title; an empty title never fails extraction.
	Title string `json:"title"`

	// Entries are the headings in reading order: ascending page, top of
	// page first within a page. Serializes under the "outline" key and is
	// never null in JSON.
	Entries []Entry `json:"outline"`
}

// assemble orders the accepted candidates into the final artifact. Sorting
// is stable: candidates on the same page at the same height keep their
// arrival order. Adjacent duplicates (same level, text, and page) collapse
// to one entry.
func assemble(title string, accepted []layout.Candidate) *Outline {
	sorted := make([]layout.Candidate, len(accepted))
	copy(sorted, accepted)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Line.Page != sorted[j].Line.Page {
			return sorted[i].Line.Page < sorted[j].Line.Page
		}
		// Same page: larger Y first (top of page)
		return sorted[i].Line.Y > sorted[j].Line.Y
	})

	entries := make([]Entry, 0, len(sorted))
	for _, c := range sorted {
		text := layout.CleanHeadingText(c.Line.Text)
		if text == "" {
			continue
		}
		entry := Entry{
			Level: c.Level.String(),
			Text:  text,
			Page:  c.Line.Page,
		}
		if n := len(entries); n > 0 && entries[n-1] == entry {
			continue
		}
		entries = append(entries, entry)
	}

	return &Outline{
		Title:   title,
		Entries: entries,
	}
}

// JSON renders the outline with two-space indentation and HTML escaping
// turned off, followed by a trailing newline. An Outline constructed by
// hand with nil Entries still serializes its outline as [], never null.
func (o *Outline) JSON() ([]byte, error) {
	out := *o
	if out.Entries == nil {
		out.Entries = []Entry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the outline as JSON to path, creating or truncating it.
func (o *Outline) WriteFile(path string) error {
	data, err := o.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
