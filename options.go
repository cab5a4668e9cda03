package outline

import (
	"github.com/tsawler/outline/layout"
)

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// Page cap (0 means all pages)
	maxPages int

	// Per-stage configuration
	lineConfig   layout.LineConfig
	levelConfig  layout.LevelConfig
	filterConfig layout.FilterConfig
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		maxPages:     0,
		lineConfig:   layout.DefaultLineConfig(),
		levelConfig:  layout.DefaultLevelConfig(),
		filterConfig: layout.DefaultFilterConfig(),
	}
}

// clone creates a copy of ExtractOptions. All fields are value types, so a
// plain copy is a deep copy.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
