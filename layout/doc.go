// Package layout infers document structure from glyph geometry and font
// metadata.
//
// This package turns the raw glyphs read by package glyph into the artifacts
// heading inference needs: reconstructed text lines, ranked font-size
// histograms, a size-to-level policy, and a filtered set of heading
// candidates. Nothing here touches a PDF directly; every stage is a pure
// function of its inputs, so the same glyphs always produce the same result.
//
// # Pipeline
//
// The stages run in a fixed order:
//
//  1. [LineBuilder] groups a page's glyphs into [Line] values by baseline
//     proximity and assigns each line the font size covering its largest
//     character span.
//  2. [BuildRepeatTally] records text that recurs at the same size on several
//     pages, which is how running headers and footers look from glyph level.
//  3. [BuildHistogram] tallies line counts per distinct font size, once for
//     the whole document and once for page 1, ranking sizes largest first.
//  4. [LevelAssigner] derives the size-to-level policy ([LevelMap]): which
//     size is the title, and which sizes map to H1 through H4.
//  5. [ContentFilter] accepts or rejects each [Candidate] through a table of
//     named rules.
//
// # Configuration
//
// Each stage has its own config struct with defaults:
//
//	builder := layout.NewLineBuilderWithConfig(layout.LineConfig{
//		BaselineTolerance: 0.40,
//		SpaceGapFraction:  0.3,
//		XTolerance:        0.25,
//	})
//
// # Determinism
//
// Every exported function in this package is deterministic: slices are
// processed in input order, stable sorts preserve encounter order on ties,
// and no map iteration order ever influences a result. Callers can rely on
// byte-identical output for identical input.
package layout
