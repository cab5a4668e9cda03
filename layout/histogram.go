package layout

import (
	"math"
	"sort"
)

// sizeBucket maps a font size to its 0.1pt bucket, so 13.96 and 14.04 count
// as the same size while 13.9 and 14.1 stay distinct
func sizeBucket(size float64) int {
	return int(math.Round(size * 10))
}

// FontSizeStat records the frequency and rank of one distinct font size
// within a scope (the whole document, or page 1 only).
type FontSizeStat struct {
	// Size is the representative size in points, the first one observed for
	// the bucket
	Size float64

	// Count is the number of lines set at this size
	Count int

	// Rank orders sizes largest first; rank 0 is the largest size in scope
	Rank int
}

// Histogram is a ranked tally of the distinct font sizes in one scope.
// Build it with [BuildHistogram].
type Histogram struct {
	stats    []FontSizeStat
	byBucket map[int]int
}

// BuildHistogram tallies one count per line for each distinct 0.1pt size
// bucket and ranks the distinct sizes largest first. Buckets are collected
// in first-seen order before sorting, so equal inputs always produce equal
// histograms.
func BuildHistogram(lines []Line) *Histogram {
	h := &Histogram{byBucket: make(map[int]int)}

	for _, line := range lines {
		bucket := sizeBucket(line.FontSize)
		if i, ok := h.byBucket[bucket]; ok {
			h.stats[i].Count++
			continue
		}
		h.byBucket[bucket] = len(h.stats)
		h.stats = append(h.stats, FontSizeStat{Size: line.FontSize, Count: 1})
	}

	sort.SliceStable(h.stats, func(i, j int) bool {
		return h.stats[i].Size > h.stats[j].Size
	})

	for i := range h.stats {
		h.stats[i].Rank = i
		h.byBucket[sizeBucket(h.stats[i].Size)] = i
	}

	return h
}

// Stats returns the ranked size statistics, largest size first
func (h *Histogram) Stats() []FontSizeStat {
	if h == nil {
		return nil
	}
	return h.stats
}

// DistinctSizes returns the number of distinct font sizes in scope
func (h *Histogram) DistinctSizes() int {
	if h == nil {
		return 0
	}
	return len(h.stats)
}

// RankOf returns the rank of the given size, or ok=false when the size does
// not occur in this scope
func (h *Histogram) RankOf(size float64) (int, bool) {
	if h == nil {
		return 0, false
	}
	i, ok := h.byBucket[sizeBucket(size)]
	if !ok {
		return 0, false
	}
	return h.stats[i].Rank, true
}

// Largest returns the rank-0 stat, or ok=false for an empty scope
func (h *Histogram) Largest() (FontSizeStat, bool) {
	if h == nil || len(h.stats) == 0 {
		return FontSizeStat{}, false
	}
	return h.stats[0], true
}

// MostFrequent returns the single size with the highest line count. When the
// top count is shared by several sizes there is no single most frequent size
// and ok is false.
func (h *Histogram) MostFrequent() (FontSizeStat, bool) {
	if h == nil || len(h.stats) == 0 {
		return FontSizeStat{}, false
	}

	best := h.stats[0]
	tied := false
	for _, s := range h.stats[1:] {
		if s.Count > best.Count {
			best = s
			tied = false
		} else if s.Count == best.Count {
			tied = true
		}
	}
	if tied {
		return FontSizeStat{}, false
	}
	return best, true
}
