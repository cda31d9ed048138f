package mark

import "sort"

// merge.go - Deterministic mark merging.
//
// The detectors run independently and freely emit overlapping marks;
// one pass here folds them into an ordered list the renderer can walk
// left to right. The boundary rules matter: a zero-width anchor at
// position P belongs to whatever precedes P, so it must not be pulled
// into a span that merely begins or ends at P.

// Merge stable-sorts candidates by (Start, End) and folds neighbors
// together. Two marks merge when their spans strictly overlap, or when
// both are zero-width anchors at the same position. A span touching an
// anchor at its boundary does not merge with it; the anchor merges
// only when its position lies strictly inside the other span.
func Merge(candidates []*Mark) []*Mark {
	if len(candidates) == 0 {
		return nil
	}
	sorted := make([]*Mark, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	var out []*Mark
	cur := clone(sorted[0])
	for _, next := range sorted[1:] {
		if overlaps(cur, next) {
			fold(cur, next)
			continue
		}
		out = append(out, cur)
		cur = clone(next)
	}
	return append(out, cur)
}

// overlaps implements the merge predicate for a sorted pair
// (a.Start <= b.Start).
func overlaps(a, b *Mark) bool {
	if a.IsAnchor() && b.IsAnchor() {
		return a.Start == b.Start
	}
	if a.IsAnchor() {
		// Anchor first: merges only when strictly interior to b, which
		// with the sort order means equal starts and a non-empty b
		// never qualifies.
		return false
	}
	if b.IsAnchor() {
		return b.Start > a.Start && b.Start < a.End
	}
	return b.Start < a.End
}

// fold merges next into cur in place.
func fold(cur, next *Mark) {
	if next.End > cur.End {
		cur.End = next.End
	}
	if next.Start < cur.Start {
		cur.Start = next.Start
	}
	// Label wins from either side; the note follows the labeling side.
	switch {
	case next.Label && !cur.Label:
		cur.Note = next.Note
		cur.Label = true
	case cur.Note == "" && next.Note != "":
		cur.Note = next.Note
	}
	if next.Strike {
		cur.Strike = true
	}
	if cur.Color == ColorNone {
		cur.Color = next.Color
	}
	if next.Praise {
		cur.Praise = true
	}
}

func clone(m *Mark) *Mark {
	c := *m
	return &c
}
