package interval

import "github.com/roach88/tickspan/internal/temporal"

// Two-interval algebra. Every operation is total over same-resolution
// intervals: the only failure mode is a resolution mismatch. Offsets are
// metadata and play no part.

// Overlaps reports whether a and b share at least one instant:
// a.start < b.end && b.start < a.end. Touching intervals
// (a.end == b.start) do not overlap, and a degenerate interval never
// overlaps itself.
func Overlaps(a, b Interval) (bool, error) {
	if a.Resolution() != b.Resolution() {
		return false, temporal.NewResolutionMismatch("Overlaps", a.Resolution(), b.Resolution())
	}
	return a.start.Ticks() < b.end.Ticks() && b.start.Ticks() < a.end.Ticks(), nil
}

// Adjacent reports whether the intervals touch end-to-start:
// a.end == b.start || b.end == a.start. Exclusive ends make this plain
// equality; no one-tick arithmetic is involved.
func Adjacent(a, b Interval) (bool, error) {
	if a.Resolution() != b.Resolution() {
		return false, temporal.NewResolutionMismatch("Adjacent", a.Resolution(), b.Resolution())
	}
	return a.end.Ticks() == b.start.Ticks() || b.end.Ticks() == a.start.Ticks(), nil
}

// Intersect returns the common sub-interval, or nil when a and b do not
// overlap (touching intervals intersect in nothing).
func Intersect(a, b Interval) (*Interval, error) {
	over, err := Overlaps(a, b)
	if err != nil {
		return nil, err
	}
	if !over {
		return nil, nil
	}

	start := a.start
	if b.start.Ticks() > start.Ticks() {
		start = b.start
	}
	end := a.end
	if b.end.Ticks() < end.Ticks() {
		end = b.end
	}
	iv, err := Make(start, end)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

// Union returns the single interval covering a and b, defined only when
// they overlap or are adjacent. A nil result signals the operands are
// disjoint and the caller must keep them as two intervals.
func Union(a, b Interval) (*Interval, error) {
	over, err := Overlaps(a, b)
	if err != nil {
		return nil, err
	}
	adj, err := Adjacent(a, b)
	if err != nil {
		return nil, err
	}
	if !over && !adj {
		return nil, nil
	}

	start := a.start
	if b.start.Ticks() < start.Ticks() {
		start = b.start
	}
	end := a.end
	if b.end.Ticks() > end.Ticks() {
		end = b.end
	}
	iv, err := Make(start, end)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}
