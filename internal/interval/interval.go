package interval

import (
	"fmt"

	"github.com/roach88/tickspan/internal/convert"
	"github.com/roach88/tickspan/internal/temporal"
)

// Interval is an immutable half-open range [start, end) over Instants at
// a single resolution. end >= start always holds for constructed values;
// start == end is the valid degenerate interval of zero duration.
type Interval struct {
	start temporal.Instant
	end   temporal.Instant
}

// Make constructs an Interval.
// Fails with RESOLUTION_MISMATCH if start and end are at different
// resolutions (convert explicitly first) and with INVALID_RANGE if end
// precedes start. start == end is valid and degenerate.
func Make(start, end temporal.Instant) (Interval, error) {
	if start.Resolution() != end.Resolution() {
		return Interval{}, temporal.NewResolutionMismatch("Make", start.Resolution(), end.Resolution())
	}
	if end.Ticks() < start.Ticks() {
		return Interval{}, temporal.NewInvalidRange("Make", start.Ticks(), end.Ticks(), start.Resolution())
	}
	return Interval{start: start, end: end}, nil
}

// Start returns the inclusive start instant.
func (iv Interval) Start() temporal.Instant { return iv.start }

// End returns the exclusive end instant. It is never a member of the
// interval.
func (iv Interval) End() temporal.Instant { return iv.end }

// Resolution returns the shared resolution of both endpoints.
func (iv Interval) Resolution() temporal.Resolution { return iv.start.Resolution() }

// Duration returns end.ticks - start.ticks at the interval's resolution.
// Always non-negative; no caller-side adjustment is required or permitted.
func (iv Interval) Duration() temporal.Duration {
	return temporal.Duration{
		Ticks:      iv.end.Ticks() - iv.start.Ticks(),
		Resolution: iv.Resolution(),
	}
}

// IsDegenerate reports whether the interval has zero duration. A
// degenerate interval represents an instantaneous event, distinct from an
// inclusive one-unit interval.
func (iv Interval) IsDegenerate() bool {
	return iv.start.Ticks() == iv.end.Ticks()
}

// Contains reports whether start <= t < end. The end boundary is never a
// member. Fails with RESOLUTION_MISMATCH if t is at another resolution.
func (iv Interval) Contains(t temporal.Instant) (bool, error) {
	if t.Resolution() != iv.Resolution() {
		return false, temporal.NewResolutionMismatch("Contains", iv.Resolution(), t.Resolution())
	}
	return iv.start.Ticks() <= t.Ticks() && t.Ticks() < iv.end.Ticks(), nil
}

// Convert returns the interval re-expressed at the target resolution,
// converting both endpoints under the same policy.
//
// No endpoint is nudged: a date-only interval widened to datetime maps
// both the inclusive start and the exclusive end to their midnights, so
// the calendar-day count is unchanged. Narrowing under Truncate or Round
// may collapse an interval to degenerate; order is preserved because both
// policies are monotone.
func (iv Interval) Convert(target temporal.Resolution, policy convert.Policy) (Interval, error) {
	start, err := convert.Convert(iv.start, target, policy)
	if err != nil {
		return Interval{}, fmt.Errorf("convert interval start: %w", err)
	}
	end, err := convert.Convert(iv.end, target, policy)
	if err != nil {
		return Interval{}, fmt.Errorf("convert interval end: %w", err)
	}
	return Make(start, end)
}

// String renders the interval in half-open notation, e.g.
// "[2021-01-01, 2021-02-01)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s)", iv.start, iv.end)
}
