package convert

import (
	"fmt"

	"github.com/roach88/tickspan/internal/temporal"
)

// Calendar supplies day lengths for calendar-aware arithmetic.
//
// A calendar day is not always 24 hours: days crossing a DST transition
// run 23 or 25. tickspan never resolves zone rules itself; the caller
// injects a Calendar and the library only consumes its answers.
type Calendar interface {
	// DayLength returns the length of the calendar day beginning at
	// start, expressed in ticks at start's resolution.
	DayLength(start temporal.Instant) (int64, error)
}

// UniformCalendar is a Calendar in which every day is exactly 24 hours.
// Correct for UTC and any fixed-offset zone; wrong across DST transitions.
type UniformCalendar struct{}

// DayLength implements Calendar.
func (UniformCalendar) DayLength(start temporal.Instant) (int64, error) {
	return temporal.Factor(temporal.Day, start.Resolution())
}

// AddDuration shifts an instant by a fixed tick count.
// The duration must be at the instant's resolution; shifting by "24 hours"
// is this operation, never AddCalendarDays.
func AddDuration(in temporal.Instant, d temporal.Duration) (temporal.Instant, error) {
	if d.Resolution != in.Resolution() {
		return temporal.Instant{}, temporal.NewResolutionMismatch("AddDuration", in.Resolution(), d.Resolution)
	}
	ticks, err := addChecked(in.Ticks(), d.Ticks)
	if err != nil {
		return temporal.Instant{}, temporal.NewOverflow("AddDuration",
			fmt.Sprintf("%d + %d exceeds int64", in.Ticks(), d.Ticks))
	}
	if min, ok := in.Offset(); ok {
		return temporal.AtOffset(in.Resolution(), ticks, min), nil
	}
	return temporal.At(in.Resolution(), ticks), nil
}

// AddCalendarDays shifts an instant forward by n whole calendar days,
// asking cal for the length of each day in turn. n must be non-negative;
// walking backward needs the length of the preceding day, which only the
// calendar could name, so callers wanting it should query their provider
// directly.
func AddCalendarDays(in temporal.Instant, n int, cal Calendar) (temporal.Instant, error) {
	if n < 0 {
		return temporal.Instant{}, fmt.Errorf("AddCalendarDays: n must be non-negative, got %d", n)
	}
	if cal == nil {
		return temporal.Instant{}, fmt.Errorf("AddCalendarDays: nil calendar")
	}

	cur := in
	for i := 0; i < n; i++ {
		length, err := cal.DayLength(cur)
		if err != nil {
			return temporal.Instant{}, fmt.Errorf("AddCalendarDays: day %d: %w", i, err)
		}
		cur, err = AddDuration(cur, temporal.Duration{Ticks: length, Resolution: cur.Resolution()})
		if err != nil {
			return temporal.Instant{}, err
		}
	}
	return cur, nil
}
