package temporal

import (
	"fmt"
	"strings"
	"time"
)

// Parse parses an Instant from its textual form.
//
// Two shapes are accepted:
//   - a civil date "2006-01-02", producing a Day-resolution Instant
//   - an RFC 3339 timestamp, producing a Second-resolution Instant, or a
//     finer one when a fractional second is present (1-3 digits gives
//     millisecond, 4-6 microsecond, 7-9 nanosecond)
//
// The timestamp's zone is recorded as the Instant's offset; the ticks are
// always UTC-absolute.
func Parse(s string) (Instant, error) {
	if !strings.ContainsAny(s, "Tt") {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return Instant{}, fmt.Errorf("parse instant %q: %w", s, err)
		}
		return FromDate(t.Year(), t.Month(), t.Day()), nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Instant{}, fmt.Errorf("parse instant %q: %w", s, err)
	}

	res := resolutionFromFraction(s)
	unitNanos, ferr := Factor(res, Nanosecond)
	if ferr != nil {
		return Instant{}, ferr
	}
	secsPerUnit, _ := Factor(Second, res)
	ticks, ok := mulChecked(t.Unix(), secsPerUnit)
	if !ok {
		return Instant{}, NewOverflow("Parse",
			fmt.Sprintf("%q does not fit in int64 ticks at %s resolution", s, res))
	}
	ticks, ok = addChecked(ticks, int64(t.Nanosecond())/unitNanos)
	if !ok {
		return Instant{}, NewOverflow("Parse",
			fmt.Sprintf("%q does not fit in int64 ticks at %s resolution", s, res))
	}

	_, zoneSecs := t.Zone()
	return AtOffset(res, ticks, zoneSecs/60), nil
}

// resolutionFromFraction picks the finest resolution implied by the
// fractional-second digits of an RFC 3339 string.
func resolutionFromFraction(s string) Resolution {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return Second
	}
	digits := 0
	for _, c := range s[dot+1:] {
		if c < '0' || c > '9' {
			break
		}
		digits++
	}
	switch {
	case digits == 0:
		return Second
	case digits <= 3:
		return Millisecond
	case digits <= 6:
		return Microsecond
	default:
		return Nanosecond
	}
}
