package temporal

import (
	"fmt"
	"time"
)

// Instant is an immutable point in time: an int64 tick count since the
// Unix epoch, interpreted at a tagged Resolution, with an optional
// offset-from-UTC.
//
// Ticks are always UTC-absolute. The offset is presentation and calendar
// metadata only: it records which local clock the caller had in mind, but
// it never shifts the tick count. Comparison and interval membership
// therefore ignore the offset entirely.
type Instant struct {
	ticks     int64
	res       Resolution
	offsetMin int32
	hasOffset bool
}

// At constructs an Instant from a tick count at the given resolution,
// with no offset metadata.
func At(res Resolution, ticks int64) Instant {
	return Instant{ticks: ticks, res: res}
}

// AtOffset constructs an Instant carrying an offset-from-UTC in minutes.
// The ticks remain UTC-absolute; the offset is metadata.
func AtOffset(res Resolution, ticks int64, offsetMinutes int) Instant {
	return Instant{ticks: ticks, res: res, offsetMin: int32(offsetMinutes), hasOffset: true}
}

// FromDate constructs a Day-resolution Instant for a civil date.
func FromDate(year int, month time.Month, day int) Instant {
	return At(Day, daysFromCivil(year, month, day))
}

// Ticks returns the tick count.
func (i Instant) Ticks() int64 { return i.ticks }

// Resolution returns the resolution tag.
func (i Instant) Resolution() Resolution { return i.res }

// Offset returns the offset-from-UTC in minutes and whether one is set.
func (i Instant) Offset() (minutes int, ok bool) {
	return int(i.offsetMin), i.hasOffset
}

// WithOffset returns a copy of the Instant stamped with the given offset.
// Ticks are unchanged: re-stamping an offset is a metadata operation,
// never arithmetic. Offsets are always caller-supplied; nothing in this
// library infers one from a calendar rule.
func (i Instant) WithOffset(offsetMinutes int) Instant {
	return AtOffset(i.res, i.ticks, offsetMinutes)
}

// WithoutOffset returns a copy of the Instant with offset metadata cleared.
func (i Instant) WithoutOffset() Instant {
	return At(i.res, i.ticks)
}

// Compare orders two Instants at the same resolution.
// Returns -1, 0, or 1. Fails with a RESOLUTION_MISMATCH error if the
// resolutions differ; callers must convert explicitly first.
// Offsets are ignored: ticks are UTC-absolute.
func Compare(a, b Instant) (int, error) {
	if a.res != b.res {
		return 0, NewResolutionMismatch("Compare", a.res, b.res)
	}
	switch {
	case a.ticks < b.ticks:
		return -1, nil
	case a.ticks > b.ticks:
		return 1, nil
	default:
		return 0, nil
	}
}

// String renders the Instant for diagnostics: civil date for Day
// resolution, RFC 3339 with the resolution's fraction width otherwise.
// A stored offset is rendered as its zone; otherwise UTC.
func (i Instant) String() string {
	if i.res == Day {
		y, m, d := civilFromDays(i.ticks)
		return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
	}

	unitNanos, err := Factor(i.res, Nanosecond)
	if err != nil {
		return fmt.Sprintf("instant(%d@%s)", i.ticks, i.res)
	}
	secsPerUnit, _ := Factor(Second, i.res)
	sec := floorDiv(i.ticks, secsPerUnit)
	rem := floorMod(i.ticks, secsPerUnit)

	t := time.Unix(sec, rem*unitNanos).UTC()
	if i.hasOffset {
		t = t.In(time.FixedZone("", int(i.offsetMin)*60))
	}
	return t.Format(rfc3339Layout(i.res))
}

func rfc3339Layout(res Resolution) string {
	switch res {
	case Millisecond:
		return "2006-01-02T15:04:05.000Z07:00"
	case Microsecond:
		return "2006-01-02T15:04:05.000000Z07:00"
	case Nanosecond:
		return "2006-01-02T15:04:05.000000000Z07:00"
	default:
		return time.RFC3339
	}
}
