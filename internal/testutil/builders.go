// Package testutil provides deterministic builders for tests.
//
// The builders panic on malformed input: they exist to make fixtures
// terse, and a bad fixture is a test bug, not a runtime condition.
package testutil

import (
	"fmt"

	"github.com/roach88/tickspan/internal/interval"
	"github.com/roach88/tickspan/internal/temporal"
)

// MustInstant parses an instant ("2021-01-01" or RFC 3339) or panics.
func MustInstant(s string) temporal.Instant {
	in, err := temporal.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("testutil: bad instant %q: %v", s, err))
	}
	return in
}

// MustSpan builds a half-open interval from two instant strings or panics.
// Both endpoints must parse to the same resolution.
func MustSpan(start, end string) interval.Interval {
	iv, err := interval.Make(MustInstant(start), MustInstant(end))
	if err != nil {
		panic(fmt.Sprintf("testutil: bad span [%s, %s): %v", start, end, err))
	}
	return iv
}

// DaySpan builds a day-resolution interval from raw ticks or panics.
func DaySpan(start, end int64) interval.Interval {
	iv, err := interval.Make(temporal.At(temporal.Day, start), temporal.At(temporal.Day, end))
	if err != nil {
		panic(fmt.Sprintf("testutil: bad day span [%d, %d): %v", start, end, err))
	}
	return iv
}
