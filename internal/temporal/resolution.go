package temporal

import "fmt"

// Resolution is the granularity at which a tick count is interpreted.
//
// Resolutions form an ordered enumeration from coarsest (Day) to finest
// (Nanosecond). A smaller value is coarser. The conversion factor between
// adjacent levels is fixed and exact: a day is exactly 86400 seconds
// (leap seconds are a calendar concern, outside this package), and each
// sub-second level is 1000x the previous.
type Resolution int

const (
	// Day counts civil days since 1970-01-01.
	Day Resolution = iota
	// Second counts seconds since the Unix epoch.
	Second
	// Millisecond counts milliseconds since the Unix epoch.
	Millisecond
	// Microsecond counts microseconds since the Unix epoch.
	Microsecond
	// Nanosecond counts nanoseconds since the Unix epoch.
	Nanosecond
)

// adjacentFactors[r] is the number of ticks at resolution r+1 per tick at r.
var adjacentFactors = [...]int64{
	Day:         86400,
	Second:      1000,
	Millisecond: 1000,
	Microsecond: 1000,
}

var resolutionNames = [...]string{
	Day:         "day",
	Second:      "second",
	Millisecond: "millisecond",
	Microsecond: "microsecond",
	Nanosecond:  "nanosecond",
}

// unit suffixes used by Duration.String and Instant formatting.
var resolutionUnits = [...]string{
	Day:         "d",
	Second:      "s",
	Millisecond: "ms",
	Microsecond: "us",
	Nanosecond:  "ns",
}

// Valid reports whether r is one of the defined resolutions.
func (r Resolution) Valid() bool {
	return r >= Day && r <= Nanosecond
}

// String returns the lowercase name of the resolution.
func (r Resolution) String() string {
	if !r.Valid() {
		return fmt.Sprintf("resolution(%d)", int(r))
	}
	return resolutionNames[r]
}

// Unit returns the short unit suffix for the resolution (d, s, ms, us, ns).
func (r Resolution) Unit() string {
	if !r.Valid() {
		return "?"
	}
	return resolutionUnits[r]
}

// FinerThan reports whether r is a finer granularity than other.
func (r Resolution) FinerThan(other Resolution) bool {
	return r > other
}

// CoarserThan reports whether r is a coarser granularity than other.
func (r Resolution) CoarserThan(other Resolution) bool {
	return r < other
}

// Factor returns the number of ticks at the finer resolution per tick at
// the coarser one. Both arguments must be valid and from must be coarser
// than or equal to to; the factor for equal resolutions is 1.
//
// The largest factor (Day to Nanosecond) is 86400e9, well inside int64.
func Factor(from, to Resolution) (int64, error) {
	if !from.Valid() || !to.Valid() {
		return 0, &Error{Code: CodeResolutionMismatch, Op: "Factor", Message: fmt.Sprintf("invalid resolution (%s, %s)", from, to)}
	}
	if from.FinerThan(to) {
		return 0, &Error{Code: CodeResolutionMismatch, Op: "Factor", Message: fmt.Sprintf("%s is finer than %s; swap operands", from, to)}
	}
	f := int64(1)
	for r := from; r < to; r++ {
		f *= adjacentFactors[r]
	}
	return f, nil
}

// ParseResolution parses a resolution name or unit suffix.
// Accepts both long names ("millisecond") and units ("ms").
func ParseResolution(s string) (Resolution, error) {
	for r := Day; r <= Nanosecond; r++ {
		if s == resolutionNames[r] || s == resolutionUnits[r] {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown resolution %q (want day, second, millisecond, microsecond, or nanosecond)", s)
}
