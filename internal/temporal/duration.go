package temporal

import "fmt"

// Duration is a tick count at a tagged Resolution.
//
// A Duration is always the difference of two same-resolution tick counts;
// it is never reinterpreted at another resolution implicitly.
type Duration struct {
	Ticks      int64
	Resolution Resolution
}

// IsZero reports whether the duration is zero ticks.
func (d Duration) IsZero() bool { return d.Ticks == 0 }

// String renders the duration with its unit suffix (e.g., "31d", "250ms").
func (d Duration) String() string {
	return fmt.Sprintf("%d%s", d.Ticks, d.Resolution.Unit())
}
