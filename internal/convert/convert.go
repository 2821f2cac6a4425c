package convert

import (
	"fmt"
	"math"

	"github.com/roach88/tickspan/internal/temporal"
)

// Policy selects how a narrowing conversion treats a non-zero remainder.
//
// The zero value is Exact: an unspecified policy fails loudly on any
// lossy narrowing rather than silently discarding ticks.
type Policy int

const (
	// Exact fails with LOSSY_CONVERSION if any remainder would be discarded.
	Exact Policy = iota

	// Truncate floors to the start of the containing coarser unit.
	// Flooring (not rounding toward zero) keeps "the day containing this
	// instant" correct for pre-epoch instants.
	Truncate

	// Round rounds half away from zero.
	Round
)

var policyNames = [...]string{
	Exact:    "exact",
	Truncate: "truncate",
	Round:    "round",
}

// Valid reports whether p is a defined policy.
func (p Policy) Valid() bool {
	return p >= Exact && p <= Round
}

// String returns the lowercase policy name.
func (p Policy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy parses a policy name.
func ParsePolicy(s string) (Policy, error) {
	for p := Exact; p <= Round; p++ {
		if s == policyNames[p] {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown policy %q (want exact, truncate, or round)", s)
}

// Convert returns in re-expressed at the target resolution.
//
// Widening is always exact regardless of policy and fails only with
// OVERFLOW. Narrowing applies the policy. Converting to the instant's own
// resolution returns it unchanged. Offset metadata is preserved.
func Convert(in temporal.Instant, target temporal.Resolution, policy Policy) (temporal.Instant, error) {
	if !target.Valid() {
		return temporal.Instant{}, fmt.Errorf("convert: invalid target resolution %s", target)
	}
	if !policy.Valid() {
		return temporal.Instant{}, fmt.Errorf("convert: invalid policy %s", policy)
	}

	from := in.Resolution()
	if from == target {
		return in, nil
	}

	var ticks int64
	if target.FinerThan(from) {
		factor, err := temporal.Factor(from, target)
		if err != nil {
			return temporal.Instant{}, err
		}
		ticks, err = mulChecked(in.Ticks(), factor)
		if err != nil {
			return temporal.Instant{}, temporal.NewOverflow("Convert",
				fmt.Sprintf("%d %s ticks do not fit in int64 at %s resolution", in.Ticks(), from, target))
		}
	} else {
		factor, err := temporal.Factor(target, from)
		if err != nil {
			return temporal.Instant{}, err
		}
		ticks, err = narrow(in.Ticks(), factor, policy, from, target)
		if err != nil {
			return temporal.Instant{}, err
		}
	}

	if min, ok := in.Offset(); ok {
		return temporal.AtOffset(target, ticks, min), nil
	}
	return temporal.At(target, ticks), nil
}

// narrow divides ticks by factor under the given policy.
func narrow(ticks, factor int64, policy Policy, from, to temporal.Resolution) (int64, error) {
	quot := ticks / factor
	rem := ticks % factor

	switch policy {
	case Exact:
		if rem != 0 {
			return 0, temporal.NewLossyConversion("Convert", ticks, from, to, rem)
		}
		return quot, nil

	case Truncate:
		// Floor, not toward-zero: -1s narrows to day -1, not day 0.
		if rem != 0 && ticks < 0 {
			quot--
		}
		return quot, nil

	case Round:
		// Half away from zero on the true quotient.
		if rem != 0 {
			if 2*abs(rem) >= factor {
				if ticks > 0 {
					quot++
				} else {
					quot--
				}
			}
		}
		return quot, nil

	default:
		return 0, fmt.Errorf("convert: invalid policy %s", policy)
	}
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// mulChecked multiplies with overflow detection. factor is always > 0.
func mulChecked(a, factor int64) (int64, error) {
	if a > math.MaxInt64/factor || a < math.MinInt64/factor {
		return 0, fmt.Errorf("multiplication overflows int64")
	}
	return a * factor, nil
}

// addChecked adds with overflow detection.
func addChecked(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, fmt.Errorf("addition overflows int64")
	}
	return sum, nil
}
