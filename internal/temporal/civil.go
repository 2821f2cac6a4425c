package temporal

import (
	"math"
	"time"
)

// Civil-date arithmetic over the proleptic Gregorian calendar.
// daysFromCivil and civilFromDays are the standard era-based algorithms;
// day 0 is 1970-01-01.

// daysFromCivil returns the number of civil days between 1970-01-01 and
// the given date. Valid over the whole int64-representable range.
func daysFromCivil(year int, month time.Month, day int) int64 {
	y := int64(year)
	m := int64(month)
	d := int64(day)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y%400 < 0 {
		era--
	}
	yoe := y - era*400 // [0, 399]
	var mp int64
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + d - 1            // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(days int64) (year int, month time.Month, day int) {
	z := days + 719468
	era := z / 146097
	if z%146097 < 0 {
		era--
	}
	doe := z - era*146097                                  // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	d := doy - (153*mp+2)/5 + 1              // [1, 31]
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), time.Month(m), int(d)
}

// floorDiv divides a by b rounding toward negative infinity.
// b must be positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the non-negative remainder of floorDiv.
// b must be positive.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// mulChecked multiplies with overflow detection. factor is always > 0.
func mulChecked(a, factor int64) (int64, bool) {
	if a > math.MaxInt64/factor || a < math.MinInt64/factor {
		return 0, false
	}
	return a * factor, true
}

// addChecked adds with overflow detection.
func addChecked(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}
