// Package convert maps instants between temporal resolutions.
//
// Conversion is the only place in tickspan where precision changes, and it
// is always explicit:
//
//   - Widening (coarser to finer) is exact multiplication, checked for
//     overflow. A date becomes the midnight timestamp that starts it; an
//     exclusive end date, already the start of the following unit, becomes
//     a midnight timestamp too, with no adjustment.
//   - Narrowing (finer to coarser) requires a Policy. Exact fails with a
//     LOSSY_CONVERSION error on any remainder, Truncate floors to the
//     start of the containing coarser unit, Round rounds half away from
//     zero.
//
// The package also keeps two deliberately distinct addition operations:
// AddDuration shifts by a fixed tick count, AddCalendarDays shifts by
// whole calendar days whose lengths come from a caller-supplied Calendar.
// "24 hours later" and "the next calendar day" are different questions
// and are never conflated here; the library consumes the calendar's
// answers and never computes zone rules itself.
package convert
