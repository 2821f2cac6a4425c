// Package temporal provides the foundational value types for tickspan.
//
// This package contains type definitions and pure arithmetic only. All other
// internal packages import temporal; temporal imports nothing internal. This
// ensures it remains the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Ticks are always int64, counted from the Unix epoch (TICK-1)
//   - Every tick count carries an explicit Resolution tag; there is no
//     instant with ambiguous precision (TICK-2)
//   - Resolutions never mix implicitly: combining instants at different
//     resolutions is an error, never a coercion (TICK-3)
//   - All values are immutable; every transformation returns a new value
//   - All failures are typed *Error values with a stable Code, returned to
//     the caller, never panicked
package temporal
