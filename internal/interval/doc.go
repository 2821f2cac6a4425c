// Package interval provides half-open time intervals [start, end) and a
// total algebra over them.
//
// The exclusive end is the load-bearing choice. It gives the package its
// single algebraic law:
//
//	Duration == end.ticks - start.ticks
//
// with no +1/-1 adjustment anywhere, ever. Two consequences fall out:
//
//   - Adjacency is plain equality (a.end == b.start); no one-tick
//     arithmetic is needed to say "these intervals touch".
//   - A degenerate interval (start == end, zero duration) is a valid,
//     representable value distinct from a one-unit interval, so
//     "instantaneous event" and "whole day" never overload the same
//     boundary equality.
//
// Both endpoints of an Interval share one resolution; mixing resolutions
// is a constructor error, never a coercion. All values are immutable and
// safe to copy and share freely.
package interval
