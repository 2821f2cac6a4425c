// Package harness provides conformance testing for interval semantics.
//
// The harness loads YAML scenarios that name a set of spans and a list of
// operation steps, executes the steps against the library, and compares
// each output to the scenario's expectations. The full trace can also be
// compared against a golden file.
//
// # Scenario format
//
//	name: scenario_name
//	description: "What this scenario validates"
//	spans:
//	  jan: {start: "2021-01-01", end: "2021-02-01"}
//	  feb: {start: "2021-02-01", end: "2021-03-01"}
//	steps:
//	  - op: duration
//	    of: jan
//	    expect: {value: "31d"}
//	  - op: overlaps
//	    a: jan
//	    b: feb
//	    expect: {value: "false"}
//	  - op: convert
//	    of: jan
//	    to: second
//	    policy: exact
//	    expect: {value: "[2021-01-01T00:00:00Z, 2021-02-01T00:00:00Z)"}
//	  - op: intersect
//	    a: jan
//	    b: feb
//	    expect: {none: true}
//
// # Operations
//
// duration, degenerate, contains, overlaps, adjacent, intersect, union,
// and convert. Every step renders its result to one output string
// ("31d", "true", "none", "[2021-01-01, 2021-02-01)"); a failing
// operation renders as "error:CODE" using the library's typed error
// codes, so scenarios can assert boundary failures as easily as values:
//
//	- op: convert
//	  of: lunch
//	  to: day
//	  policy: exact
//	  expect: {error: LOSSY_CONVERSION}
//
// # Deterministic testing
//
// Execution is pure: spans are compiled fresh per run and steps execute
// in declaration order, so the same scenario always produces a
// byte-identical trace for golden file comparison.
package harness
