// Package schedule compiles named interval sets from CUE definition files.
//
// A schedule is the declarative surface of tickspan: a CUE struct naming a
// resolution and a set of entries, each a half-open interval written with
// inclusive-start/exclusive-end instants. Example:
//
//	schedule: quarters: {
//		resolution: "day"
//		entries: {
//			q1: {start: "2021-01-01", end: "2021-04-01"}
//			q2: {start: "2021-04-01", end: "2021-07-01"}
//		}
//	}
//
// Endpoints finer than the schedule resolution are rejected rather than
// silently truncated: compilation converts with the exact policy only.
// Entry names are NFC normalized; two spellings that normalize to the
// same name are a duplicate, not two entries.
//
// Entries are kept sorted by start tick then name so every consumer
// (validation, storage, CLI output) sees one deterministic order.
package schedule
