// Package store provides SQLite-backed durable storage for interval records.
//
// The store is an append-only log of named half-open intervals:
//   - Records: one row per named interval, identified by a
//     content-addressed ID (SHA-256 with domain separation over the
//     NFC-normalized name and the tick span)
//   - Batches: one row per import, identified by a random uuid token,
//     linking records back to the schedule they came from
//
// # Invariants
//
// Half-open semantics are pushed into SQL unchanged: the overlap
// predicate is start_ticks < ? AND end_ticks > ?, containment is
// start_ticks <= ? AND ? < end_ticks, so a record's exclusive end never
// matches a query instant and touching spans never report as overlapping.
// The schema enforces end_ticks >= start_ticks; a reversed span cannot be
// stored even by hand.
//
// Content addressing makes writes idempotent: re-importing a schedule
// inserts nothing new (ON CONFLICT(id) DO NOTHING) while still minting a
// fresh batch token for the attempt.
//
// All read queries ORDER BY start_ticks, end_ticks, id so results are
// deterministic across processes.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
