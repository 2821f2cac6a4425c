package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/tickspan/internal/interval"
	"github.com/roach88/tickspan/internal/temporal"
)

// Deterministic ordering for every read: start, end, then id. Identical
// databases always list records identically.
const recordOrder = "ORDER BY start_ticks ASC, end_ticks ASC, id ASC"

const recordColumns = "id, name, resolution, start_ticks, end_ticks, batch_token"

// ListRecords returns every stored record in deterministic order.
func (s *Store) ListRecords(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM records "+recordOrder)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Overlapping returns the records that share at least one instant with
// query, at query's resolution. The SQL predicate is the interval-algebra
// overlap test verbatim: stored.start < query.end AND query.start <
// stored.end. Touching records are excluded, exactly as in
// interval.Overlaps.
func (s *Store) Overlapping(ctx context.Context, query interval.Interval) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recordColumns+` FROM records
		WHERE resolution = ? AND start_ticks < ? AND end_ticks > ?
		`+recordOrder,
		query.Resolution().String(),
		query.End().Ticks(),
		query.Start().Ticks(),
	)
	if err != nil {
		return nil, fmt.Errorf("overlapping: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Containing returns the records whose span contains the instant:
// start <= t < end. The exclusive end never matches.
func (s *Store) Containing(ctx context.Context, t temporal.Instant) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recordColumns+` FROM records
		WHERE resolution = ? AND start_ticks <= ? AND ? < end_ticks
		`+recordOrder,
		t.Resolution().String(),
		t.Ticks(),
		t.Ticks(),
	)
	if err != nil {
		return nil, fmt.Errorf("containing: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// GetBatch returns the batch row for a token.
func (s *Store) GetBatch(ctx context.Context, token string) (*Batch, error) {
	var b Batch
	err := s.db.QueryRowContext(ctx, `
		SELECT token, schedule, record_count FROM batches WHERE token = ?
	`, token).Scan(&b.Token, &b.Schedule, &b.RecordCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// ByBatch returns the records first stored by the given import.
func (s *Store) ByBatch(ctx context.Context, token string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM records WHERE batch_token = ? "+recordOrder,
		token)
	if err != nil {
		return nil, fmt.Errorf("by batch: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var (
			rec        Record
			resName    string
			startTicks int64
			endTicks   int64
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &resName, &startTicks, &endTicks, &rec.BatchToken); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		span, err := rebuildSpan(resName, startTicks, endTicks)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.ID, err)
		}
		rec.Span = span
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
