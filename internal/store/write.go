package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/tickspan/internal/schedule"
)

// ImportSchedule writes every entry of a compiled schedule as a record,
// all under a freshly minted batch token. Returns the token and the
// number of rows actually inserted.
//
// Record IDs are content-addressed, and inserts use ON CONFLICT(id)
// DO NOTHING, so re-importing the same schedule is idempotent: the batch
// row records the attempt, inserted comes back 0, and existing records
// keep the batch token of their first import.
func (s *Store) ImportSchedule(ctx context.Context, sched *schedule.Schedule) (token string, inserted int, err error) {
	token = uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", 0, fmt.Errorf("import schedule: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO batches (token, schedule, record_count)
		VALUES (?, ?, ?)
	`, token, sched.Name, len(sched.Entries)); err != nil {
		return "", 0, fmt.Errorf("import schedule: write batch: %w", err)
	}

	for _, entry := range sched.Entries {
		rec := newRecord(entry.Name, entry.Interval, token)
		res, err := tx.ExecContext(ctx, `
			INSERT INTO records (id, name, resolution, start_ticks, end_ticks, batch_token)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING
		`,
			rec.ID,
			rec.Name,
			rec.Span.Resolution().String(),
			rec.Span.Start().Ticks(),
			rec.Span.End().Ticks(),
			rec.BatchToken,
		)
		if err != nil {
			return "", 0, fmt.Errorf("import schedule: write record %q: %w", rec.Name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return "", 0, fmt.Errorf("import schedule: rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return "", 0, fmt.Errorf("import schedule: commit: %w", err)
	}
	return token, inserted, nil
}
