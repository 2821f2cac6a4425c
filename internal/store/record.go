package store

import (
	"fmt"

	"github.com/roach88/tickspan/internal/interval"
	"github.com/roach88/tickspan/internal/temporal"
)

// Record is one stored interval.
type Record struct {
	// ID is the content-addressed identity (temporal.RecordID over the
	// normalized name and tick span). Stable across imports.
	ID string `json:"id"`

	// Name is the NFC-normalized entry name.
	Name string `json:"name"`

	// Span is the half-open interval.
	Span interval.Interval `json:"-"`

	// BatchToken links the record to the import that first stored it.
	BatchToken string `json:"batch_token"`
}

// Batch describes one import attempt.
type Batch struct {
	Token       string `json:"token"`
	Schedule    string `json:"schedule"`
	RecordCount int    `json:"record_count"`
}

// newRecord builds a Record for a named interval, computing its
// content-addressed ID.
func newRecord(name string, span interval.Interval, batchToken string) Record {
	name = temporal.NormalizeName(name)
	return Record{
		ID: temporal.RecordID(name, span.Resolution(),
			span.Start().Ticks(), span.End().Ticks()),
		Name:       name,
		Span:       span,
		BatchToken: batchToken,
	}
}

// rebuildSpan reconstructs the interval of a scanned row.
func rebuildSpan(resName string, startTicks, endTicks int64) (interval.Interval, error) {
	res, err := temporal.ParseResolution(resName)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("stored resolution: %w", err)
	}
	return interval.Make(temporal.At(res, startTicks), temporal.At(res, endTicks))
}
