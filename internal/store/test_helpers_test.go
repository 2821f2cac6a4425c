package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/tickspan/internal/interval"
	"github.com/roach88/tickspan/internal/schedule"
	"github.com/roach88/tickspan/internal/temporal"
)

// createTestStore creates a file-backed store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// daySchedule builds a day-resolution schedule from (name, start, end) triples.
func daySchedule(t *testing.T, name string, entries ...[3]any) *schedule.Schedule {
	t.Helper()
	s := &schedule.Schedule{Name: name, Resolution: temporal.Day}
	for _, e := range entries {
		iv, err := interval.Make(
			temporal.At(temporal.Day, int64(e[1].(int))),
			temporal.At(temporal.Day, int64(e[2].(int))),
		)
		require.NoError(t, err)
		s.Entries = append(s.Entries, schedule.Entry{Name: e[0].(string), Interval: iv})
	}
	return s
}
