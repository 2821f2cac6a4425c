package schedule

import (
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tickspan/internal/temporal"
)

func compileString(t *testing.T, src, path string) (*Schedule, error) {
	t.Helper()
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	require.NoError(t, v.Err())
	return Compile(v.LookupPath(cue.ParsePath(path)))
}

func TestCompileBasic(t *testing.T) {
	s, err := compileString(t, `
		schedule: quarters: {
			resolution: "day"
			entries: {
				q1: {start: "2021-01-01", end: "2021-04-01"}
				q2: {start: "2021-04-01", end: "2021-07-01"}
			}
		}
	`, "schedule.quarters")
	require.NoError(t, err)

	assert.Equal(t, "quarters", s.Name)
	assert.Equal(t, temporal.Day, s.Resolution)
	require.Len(t, s.Entries, 2)
	assert.Equal(t, "q1", s.Entries[0].Name)
	assert.Equal(t, "[2021-01-01, 2021-04-01)", s.Entries[0].Interval.String())
	assert.Equal(t, "q2", s.Entries[1].Name)
}

func TestCompileSortsEntriesByStart(t *testing.T) {
	s, err := compileString(t, `
		schedule: shifts: {
			resolution: "second"
			entries: {
				late:  {start: "2021-01-01T16:00:00Z", end: "2021-01-02T00:00:00Z"}
				early: {start: "2021-01-01T00:00:00Z", end: "2021-01-01T08:00:00Z"}
				mid:   {start: "2021-01-01T08:00:00Z", end: "2021-01-01T16:00:00Z"}
			}
		}
	`, "schedule.shifts")
	require.NoError(t, err)

	require.Len(t, s.Entries, 3)
	assert.Equal(t, "early", s.Entries[0].Name)
	assert.Equal(t, "mid", s.Entries[1].Name)
	assert.Equal(t, "late", s.Entries[2].Name)
}

func TestCompileWidensDateEndpoints(t *testing.T) {
	// Date-only endpoints in a second-resolution schedule become the
	// midnights that start them. The exclusive end needs no adjustment.
	s, err := compileString(t, `
		schedule: window: {
			resolution: "second"
			entries: {
				jan: {start: "2021-01-01", end: "2021-02-01"}
			}
		}
	`, "schedule.window")
	require.NoError(t, err)

	e := s.Entries[0]
	assert.Equal(t, temporal.Second, e.Interval.Resolution())
	assert.Equal(t, "2021-01-01T00:00:00Z", e.Interval.Start().String())
	assert.Equal(t, "2021-02-01T00:00:00Z", e.Interval.End().String())
	assert.Equal(t, int64(31*86400), e.Interval.Duration().Ticks)
}

func TestCompileRejectsLossyEndpoint(t *testing.T) {
	_, err := compileString(t, `
		schedule: bad: {
			resolution: "day"
			entries: {
				lunch: {start: "2021-01-01T12:00:00Z", end: "2021-01-02"}
			}
		}
	`, "schedule.bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entries.lunch.start")
}

func TestCompileRejectsReversedEntry(t *testing.T) {
	_, err := compileString(t, `
		schedule: bad: {
			resolution: "day"
			entries: {
				backwards: {start: "2021-02-01", end: "2021-01-01"}
			}
		}
	`, "schedule.bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_RANGE")
}

func TestCompileMissingResolution(t *testing.T) {
	_, err := compileString(t, `
		schedule: bad: {
			entries: {
				a: {start: "2021-01-01", end: "2021-01-02"}
			}
		}
	`, "schedule.bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolution")
	assert.Contains(t, err.Error(), "required")
}

func TestCompileMissingEntries(t *testing.T) {
	_, err := compileString(t, `
		schedule: bad: {
			resolution: "day"
		}
	`, "schedule.bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entries")
}

func TestCompileMissingEndpoint(t *testing.T) {
	_, err := compileString(t, `
		schedule: bad: {
			resolution: "day"
			entries: {
				open: {start: "2021-01-01"}
			}
		}
	`, "schedule.bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entries.open.end")
}

func TestLookupNormalizesName(t *testing.T) {
	s, err := compileString(t, `
		schedule: misc: {
			resolution: "day"
			entries: {
				"café": {start: "2021-01-01", end: "2021-01-02"}
			}
		}
	`, "schedule.misc")
	require.NoError(t, err)

	// Decomposed spelling resolves to the same entry.
	e, ok := s.Lookup("café")
	require.True(t, ok)
	assert.Equal(t, "café", e.Name)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)
}
