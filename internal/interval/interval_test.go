package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tickspan/internal/convert"
	"github.com/roach88/tickspan/internal/temporal"
)

func mustMake(t *testing.T, start, end temporal.Instant) Interval {
	t.Helper()
	iv, err := Make(start, end)
	require.NoError(t, err)
	return iv
}

func days(t *testing.T, start, end int64) Interval {
	t.Helper()
	return mustMake(t, temporal.At(temporal.Day, start), temporal.At(temporal.Day, end))
}

func TestMake(t *testing.T) {
	iv := days(t, 1, 5)
	assert.Equal(t, int64(1), iv.Start().Ticks())
	assert.Equal(t, int64(5), iv.End().Ticks())
	assert.Equal(t, temporal.Day, iv.Resolution())
}

func TestMakeRejectsReversedRange(t *testing.T) {
	_, err := Make(temporal.At(temporal.Day, 5), temporal.At(temporal.Day, 1))
	require.Error(t, err)
	assert.True(t, temporal.IsInvalidRange(err))
}

func TestMakeRejectsMixedResolutions(t *testing.T) {
	_, err := Make(temporal.At(temporal.Day, 0), temporal.At(temporal.Second, 86400))
	require.Error(t, err)
	assert.True(t, temporal.IsResolutionMismatch(err))
}

func TestMakeAcceptsDegenerate(t *testing.T) {
	iv := days(t, 3, 3)
	assert.True(t, iv.IsDegenerate())
	assert.True(t, iv.Duration().IsZero())
}

func TestDurationLaw(t *testing.T) {
	tests := []struct {
		name       string
		start, end int64
		want       int64
	}{
		{"one_unit", 0, 1, 1},
		{"degenerate", 7, 7, 0},
		{"spanning_epoch", -3, 4, 7},
		{"january_2021", 18628, 18659, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := days(t, tt.start, tt.end)
			d := iv.Duration()
			assert.Equal(t, tt.want, d.Ticks)
			assert.Equal(t, temporal.Day, d.Resolution)
			assert.GreaterOrEqual(t, d.Ticks, int64(0))
			assert.Equal(t, iv.End().Ticks()-iv.Start().Ticks(), d.Ticks)
		})
	}
}

func TestJanuaryIsThirtyOneDays(t *testing.T) {
	iv := mustMake(t,
		temporal.FromDate(2021, time.January, 1),
		temporal.FromDate(2021, time.February, 1))
	assert.Equal(t, "31d", iv.Duration().String())
}

func TestDegenerateDistinctFromOneDay(t *testing.T) {
	degenerate := mustMake(t,
		temporal.FromDate(2024, time.January, 1),
		temporal.FromDate(2024, time.January, 1))
	oneDay := mustMake(t,
		temporal.FromDate(2024, time.January, 1),
		temporal.FromDate(2024, time.January, 2))

	assert.True(t, degenerate.IsDegenerate())
	assert.Equal(t, int64(0), degenerate.Duration().Ticks)
	assert.False(t, oneDay.IsDegenerate())
	assert.Equal(t, int64(1), oneDay.Duration().Ticks)
}

func TestContainsIsHalfOpen(t *testing.T) {
	iv := days(t, 2, 5)
	tests := []struct {
		name  string
		ticks int64
		want  bool
	}{
		{"before_start", 1, false},
		{"at_start", 2, true},
		{"inside", 4, true},
		{"at_end", 5, false}, // exclusive end is never a member
		{"after_end", 6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := iv.Contains(temporal.At(temporal.Day, tt.ticks))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContainsDegenerateIsEmpty(t *testing.T) {
	iv := days(t, 3, 3)
	got, err := iv.Contains(temporal.At(temporal.Day, 3))
	require.NoError(t, err)
	assert.False(t, got, "a degenerate interval contains nothing, not even its own boundary")
}

func TestContainsResolutionMismatch(t *testing.T) {
	iv := days(t, 0, 10)
	_, err := iv.Contains(temporal.At(temporal.Second, 5))
	require.Error(t, err)
	assert.True(t, temporal.IsResolutionMismatch(err))
}

func TestConvertDateIntervalToDatetime(t *testing.T) {
	iv := mustMake(t,
		temporal.FromDate(2021, time.January, 1),
		temporal.FromDate(2021, time.February, 1))

	dt, err := iv.Convert(temporal.Second, convert.Exact)
	require.NoError(t, err)

	assert.Equal(t, "2021-01-01T00:00:00Z", dt.Start().String())
	assert.Equal(t, "2021-02-01T00:00:00Z", dt.End().String())
	// Duration unchanged in calendar-day count: 31 days of seconds.
	assert.Equal(t, int64(31*86400), dt.Duration().Ticks)
}

func TestConvertRoundTrip(t *testing.T) {
	iv := days(t, 18628, 18659)
	fine, err := iv.Convert(temporal.Nanosecond, convert.Exact)
	require.NoError(t, err)
	back, err := fine.Convert(temporal.Day, convert.Exact)
	require.NoError(t, err)
	assert.Equal(t, iv, back)
}

func TestConvertNarrowingCanCollapse(t *testing.T) {
	iv := mustMake(t, temporal.At(temporal.Second, 10), temporal.At(temporal.Second, 20))
	coarse, err := iv.Convert(temporal.Day, convert.Truncate)
	require.NoError(t, err)
	assert.True(t, coarse.IsDegenerate())
}

func TestConvertNarrowingExactFails(t *testing.T) {
	iv := mustMake(t, temporal.At(temporal.Second, 10), temporal.At(temporal.Second, 20))
	_, err := iv.Convert(temporal.Day, convert.Exact)
	require.Error(t, err)
	assert.True(t, temporal.IsLossyConversion(err))
}

func TestString(t *testing.T) {
	iv := mustMake(t,
		temporal.FromDate(2021, time.January, 1),
		temporal.FromDate(2021, time.February, 1))
	assert.Equal(t, "[2021-01-01, 2021-02-01)", iv.String())
}
