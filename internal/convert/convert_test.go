package convert

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tickspan/internal/temporal"
)

func TestWideningIsExact(t *testing.T) {
	tests := []struct {
		name   string
		in     temporal.Instant
		target temporal.Resolution
		want   int64
	}{
		{"day_to_second", temporal.At(temporal.Day, 1), temporal.Second, 86400},
		{"day_to_nano", temporal.At(temporal.Day, 1), temporal.Nanosecond, 86400000000000},
		{"second_to_milli", temporal.At(temporal.Second, 3), temporal.Millisecond, 3000},
		{"negative_day", temporal.At(temporal.Day, -2), temporal.Second, -172800},
		{"zero", temporal.At(temporal.Day, 0), temporal.Nanosecond, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Widening ignores policy; all three must agree.
			for _, policy := range []Policy{Exact, Truncate, Round} {
				got, err := Convert(tt.in, tt.target, policy)
				require.NoError(t, err)
				assert.Equal(t, tt.target, got.Resolution())
				assert.Equal(t, tt.want, got.Ticks())
			}
		})
	}
}

func TestWideningOverflow(t *testing.T) {
	_, err := Convert(temporal.At(temporal.Day, math.MaxInt64/2), temporal.Nanosecond, Exact)
	require.Error(t, err)
	assert.True(t, temporal.IsOverflow(err))
}

func TestNarrowingExact(t *testing.T) {
	got, err := Convert(temporal.At(temporal.Second, 2*86400), temporal.Day, Exact)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Ticks())

	_, err = Convert(temporal.At(temporal.Second, 2*86400+1), temporal.Day, Exact)
	require.Error(t, err)
	assert.True(t, temporal.IsLossyConversion(err))
}

func TestNarrowingTruncateFloors(t *testing.T) {
	tests := []struct {
		name  string
		ticks int64
		want  int64
	}{
		{"exact_boundary", 86400, 1},
		{"mid_day", 86400 + 3600, 1},
		{"just_before_midnight", 86399, 0},
		// Floor semantics: one second before the epoch is still inside
		// the day that starts at -1, not day 0.
		{"pre_epoch", -1, -1},
		{"pre_epoch_boundary", -86400, -1},
		{"pre_epoch_mid", -86401, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(temporal.At(temporal.Second, tt.ticks), temporal.Day, Truncate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Ticks())
		})
	}
}

func TestNarrowingRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name  string
		ticks int64 // milliseconds
		want  int64 // seconds
	}{
		{"below_half", 1499, 1},
		{"exactly_half", 1500, 2},
		{"above_half", 1501, 2},
		{"negative_below_half", -1499, -1},
		{"negative_exactly_half", -1500, -2},
		{"negative_above_half", -1501, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(temporal.At(temporal.Millisecond, tt.ticks), temporal.Second, Round)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Ticks())
		})
	}
}

func TestDateDatetimeCanonicalRule(t *testing.T) {
	// An inclusive start date becomes its midnight timestamp; the
	// exclusive end date is already the start of the next unit and
	// converts the same way, with no adjustment.
	start := temporal.FromDate(2021, time.January, 1)
	end := temporal.FromDate(2021, time.February, 1)

	startDT, err := Convert(start, temporal.Second, Exact)
	require.NoError(t, err)
	endDT, err := Convert(end, temporal.Second, Exact)
	require.NoError(t, err)

	assert.Equal(t, "2021-01-01T00:00:00Z", startDT.String())
	assert.Equal(t, "2021-02-01T00:00:00Z", endDT.String())
}

func TestDatetimeToDate(t *testing.T) {
	midnight := temporal.At(temporal.Second, 18628*86400)
	got, err := Convert(midnight, temporal.Day, Exact)
	require.NoError(t, err)
	assert.Equal(t, int64(18628), got.Ticks())

	// Non-midnight time-of-day is lossy under Exact, truncatable otherwise.
	noon := temporal.At(temporal.Second, 18628*86400+12*3600)
	_, err = Convert(noon, temporal.Day, Exact)
	assert.True(t, temporal.IsLossyConversion(err))

	got, err = Convert(noon, temporal.Day, Truncate)
	require.NoError(t, err)
	assert.Equal(t, int64(18628), got.Ticks())
}

func TestRoundTripWideningIsBitExact(t *testing.T) {
	for _, ticks := range []int64{0, 1, -1, 18628, math.MaxInt64 / 86400000000000} {
		orig := temporal.At(temporal.Day, ticks)
		fine, err := Convert(orig, temporal.Nanosecond, Exact)
		require.NoError(t, err)
		back, err := Convert(fine, temporal.Day, Exact)
		require.NoError(t, err)
		assert.Equal(t, orig.Ticks(), back.Ticks(), "ticks=%d", ticks)
	}
}

func TestTruncateIdempotent(t *testing.T) {
	for _, ticks := range []int64{-90001, -1, 0, 1, 86399, 123456} {
		once, err := Convert(temporal.At(temporal.Second, ticks), temporal.Day, Truncate)
		require.NoError(t, err)
		twice, err := Convert(once, temporal.Day, Truncate)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "ticks=%d", ticks)
	}
}

func TestConvertSameResolutionIsIdentity(t *testing.T) {
	in := temporal.AtOffset(temporal.Second, 42, 60)
	got, err := Convert(in, temporal.Second, Exact)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestConvertPreservesOffset(t *testing.T) {
	in := temporal.AtOffset(temporal.Day, 1, -300)
	got, err := Convert(in, temporal.Second, Exact)
	require.NoError(t, err)
	min, ok := got.Offset()
	require.True(t, ok)
	assert.Equal(t, -300, min)
}

func TestParsePolicy(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Policy
	}{
		{"exact", Exact},
		{"truncate", Truncate},
		{"round", Round},
	} {
		got, err := ParsePolicy(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParsePolicy("nearest")
	assert.Error(t, err)
}

func TestDefaultPolicyIsExact(t *testing.T) {
	var p Policy
	assert.Equal(t, Exact, p)
}
