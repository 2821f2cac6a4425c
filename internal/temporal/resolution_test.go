package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolutionOrdering(t *testing.T) {
	assert.True(t, Day.CoarserThan(Second))
	assert.True(t, Second.CoarserThan(Millisecond))
	assert.True(t, Millisecond.CoarserThan(Microsecond))
	assert.True(t, Microsecond.CoarserThan(Nanosecond))

	assert.True(t, Nanosecond.FinerThan(Day))
	assert.False(t, Day.FinerThan(Day))
	assert.False(t, Day.CoarserThan(Day))
}

func TestFactor(t *testing.T) {
	tests := []struct {
		name string
		from Resolution
		to   Resolution
		want int64
	}{
		{"same", Second, Second, 1},
		{"day_to_second", Day, Second, 86400},
		{"second_to_milli", Second, Millisecond, 1000},
		{"day_to_milli", Day, Millisecond, 86400000},
		{"day_to_nano", Day, Nanosecond, 86400000000000},
		{"micro_to_nano", Microsecond, Nanosecond, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Factor(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFactorRejectsFinerToCoarser(t *testing.T) {
	_, err := Factor(Nanosecond, Day)
	require.Error(t, err)
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		in   string
		want Resolution
	}{
		{"day", Day},
		{"d", Day},
		{"second", Second},
		{"s", Second},
		{"millisecond", Millisecond},
		{"ms", Millisecond},
		{"microsecond", Microsecond},
		{"us", Microsecond},
		{"nanosecond", Nanosecond},
		{"ns", Nanosecond},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseResolution(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseResolution("fortnight")
	require.Error(t, err)
}

func TestResolutionString(t *testing.T) {
	assert.Equal(t, "day", Day.String())
	assert.Equal(t, "nanosecond", Nanosecond.String())
	assert.Equal(t, "ms", Millisecond.Unit())
	assert.False(t, Resolution(99).Valid())
}
