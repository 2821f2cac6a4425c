package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/tickspan/internal/temporal"
)

func TestMustInstant(t *testing.T) {
	in := MustInstant("2021-01-01")
	assert.Equal(t, temporal.Day, in.Resolution())
	assert.Equal(t, int64(18628), in.Ticks())

	assert.Panics(t, func() { MustInstant("not-a-date") })
}

func TestMustSpan(t *testing.T) {
	iv := MustSpan("2021-01-01", "2021-02-01")
	assert.Equal(t, int64(31), iv.Duration().Ticks)

	assert.Panics(t, func() { MustSpan("2021-02-01", "2021-01-01") })
	assert.Panics(t, func() { MustSpan("2021-01-01", "2021-01-01T00:00:00Z") })
}

func TestDaySpan(t *testing.T) {
	iv := DaySpan(0, 7)
	assert.Equal(t, int64(7), iv.Duration().Ticks)

	assert.Panics(t, func() { DaySpan(7, 0) })
}
