package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mexico(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	return loc
}

func TestWeekWindow(t *testing.T) {
	loc := mexico(t)
	start := time.Date(2024, 12, 25, 15, 30, 0, 0, loc)

	w := WeekWindow(start, loc)

	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, loc), w.Start)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 0, loc), w.Cutoff)
	assert.Equal(t, time.Tuesday, w.Cutoff.Weekday())
	assert.True(t, w.Contains(time.Date(2024, 12, 31, 23, 59, 59, 500, loc)))
	assert.False(t, w.Contains(time.Date(2025, 1, 1, 0, 0, 0, 0, loc)))
	assert.False(t, w.Contains(time.Date(2024, 12, 24, 23, 59, 59, 0, loc)))
}

func TestWeekWindow_UTCInputUsesCanonicalDay(t *testing.T) {
	loc := mexico(t)
	// 2024-12-26 03:00 UTC is still 2024-12-25 in Mexico City.
	w := WeekWindow(time.Date(2024, 12, 26, 3, 0, 0, 0, time.UTC), loc)
	assert.Equal(t, 25, w.Start.Day())
	assert.Equal(t, time.Wednesday, w.Start.Weekday())
}

func TestLastClosedWeekStart(t *testing.T) {
	loc := mexico(t)
	cases := []struct {
		now  time.Time
		want time.Time
	}{
		{time.Date(2025, 1, 1, 9, 0, 0, 0, loc), time.Date(2024, 12, 25, 0, 0, 0, 0, loc)},  // Wednesday
		{time.Date(2024, 12, 31, 23, 0, 0, 0, loc), time.Date(2024, 12, 18, 0, 0, 0, 0, loc)}, // Tuesday
		{time.Date(2025, 1, 4, 12, 0, 0, 0, loc), time.Date(2024, 12, 25, 0, 0, 0, 0, loc)},  // Saturday
	}
	for _, c := range cases {
		got := LastClosedWeekStart(c.now, loc)
		assert.Equal(t, c.want, got, "now=%s", c.now)
		assert.Equal(t, time.Wednesday, got.Weekday())
	}
}

func TestDateIn(t *testing.T) {
	loc := mexico(t)
	d := DateIn(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), loc)
	assert.Equal(t, "2024-12-25", d.Format(DateLayout))
	assert.Equal(t, loc, d.Location())
}
