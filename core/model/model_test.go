package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	cases := []struct {
		in   string
		want Interval
	}{
		{"day", IntervalDay},
		{"week", IntervalWeek},
		{"month", IntervalMonth},
	}
	for _, c := range cases {
		got, err := ParseInterval(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
		assert.Equal(t, c.in, got.String())
	}
	_, err := ParseInterval("year")
	assert.Error(t, err)
}

func TestParseWeekStart(t *testing.T) {
	got, err := ParseWeekStart("monday")
	require.NoError(t, err)
	assert.Equal(t, WeekStartMonday, got)
	got, err = ParseWeekStart("sunday")
	require.NoError(t, err)
	assert.Equal(t, WeekStartSunday, got)
	_, err = ParseWeekStart("saturday")
	assert.Error(t, err)
}

func TestParsePolicies(t *testing.T) {
	np, err := ParseNonexistentPolicy("shift_forward")
	require.NoError(t, err)
	assert.Equal(t, NonexistentShiftForward, np)
	assert.Equal(t, "shift_forward", np.String())

	np, err = ParseNonexistentPolicy("shift_backward")
	require.NoError(t, err)
	assert.Equal(t, NonexistentShiftBackward, np)

	_, err = ParseNonexistentPolicy("skip")
	assert.Error(t, err)

	ap, err := ParseAmbiguousPolicy("second")
	require.NoError(t, err)
	assert.Equal(t, AmbiguousSecond, ap)
	assert.Equal(t, "second", ap.String())

	_, err = ParseAmbiguousPolicy("third")
	assert.Error(t, err)
}

func TestLocalClockArithmetic(t *testing.T) {
	c := LocalClock{Year: 2026, Month: time.March, Day: 31, Hour: 12, Zone: "Europe/Berlin"}
	next := c.AddDays(1)
	assert.Equal(t, "2026-04-01T12:00:00", next.String())
	assert.Equal(t, "2026-03-31", c.DateString())
	assert.Equal(t, time.Tuesday, c.Weekday())

	shifted := c.Add(90 * time.Minute)
	assert.Equal(t, "2026-03-31T13:30:00", shifted.String())

	mid := c.Midnight()
	assert.Equal(t, "2026-03-31T00:00:00", mid.String())
}

func TestLocalClockAt(t *testing.T) {
	utc := time.Date(2026, 3, 29, 0, 30, 0, 0, time.UTC)
	c := LocalClockAt(utc, 3600, "Europe/Berlin")
	assert.Equal(t, "2026-03-29T01:30:00", c.String())
	assert.Equal(t, "Europe/Berlin", c.Zone)
}

func TestZonedInstantFormatting(t *testing.T) {
	z := ZonedInstant{
		UTC:    time.Date(2026, 3, 29, 1, 30, 0, 0, time.UTC),
		Zone:   "Europe/Berlin",
		Offset: 2 * 3600,
	}
	assert.Equal(t, "2026-03-29T03:30:00+02:00", z.LocalString())
	assert.Equal(t, "2026-03-29T01:30:00Z", z.UTCString())
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "+01:00", FormatOffset(3600))
	assert.Equal(t, "-05:00", FormatOffset(-5*3600))
	assert.Equal(t, "+05:45", FormatOffset(5*3600+45*60))
	assert.Equal(t, "+00:00", FormatOffset(0))
}

func TestBucketContains(t *testing.T) {
	b := Bucket{
		Start: ZonedInstant{UTC: time.Date(2026, 3, 28, 23, 0, 0, 0, time.UTC)},
		End:   ZonedInstant{UTC: time.Date(2026, 3, 29, 22, 0, 0, 0, time.UTC)},
	}
	assert.Equal(t, 23*time.Hour, b.Duration())
	assert.True(t, b.Contains(b.Start.UTC))
	assert.True(t, b.Contains(time.Date(2026, 3, 29, 12, 0, 0, 0, time.UTC)))
	assert.False(t, b.Contains(b.End.UTC))
}
