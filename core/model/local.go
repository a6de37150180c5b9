package model

import (
	"fmt"
	"time"
)

// LocalClock is a naive wall-clock time paired with an IANA zone id.
// It carries no UTC offset: depending on the zone's transition rules it
// may map to zero, one or two UTC instants.
type LocalClock struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
	Zone   string
}

// LocalClockAt derives the wall-clock fields of utc shifted by the given
// offset in seconds. The caller supplies the offset from the timezone
// oracle; no location lookup happens here.
func LocalClockAt(utc time.Time, offset int, zone string) LocalClock {
	t := utc.Add(time.Duration(offset) * time.Second).UTC()
	return LocalClock{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Zone:   zone,
	}
}

// Naive returns the calendar fields as a UTC time.Time. The result is
// not an instant; it only serves calendar arithmetic and comparisons.
func (c LocalClock) Naive() time.Time {
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, 0, time.UTC)
}

// Weekday returns the weekday of the calendar date.
func (c LocalClock) Weekday() time.Weekday {
	return c.Naive().Weekday()
}

// AddDays returns the clock shifted by n calendar days, normalized.
func (c LocalClock) AddDays(n int) LocalClock {
	return localClockFromNaive(c.Naive().AddDate(0, 0, n), c.Zone)
}

// AddMonths returns the clock shifted by n calendar months, normalized.
func (c LocalClock) AddMonths(n int) LocalClock {
	return localClockFromNaive(c.Naive().AddDate(0, n, 0), c.Zone)
}

// Add returns the clock shifted by a wall-clock duration, normalized.
func (c LocalClock) Add(d time.Duration) LocalClock {
	return localClockFromNaive(c.Naive().Add(d), c.Zone)
}

// Midnight returns the same calendar date at 00:00:00.
func (c LocalClock) Midnight() LocalClock {
	c.Hour, c.Minute, c.Second = 0, 0, 0
	return c
}

func (c LocalClock) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

// DateString returns the calendar date as YYYY-MM-DD.
func (c LocalClock) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, c.Month, c.Day)
}

func localClockFromNaive(t time.Time, zone string) LocalClock {
	return LocalClock{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Zone:   zone,
	}
}

// ZonedInstant is an absolute UTC instant together with the zone and
// offset of its local representation. The offset must match what the
// oracle reports for (zone, UTC).
type ZonedInstant struct {
	UTC    time.Time
	Zone   string
	Offset int // seconds east of UTC
}

// Local returns the wall-clock representation of the instant.
func (z ZonedInstant) Local() LocalClock {
	return LocalClockAt(z.UTC, z.Offset, z.Zone)
}

// LocalString formats the local representation as RFC3339 with an
// explicit numeric offset, e.g. "2026-03-29T03:30:00+02:00".
func (z ZonedInstant) LocalString() string {
	return z.Local().String() + FormatOffset(z.Offset)
}

// UTCString formats the instant as RFC3339 with a Z suffix.
func (z ZonedInstant) UTCString() string {
	return z.UTC.UTC().Format("2006-01-02T15:04:05Z")
}

// FormatOffset renders an offset in seconds as ±HH:MM.
func FormatOffset(sec int) string {
	sign := "+"
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	return fmt.Sprintf("%s%02d:%02d", sign, sec/3600, (sec%3600)/60)
}
