package model

import "time"

// Bucket is one calendar-aligned span with its boundaries resolved to
// UTC instants. Start and End carry the offsets in effect at each
// boundary, so a bucket spanning a DST transition exposes different
// offsets on its two ends.
type Bucket struct {
	Key   string
	Start ZonedInstant
	End   ZonedInstant
}

// Duration returns the real elapsed time covered by the bucket. Day
// buckets spanning a one-hour transition yield 23h or 25h.
func (b Bucket) Duration() time.Duration {
	return b.End.UTC.Sub(b.Start.UTC)
}

// Contains reports whether the UTC instant falls inside the bucket's
// half-open [Start, End) span.
func (b Bucket) Contains(utc time.Time) bool {
	return !utc.Before(b.Start.UTC) && utc.Before(b.End.UTC)
}
