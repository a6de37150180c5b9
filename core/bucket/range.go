package bucket

import (
	"fmt"
	"time"

	"github.com/tzbucket/tzbucket/core/model"
	"github.com/tzbucket/tzbucket/core/timezone"
)

// InvalidOrderError reports a range request whose start does not
// precede its end.
type InvalidOrderError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("invalid range: start %s must be earlier than end %s",
		e.Start.UTC().Format(time.RFC3339), e.End.UTC().Format(time.RFC3339))
}

// Generate walks buckets forward across [start, end) and returns every
// bucket intersecting the interval, ascending by start instant. A
// bucket that begins before start but overlaps it is included; one
// starting at or after end is not.
func Generate(oracle timezone.Oracle, start, end time.Time, zone string, interval model.Interval, weekStart model.WeekStart) ([]model.Bucket, error) {
	if !start.Before(end) {
		return nil, &InvalidOrderError{Start: start, End: end}
	}

	b := NewBuilder(oracle)
	offset, err := oracle.OffsetForInstant(zone, start)
	if err != nil {
		return nil, err
	}
	cursor := model.LocalClockAt(start, offset, zone)

	var out []model.Bucket
	var prev time.Time
	for {
		s, e := Bounds(cursor, interval, weekStart)
		bkt, err := b.buildBounds(s, e, interval)
		if err != nil {
			return nil, err
		}
		if !bkt.Start.UTC.Before(end) {
			break
		}
		if bkt.End.UTC.After(start) {
			// Each local boundary strictly increases, so the UTC
			// sequence must too; a violation means broken zone data.
			if len(out) > 0 && !bkt.Start.UTC.After(prev) {
				return nil, &timezone.RuntimeError{
					Zone: zone,
					Err:  fmt.Errorf("non-monotonic bucket sequence at %s", bkt.Key),
				}
			}
			prev = bkt.Start.UTC
			out = append(out, bkt)
		}
		// Advance on the calendar axis: the end boundary is the seed
		// of the next bucket regardless of how it resolved to UTC.
		cursor = e
	}
	return out, nil
}
