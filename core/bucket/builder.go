package bucket

import (
	"time"

	"github.com/tzbucket/tzbucket/core/dst"
	"github.com/tzbucket/tzbucket/core/model"
	"github.com/tzbucket/tzbucket/core/timezone"
)

// boundaryPolicy is the fixed internal disambiguation for computed
// boundaries: a local midnight inside a gap shifts forward, one inside
// an overlap takes the first occurrence. This is deliberately separate
// from the user-selectable explain policy so bucket generation is
// always total and deterministic.
var boundaryPolicy = model.Policy{
	Nonexistent: model.NonexistentShiftForward,
	Ambiguous:   model.AmbiguousFirst,
}

// Builder converts UTC instants to fully populated buckets.
type Builder struct {
	oracle timezone.Oracle
}

// NewBuilder creates a Builder backed by the given oracle.
func NewBuilder(oracle timezone.Oracle) *Builder {
	return &Builder{oracle: oracle}
}

// Build returns the bucket enclosing the UTC instant in the given zone.
// Boundaries are derived on the local calendar and converted back to
// UTC independently, so buckets spanning a transition come out 23h or
// 25h long for one-hour single-transition zones.
func (b *Builder) Build(utc time.Time, zone string, interval model.Interval, weekStart model.WeekStart) (model.Bucket, error) {
	offset, err := b.oracle.OffsetForInstant(zone, utc)
	if err != nil {
		return model.Bucket{}, err
	}
	local := model.LocalClockAt(utc, offset, zone)
	start, end := Bounds(local, interval, weekStart)
	return b.buildBounds(start, end, interval)
}

// buildBounds resolves a pair of calendar boundaries to UTC and
// assembles the bucket. The key comes from the calendar start date,
// never from the resolved instant, so it is independent of DST status.
func (b *Builder) buildBounds(start, end model.LocalClock, interval model.Interval) (model.Bucket, error) {
	startZ, err := b.resolveBoundary(start)
	if err != nil {
		return model.Bucket{}, err
	}
	endZ, err := b.resolveBoundary(end)
	if err != nil {
		return model.Bucket{}, err
	}
	return model.Bucket{
		Key:   Key(start, interval),
		Start: startZ,
		End:   endZ,
	}, nil
}

// resolveBoundary converts one local boundary to UTC under the fixed
// internal policy. It only fails on oracle errors, never on DST status.
func (b *Builder) resolveBoundary(boundary model.LocalClock) (model.ZonedInstant, error) {
	status, err := dst.Classify(b.oracle, boundary)
	if err != nil {
		return model.ZonedInstant{}, err
	}
	return dst.Resolve(status, boundary, boundaryPolicy)
}
