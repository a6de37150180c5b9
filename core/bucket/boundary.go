// Package bucket derives calendar-aligned bucket boundaries and
// resolves them to UTC, keeping boundary math strictly separate from
// DST handling: Bounds works on calendar fields only, and each
// boundary is converted to UTC independently afterwards.
package bucket

import (
	"fmt"

	"github.com/tzbucket/tzbucket/core/model"
)

// Bounds computes the local start and end of the bucket enclosing the
// given wall-clock time. No offset math happens here; both boundaries
// are naive local midnights. A time sitting exactly on a boundary
// belongs to the bucket that starts there.
func Bounds(local model.LocalClock, interval model.Interval, weekStart model.WeekStart) (start, end model.LocalClock) {
	switch interval {
	case model.IntervalWeek:
		start = weekOpen(local, weekStart)
		end = start.AddDays(7)
	case model.IntervalMonth:
		start = model.LocalClock{Year: local.Year, Month: local.Month, Day: 1, Zone: local.Zone}
		end = start.AddMonths(1)
	default:
		start = local.Midnight()
		end = start.AddDays(1)
	}
	return start, end
}

// Key derives the bucket key from the local start boundary. Day and
// week buckets use the start date; week keys are therefore sortable
// and self-describing rather than ISO week numbers.
func Key(start model.LocalClock, interval model.Interval) string {
	if interval == model.IntervalMonth {
		return fmt.Sprintf("%04d-%02d", start.Year, start.Month)
	}
	return start.DateString()
}

func weekOpen(local model.LocalClock, weekStart model.WeekStart) model.LocalClock {
	first := 1 // Monday
	if weekStart == model.WeekStartSunday {
		first = 0
	}
	delta := (int(local.Weekday()) - first + 7) % 7
	return local.Midnight().AddDays(-delta)
}
