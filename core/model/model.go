package model

import "fmt"

// Interval selects the bucket granularity.
type Interval int

const (
	IntervalDay Interval = iota
	IntervalWeek
	IntervalMonth
)

func (i Interval) String() string {
	switch i {
	case IntervalDay:
		return "day"
	case IntervalWeek:
		return "week"
	case IntervalMonth:
		return "month"
	}
	return "unknown"
}

// ParseInterval converts a user-supplied string into an Interval.
func ParseInterval(s string) (Interval, error) {
	switch s {
	case "day":
		return IntervalDay, nil
	case "week":
		return IntervalWeek, nil
	case "month":
		return IntervalMonth, nil
	}
	return 0, fmt.Errorf("invalid interval %q: expected day, week, month", s)
}

// WeekStart selects which weekday opens a week bucket.
type WeekStart int

const (
	WeekStartMonday WeekStart = iota
	WeekStartSunday
)

func (w WeekStart) String() string {
	if w == WeekStartSunday {
		return "sunday"
	}
	return "monday"
}

// ParseWeekStart converts a user-supplied string into a WeekStart.
func ParseWeekStart(s string) (WeekStart, error) {
	switch s {
	case "monday":
		return WeekStartMonday, nil
	case "sunday":
		return WeekStartSunday, nil
	}
	return 0, fmt.Errorf("invalid week_start %q: expected monday, sunday", s)
}

// NonexistentPolicy decides how to resolve local times skipped by a
// spring-forward transition.
type NonexistentPolicy int

const (
	NonexistentError NonexistentPolicy = iota
	NonexistentShiftForward
	NonexistentShiftBackward
)

func (p NonexistentPolicy) String() string {
	switch p {
	case NonexistentShiftForward:
		return "shift_forward"
	case NonexistentShiftBackward:
		return "shift_backward"
	}
	return "error"
}

// ParseNonexistentPolicy converts a user-supplied string into a NonexistentPolicy.
func ParseNonexistentPolicy(s string) (NonexistentPolicy, error) {
	switch s {
	case "error":
		return NonexistentError, nil
	case "shift_forward":
		return NonexistentShiftForward, nil
	case "shift_backward":
		return NonexistentShiftBackward, nil
	}
	return 0, fmt.Errorf("invalid policy_nonexistent %q: expected error, shift_forward, shift_backward", s)
}

// AmbiguousPolicy decides how to resolve local times repeated by a
// fall-back transition.
type AmbiguousPolicy int

const (
	AmbiguousError AmbiguousPolicy = iota
	AmbiguousFirst
	AmbiguousSecond
)

func (p AmbiguousPolicy) String() string {
	switch p {
	case AmbiguousFirst:
		return "first"
	case AmbiguousSecond:
		return "second"
	}
	return "error"
}

// ParseAmbiguousPolicy converts a user-supplied string into an AmbiguousPolicy.
func ParseAmbiguousPolicy(s string) (AmbiguousPolicy, error) {
	switch s {
	case "error":
		return AmbiguousError, nil
	case "first":
		return AmbiguousFirst, nil
	case "second":
		return AmbiguousSecond, nil
	}
	return 0, fmt.Errorf("invalid policy_ambiguous %q: expected error, first, second", s)
}

// Policy combines the two DST resolution policies active for a request.
type Policy struct {
	Nonexistent NonexistentPolicy
	Ambiguous   AmbiguousPolicy
}
