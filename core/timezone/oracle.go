// Package timezone declares the oracle capability the core depends on
// for all offset and transition knowledge. The core never loads
// timezone data itself; an infra implementation is injected.
package timezone

import (
	"fmt"
	"time"

	"github.com/tzbucket/tzbucket/core/model"
)

// Bracket describes the transition surrounding a nonexistent local time.
type Bracket struct {
	// Before is the offset in seconds in effect before the transition.
	Before int
	// After is the offset in seconds in effect after the transition.
	After int
	// Gap is the wall-clock span skipped by the transition.
	Gap time.Duration
	// Transition is the UTC instant at which the offset changes.
	Transition time.Time
}

// Oracle answers offset queries for IANA zones. Lookups are in-memory
// and never block; errors indicate an unknown zone or corrupted data.
type Oracle interface {
	// OffsetForInstant returns the offset in seconds east of UTC in
	// effect for the zone at the given UTC instant.
	OffsetForInstant(zone string, utc time.Time) (int, error)

	// InstantsForLocal returns every UTC instant whose local
	// representation in the zone equals the given wall-clock time,
	// ordered ascending. The slice has 0, 1 or 2 entries.
	InstantsForLocal(zone string, local model.LocalClock) ([]model.ZonedInstant, error)

	// TransitionBracket locates the transition that skipped the given
	// local time. It is only meaningful when InstantsForLocal returned
	// no candidates.
	TransitionBracket(zone string, local model.LocalClock) (Bracket, error)
}

// RuntimeError reports a failure of the oracle itself, such as an
// unknown zone id. It is fatal for the request and never retried.
type RuntimeError struct {
	Zone string
	Err  error
}

func (e *RuntimeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("timezone %q: %v", e.Zone, e.Err)
	}
	return fmt.Sprintf("timezone %q: lookup failed", e.Zone)
}

func (e *RuntimeError) Unwrap() error { return e.Err }
