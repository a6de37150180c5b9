// Package dst classifies naive local times against a zone's transition
// rules and resolves them to UTC instants under a configured policy.
package dst

import "time"

// Kind tags the classification of a local time.
type Kind int

const (
	// KindNormal means the local time maps to exactly one instant.
	KindNormal Kind = iota
	// KindNonexistent means the local time was skipped by a
	// spring-forward transition.
	KindNonexistent
	// KindAmbiguous means the local time occurs twice due to a
	// fall-back transition.
	KindAmbiguous
)

func (k Kind) String() string {
	switch k {
	case KindNonexistent:
		return "nonexistent"
	case KindAmbiguous:
		return "ambiguous"
	}
	return "normal"
}

// Status is the classification of one local time. Only the fields of
// the active kind are meaningful. It is derived from fresh oracle
// queries and never cached across calls.
type Status struct {
	Kind Kind

	// Offset applies when Kind is KindNormal.
	Offset int

	// PreOffset and PostOffset bracket the gap when Kind is
	// KindNonexistent; Gap is the skipped wall-clock span.
	PreOffset  int
	PostOffset int
	Gap        time.Duration

	// FirstOffset and SecondOffset are the offsets of the
	// chronologically earlier and later occurrence when Kind is
	// KindAmbiguous. The pairing is by instant order, not by offset
	// magnitude, so first/second policies stay stable regardless of
	// the sign of the offset delta.
	FirstOffset  int
	SecondOffset int
}
