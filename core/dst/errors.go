package dst

import (
	"fmt"
	"time"

	"github.com/tzbucket/tzbucket/core/model"
)

// Error is returned by Resolve when the active policy is the error
// policy and the local time is not normal. It carries enough context
// for the caller to render a full explanation.
type Error struct {
	Kind  Kind
	Local model.LocalClock
	Zone  string

	// Gap data, set for nonexistent times.
	PreOffset  int
	PostOffset int
	Gap        time.Duration

	// Candidate offsets, set for ambiguous times.
	FirstOffset  int
	SecondOffset int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNonexistent:
		return fmt.Sprintf(
			"nonexistent local time %s in %s: skipped by DST transition (%s -> %s). Use shift_forward or shift_backward to resolve",
			e.Local, e.Zone, model.FormatOffset(e.PreOffset), model.FormatOffset(e.PostOffset))
	case KindAmbiguous:
		return fmt.Sprintf(
			"ambiguous local time %s in %s: occurs twice due to DST fall back (%s then %s). Use first or second to resolve",
			e.Local, e.Zone, model.FormatOffset(e.FirstOffset), model.FormatOffset(e.SecondOffset))
	}
	return fmt.Sprintf("unresolvable local time %s in %s", e.Local, e.Zone)
}
