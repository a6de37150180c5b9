package dst

import (
	"time"

	"github.com/tzbucket/tzbucket/core/model"
)

// Resolve picks the UTC instant for a classified local time according
// to the policy, or fails with *Error when the policy demands it.
// It is a pure function over the status; no oracle access happens here.
func Resolve(status Status, local model.LocalClock, pol model.Policy) (model.ZonedInstant, error) {
	switch status.Kind {
	case KindNormal:
		return instantAt(local, status.Offset), nil

	case KindNonexistent:
		switch pol.Nonexistent {
		case model.NonexistentShiftForward:
			// Move past the gap and reinterpret in the post-gap regime.
			shifted := local.Add(status.Gap)
			return instantAt(shifted, status.PostOffset), nil
		case model.NonexistentShiftBackward:
			shifted := local.Add(-status.Gap)
			return instantAt(shifted, status.PreOffset), nil
		}
		return model.ZonedInstant{}, &Error{
			Kind:       KindNonexistent,
			Local:      local,
			Zone:       local.Zone,
			PreOffset:  status.PreOffset,
			PostOffset: status.PostOffset,
			Gap:        status.Gap,
		}

	case KindAmbiguous:
		switch pol.Ambiguous {
		case model.AmbiguousFirst:
			return instantAt(local, status.FirstOffset), nil
		case model.AmbiguousSecond:
			return instantAt(local, status.SecondOffset), nil
		}
		return model.ZonedInstant{}, &Error{
			Kind:         KindAmbiguous,
			Local:        local,
			Zone:         local.Zone,
			FirstOffset:  status.FirstOffset,
			SecondOffset: status.SecondOffset,
		}
	}
	return model.ZonedInstant{}, &Error{Kind: status.Kind, Local: local, Zone: local.Zone}
}

func instantAt(local model.LocalClock, offset int) model.ZonedInstant {
	return model.ZonedInstant{
		UTC:    local.Naive().Add(-time.Duration(offset) * time.Second),
		Zone:   local.Zone,
		Offset: offset,
	}
}
