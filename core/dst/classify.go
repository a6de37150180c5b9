package dst

import (
	"fmt"

	"github.com/tzbucket/tzbucket/core/model"
	"github.com/tzbucket/tzbucket/core/timezone"
)

// Classify determines whether a naive local time maps to zero, one or
// two UTC instants in its zone.
func Classify(oracle timezone.Oracle, local model.LocalClock) (Status, error) {
	instants, err := oracle.InstantsForLocal(local.Zone, local)
	if err != nil {
		return Status{}, err
	}

	switch len(instants) {
	case 1:
		return Status{Kind: KindNormal, Offset: instants[0].Offset}, nil
	case 2:
		return Status{
			Kind:         KindAmbiguous,
			FirstOffset:  instants[0].Offset,
			SecondOffset: instants[1].Offset,
		}, nil
	case 0:
		br, err := oracle.TransitionBracket(local.Zone, local)
		if err != nil {
			return Status{}, err
		}
		return Status{
			Kind:       KindNonexistent,
			PreOffset:  br.Before,
			PostOffset: br.After,
			Gap:        br.Gap,
		}, nil
	}
	return Status{}, &timezone.RuntimeError{
		Zone: local.Zone,
		Err:  fmt.Errorf("oracle returned %d instants for %s", len(instants), local),
	}
}
