// Package timezone implements the core oracle on top of the Go
// timezone database. The tzdata import embeds the IANA data so lookups
// work on hosts without a system zoneinfo directory.
package timezone

import (
	"errors"
	"sort"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/tzbucket/tzbucket/core/model"
	coretz "github.com/tzbucket/tzbucket/core/timezone"
)

// probeWindow bounds how far around a wall-clock time the oracle looks
// for applicable offsets. Offsets never exceed 14h and single-step DST
// gaps are a few hours at most, so one day on each side is enough.
const probeWindow = 24 * time.Hour

// StdOracle resolves zones with time.LoadLocation and caches the
// loaded locations. It is safe for concurrent use.
type StdOracle struct {
	mu   sync.RWMutex
	locs map[string]*time.Location
}

// NewStdOracle creates an oracle with an empty location cache.
func NewStdOracle() *StdOracle {
	return &StdOracle{locs: make(map[string]*time.Location)}
}

func (o *StdOracle) location(zone string) (*time.Location, error) {
	if zone == "" {
		return nil, &coretz.RuntimeError{Zone: zone, Err: errors.New("empty zone id")}
	}
	o.mu.RLock()
	loc, ok := o.locs[zone]
	o.mu.RUnlock()
	if ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, &coretz.RuntimeError{Zone: zone, Err: err}
	}
	o.mu.Lock()
	o.locs[zone] = loc
	o.mu.Unlock()
	return loc, nil
}

// OffsetForInstant returns the offset in seconds east of UTC in effect
// at the given instant.
func (o *StdOracle) OffsetForInstant(zone string, utc time.Time) (int, error) {
	loc, err := o.location(zone)
	if err != nil {
		return 0, err
	}
	_, off := utc.In(loc).Zone()
	return off, nil
}

// InstantsForLocal returns the UTC instants whose wall clock in the
// zone reads exactly like local, ascending. Zero candidates means the
// time was skipped by a transition; two means it occurs twice.
func (o *StdOracle) InstantsForLocal(zone string, local model.LocalClock) ([]model.ZonedInstant, error) {
	loc, err := o.location(zone)
	if err != nil {
		return nil, err
	}
	naive := local.Naive()

	// Candidate offsets are the ones in effect near the wall-clock
	// time. Probing one day on each side covers any nearby transition.
	offsets := map[int]struct{}{}
	for _, probe := range []time.Time{naive.Add(-probeWindow), naive, naive.Add(probeWindow)} {
		_, off := probe.In(loc).Zone()
		offsets[off] = struct{}{}
	}

	seen := map[int64]struct{}{}
	var out []model.ZonedInstant
	for off := range offsets {
		cand := naive.Add(-time.Duration(off) * time.Second)
		if _, actual := cand.In(loc).Zone(); actual == off {
			if _, dup := seen[cand.Unix()]; dup {
				continue
			}
			seen[cand.Unix()] = struct{}{}
			out = append(out, model.ZonedInstant{UTC: cand, Zone: zone, Offset: off})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UTC.Before(out[j].UTC) })
	return out, nil
}

// TransitionBracket locates the offset change that skipped the given
// local time and reports the offsets on both sides plus the skipped
// wall-clock span.
func (o *StdOracle) TransitionBracket(zone string, local model.LocalClock) (coretz.Bracket, error) {
	loc, err := o.location(zone)
	if err != nil {
		return coretz.Bracket{}, err
	}
	naive := local.Naive()
	lo := naive.Add(-probeWindow)
	hi := naive.Add(probeWindow)
	_, offLo := lo.In(loc).Zone()
	_, offHi := hi.In(loc).Zone()
	if offLo == offHi {
		return coretz.Bracket{}, &coretz.RuntimeError{
			Zone: zone,
			Err:  errors.New("no transition near local time " + local.String()),
		}
	}

	// Bisect to the first instant carrying the post-transition offset.
	for hi.Sub(lo) > time.Second {
		mid := lo.Add(hi.Sub(lo) / 2).Truncate(time.Second)
		if _, off := mid.In(loc).Zone(); off == offLo {
			lo = mid
		} else {
			hi = mid
		}
	}

	return coretz.Bracket{
		Before:     offLo,
		After:      offHi,
		Gap:        time.Duration(offHi-offLo) * time.Second,
		Transition: hi,
	}, nil
}
