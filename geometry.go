// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sketchnet

import (
	"math"
	"sort"

	"github.com/db47h/sketchnet/shape"
)

// projections closer than keyEpsilon are considered equal.
const keyEpsilon = 1e-6

// portEntry is an endpoint competing for a port slot of a component.
type portEntry struct {
	pos   shape.Point
	owner shape.ID // shape owning the endpoint
	index int      // endpoint index in owner, -1 if none

	net    NetID
	direct ComponentID
	isLink bool // direct component link instead of a net
}

// sortEntries sorts entries in reading order in the frame of a shape with the
// given orientation: by projection on the stacking axis
// (y·cos θ + x·sin θ), then on the forward axis, then by owner shape and
// endpoint index.
func sortEntries(es []portEntry, orientation float64) {
	across, fwd := shape.Across(orientation), shape.Forward(orientation)
	sort.SliceStable(es, func(i, j int) bool {
		a, b := &es[i], &es[j]
		if ka, kb := a.pos.Dot(across), b.pos.Dot(across); math.Abs(ka-kb) > keyEpsilon {
			return ka < kb
		}
		if ka, kb := a.pos.Dot(fwd), b.pos.Dot(fwd); math.Abs(ka-kb) > keyEpsilon {
			return ka < kb
		}
		if a.owner != b.owner {
			return a.owner < b.owner
		}
		return a.index < b.index
	})
}

// attachPoint returns where s attaches to other: the endpoint of s bound to
// other, else the endpoint of s closest to other, else the center of s.
func attachPoint(s, other *shape.Shape) (shape.Point, int) {
	for i, e := range s.Endpoints {
		if e.Connected == other.ID {
			return e.Pos, i
		}
	}
	if i := s.ClosestEndpointFrom(other); i >= 0 {
		return s.Endpoints[i].Pos, i
	}
	return s.Center(), -1
}

// bindEndpoints returns the indices of the endpoints of wire w attaching to
// shape s. If none is bound to s yet, the endpoint closest to s is used and
// bound to it, unless already bound to another shape.
func bindEndpoints(w, s *shape.Shape) []int {
	var ends []int
	for i, e := range w.Endpoints {
		if e.Connected == s.ID {
			ends = append(ends, i)
		}
	}
	if len(ends) > 0 {
		return ends
	}
	i := w.ClosestEndpointFrom(s)
	if i < 0 {
		return nil
	}
	if w.Endpoints[i].Connected == shape.None {
		w.Endpoints[i].Connected = s.ID
	}
	return []int{i}
}
