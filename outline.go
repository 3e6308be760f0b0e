package net2draw

import (
	"github.com/paulmach/orb"
)

const (
	// outlineMatchTolerance is how closely a boundary edge must match a road
	// edge pair to count as covered
	outlineMatchTolerance = 0.1
)

type roadEdgePair struct {
	left  orb.Point
	right orb.Point
}

// UnzoomedOutline finds sections along the intersection boundary ring that
// are not connected to a road. These are the edges exposed to open space and
// should contribute an outline. Adjacent uncovered edges are not merged, so
// the output may be micro-segmented.
func UnzoomedOutline(net *Network, i *Intersection) []orb.LineString {
	var segments []orb.LineString
	ring := i.Polygon
	if len(ring) < 2 {
		return segments
	}

	// Turn each road into the left and right point that should be on the
	// ring, so they can be "subtracted" out
	var pairs []roadEdgePair
	for _, roadID := range i.Roads {
		road := net.Road(roadID)
		halfWidth := road.halfWidth(net)
		left, okLeft := shiftLeft(road.Geom, halfWidth)
		right, okRight := shiftRight(road.Geom, halfWidth)
		if !okLeft || !okRight {
			// Degenerate road, it covers nothing
			continue
		}
		if road.SourceIntersection == i.ID {
			pairs = append(pairs, roadEdgePair{left: left[0], right: right[0]})
		} else {
			pairs = append(pairs, roadEdgePair{left: left[len(left)-1], right: right[len(right)-1]})
		}
	}

	// Walk along each line segment on the ring. If it is not one of the road
	// pairs, add it as an outline segment.
	for k := 0; k+1 < len(ring); k++ {
		covered := false
		for _, pair := range pairs {
			if edgeMatchesPair(ring[k], ring[k+1], pair) {
				covered = true
				break
			}
		}
		if !covered {
			segments = append(segments, orb.LineString{ring[k], ring[k+1]})
		}
	}
	return segments
}

// edgeMatchesPair checks the edge against the pair in either point order
// within the tolerance
func edgeMatchesPair(a, b orb.Point, pair roadEdgePair) bool {
	return (findDistance(a, pair.left) <= outlineMatchTolerance && findDistance(b, pair.right) <= outlineMatchTolerance) ||
		(findDistance(a, pair.right) <= outlineMatchTolerance && findDistance(b, pair.left) <= outlineMatchTolerance)
}
