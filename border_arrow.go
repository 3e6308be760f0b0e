package net2draw

import (
	"github.com/paulmach/orb"
)

const (
	// degenerateIntersectionHalfLength is the half-length of a degenerate
	// (two-road) intersection. The arrow offsets below are fixed design
	// constants derived from twice this value plus margins; they are visual
	// tuning, not a physical law.
	degenerateIntersectionHalfLength = 2.5
	borderArrowFarOffset             = -9.5
	borderArrowNearOffset            = -0.5
)

// calculateBorderArrows produces arrows marking traffic entering and leaving
// the mapped area at a border intersection. One arrow points from the void
// toward the road when the intersection has outgoing lanes, the mirror arrow
// points from the road to the void when it has incoming ones.
//
// This assumes the lane directions of the road change at most at one point.
func calculateBorderArrows(net *Network, i *Intersection, road *Road, side DrivingSide) []Polygon {
	var result []Polygon

	widthFwd := 0.0
	widthBack := 0.0
	for _, rl := range road.LanesLTR {
		if rl.Direction == DIRECTION_FWD {
			widthFwd += net.Lane(rl.LaneID).Width
		} else {
			widthBack += net.Lane(rl.LaneID).Width
		}
	}
	center := road.dirChangeLine(net)
	if len(center) < 2 {
		return result
	}

	// Left-hand traffic puts the forward lanes on the other side of the
	// center, so every shift sign mirrors
	mirror := 1.0
	if side == DRIVING_SIDE_LEFT {
		mirror = -1.0
	}

	// These arrows should point from the void to the road
	if len(i.OutgoingLanes) > 0 {
		var seg segment
		var width float64
		if road.TargetIntersection == i.ID {
			seg = lastSegment(center).shiftEitherDirection(mirror * widthBack / 2.0).reverse()
			width = widthBack
		} else {
			seg = firstSegment(center).shiftEitherDirection(-mirror * widthFwd / 2.0)
			width = widthFwd
		}
		line := orb.LineString{
			seg.unboundedDistAlong(borderArrowFarOffset),
			seg.unboundedDistAlong(borderArrowNearOffset),
		}
		if arrow, ok := makeArrow(line, width/3.0); ok {
			result = append(result, arrow)
		}
	}

	// These arrows should point from the road to the void
	if len(i.IncomingLanes) > 0 {
		var seg segment
		var width float64
		if road.TargetIntersection == i.ID {
			seg = lastSegment(center).shiftEitherDirection(-mirror * widthFwd / 2.0).reverse()
			width = widthFwd
		} else {
			seg = firstSegment(center).shiftEitherDirection(mirror * widthBack / 2.0)
			width = widthBack
		}
		line := orb.LineString{
			seg.unboundedDistAlong(borderArrowNearOffset),
			seg.unboundedDistAlong(borderArrowFarOffset),
		}
		if arrow, ok := makeArrow(line, width/3.0); ok {
			result = append(result, arrow)
		}
	}

	return result
}
