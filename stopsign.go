package net2draw

import (
	"github.com/paulmach/orb"
)

const (
	stopSignTrimBack  = 0.1
	stopSignRadius    = 1.0
	stopSignPoleNear  = 0.9
	stopSignPoleFar   = 1.5
	stopSignPoleWidth = 0.3
)

// StopSignGeom places the stop sign glyph for one stop-controlled approach:
// an octagon, a pole and the facing angle (radians). Returns false when the
// edge lane is too short to leave room for the glyph; the caller simply omits
// it.
func StopSignGeom(net *Network, ss RoadWithStopSign, side DrivingSide) (Polygon, Polygon, float64, bool) {
	edgeLane := net.Lane(ss.LaneClosestToEdge)
	if edgeLane.Length()-stopSignTrimBack <= epsilonDist {
		return Polygon{}, Polygon{}, 0, false
	}
	trimmed, ok := exactSlice(edgeLane.Geom, 0, edgeLane.Length()-stopSignTrimBack)
	if !ok {
		return Polygon{}, Polygon{}, 0, false
	}

	last := lastSegment(trimmed)
	if side == DRIVING_SIDE_RIGHT {
		last = last.shiftRight(edgeLane.Width)
	} else {
		last = last.shiftLeft(edgeLane.Width)
	}

	facing := last.angle()
	octagon := makeOctagon(last.b, stopSignRadius, facing)
	pole, ok := thickenLine(orb.LineString{
		projectAway(last.b, stopSignPoleFar, oppositeAngle(facing)),
		projectAway(last.b, stopSignPoleNear, oppositeAngle(facing)),
	}, stopSignPoleWidth)
	if !ok {
		return Polygon{}, Polygon{}, 0, false
	}
	return octagon, pole, facing, true
}
