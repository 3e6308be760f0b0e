package net2draw

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

/* Roads stuff */

type RoadID int

// RoadLane is one entry of the left-to-right lane ordering of a road
type RoadLane struct {
	LaneID    LaneID
	Direction Direction
	LaneType  LaneType
}

// Road is an edge of the network connecting two intersections. LanesLTR keeps
// the lanes ordered left-to-right when looking along the center line.
type Road struct {
	ID       RoadID
	OSMWayID osm.WayID
	LanesLTR []RoadLane
	// Geom is the center line directed from source to target intersection
	Geom               orb.LineString
	SourceIntersection IntersectionID
	TargetIntersection IntersectionID
	Rank               int
	IsPrivate          bool
}

// totalWidth returns sum of widths of all lanes
func (road *Road) totalWidth(net *Network) float64 {
	width := 0.0
	for _, rl := range road.LanesLTR {
		width += net.Lane(rl.LaneID).Width
	}
	return width
}

// halfWidth returns half of the total road width
func (road *Road) halfWidth(net *Network) float64 {
	return road.totalWidth(net) / 2.0
}

// leftSide returns the center line shifted to the left edge of the road
func (road *Road) leftSide(net *Network) (orb.LineString, bool) {
	return shiftLeft(road.Geom, road.halfWidth(net))
}

// dirChangeLine returns the line between the two travel directions of the
// road: the left side shifted right by the summed width of the lanes before
// the first direction flip. One-way roads fall back to the center line.
func (road *Road) dirChangeLine(net *Network) orb.LineString {
	width := 0.0
	for i := 0; i+1 < len(road.LanesLTR); i++ {
		width += net.Lane(road.LanesLTR[i].LaneID).Width
		if road.LanesLTR[i].Direction != road.LanesLTR[i+1].Direction {
			left, ok := road.leftSide(net)
			if !ok {
				return road.Geom
			}
			if shifted, ok := shiftRight(left, width); ok {
				return shifted
			}
			return road.Geom
		}
	}
	return road.Geom
}
