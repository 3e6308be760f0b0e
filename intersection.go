package net2draw

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

/* Intersections stuff */

type IntersectionID int

type IntersectionKind uint16

const (
	INTERSECTION_PLAIN = IntersectionKind(iota)
	INTERSECTION_BORDER
	INTERSECTION_STOP_SIGN
	INTERSECTION_TRAFFIC_SIGNAL
	INTERSECTION_CONSTRUCTION
)

func (iotaIdx IntersectionKind) String() string {
	return [...]string{"plain", "border", "stop_sign", "traffic_signal", "construction"}[iotaIdx]
}

// Intersection is a node of the network. Built once when the map is loaded or
// edited and borrowed read-only by the rendering core.
type Intersection struct {
	ID        IntersectionID
	OSMNodeID osm.NodeID
	Kind      IntersectionKind
	// Polygon is the closed boundary ring of the intersection
	Polygon orb.Ring
	// Roads are connected road identifiers in boundary order
	Roads         []RoadID
	IncomingLanes []LaneID
	OutgoingLanes []LaneID
	// Rank is the elevation tier, negative ranks are underpasses
	Rank      int
	IsFootway bool
	IsPrivate bool
}
