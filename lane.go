package net2draw

import (
	"github.com/paulmach/orb"
)

/* Lanes stuff */

type LaneID int

type LaneType uint16

const (
	LANE_DRIVING = LaneType(iota + 1)
	LANE_SIDEWALK
	LANE_SHOULDER
	LANE_BIKING
	LANE_BUS
	LANE_PARKING
	LANE_CONSTRUCTION
	LANE_LIGHT_RAIL

	LANE_UNDEFINED = LaneType(0)
)

func (iotaIdx LaneType) String() string {
	return [...]string{"undefined", "driving", "sidewalk", "shoulder", "biking", "bus", "parking", "construction", "light_rail"}[iotaIdx]
}

// IsForMovingVehicles reports whether vehicles travel along lanes of this type
func (iotaIdx LaneType) IsForMovingVehicles() bool {
	switch iotaIdx {
	case LANE_DRIVING, LANE_BIKING, LANE_BUS, LANE_LIGHT_RAIL:
		return true
	}
	return false
}

// IsWalkable reports whether pedestrians travel along lanes of this type
func (iotaIdx LaneType) IsWalkable() bool {
	return iotaIdx == LANE_SIDEWALK || iotaIdx == LANE_SHOULDER
}

type Direction uint16

const (
	DIRECTION_FWD = Direction(iota + 1)
	DIRECTION_BACK

	DIRECTION_UNDEFINED = Direction(0)
)

func (iotaIdx Direction) String() string {
	return [...]string{"undefined", "fwd", "back"}[iotaIdx]
}

// Lane is a single lane of a road. Geometry is a center polyline in a
// projected Euclidean plane (meters), directed from source to target
// intersection.
type Lane struct {
	ID       LaneID
	RoadID   RoadID
	LaneType LaneType
	Width    float64
	// SourceIntersection and TargetIntersection are the ends of the lane in
	// travel order
	SourceIntersection IntersectionID
	TargetIntersection IntersectionID
	Geom               orb.LineString
}

// Length returns length of the lane center line (meters)
func (lane *Lane) Length() float64 {
	return lineLength(lane.Geom)
}

// firstSegment returns the leading segment of the lane center line
//
// Note: panics if lane geometry has less than 2 points
//
func (lane *Lane) firstSegment() segment {
	return firstSegment(lane.Geom)
}

// lastSegment returns the trailing segment of the lane center line
//
// Note: panics if lane geometry has less than 2 points
//
func (lane *Lane) lastSegment() segment {
	return lastSegment(lane.Geom)
}
