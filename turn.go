package net2draw

import (
	"fmt"

	"github.com/paulmach/orb"
)

/* Turns stuff */

// TurnID identifies a directed connection between two lanes within one
// intersection
type TurnID struct {
	Parent IntersectionID
	Src    LaneID
	Dst    LaneID
}

func (tid TurnID) String() string {
	return fmt.Sprintf("turn(%d: %d->%d)", tid.Parent, tid.Src, tid.Dst)
}

// less orders turn identifiers lexicographically by (parent, src, dst)
func (tid TurnID) less(other TurnID) bool {
	if tid.Parent != other.Parent {
		return tid.Parent < other.Parent
	}
	if tid.Src != other.Src {
		return tid.Src < other.Src
	}
	return tid.Dst < other.Dst
}

type TurnType uint16

const (
	TURN_CROSSWALK = TurnType(iota + 1)
	TURN_SHARED_SIDEWALK_CORNER
	TURN_STRAIGHT
	TURN_RIGHT
	TURN_LEFT
	TURN_U_TURN

	TURN_UNDEFINED = TurnType(0)
)

func (iotaIdx TurnType) String() string {
	return [...]string{"undefined", "crosswalk", "shared_sidewalk_corner", "straight", "right", "left", "uturn"}[iotaIdx]
}

// Turn connects a source lane to a destination lane within one intersection
type Turn struct {
	ID       TurnID
	TurnType TurnType
	// Geom connects the two lane endpoints
	Geom orb.LineString
	// OtherCrosswalks lists sibling crosswalk turns sharing the same physical
	// stripe. The stripe is rendered once, by the turn with the smallest
	// identifier among the siblings.
	OtherCrosswalks []TurnID
}

// isCrosswalkOwner reports whether this turn renders the shared stripe
func (turn *Turn) isCrosswalkOwner() bool {
	for _, other := range turn.OtherCrosswalks {
		if other.less(turn.ID) {
			return false
		}
	}
	return true
}
