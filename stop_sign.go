package net2draw

/* Stop sign control stuff */

// RoadWithStopSign describes one approach of a stop-controlled intersection
type RoadWithStopSign struct {
	RoadID   RoadID
	MustStop bool
	// LaneClosestToEdge is the lane used to place the stop sign glyph
	LaneClosestToEdge LaneID
}

// ControlStopSign is the stop sign control record of an intersection
type ControlStopSign struct {
	IntersectionID IntersectionID
	Roads          map[RoadID]RoadWithStopSign
}
