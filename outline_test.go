package net2draw

import (
	"testing"

	"github.com/paulmach/orb"
)

// outlineFixture builds a 2x2 intersection square with one road per edge, each
// road 2 meters wide so its edge pair exactly covers one ring edge
func outlineFixture() *Network {
	net := NewNetwork(Config{DrivingSide: DRIVING_SIDE_RIGHT})
	net.AddIntersection(&Intersection{
		ID:      1,
		Kind:    INTERSECTION_PLAIN,
		Polygon: orb.Ring{{1.0, -1.0}, {1.0, 1.0}, {-1.0, 1.0}, {-1.0, -1.0}, {1.0, -1.0}},
		Roads:   []RoadID{1, 2, 3, 4},
	})
	addRoad := func(id RoadID, geom orb.LineString, src, dst IntersectionID) {
		laneID := LaneID(id * 10)
		net.AddRoad(&Road{
			ID:                 id,
			LanesLTR:           []RoadLane{{LaneID: laneID, Direction: DIRECTION_FWD, LaneType: LANE_DRIVING}},
			Geom:               geom,
			SourceIntersection: src,
			TargetIntersection: dst,
		})
		net.AddLane(&Lane{
			ID: laneID, RoadID: id, LaneType: LANE_DRIVING, Width: 2.0,
			SourceIntersection: src, TargetIntersection: dst,
			Geom: geom,
		})
	}
	// East road arrives, north and south roads leave, west road arrives
	addRoad(1, orb.LineString{{5.0, 0.0}, {1.0, 0.0}}, 2, 1)
	addRoad(2, orb.LineString{{0.0, 1.0}, {0.0, 5.0}}, 1, 3)
	addRoad(3, orb.LineString{{-5.0, 0.0}, {-1.0, 0.0}}, 4, 1)
	addRoad(4, orb.LineString{{0.0, -1.0}, {0.0, -5.0}}, 1, 5)
	return net
}

func TestOutlineFullyCovered(t *testing.T) {
	net := outlineFixture()
	got := UnzoomedOutline(net, net.Intersection(1))
	if len(got) != 0 {
		t.Errorf("Four roads should cover the whole boundary, but got %d segments", len(got))
	}
}

func TestOutlineExposedEdge(t *testing.T) {
	net := outlineFixture()
	// Drop the east road, its boundary edge is now exposed
	net.Intersection(1).Roads = []RoadID{2, 3, 4}

	got := UnzoomedOutline(net, net.Intersection(1))
	if len(got) != 1 {
		t.Fatalf("One uncovered boundary edge expected, but got %d segments", len(got))
	}
	correct := orb.LineString{{1.0, -1.0}, {1.0, 1.0}}
	if lineAsString(got[0]) != lineAsString(correct) {
		t.Errorf("Outline segment should be '%s', but got '%s'", lineAsString(correct), lineAsString(got[0]))
	}
}

func TestOutlineWithinTolerance(t *testing.T) {
	net := outlineFixture()
	// Nudge the ring corner less than the match tolerance, the edge still
	// counts as covered
	net.Intersection(1).Polygon[0] = orb.Point{1.05, -1.0}
	net.Intersection(1).Polygon[4] = orb.Point{1.05, -1.0}

	got := UnzoomedOutline(net, net.Intersection(1))
	if len(got) != 0 {
		t.Errorf("Edges within tolerance should count as covered, but got %d segments", len(got))
	}
}

func TestOutlineDegenerateRing(t *testing.T) {
	net := outlineFixture()
	net.Intersection(1).Polygon = orb.Ring{{0.0, 0.0}}
	if got := UnzoomedOutline(net, net.Intersection(1)); len(got) != 0 {
		t.Errorf("Single-point ring should have no outline, but got %d segments", len(got))
	}
}
