package net2draw

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func stopSignFixture(laneLength float64) (*Network, RoadWithStopSign) {
	net := NewNetwork(Config{DrivingSide: DRIVING_SIDE_RIGHT})
	net.AddLane(&Lane{
		ID: 10, RoadID: 1, LaneType: LANE_DRIVING, Width: 2.0,
		SourceIntersection: 2, TargetIntersection: 1,
		Geom: orb.LineString{{0.0, 0.0}, {laneLength, 0.0}},
	})
	return net, RoadWithStopSign{RoadID: 1, MustStop: true, LaneClosestToEdge: 10}
}

func TestStopSignRoomSweep(t *testing.T) {
	// No room exactly when trimmed length is at or below epsilon
	for cm := 5; cm <= 500; cm += 5 {
		laneLength := float64(cm) / 100.0
		net, ss := stopSignFixture(laneLength)
		_, _, _, ok := StopSignGeom(net, ss, DRIVING_SIDE_RIGHT)
		expected := laneLength-stopSignTrimBack > epsilonDist
		if ok != expected {
			t.Errorf("Lane length %f: expected room=%t, but got %t", laneLength, expected, ok)
		}
	}
}

func TestStopSignPlacementRightSide(t *testing.T) {
	net, ss := stopSignFixture(5.0)
	octagon, pole, facing, ok := StopSignGeom(net, ss, DRIVING_SIDE_RIGHT)
	if !ok {
		t.Fatal("There should be room for the glyph")
	}
	if math.Abs(facing) > 1e-9 {
		t.Errorf("Facing should be 0 for an eastbound lane, but got %f", facing)
	}
	// Eastbound lane with right-hand traffic puts the sign south of the lane,
	// at the trimmed end shifted by the full lane width
	correctCenter := orb.Point{5.0 - stopSignTrimBack, -2.0}
	center := octagon.Center()
	if findDistance(center, correctCenter) > 1e-6 {
		t.Errorf("Octagon center should be %v, but got %v", correctCenter, center)
	}
	// Pole is a 0.6 x 0.3 rectangle behind the octagon
	correctPoleArea := 0.6 * stopSignPoleWidth
	if math.Abs(pole.Area()-correctPoleArea) > 1e-6 {
		t.Errorf("Pole area should be %f, but got %f", correctPoleArea, pole.Area())
	}
	if pole.Center().X() >= center.X() {
		t.Errorf("Pole should sit behind the octagon, but got %v vs %v", pole.Center(), center)
	}
}

func TestStopSignPlacementFlipsWithDrivingSide(t *testing.T) {
	net, ss := stopSignFixture(5.0)
	octRight, _, _, ok := StopSignGeom(net, ss, DRIVING_SIDE_RIGHT)
	if !ok {
		t.Fatal("There should be room for the glyph")
	}
	octLeft, _, _, ok := StopSignGeom(net, ss, DRIVING_SIDE_LEFT)
	if !ok {
		t.Fatal("There should be room for the glyph")
	}
	if !(octRight.Center().Y() < 0 && octLeft.Center().Y() > 0) {
		t.Errorf("Octagon should mirror across the lane with the driving side, but got %v and %v",
			octRight.Center(), octLeft.Center())
	}
}
