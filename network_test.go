package net2draw

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestNetworkDuplicates(t *testing.T) {
	net := NewNetwork(Config{DrivingSide: DRIVING_SIDE_RIGHT})
	if err := net.AddLane(&Lane{ID: 10}); err != nil {
		t.Fatalf("First insert should succeed: %v", err)
	}
	if err := net.AddLane(&Lane{ID: 10}); err == nil {
		t.Error("Duplicate lane should be rejected")
	}
}

func TestNetworkUnknownIDPanics(t *testing.T) {
	net := NewNetwork(Config{DrivingSide: DRIVING_SIDE_RIGHT})
	defer func() {
		if recover() == nil {
			t.Error("Unknown lane lookup should panic")
		}
	}()
	net.Lane(404)
}

func TestTurnsInOrdering(t *testing.T) {
	net := NewNetwork(Config{DrivingSide: DRIVING_SIDE_RIGHT})
	net.AddTurn(&Turn{ID: TurnID{Parent: 1, Src: 20, Dst: 10}})
	net.AddTurn(&Turn{ID: TurnID{Parent: 1, Src: 10, Dst: 20}})
	net.AddTurn(&Turn{ID: TurnID{Parent: 2, Src: 5, Dst: 6}})

	turns := net.TurnsIn(1)
	if len(turns) != 2 {
		t.Fatalf("Intersection 1 should have 2 turns, but got %d", len(turns))
	}
	if turns[0].ID.Src != 10 || turns[1].ID.Src != 20 {
		t.Errorf("Turns should be ordered by identifier, but got %s then %s", turns[0].ID, turns[1].ID)
	}
}

func TestCrosswalkOwnership(t *testing.T) {
	net := NewNetwork(Config{DrivingSide: DRIVING_SIDE_RIGHT})
	a := &Turn{
		ID:              TurnID{Parent: 1, Src: 10, Dst: 20},
		TurnType:        TURN_CROSSWALK,
		Geom:            orb.LineString{{0.0, 0.0}, {1.0, 0.0}},
		OtherCrosswalks: []TurnID{{Parent: 1, Src: 20, Dst: 10}},
	}
	b := &Turn{
		ID:              TurnID{Parent: 1, Src: 20, Dst: 10},
		TurnType:        TURN_CROSSWALK,
		Geom:            orb.LineString{{1.0, 0.0}, {0.0, 0.0}},
		OtherCrosswalks: []TurnID{{Parent: 1, Src: 10, Dst: 20}},
	}
	net.AddTurn(a)
	net.AddTurn(b)
	if !a.isCrosswalkOwner() {
		t.Error("The lesser turn should own the shared stripe")
	}
	if b.isCrosswalkOwner() {
		t.Error("The greater turn should not own the shared stripe")
	}
}

func TestSignalStageAt(t *testing.T) {
	signal := &TrafficSignal{
		IntersectionID: 1,
		Stages: []SignalStage{
			{DurationSec: 30.0},
			{DurationSec: 10.0},
		},
	}
	cases := []struct {
		now     Time
		correct int
	}{
		{0, 0},
		{29.9, 0},
		{30, 1},
		{39.9, 1},
		{40, 0},
		{75, 1},
	}
	for _, c := range cases {
		if got := signal.StageAt(c.now); got != c.correct {
			t.Errorf("Stage at %f should be %d, but got %d", float64(c.now), c.correct, got)
		}
	}
}
