package net2draw

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

type DrivingSide uint16

const (
	DRIVING_SIDE_RIGHT = DrivingSide(iota)
	DRIVING_SIDE_LEFT
)

func (iotaIdx DrivingSide) String() string {
	return [...]string{"right", "left"}[iotaIdx]
}

// Config carries map-wide conventions. The driving side flips every offset
// sign in corner, curb, arrow and stop sign calculations, so it is threaded
// as an explicit parameter instead of being read from ambient state.
type Config struct {
	DrivingSide DrivingSide
}

// Network is the read-only road network model the rendering core borrows.
// It is populated once by a loader and never mutated by this package.
type Network struct {
	intersections map[IntersectionID]*Intersection
	roads         map[RoadID]*Road
	lanes         map[LaneID]*Lane
	turns         map[TurnID]*Turn
	stopSigns     map[IntersectionID]*ControlStopSign
	signals       map[IntersectionID]*TrafficSignal
	cfg           Config
}

func NewNetwork(cfg Config) *Network {
	return &Network{
		intersections: make(map[IntersectionID]*Intersection),
		roads:         make(map[RoadID]*Road),
		lanes:         make(map[LaneID]*Lane),
		turns:         make(map[TurnID]*Turn),
		stopSigns:     make(map[IntersectionID]*ControlStopSign),
		signals:       make(map[IntersectionID]*TrafficSignal),
		cfg:           cfg,
	}
}

func (net *Network) Config() Config {
	return net.cfg
}

func (net *Network) AddIntersection(i *Intersection) error {
	if _, ok := net.intersections[i.ID]; ok {
		return errors.Errorf("Intersection %d already exists", i.ID)
	}
	net.intersections[i.ID] = i
	return nil
}

func (net *Network) AddRoad(road *Road) error {
	if _, ok := net.roads[road.ID]; ok {
		return errors.Errorf("Road %d already exists", road.ID)
	}
	net.roads[road.ID] = road
	return nil
}

func (net *Network) AddLane(lane *Lane) error {
	if _, ok := net.lanes[lane.ID]; ok {
		return errors.Errorf("Lane %d already exists", lane.ID)
	}
	net.lanes[lane.ID] = lane
	return nil
}

func (net *Network) AddTurn(turn *Turn) error {
	if _, ok := net.turns[turn.ID]; ok {
		return errors.Errorf("Turn %s already exists", turn.ID)
	}
	net.turns[turn.ID] = turn
	return nil
}

func (net *Network) SetStopSign(control *ControlStopSign) {
	net.stopSigns[control.IntersectionID] = control
}

func (net *Network) SetTrafficSignal(signal *TrafficSignal) {
	net.signals[signal.IntersectionID] = signal
}

// Intersection returns intersection for given identifier
//
// Note: panics if intersection is not found, that is a malformed map model
//
func (net *Network) Intersection(id IntersectionID) *Intersection {
	i, ok := net.intersections[id]
	if !ok {
		panic(fmt.Sprintf("Intersection %d not found. Malformed map model", id))
	}
	return i
}

// Road returns road for given identifier
//
// Note: panics if road is not found, that is a malformed map model
//
func (net *Network) Road(id RoadID) *Road {
	road, ok := net.roads[id]
	if !ok {
		panic(fmt.Sprintf("Road %d not found. Malformed map model", id))
	}
	return road
}

// Lane returns lane for given identifier
//
// Note: panics if lane is not found, that is a malformed map model
//
func (net *Network) Lane(id LaneID) *Lane {
	lane, ok := net.lanes[id]
	if !ok {
		panic(fmt.Sprintf("Lane %d not found. Malformed map model", id))
	}
	return lane
}

// Turn returns turn for given identifier
//
// Note: panics if turn is not found, that is a malformed map model
//
func (net *Network) Turn(id TurnID) *Turn {
	turn, ok := net.turns[id]
	if !ok {
		panic(fmt.Sprintf("%s not found. Malformed map model", id))
	}
	return turn
}

// TurnsIn returns all turns of given intersection ordered by identifier
func (net *Network) TurnsIn(id IntersectionID) []*Turn {
	var result []*Turn
	for _, turn := range net.turns {
		if turn.ID.Parent == id {
			result = append(result, turn)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID.less(result[j].ID)
	})
	return result
}

// StopSign returns stop sign control record for given intersection
func (net *Network) StopSign(id IntersectionID) (*ControlStopSign, bool) {
	control, ok := net.stopSigns[id]
	return control, ok
}

// TrafficSignal returns traffic signal control record for given intersection
func (net *Network) TrafficSignal(id IntersectionID) (*TrafficSignal, bool) {
	signal, ok := net.signals[id]
	return signal, ok
}

// ParentRoad returns the road owning given lane
func (net *Network) ParentRoad(id LaneID) *Road {
	return net.Road(net.Lane(id).RoadID)
}
