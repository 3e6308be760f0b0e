package net2draw

/* Traffic signals stuff */

// Time is a simulation clock value in seconds
type Time float64

// SignalStage is one stage of a signal cycle with the turns it protects
type SignalStage struct {
	ProtectedTurns []TurnID
	// DurationSec is how long the stage lasts within the cycle
	DurationSec float64
}

// TrafficSignal is the signal control record of an intersection
type TrafficSignal struct {
	IntersectionID IntersectionID
	Stages         []SignalStage
}

// cycleLength returns total duration of all stages
func (signal *TrafficSignal) cycleLength() float64 {
	total := 0.0
	for _, stage := range signal.Stages {
		total += stage.DurationSec
	}
	return total
}

// StageAt returns index of the stage active at given simulation time
func (signal *TrafficSignal) StageAt(now Time) int {
	cycle := signal.cycleLength()
	if cycle <= 0 || len(signal.Stages) == 0 {
		return 0
	}
	elapsed := float64(now) - float64(int(float64(now)/cycle))*cycle
	for idx, stage := range signal.Stages {
		if elapsed < stage.DurationSec {
			return idx
		}
		elapsed -= stage.DurationSec
	}
	return len(signal.Stages) - 1
}
