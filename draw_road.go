package net2draw

const (
	centerLineWidth   = 0.25
	centerLineDashLen = 2.0
	centerLineGapLen  = 1.0
)

// DrawRoad owns the lazily computed drawable geometry of one road.
// Single-owner slot, same contract as DrawIntersection.
type DrawRoad struct {
	ID RoadID

	draw *GeomBatch
}

func NewDrawRoad(road *Road) *DrawRoad {
	return &DrawRoad{ID: road.ID}
}

// Draw returns the cached batch, synthesizing it on first access
func (d *DrawRoad) Draw(renderer *Renderer) *GeomBatch {
	if d.draw == nil {
		d.draw = renderer.RenderRoad(renderer.net.Road(d.ID))
	}
	return d.draw
}

// ClearRendering forcibly empties the slot, invoked after a map edit
func (d *DrawRoad) ClearRendering() {
	d.draw = nil
}

// RenderRoad synthesizes the drawable batch of a road: a dashed center line
// wherever two adjacent lanes for moving vehicles run in opposite directions.
// Private roads tint the line.
func (renderer *Renderer) RenderRoad(road *Road) *GeomBatch {
	renderer.roadRenders++
	net := renderer.net

	batch := NewGeomBatch()
	color := renderer.cs.RoadCenterLine(road.Rank)
	if road.IsPrivate {
		color = color.Lerp(renderer.cs.PrivateRoad(), 0.5)
	}

	width := 0.0
	for k := 0; k+1 < len(road.LanesLTR); k++ {
		rl1 := road.LanesLTR[k]
		rl2 := road.LanesLTR[k+1]
		width += net.Lane(rl1.LaneID).Width
		if rl1.Direction == rl2.Direction || !rl1.LaneType.IsForMovingVehicles() || !rl2.LaneType.IsForMovingVehicles() {
			continue
		}
		left, ok := road.leftSide(net)
		if !ok {
			continue
		}
		pl, ok := shiftRight(left, width)
		if !ok {
			continue
		}
		batch.Extend(color, dashedLines(pl, centerLineWidth, centerLineDashLen, centerLineGapLen))
	}

	if road.Rank < 0 {
		batch.ScaleAlpha(0.5)
	}
	return batch
}
