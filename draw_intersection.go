package net2draw

const (
	constructionMarkerRadius = 2.0
	signalTurnThickness      = 1.0
)

// DrawIntersection owns the lazily computed drawable geometry of one
// intersection. The slot starts empty, fills on first request and is reused
// until ClearRendering. Intersections with a traffic signal own a second
// slot keyed by simulation time.
//
// The slot has a single owner; callers must serialize edits against
// rendering for the same intersection.
type DrawIntersection struct {
	ID IntersectionID

	drawDefault *GeomBatch

	signalTime Time
	drawSignal *GeomBatch
}

func NewDrawIntersection(i *Intersection) *DrawIntersection {
	return &DrawIntersection{ID: i.ID}
}

// Draw returns the cached batch, synthesizing it on first access
func (d *DrawIntersection) Draw(renderer *Renderer) *GeomBatch {
	if d.drawDefault == nil {
		d.drawDefault = renderer.RenderIntersection(renderer.net.Intersection(d.ID))
	}
	return d.drawDefault
}

// DrawSignal returns the signal overlay for given simulation time,
// recomputing only when the time differs from the cached key. Reports false
// when the intersection has no traffic signal.
func (d *DrawIntersection) DrawSignal(renderer *Renderer, now Time) (*GeomBatch, bool) {
	signal, ok := renderer.net.TrafficSignal(d.ID)
	if !ok {
		return nil, false
	}
	if d.drawSignal == nil || d.signalTime != now {
		d.drawSignal = renderer.renderSignalStage(signal, signal.StageAt(now))
		d.signalTime = now
	}
	return d.drawSignal, true
}

// ClearRendering forcibly empties the slot, invoked after a map edit
func (d *DrawIntersection) ClearRendering() {
	d.drawDefault = nil
	d.drawSignal = nil
}

// RenderIntersection synthesizes the full drawable batch of an intersection:
// surface, sidewalk corners, optional curbs, crosswalks and the extras of its
// kind. Pure except for the render call counter.
func (renderer *Renderer) RenderIntersection(i *Intersection) *GeomBatch {
	renderer.intersectionRenders++
	net := renderer.net
	side := net.Config().DrivingSide

	// Order matters: main polygon first, then sidewalk corners
	batch := NewGeomBatch()
	surface := renderer.cs.IntersectionSurface(i.Rank)
	if i.IsFootway {
		surface = renderer.cs.RoadSurface(LANE_SIDEWALK, i.Rank)
	}
	if poly, ok := newTriangulatedPolygon(i.Polygon); ok {
		batch.Push(surface, poly)
	}
	batch.Extend(renderer.cs.RoadSurface(LANE_SIDEWALK, i.Rank), CalculateCorners(net, i))
	if renderer.drawCurbs {
		batch.Extend(renderer.cs.Curb(i.Rank), CalculateCornerCurbs(net, i, side))
	}

	for _, turn := range net.TurnsIn(i.ID) {
		// Avoid double-rendering the shared stripe
		if turn.TurnType == TURN_CROSSWALK && turn.isCrosswalkOwner() {
			renderer.Crosswalk(batch, turn)
		}
	}

	if i.IsPrivate {
		if poly, ok := newTriangulatedPolygon(i.Polygon); ok {
			batch.Push(renderer.cs.PrivateRoad().WithAlpha(0.5), poly)
		}
	}

	switch i.Kind {
	case INTERSECTION_BORDER:
		if len(i.Roads) > 0 {
			road := net.Road(i.Roads[0])
			batch.Extend(renderer.cs.RoadCenterLine(road.Rank), calculateBorderArrows(net, i, road, side))
		}
	case INTERSECTION_STOP_SIGN:
		if control, ok := net.StopSign(i.ID); ok {
			for _, ss := range control.Roads {
				if !ss.MustStop {
					continue
				}
				if octagon, pole, _, ok := StopSignGeom(net, ss, side); ok {
					batch.Push(renderer.cs.StopSign(), octagon)
					batch.Push(renderer.cs.StopSignPole(), pole)
				}
			}
		}
	case INTERSECTION_CONSTRUCTION:
		if poly, ok := newTriangulatedPolygon(i.Polygon); ok {
			batch.Push(renderer.cs.ConstructionMarker(), makeOctagon(poly.Center(), constructionMarkerRadius, 0))
		}
	case INTERSECTION_TRAFFIC_SIGNAL:
	}

	// Underpasses draw translucent
	if i.Rank < 0 {
		batch.ScaleAlpha(0.5)
	}

	return batch
}

// renderSignalStage synthesizes the dynamic overlay of one signal stage:
// an arrow per protected turn
func (renderer *Renderer) renderSignalStage(signal *TrafficSignal, stageIdx int) *GeomBatch {
	renderer.signalRenders++
	batch := NewGeomBatch()
	if stageIdx < 0 || stageIdx >= len(signal.Stages) {
		return batch
	}
	for _, turnID := range signal.Stages[stageIdx].ProtectedTurns {
		turn := renderer.net.Turn(turnID)
		if arrow, ok := makeArrow(turn.Geom, signalTurnThickness); ok {
			batch.Push(renderer.cs.SignalProtectedTurn(), arrow)
		}
	}
	return batch
}
