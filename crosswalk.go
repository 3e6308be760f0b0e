package net2draw

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

const (
	// sidewalkThickness is the standard sidewalk lane width unit, it also
	// sets the crosswalk boundary margin and tile spacing
	sidewalkThickness      = 1.5
	crosswalkLineThickness = 0.15
)

// nodeWayKey identifies a crossing by its origin OSM node and way
type nodeWayKey struct {
	node osm.NodeID
	way  osm.WayID
}

// Crosswalks at these OSM locations render an eight-band rainbow pattern
// instead of standard stripes. They are not tagged in OSM, so the list is
// hardcoded.
var rainbowCrosswalks = map[nodeWayKey]struct{}{
	// Broadway and Pine
	{53073255, 428246441}: {},
	{53073255, 332601014}: {},
	// Broadway and Pike
	{53073254, 6447455}:   {},
	{53073254, 607690679}: {},
	// 10th and Pine
	{53168934, 6456052}: {},
	// 10th and Pike
	{53200834, 6456052}: {},
	// 11th and Pine
	{53068795, 607691081}: {},
	{53068795, 65588105}:  {},
	// 11th and Pike
	{53068794, 65588105}: {},
}

var rainbowPalette = []Color{
	HexColor("#FFFFFF"),
	HexColor("#FF0000"),
	HexColor("#FFA500"),
	HexColor("#FFFF00"),
	HexColor("#008000"),
	HexColor("#0000FF"),
	HexColor("#8B00FF"),
	HexColor("#FFFFFF"),
}

// Crosswalk appends the marking polygons of one pedestrian crossing to the
// batch. Malformed crossing geometry is expected upstream and only logged.
func (renderer *Renderer) Crosswalk(batch *GeomBatch, turn *Turn) {
	if renderer.makeRainbowCrosswalk(batch, turn) {
		return
	}

	// This size also looks better for shoulders
	width := sidewalkThickness
	// Start at least width out to not hit sidewalk corners. Center the
	// stripes inside the two boundaries.
	boundary := width
	tileEvery := width * 0.6

	// The middle line in the crosswalk geometry is the main crossing line
	pts := turn.Geom
	if len(pts) < 3 {
		renderer.logger.Debug("not rendering crosswalk, its geometry was squished earlier", "turn", turn.ID)
		return
	}
	line := segment{a: pts[1], b: pts[2]}
	if line.length() <= epsilonDist {
		return
	}

	availableLength := line.length() - boundary*2.0
	if availableLength <= 0 {
		return
	}
	numMarkings := int(availableLength / tileEvery)
	if numMarkings == 0 {
		return
	}
	// Center the leftover remainder symmetrically around the midpoint
	distAlong := boundary + (availableLength-tileEvery*float64(numMarkings-1))/2.0
	color := renderer.cs.GeneralRoadMarking(renderer.net.Intersection(turn.ID.Parent).Rank)

	for k := 0; k < numMarkings; k++ {
		pt1, ok := line.distAlong(distAlong)
		if !ok {
			renderer.logger.Debug("crosswalk stripe fell off the crossing line", "turn", turn.ID)
			break
		}
		// Reuse perpLine, project away an arbitrary amount
		pt2 := projectAway(pt1, 1.0, line.angle())
		stripe := perpLine(segment{a: pt1, b: pt2}, width)
		if poly, ok := thickenLine(orb.LineString{stripe.a, stripe.b}, crosswalkLineThickness); ok {
			batch.Push(color, poly)
		}

		// Actually every line is a double
		pt3, ok := line.distAlong(distAlong + 2.0*crosswalkLineThickness)
		if ok {
			pt4 := projectAway(pt3, 1.0, line.angle())
			stripe = perpLine(segment{a: pt3, b: pt4}, width)
			if poly, ok := thickenLine(orb.LineString{stripe.a, stripe.b}, crosswalkLineThickness); ok {
				batch.Push(color, poly)
			}
		}

		distAlong += tileEvery
	}
}

// makeRainbowCrosswalk renders the special multi-band pattern when the
// crossing is on the allow-list. Reports whether the turn was consumed.
func (renderer *Renderer) makeRainbowCrosswalk(batch *GeomBatch, turn *Turn) bool {
	node := renderer.net.Intersection(turn.ID.Parent).OSMNodeID
	way := renderer.net.ParentRoad(turn.ID.Src).OSMWayID
	if _, ok := rainbowCrosswalks[nodeWayKey{node: node, way: way}]; !ok {
		return false
	}

	totalWidth := renderer.net.Lane(turn.ID.Src).Width
	bandWidth := totalWidth / float64(len(rainbowPalette))
	slice, ok := exactSlice(turn.Geom, totalWidth, lineLength(turn.Geom)-totalWidth)
	if !ok {
		renderer.logger.Debug("rainbow crosswalk geometry too short", "turn", turn.ID)
		return true
	}
	base, ok := shiftLeft(slice, totalWidth/2.0-bandWidth/2.0)
	if !ok {
		return true
	}
	for idx, color := range rainbowPalette {
		band, ok := shiftRight(base, bandWidth*float64(idx))
		if !ok {
			continue
		}
		if poly, ok := thickenLine(band, bandWidth); ok {
			batch.Push(color, poly)
		}
	}
	return true
}
