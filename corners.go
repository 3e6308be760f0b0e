package net2draw

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	curbThickness = 0.2
)

// CalculateCorners produces the rounded sidewalk corner polygons of an
// intersection: one polygon per SharedSidewalkCorner turn owned by this
// rendering pass. Degenerate corners are skipped silently.
func CalculateCorners(net *Network, i *Intersection) []Polygon {
	if i.IsFootway {
		return nil
	}

	var corners []Polygon

	for _, turn := range net.TurnsIn(i.ID) {
		if turn.TurnType != TURN_SHARED_SIDEWALK_CORNER {
			continue
		}
		// Avoid double-rendering: the corner belongs to the pass where the
		// source lane actually terminates
		if net.Lane(turn.ID.Src).TargetIntersection != i.ID {
			continue
		}
		l1 := net.Lane(turn.ID.Src)
		l2 := net.Lane(turn.ID.Dst)

		// Special case for dead-ends: just thicken the geometry
		if len(i.Roads) == 1 {
			if poly, ok := thickenLine(turn.Geom, math.Min(l1.Width, l2.Width)); ok {
				corners = append(corners, poly)
			}
			continue
		}

		if math.Abs(l1.Width-l2.Width) <= epsilonDist {
			// Two sidewalks or two shoulders meet: use the turn geometry to
			// create some nice rounding
			width := l1.Width
			left, okLeft := shiftLeft(turn.Geom, width/2.0)
			right, okRight := shiftRight(turn.Geom, width/2.0)
			if !okLeft || !okRight {
				continue
			}
			pts := make([]orb.Point, 0, len(left)+len(right)+5)
			pts = append(pts, left...)
			pts = append(pts, l2.firstSegment().shiftLeft(width/2.0).a)
			pts = append(pts, l2.firstSegment().shiftRight(width/2.0).a)
			pts = append(pts, reversedLine(right)...)
			pts = append(pts, l1.lastSegment().shiftRight(width/2.0).b)
			pts = append(pts, l1.lastSegment().shiftLeft(width/2.0).b)
			pts = append(pts, pts[0])
			// Many resulting loops are not valid rings, but they still
			// triangulate fine
			if poly, ok := newTriangulatedPolygon(pts); ok {
				corners = append(corners, poly)
			}
		} else {
			// A sidewalk and a shoulder meet: connect them with a simple quad
			pts := []orb.Point{
				l2.firstSegment().shiftLeft(l2.Width / 2.0).a,
				l2.firstSegment().shiftRight(l2.Width / 2.0).a,
				l1.lastSegment().shiftRight(l1.Width / 2.0).b,
				l1.lastSegment().shiftLeft(l1.Width / 2.0).b,
			}
			pts = append(pts, pts[0])
			if poly, err := newRingPolygon(pts); err == nil {
				corners = append(corners, poly)
			}
		}
	}

	return corners
}

// CalculateCornerCurbs produces curb line polygons joining adjacent sidewalk
// or shoulder lanes around each owned corner. Offsets flip with the driving
// side; each curb gets a short run-out of one curb thickness at both ends so
// it terminates flush.
func CalculateCornerCurbs(net *Network, i *Intersection, side DrivingSide) []Polygon {
	if i.IsFootway {
		return nil
	}

	var curbs []Polygon

	shift := func(width float64) float64 {
		return (width - curbThickness) / 2.0
	}

	for _, turn := range net.TurnsIn(i.ID) {
		if turn.TurnType != TURN_SHARED_SIDEWALK_CORNER {
			continue
		}
		// Avoid double-rendering
		if net.Lane(turn.ID.Src).TargetIntersection != i.ID {
			continue
		}
		l1 := net.Lane(turn.ID.Src)
		l2 := net.Lane(turn.ID.Dst)

		if math.Abs(l1.Width-l2.Width) <= epsilonDist {
			width := shift(l1.Width)
			if side == DRIVING_SIDE_RIGHT {
				width *= -1.0
			}

			shifted, ok := offsetCurve(turn.Geom, width)
			if !ok {
				continue
			}
			first := l2.firstSegment().shiftEitherDirection(width)
			last := l1.lastSegment().shiftEitherDirection(width).reverse()

			pts := make([]orb.Point, 0, len(shifted)+4)
			pts = append(pts, last.unboundedDistAlong(curbThickness), last.a)
			pts = append(pts, shifted...)
			pts = append(pts, first.a, first.unboundedDistAlong(curbThickness))

			pl := dedupeLine(pts)
			if len(pl) < 2 {
				continue
			}
			if poly, ok := thickenLine(pl, curbThickness); ok {
				curbs = append(curbs, poly)
			}
		} else {
			direction := 1.0
			if side == DRIVING_SIDE_RIGHT {
				direction = -1.0
			}
			last := l1.lastSegment().shiftEitherDirection(direction * shift(l1.Width))
			first := l2.firstSegment().shiftEitherDirection(direction * shift(l2.Width))

			pl := dedupeLine(orb.LineString{
				last.reverse().unboundedDistAlong(curbThickness),
				last.b,
				first.a,
				first.unboundedDistAlong(curbThickness),
			})
			if len(pl) < 2 {
				continue
			}
			if poly, ok := thickenLine(pl, curbThickness); ok {
				curbs = append(curbs, poly)
			}
		}
	}

	return curbs
}
