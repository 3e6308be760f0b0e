package net2draw

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Polygon is a triangulated area: a point list plus triangle indices.
// Keeping the triangles around makes area queries cheap and lets the
// presentation layer feed the mesh straight to a rasterizer.
type Polygon struct {
	points  []orb.Point
	indices []int
}

// Points returns the boundary point loop the polygon was built from
func (p Polygon) Points() []orb.Point {
	return p.points
}

// Triangles returns triangle list as index triples into Points()
func (p Polygon) Triangles() []int {
	return p.indices
}

// Area returns total area of the triangulation
func (p Polygon) Area() float64 {
	area := 0.0
	for i := 0; i+2 < len(p.indices); i += 3 {
		a := p.points[p.indices[i]]
		b := p.points[p.indices[i+1]]
		c := p.points[p.indices[i+2]]
		area += math.Abs(crossProduct(a, b, c)) / 2.0
	}
	return area
}

// Center returns the average of the boundary points
func (p Polygon) Center() orb.Point {
	var x, y float64
	for _, pt := range p.points {
		x += pt.X()
		y += pt.Y()
	}
	n := float64(len(p.points))
	return orb.Point{x / n, y / n}
}

// Ring returns the closed boundary loop, suitable for GeoJSON export
func (p Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(p.points)+1)
	ring = append(ring, p.points...)
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}

// newTriangulatedPolygon builds a polygon from an ordered point loop via ear
// clipping. The loop does not have to be a simple ring: self-touching loops
// (as produced by the equal-width corner construction) are triangulated with
// a fan fallback instead of being rejected.
func newTriangulatedPolygon(pts []orb.Point) (Polygon, bool) {
	pts = dropClosingPoint(pts)
	if len(pts) < 3 {
		return Polygon{}, false
	}

	remaining := make([]int, len(pts))
	for i := range remaining {
		remaining[i] = i
	}
	orientation := loopOrientation(pts)

	var indices []int
	for len(remaining) > 3 {
		earFound := false
		for k := 0; k < len(remaining); k++ {
			prev := remaining[(k-1+len(remaining))%len(remaining)]
			curr := remaining[k]
			next := remaining[(k+1)%len(remaining)]
			if !isEar(pts, remaining, prev, curr, next, orientation) {
				continue
			}
			indices = append(indices, prev, curr, next)
			remaining = append(remaining[:k], remaining[k+1:]...)
			earFound = true
			break
		}
		if !earFound {
			// Degenerate or self-touching leftover, fan it out
			for k := 1; k+1 < len(remaining); k++ {
				indices = append(indices, remaining[0], remaining[k], remaining[k+1])
			}
			remaining = remaining[:0]
			break
		}
	}
	if len(remaining) == 3 {
		indices = append(indices, remaining[0], remaining[1], remaining[2])
	}
	return Polygon{points: pts, indices: indices}, true
}

// newRingPolygon builds a polygon from a point loop which must be a simple
// ring: closed, at least three distinct points, no self-intersections
func newRingPolygon(pts []orb.Point) (Polygon, error) {
	if len(pts) < 4 {
		return Polygon{}, errors.New("Ring must have at least three points and a closing one")
	}
	if findDistance(pts[0], pts[len(pts)-1]) > epsilonDist {
		return Polygon{}, errors.New("Ring is not closed")
	}
	loop := dropClosingPoint(pts)
	for i := 0; i < len(loop); i++ {
		a1 := loop[i]
		a2 := loop[(i+1)%len(loop)]
		for j := i + 1; j < len(loop); j++ {
			b1 := loop[j]
			b2 := loop[(j+1)%len(loop)]
			if segmentsCross(a1, a2, b1, b2) {
				return Polygon{}, errors.Errorf("Ring segments %d and %d intersect", i, j)
			}
		}
	}
	poly, ok := newTriangulatedPolygon(loop)
	if !ok {
		return Polygon{}, errors.New("Ring is degenerate")
	}
	return poly, nil
}

// thickenLine converts the line into a polygon of given total width.
// Returns false for degenerate lines or widths.
func thickenLine(line orb.LineString, width float64) (Polygon, bool) {
	if width <= epsilonDist {
		return Polygon{}, false
	}
	left, okLeft := shiftLeft(line, width/2.0)
	right, okRight := shiftRight(line, width/2.0)
	if !okLeft || !okRight {
		return Polygon{}, false
	}
	loop := make([]orb.Point, 0, len(left)+len(right))
	loop = append(loop, left...)
	loop = append(loop, reversedLine(right)...)
	return newTriangulatedPolygon(loop)
}

// makeArrow converts the line into an arrow-shaped polygon of given total
// width with a triangular cap at the end of the line
func makeArrow(line orb.LineString, width float64) (Polygon, bool) {
	if width <= epsilonDist {
		return Polygon{}, false
	}
	total := lineLength(line)
	if total <= epsilonDist {
		return Polygon{}, false
	}
	headLen := 2.0 * width
	if headLen > total/2.0 {
		headLen = total / 2.0
	}

	tip := line[len(line)-1]
	base, ok := distAlongLine(line, total-headLen)
	if !ok {
		return Polygon{}, false
	}
	baseSeg := segment{a: base, b: tip}
	leftCorner := baseSeg.shiftLeft(width).a
	rightCorner := baseSeg.shiftRight(width).a

	var poly Polygon
	if body, ok := exactSlice(line, 0, total-headLen); ok {
		if poly, ok = thickenLine(body, width); !ok {
			return Polygon{}, false
		}
	}
	// Too short for a body means the whole arrow is just the head

	idx := len(poly.points)
	poly.points = append(poly.points, leftCorner, rightCorner, tip)
	poly.indices = append(poly.indices, idx, idx+1, idx+2)
	return poly, true
}

// makeOctagon returns a regular eight-sided polygon of given radius around
// center, rotated so one edge faces the given heading (radians)
func makeOctagon(center orb.Point, radius, facing float64) Polygon {
	pts := make([]orb.Point, 0, 8)
	for i := 0; i < 8; i++ {
		angle := facing + (22.5+float64(i)*45.0)*math.Pi/180.0
		pts = append(pts, projectAway(center, radius, angle))
	}
	poly, _ := newTriangulatedPolygon(pts)
	return poly
}

// dropClosingPoint removes the duplicated closing point of a loop, if any
func dropClosingPoint(pts []orb.Point) []orb.Point {
	if len(pts) > 1 && findDistance(pts[0], pts[len(pts)-1]) <= epsilonDist {
		return pts[:len(pts)-1]
	}
	return pts
}

// loopOrientation returns +1 for counter-clockwise loops, -1 for clockwise
func loopOrientation(pts []orb.Point) float64 {
	area := 0.0
	for i := 0; i < len(pts); i++ {
		j := (i + 1) % len(pts)
		area += pts[i].X()*pts[j].Y() - pts[j].X()*pts[i].Y()
	}
	if area < 0 {
		return -1.0
	}
	return 1.0
}

// isEar reports whether curr is a clippable ear of the remaining loop
func isEar(pts []orb.Point, remaining []int, prev, curr, next int, orientation float64) bool {
	if crossProduct(pts[prev], pts[curr], pts[next])*orientation <= 0 {
		return false
	}
	for _, idx := range remaining {
		if idx == prev || idx == curr || idx == next {
			continue
		}
		if pointInTriangle(pts[idx], pts[prev], pts[curr], pts[next]) {
			return false
		}
	}
	return true
}

func pointInTriangle(p, a, b, c orb.Point) bool {
	d1 := crossProduct(a, b, p)
	d2 := crossProduct(b, c, p)
	d3 := crossProduct(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
