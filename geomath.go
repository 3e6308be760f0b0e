package net2draw

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	// epsilonDist is the tolerance (in meters) below which any length or width
	// is considered degenerate. Functions decline to produce geometry instead
	// of emitting self-intersecting or zero-area shapes.
	epsilonDist = 0.01
)

// findDistance returns Euclidean distance between two points (meters)
func findDistance(p, q orb.Point) float64 {
	xdistance := p.X() - q.X()
	ydistance := p.Y() - q.Y()
	return math.Sqrt(xdistance*xdistance + ydistance*ydistance)
}

// lineLength returns length for given line (meters)
func lineLength(line orb.LineString) float64 {
	totalLength := 0.0
	if len(line) < 2 {
		return totalLength
	}
	for i := 1; i < len(line); i++ {
		totalLength += findDistance(line[i-1], line[i])
	}
	return totalLength
}

// segmentAngle returns heading of the vector p->q in radians
func segmentAngle(p, q orb.Point) float64 {
	return math.Atan2(q.Y()-p.Y(), q.X()-p.X())
}

// oppositeAngle turns given heading by 180 degrees
func oppositeAngle(angle float64) float64 {
	angle += math.Pi
	if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// projectAway returns the point at given distance from pt along heading angle (radians)
func projectAway(pt orb.Point, distance, angle float64) orb.Point {
	return orb.Point{pt.X() + distance*math.Cos(angle), pt.Y() + distance*math.Sin(angle)}
}

// pointOnSegment returns a point on given segment using distance from p
func pointOnSegment(p, q orb.Point, distance float64) orb.Point {
	fraction := distance / findDistance(p, q)
	return orb.Point{
		(1-fraction)*p.X() + fraction*q.X(),
		(1-fraction)*p.Y() + fraction*q.Y(),
	}
}

// Check if two lines (defined by segments) intersect and returns intersection point
// p1, p2 - first segment
// p3, p4 - second segment
func intersectLines(p1, p2, p3, p4 orb.Point) (orb.Point, error) {
	// Calculate the coefficients of the linear equations
	a1 := p2[1] - p1[1]
	b1 := p1[0] - p2[0]
	c1 := a1*p1[0] + b1*p1[1]
	a2 := p4[1] - p3[1]
	b2 := p3[0] - p4[0]
	c2 := a2*p3[0] + b2*p3[1]

	// Calculate the determinant
	det := a1*b2 - a2*b1
	if det == 0 {
		return orb.Point{}, errors.New("The lines are parallel")
	}

	// Calculate the intersection point
	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det
	return orb.Point{x, y}, nil
}

// segmentsCross reports whether two segments properly intersect.
// Shared endpoints do not count as a crossing.
func segmentsCross(p1, p2, p3, p4 orb.Point) bool {
	d1 := crossProduct(p3, p4, p1)
	d2 := crossProduct(p3, p4, p2)
	d3 := crossProduct(p1, p2, p3)
	d4 := crossProduct(p1, p2, p4)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// crossProduct returns z-component of (b-a) x (c-a)
func crossProduct(a, b, c orb.Point) float64 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}

// offsetCurve shifts given line perpendicularly by given distance.
// Positive distance shifts to the left side, negative to the right one.
// Returns false when the line is degenerate (less than two distinct points).
func offsetCurve(line orb.LineString, distance float64) (orb.LineString, bool) {
	line = dedupeLine(line)
	if len(line) < 2 {
		return nil, false
	}

	// Initialize result list and segment list
	var result orb.LineString
	var segments [][2]orb.Point

	// Iterate over line segments and calculate offset segments
	for i := 1; i < len(line); i++ {
		// Get current and previous points
		p1 := line[i-1]
		p2 := line[i]

		// Calculate the vector between the points
		vec := [2]float64{p2[0] - p1[0], p2[1] - p1[1]}

		// Normalize the vector
		vecLen := math.Sqrt(vec[0]*vec[0] + vec[1]*vec[1])
		vec = [2]float64{vec[0] / vecLen, vec[1] / vecLen}

		// Rotate the vector by 90 degrees
		rotated := [2]float64{-vec[1], vec[0]}

		// Scale the rotated vector by the distance
		offset := [2]float64{rotated[0] * distance, rotated[1] * distance}

		// Calculate the offset points
		op1 := [2]float64{p1[0] + offset[0], p1[1] + offset[1]}
		op2 := [2]float64{p2[0] + offset[0], p2[1] + offset[1]}

		// Add the offset segment to the list of segments
		segments = append(segments, [2]orb.Point{op1, op2})
	}

	result = append(result, segments[0][0])
	// Iterate over the segments and calculate the intersections
	for i := 1; i < len(segments); i++ {
		// Get the current and previous segments
		seg1 := segments[i-1]
		seg2 := segments[i]
		// Calculate the intersection point
		intersection, err := intersectLines(seg1[0], seg1[1], seg2[0], seg2[1])
		if err != nil {
			continue
		}
		// If there is an intersection, add the intersection and the current segment to the result
		result = append(result, intersection)
	}
	result = append(result, segments[len(segments)-1][1])
	return result, true
}

// dedupeLine drops consecutive points closer than epsilonDist to each other. Returns new slice
func dedupeLine(line orb.LineString) orb.LineString {
	if len(line) == 0 {
		return nil
	}
	output := make(orb.LineString, 0, len(line))
	output = append(output, line[0])
	for i := 1; i < len(line); i++ {
		if findDistance(output[len(output)-1], line[i]) > epsilonDist {
			output = append(output, line[i])
		}
	}
	return output
}

// reversedLine reverses order of points in given line. Returns new slice
func reversedLine(line orb.LineString) orb.LineString {
	output := line.Clone()
	output.Reverse()
	return output
}
