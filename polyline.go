package net2draw

import (
	"github.com/paulmach/orb"
)

// segment is a directed straight piece of a polyline
type segment struct {
	a orb.Point
	b orb.Point
}

func (s segment) length() float64 {
	return findDistance(s.a, s.b)
}

func (s segment) angle() float64 {
	return segmentAngle(s.a, s.b)
}

func (s segment) reverse() segment {
	return segment{a: s.b, b: s.a}
}

// shiftEitherDirection shifts segment perpendicularly by given distance.
// Positive distance shifts to the left side, negative to the right one.
//
// Note: result is garbage for a zero-length segment; lanes and road center
// lines are expected to carry non-degenerate segments
//
func (s segment) shiftEitherDirection(distance float64) segment {
	length := s.length()
	if length == 0 {
		return s
	}
	dx := (s.b.X() - s.a.X()) / length
	dy := (s.b.Y() - s.a.Y()) / length
	// Left normal is the direction vector rotated by 90 degrees
	offset := orb.Point{-dy * distance, dx * distance}
	return segment{
		a: orb.Point{s.a.X() + offset.X(), s.a.Y() + offset.Y()},
		b: orb.Point{s.b.X() + offset.X(), s.b.Y() + offset.Y()},
	}
}

func (s segment) shiftLeft(distance float64) segment {
	return s.shiftEitherDirection(distance)
}

func (s segment) shiftRight(distance float64) segment {
	return s.shiftEitherDirection(-distance)
}

// unboundedDistAlong returns the point at given distance from segment start
// along its heading. Negative distances go behind the start, distances past
// the end keep going along the same heading.
func (s segment) unboundedDistAlong(distance float64) orb.Point {
	return projectAway(s.a, distance, s.angle())
}

// distAlong returns the point at given distance from segment start, declining
// when the distance does not fall within the segment
func (s segment) distAlong(distance float64) (orb.Point, bool) {
	if distance < 0 || distance > s.length() {
		return orb.Point{}, false
	}
	return s.unboundedDistAlong(distance), true
}

// perpLine returns a segment of given length centered on the start of s and
// perpendicular to it
func perpLine(s segment, length float64) segment {
	pt1 := s.shiftRight(length / 2.0).a
	pt2 := s.shiftLeft(length / 2.0).a
	return segment{a: pt1, b: pt2}
}

// firstSegment returns the leading segment of given line
//
// Note: panics if number of points in line is less than 2
//
func firstSegment(line orb.LineString) segment {
	return segment{a: line[0], b: line[1]}
}

// lastSegment returns the trailing segment of given line
//
// Note: panics if number of points in line is less than 2
//
func lastSegment(line orb.LineString) segment {
	return segment{a: line[len(line)-2], b: line[len(line)-1]}
}

// shiftLeft shifts whole line to its left side by given distance
func shiftLeft(line orb.LineString, distance float64) (orb.LineString, bool) {
	return offsetCurve(line, distance)
}

// shiftRight shifts whole line to its right side by given distance
func shiftRight(line orb.LineString, distance float64) (orb.LineString, bool) {
	return offsetCurve(line, -distance)
}

// exactSlice returns the part of the line between two arc-length marks.
// Returns false when the requested range is degenerate or outside the line.
func exactSlice(line orb.LineString, start, end float64) (orb.LineString, bool) {
	if end-start <= epsilonDist || start < 0 {
		return nil, false
	}
	total := lineLength(line)
	if total <= epsilonDist || start >= total {
		return nil, false
	}
	if end > total {
		end = total
	}

	var result orb.LineString
	walked := 0.0
	for i := 1; i < len(line); i++ {
		segLen := findDistance(line[i-1], line[i])
		if segLen == 0 {
			continue
		}
		segStart := walked
		segEnd := walked + segLen
		if segEnd > start && segStart < end {
			from := line[i-1]
			if segStart < start {
				from = pointOnSegment(line[i-1], line[i], start-segStart)
			}
			if len(result) == 0 {
				result = append(result, from)
			}
			if segEnd <= end {
				result = append(result, line[i])
			} else {
				result = append(result, pointOnSegment(line[i-1], line[i], end-segStart))
				break
			}
		}
		walked = segEnd
	}
	result = dedupeLine(result)
	if len(result) < 2 {
		return nil, false
	}
	return result, true
}

// distAlongLine returns the point at given arc-length distance from line start
func distAlongLine(line orb.LineString, distance float64) (orb.Point, bool) {
	if distance < 0 {
		return orb.Point{}, false
	}
	walked := 0.0
	for i := 1; i < len(line); i++ {
		segLen := findDistance(line[i-1], line[i])
		if walked+segLen >= distance && segLen > 0 {
			return pointOnSegment(line[i-1], line[i], distance-walked), true
		}
		walked += segLen
	}
	return orb.Point{}, false
}

// dashedLines chops the line into dashes of given length separated by gaps and
// thickens every dash into a polygon of given width
func dashedLines(line orb.LineString, width, dashLen, gapLen float64) []Polygon {
	var result []Polygon
	total := lineLength(line)
	if total <= dashLen {
		if poly, ok := thickenLine(line, width); ok {
			result = append(result, poly)
		}
		return result
	}
	for start := 0.0; start < total; start += dashLen + gapLen {
		end := start + dashLen
		if end > total {
			end = total
		}
		slice, ok := exactSlice(line, start, end)
		if !ok {
			break
		}
		if poly, ok := thickenLine(slice, width); ok {
			result = append(result, poly)
		}
	}
	return result
}
