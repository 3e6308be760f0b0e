package net2draw

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func lineAsString(l orb.LineString) string {
	agg := []string{}
	for _, pt := range l {
		agg = append(agg, fmt.Sprintf("[%f, %f]", pt.X(), pt.Y()))
	}
	return "[" + strings.Join(agg, ",") + "]"
}

func TestOffsetCurve(t *testing.T) {
	line := orb.LineString{{10.0, 10.0}, {15.0, 10.0}, {18.0, 15.0}, {18.0, 20.0}, {15.0, 24.0}, {12.0, 24.0}, {10.0, 18.0}, {10.0, 15.0}, {13.0, 12.0}, {15.0, 16.0}}
	distance := 1.0

	left, ok := offsetCurve(line, distance)
	if !ok {
		t.Fatal("Left offset should not be degenerate")
	}
	right, ok := offsetCurve(line, -distance)
	if !ok {
		t.Fatal("Right offset should not be degenerate")
	}

	leftL := lineAsString(left)
	rightL := lineAsString(right)

	correctLeft := "[[10.000000, 11.000000],[14.433810, 11.000000],[17.000000, 15.276984],[17.000000, 19.666667],[14.500000, 23.000000],[12.720759, 23.000000],[11.000000, 17.837722],[11.000000, 15.414214],[12.726049, 13.688165],[14.105573, 16.447214]]"
	if leftL != correctLeft {
		t.Errorf("Left offset line should be '%s' but got '%s'", correctLeft, leftL)
	}
	correctRight := "[[10.000000, 9.000000],[15.566190, 9.000000],[19.000000, 14.723016],[19.000000, 20.333333],[15.500000, 25.000000],[11.279241, 25.000000],[9.000000, 18.162278],[9.000000, 14.585786],[13.273951, 10.311835],[15.894427, 15.552786]]"
	if rightL != correctRight {
		t.Errorf("Right offset line should be '%s' but got '%s'", correctRight, rightL)
	}
}

func TestOffsetCurveDegenerate(t *testing.T) {
	if _, ok := offsetCurve(orb.LineString{{1.0, 1.0}}, 1.0); ok {
		t.Error("Single point line should be degenerate")
	}
	// All points collapse within epsilon
	if _, ok := offsetCurve(orb.LineString{{1.0, 1.0}, {1.0, 1.005}, {1.002, 1.0}}, 1.0); ok {
		t.Error("Collapsed line should be degenerate")
	}
}

func TestExactSlice(t *testing.T) {
	line := orb.LineString{{0.0, 0.0}, {10.0, 0.0}, {10.0, 5.0}}

	got, ok := exactSlice(line, 2.0, 12.0)
	if !ok {
		t.Fatal("Slice should succeed")
	}
	correct := "[[2.000000, 0.000000],[10.000000, 0.000000],[10.000000, 2.000000]]"
	if lineAsString(got) != correct {
		t.Errorf("Slice should be '%s', but got '%s'", correct, lineAsString(got))
	}

	if _, ok := exactSlice(line, 5.0, 5.0); ok {
		t.Error("Empty range should be degenerate")
	}
	if _, ok := exactSlice(line, 20.0, 25.0); ok {
		t.Error("Range past the end should be degenerate")
	}

	// End clamps to line length
	got, ok = exactSlice(line, 12.0, 100.0)
	if !ok {
		t.Fatal("Clamped slice should succeed")
	}
	correct = "[[10.000000, 2.000000],[10.000000, 5.000000]]"
	if lineAsString(got) != correct {
		t.Errorf("Clamped slice should be '%s', but got '%s'", correct, lineAsString(got))
	}
}

func TestDistAlongLine(t *testing.T) {
	line := orb.LineString{{0.0, 0.0}, {10.0, 0.0}, {10.0, 5.0}}
	pt, ok := distAlongLine(line, 12.0)
	if !ok {
		t.Fatal("Distance within line should succeed")
	}
	if pt != (orb.Point{10.0, 2.0}) {
		t.Errorf("Point should be [10, 2], but got %v", pt)
	}
	if _, ok := distAlongLine(line, 100.0); ok {
		t.Error("Distance past the end should fail")
	}
}

func TestProjectAway(t *testing.T) {
	pt := projectAway(orb.Point{1.0, 1.0}, 2.0, math.Pi/2.0)
	if math.Abs(pt.X()-1.0) > 1e-9 || math.Abs(pt.Y()-3.0) > 1e-9 {
		t.Errorf("Point should be [1, 3], but got %v", pt)
	}
}

func TestOppositeAngle(t *testing.T) {
	if math.Abs(oppositeAngle(0.0)-math.Pi) > 1e-9 {
		t.Errorf("Opposite of 0 should be Pi, but got %f", oppositeAngle(0.0))
	}
	if math.Abs(oppositeAngle(math.Pi/2.0)+math.Pi/2.0) > 1e-9 {
		t.Errorf("Opposite of Pi/2 should be -Pi/2, but got %f", oppositeAngle(math.Pi/2.0))
	}
}

func TestPerpLine(t *testing.T) {
	s := segment{a: orb.Point{0.0, 0.0}, b: orb.Point{5.0, 0.0}}
	p := perpLine(s, 2.0)
	if math.Abs(p.a.Y()+1.0) > 1e-9 || math.Abs(p.b.Y()-1.0) > 1e-9 {
		t.Errorf("Perpendicular should span [0,-1]..[0,1], but got %v..%v", p.a, p.b)
	}
	if math.Abs(p.length()-2.0) > 1e-9 {
		t.Errorf("Perpendicular length should be 2, but got %f", p.length())
	}
}

func TestSegmentShift(t *testing.T) {
	s := segment{a: orb.Point{0.0, 0.0}, b: orb.Point{10.0, 0.0}}
	left := s.shiftLeft(2.0)
	if left.a != (orb.Point{0.0, 2.0}) || left.b != (orb.Point{10.0, 2.0}) {
		t.Errorf("Left shift of eastbound segment should go north, but got %v..%v", left.a, left.b)
	}
	right := s.shiftRight(2.0)
	if right.a != (orb.Point{0.0, -2.0}) || right.b != (orb.Point{10.0, -2.0}) {
		t.Errorf("Right shift of eastbound segment should go south, but got %v..%v", right.a, right.b)
	}
}
