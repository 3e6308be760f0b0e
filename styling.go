package net2draw

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with separate alpha, pure data for the presentation
// layer
type Color struct {
	colorful.Color
	Alpha float64
}

func RGB(r, g, b float64) Color {
	return Color{Color: colorful.Color{R: r, G: g, B: b}, Alpha: 1.0}
}

// HexColor parses colors like "#8B00FF". Invalid literals are a programming
// error, so it panics.
func HexColor(scol string) Color {
	c, err := colorful.Hex(scol)
	if err != nil {
		panic(err)
	}
	return Color{Color: c, Alpha: 1.0}
}

func (c Color) WithAlpha(alpha float64) Color {
	c.Alpha = alpha
	return c
}

// Lerp blends two colors in RGB space
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		Color: c.BlendRgb(other.Color, t),
		Alpha: c.Alpha + (other.Alpha-c.Alpha)*t,
	}
}

// ColorScheme is the styling collaborator: pure color lookups with no side
// effects. Missing entries are a contract violation of the implementation,
// not of this package.
type ColorScheme interface {
	RoadSurface(laneType LaneType, rank int) Color
	IntersectionSurface(rank int) Color
	Curb(rank int) Color
	RoadCenterLine(rank int) Color
	GeneralRoadMarking(rank int) Color
	StopSign() Color
	StopSignPole() Color
	PrivateRoad() Color
	SignalProtectedTurn() Color
	ConstructionMarker() Color
}

// DefaultColorScheme is a fixed palette good enough for tests and debugging
// dumps
type DefaultColorScheme struct{}

func (DefaultColorScheme) RoadSurface(laneType LaneType, rank int) Color {
	if laneType.IsWalkable() {
		return HexColor("#A9A9A9")
	}
	return HexColor("#404040")
}

func (DefaultColorScheme) IntersectionSurface(rank int) Color {
	return HexColor("#404040")
}

func (DefaultColorScheme) Curb(rank int) Color {
	return HexColor("#667177")
}

func (DefaultColorScheme) RoadCenterLine(rank int) Color {
	return HexColor("#FFFF00")
}

func (DefaultColorScheme) GeneralRoadMarking(rank int) Color {
	return HexColor("#FFFFFF")
}

func (DefaultColorScheme) StopSign() Color {
	return HexColor("#BB0000")
}

func (DefaultColorScheme) StopSignPole() Color {
	return HexColor("#808080")
}

func (DefaultColorScheme) PrivateRoad() Color {
	return HexColor("#7C45BE")
}

func (DefaultColorScheme) SignalProtectedTurn() Color {
	return HexColor("#72CE36")
}

func (DefaultColorScheme) ConstructionMarker() Color {
	return HexColor("#FF6600")
}
