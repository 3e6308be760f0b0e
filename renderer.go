package net2draw

import (
	"io"

	"github.com/charmbracelet/log"
)

// Renderer computes derived geometry for a network with a fixed color
// scheme. All of its geometry methods are pure; the only mutable state are
// diagnostic call counters used by cache instrumentation.
type Renderer struct {
	net    *Network
	cs     ColorScheme
	logger *log.Logger

	drawCurbs bool

	// Call counters let callers verify cache hits without comparing output
	intersectionRenders int
	roadRenders         int
	signalRenders       int
}

func NewRenderer(net *Network, cs ColorScheme, options ...func(*Renderer)) *Renderer {
	renderer := &Renderer{
		net:       net,
		cs:        cs,
		logger:    log.New(io.Discard),
		drawCurbs: false,
	}
	for _, option := range options {
		option(renderer)
	}
	return renderer
}

// WithLogger routes diagnostics about skipped degenerate geometry to given
// logger
func WithLogger(logger *log.Logger) func(*Renderer) {
	return func(renderer *Renderer) {
		renderer.logger = logger
	}
}

// WithCurbs enables curb line rendering on sidewalk corners
func WithCurbs(drawCurbs bool) func(*Renderer) {
	return func(renderer *Renderer) {
		renderer.drawCurbs = drawCurbs
	}
}

// IntersectionRenders returns how many times a full intersection batch has
// been synthesized
func (renderer *Renderer) IntersectionRenders() int {
	return renderer.intersectionRenders
}

// RoadRenders returns how many times a full road batch has been synthesized
func (renderer *Renderer) RoadRenders() int {
	return renderer.roadRenders
}

// SignalRenders returns how many times a signal overlay has been synthesized
func (renderer *Renderer) SignalRenders() int {
	return renderer.signalRenders
}
