// Package layout computes the 2D geometry of a beam cross-section drawing.
//
// Generate is a pure function of a beam.Spec: it performs no I/O, keeps no
// state between calls and returns the same command sequence for the same
// input. Commands are emitted in a fixed order that sinks rely on for layer
// grouping and z-order:
//
//  1. concrete outline
//  2. main rebar (bottom rows, then top rows)
//  3. side rebar
//  4. stirrup and tie lines
//  5. annotation text
package layout

import (
	"github.com/alexiusacademia/rcbdxf/internal/beam"
	"github.com/alexiusacademia/rcbdxf/internal/draw"
)

// Generate lays out every primitive of the section. If s violates any
// precondition no commands are returned.
func Generate(s beam.Spec) ([]draw.Command, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	bars, err := MainRebarCoords(s)
	if err != nil {
		return nil, err
	}

	var cmds []draw.Command
	cmds = append(cmds, outline(s)...)
	cmds = append(cmds, rebarSymbols(s, bars)...)
	cmds = append(cmds, sideRebar(s)...)
	cmds = append(cmds, stirrup(s)...)
	cmds = append(cmds, annotations(s)...)
	return cmds, nil
}

// Outline returns the section corners counter-clockwise from the origin at
// the bottom-left: (0,0), (w,0), (w,h), (0,h).
func Outline(w, h float64) []draw.Point {
	return []draw.Point{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h},
		{X: 0, Y: h},
	}
}

func outline(s beam.Spec) []draw.Command {
	corners := Outline(s.Width, s.Height)
	layer := s.Layers.Concrete

	if s.Drafting.Outline == beam.OutlinePolyline {
		return []draw.Command{draw.Polyline{Points: corners, Closed: true, Layer: layer}}
	}

	cmds := make([]draw.Command, 0, len(corners))
	for i := range corners {
		cmds = append(cmds, draw.Line{
			P1:    corners[i],
			P2:    corners[(i+1)%len(corners)],
			Layer: layer,
		})
	}
	return cmds
}
