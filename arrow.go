// seehuhn.de/go/arrow - rounded polyline arrows with partial rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package arrow draws polylines with rounded corners, optionally only a
// part of them, with arrowheads at the ends of the visible part.
//
// The geometry is built once by [Build] and can then be rendered for
// any sub-range of its arc length by [Path.Render].  The [Arrow] type
// bundles the inputs of both steps and caches the path between calls.
package arrow

import (
	"fmt"
	"slices"
)

// Arrow is a rounded polyline shape.  The path geometry is rebuilt
// lazily, and only after the points or the radius have changed.
//
// The zero value is an arrow without points whose visible range is
// empty.  Use [New] to get the usual defaults.
//
// An Arrow is not safe for concurrent use.  Callers must not paint or
// modify the same Arrow from more than one goroutine at a time.
type Arrow struct {
	points      []float64
	radius      float64
	start, end  float64
	arrowSize   float64
	strokeWidth float64
	startArrow  bool
	endArrow    bool

	path         *Path
	needsRebuild bool
}

// New returns an arrow without points.  The visible range is the whole
// path, and an arrowhead of size 10 is drawn at the end.
func New() *Arrow {
	return &Arrow{
		end:          1,
		arrowSize:    10,
		strokeWidth:  2,
		endArrow:     true,
		needsRebuild: true,
	}
}

// Points returns the vertex coordinates as a flat list x0, y0, x1, y1, ...
func (a *Arrow) Points() []float64 {
	return slices.Clone(a.points)
}

// SetPoints sets the vertex coordinates, given as a flat list
// x0, y0, x1, y1, ...  The list is validated when the arrow is next
// painted.
func (a *Arrow) SetPoints(points []float64) {
	a.points = slices.Clone(points)
	a.needsRebuild = true
}

// Radius returns the corner radius.
func (a *Arrow) Radius() float64 {
	return a.radius
}

// SetRadius sets the corner radius.
func (a *Arrow) SetRadius(r float64) {
	a.radius = r
	a.needsRebuild = true
}

// Start returns the start of the visible range, as a fraction of the
// path length.
func (a *Arrow) Start() float64 { return a.start }

// SetStart sets the start of the visible range.
func (a *Arrow) SetStart(f float64) { a.start = f }

// End returns the end of the visible range, as a fraction of the path
// length.
func (a *Arrow) End() float64 { return a.end }

// SetEnd sets the end of the visible range.
func (a *Arrow) SetEnd(f float64) { a.end = f }

// ArrowSize returns the length of a full-size arrowhead.
func (a *Arrow) ArrowSize() float64 { return a.arrowSize }

// SetArrowSize sets the length of a full-size arrowhead.
func (a *Arrow) SetArrowSize(size float64) { a.arrowSize = size }

// StrokeWidth returns the line width the arrowheads are fitted to.
func (a *Arrow) StrokeWidth() float64 { return a.strokeWidth }

// SetStrokeWidth sets the line width the arrowheads are fitted to.  This
// should match the line width of the surface.
func (a *Arrow) SetStrokeWidth(w float64) { a.strokeWidth = w }

// StartArrow reports whether an arrowhead is drawn at the start.
func (a *Arrow) StartArrow() bool { return a.startArrow }

// SetStartArrow enables or disables the arrowhead at the start.
func (a *Arrow) SetStartArrow(enabled bool) { a.startArrow = enabled }

// EndArrow reports whether an arrowhead is drawn at the end.
func (a *Arrow) EndArrow() bool { return a.endArrow }

// SetEndArrow enables or disables the arrowhead at the end.
func (a *Arrow) SetEndArrow(enabled bool) { a.endArrow = enabled }

// Path returns the rounded path through the arrow's points, rebuilding
// it if the points or the radius have changed.
//
// The returned path is owned by the arrow and is reused by later calls.
// Callers must not modify it.
func (a *Arrow) Path() (*Path, error) {
	if !a.needsRebuild && a.path != nil {
		return a.path, nil
	}

	p, err := BuildFlat(a.points, a.radius)
	if err != nil {
		a.path = nil
		return nil, fmt.Errorf("arrow: %w", err)
	}
	a.path = p
	a.needsRebuild = false

	Logger().Debug("arrow path rebuilt",
		"segments", len(p.Segments),
		"length", p.Length)
	return p, nil
}

// Paint draws the visible part of the arrow onto s.  If the points or the
// radius are invalid, nothing is drawn and the error is returned.
func (a *Arrow) Paint(s Surface) (Trace, error) {
	p, err := a.Path()
	if err != nil {
		Logger().Debug("arrow not painted", "err", err)
		return Trace{}, err
	}
	return p.Render(s, RenderOptions{
		Start:       a.start,
		End:         a.end,
		ArrowSize:   a.arrowSize,
		StrokeWidth: a.strokeWidth,
		StartArrow:  a.startArrow,
		EndArrow:    a.endArrow,
	}), nil
}

// Width returns the horizontal extent of the arrow's points.
func (a *Arrow) Width() float64 {
	lo, hi := a.extent(0)
	return hi - lo
}

// Height returns the vertical extent of the arrow's points.
func (a *Arrow) Height() float64 {
	lo, hi := a.extent(1)
	return hi - lo
}

// extent returns the range of the x (axis 0) or y (axis 1) coordinates.
func (a *Arrow) extent(axis int) (lo, hi float64) {
	n := len(a.points) / 2
	if n == 0 {
		return 0, 0
	}
	lo, hi = a.points[axis], a.points[axis]
	for i := 1; i < n; i++ {
		v := a.points[2*i+axis]
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
