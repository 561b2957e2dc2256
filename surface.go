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

package arrow

// Surface is the drawing surface an arrow is painted on.  The methods
// follow the HTML canvas path model: angles are in radians, measured
// from the positive x-axis towards the positive y-axis of a y-down
// coordinate system, so that increasing angles run clockwise on screen.
//
// Arc adds a circular arc around (cx, cy) from angle a0 to angle a1.  If
// the current subpath is not empty, a straight line is added from the
// current point to the start of the arc.  When counterClockwise is false
// the arc runs through increasing angles, otherwise through decreasing
// angles.
//
// SetDashOffset sets the phase of the dash pattern used by the next call
// to Stroke.  The dash pattern itself is a property of the surface.
type Surface interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(cx, cy, r, a0, a1 float64, counterClockwise bool)
	ClosePath()
	SetDashOffset(offset float64)
	Stroke()
	Fill()
}
