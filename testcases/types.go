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

// Package testcases holds named arrow scenes used by the tests, the
// reference image generator and the arrowdraw command.
package testcases

import (
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/arrow"
	"seehuhn.de/go/arrow/canvas"
)

// TestCase defines a single arrow scene.
type TestCase struct {
	Name       string    // lowercase a-z, 0-9 and _ only
	Points     []float64 // flat vertex list x0, y0, x1, y1, ...
	Radius     float64   // corner radius
	Start, End float64   // visible range as fractions of the path length
	ArrowSize  float64
	StartArrow bool
	EndArrow   bool
	Stroke     canvas.Style
	Width      int // canvas width in pixels
	Height     int // canvas height in pixels
}

// Arrow returns a new arrow configured from the test case.  The stroke
// width of the arrow follows the stroke style.
func (tc *TestCase) Arrow() *arrow.Arrow {
	a := arrow.New()
	a.SetPoints(tc.Points)
	a.SetRadius(tc.Radius)
	a.SetStart(tc.Start)
	a.SetEnd(tc.End)
	a.SetArrowSize(tc.ArrowSize)
	a.SetStartArrow(tc.StartArrow)
	a.SetEndArrow(tc.EndArrow)
	a.SetStrokeWidth(tc.Stroke.Width)
	return a
}

// solid returns a solid stroke style with round joins.
func solid(width float64) canvas.Style {
	return canvas.Style{
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinRound,
		MiterLimit: 10,
	}
}

// dashed returns a dashed stroke style with butt caps.
func dashed(width float64, dash ...float64) canvas.Style {
	st := solid(width)
	st.Dash = dash
	return st
}

// rounded returns a solid stroke style with round caps.
func rounded(width float64) canvas.Style {
	st := solid(width)
	st.Cap = graphics.LineCapRound
	return st
}
