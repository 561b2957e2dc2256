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

// Package raster paints the paths collected by a canvas into an image.
//
// Paths are flattened to polygons in user space, stroke outlines are
// built from the flattened segments, and the resulting polygons are
// transformed to device space and accumulated by an anti-aliasing
// rasterizer from golang.org/x/image/vector.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/arrow/canvas"
)

// Painter draws strokes and fills into an image.  It implements
// [canvas.Painter].  Internal buffers are reused between calls.
//
// A Painter is not safe for concurrent use.
type Painter struct {
	// CTM transforms from user space to device space, where one unit
	// is one pixel of the destination image.  Must be non-singular.
	CTM matrix.Matrix

	// Flatness controls the accuracy of curve approximations, in device
	// pixels.  Must be positive.
	Flatness float64

	StrokeColor color.Color
	FillColor   color.Color

	dst   draw.Image
	vr    *vector.Rasterizer
	nPoly int

	// flattened subpaths
	pts    []vec.Vec2
	starts []int
	closed []bool

	segs []strokeSegment
	dash dasher
	poly []vec.Vec2
}

var _ canvas.Painter = (*Painter)(nil)

// NewPainter returns a painter which draws onto dst in black, with
// identity CTM.
func NewPainter(dst draw.Image) *Painter {
	b := dst.Bounds()
	return &Painter{
		CTM:         matrix.Identity,
		Flatness:    defaultFlatness,
		StrokeColor: color.Black,
		FillColor:   color.Black,
		dst:         dst,
		vr:          vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// FillPath fills p using the nonzero winding rule.  All subpaths are
// closed implicitly.
func (r *Painter) FillPath(p *path.Data) {
	r.begin()
	r.flatten(p)
	for i := range r.starts {
		pts := r.subpath(i)
		if len(pts) < 3 {
			continue
		}
		r.addPolygon(pts, false)
	}
	r.draw(r.FillColor)
}

// StrokePath strokes p using the given style.
func (r *Painter) StrokePath(p *path.Data, st *canvas.Style) {
	if st.Width <= 0 {
		return
	}
	r.begin()
	r.flatten(p)

	dashing := r.dash.setPattern(st.Dash)
	for i := range r.starts {
		pts := r.subpath(i)
		closed := r.closed[i]

		r.segs = appendSegments(r.segs[:0], pts, closed)
		if len(r.segs) == 0 {
			// A subpath without direction only shows with round caps.
			if len(pts) > 0 && st.Cap == graphics.LineCapRound {
				r.addCircle(pts[0], st.Width/2)
			}
			continue
		}

		if !dashing {
			r.strokeSegments(r.segs, closed, st)
			continue
		}
		r.dash.start(st.DashPhase)
		r.dash.split(r.segs, func(piece []strokeSegment) {
			r.strokeSegments(piece, false, st)
		})
	}
	r.draw(r.StrokeColor)
}

func (r *Painter) begin() {
	b := r.dst.Bounds()
	r.vr.Reset(b.Dx(), b.Dy())
	r.nPoly = 0
}

func (r *Painter) draw(col color.Color) {
	if r.nPoly == 0 {
		return
	}
	r.vr.Draw(r.dst, r.dst.Bounds(), image.NewUniform(col), image.Point{})
}

// toDevice transforms a user space point into rasterizer coordinates.
func (r *Painter) toDevice(p vec.Vec2) (float32, float32) {
	m := r.CTM
	b := r.dst.Bounds()
	x := m[0]*p.X + m[2]*p.Y + m[4] - float64(b.Min.X)
	y := m[1]*p.X + m[3]*p.Y + m[5] - float64(b.Min.Y)
	return float32(x), float32(y)
}

// transformLinear applies only the 2×2 linear part of the CTM.
func (r *Painter) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// addPolygon adds a closed polygon in user space to the rasterizer.  If
// orient is set, the polygon is reversed where necessary so that all
// stroke pieces have the same orientation in device space and overlaps
// do not cancel.
func (r *Painter) addPolygon(pts []vec.Vec2, orient bool) {
	if orient && signedArea(pts)*r.ctmDet() < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	x, y := r.toDevice(pts[0])
	r.vr.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = r.toDevice(p)
		r.vr.LineTo(x, y)
	}
	r.vr.ClosePath()
	r.nPoly++
}

func (r *Painter) ctmDet() float64 {
	return r.CTM[0]*r.CTM[3] - r.CTM[1]*r.CTM[2]
}

// addCircle adds a full circle around center, with enough vertices to
// stay within the flatness tolerance.
func (r *Painter) addCircle(center vec.Vec2, radius float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 8
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	r.poly = r.poly[:0]
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		r.poly = append(r.poly, center.Add(vec.Vec2{X: cos, Y: sin}.Mul(radius)))
	}
	r.addPolygon(r.poly, true)
}

// signedArea returns twice the signed area of a polygon.
func signedArea(pts []vec.Vec2) float64 {
	area := 0.0
	prev := pts[len(pts)-1]
	for _, p := range pts {
		area += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return area
}

// Default values for painter parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.  0.25 is below the threshold of visual perception.
	defaultFlatness = 0.25
)

// Numerical tolerances.
const (
	// zeroLengthThreshold is the minimum length for a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6
)
