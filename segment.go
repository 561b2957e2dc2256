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

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DashCorrection is an empirical factor used by [Circle.DashOffset].  It
// was tuned against the dash phase of canvas style stroking and is not
// derived from the arc geometry.
const DashCorrection = 1.045

// A Segment is a piece of a rounded path: either a straight [Line] or a
// circular [Circle] arc.  Positions inside a segment are given as local
// fractions in [0, 1] of the segment's arc length.
type Segment interface {
	// Length returns the arc length of the segment.
	Length() float64

	// PointAt returns the point at local fraction t, together with the
	// unit direction of travel at this point.
	PointAt(t float64) (pt, dir vec.Vec2)

	// Draw adds the part of the segment between the local fractions t0
	// and t1 to the current path of s.  If move is set, a new subpath is
	// started at the first point.  Draw returns the first and last point
	// drawn, each with the unit direction pointing away from the drawn
	// part.
	Draw(s Surface, t0, t1 float64, move bool) (first, firstDir, last, lastDir vec.Vec2)

	// DashOffset returns the dash phase contribution of this segment,
	// for a partial path which starts at local fraction t0.
	DashOffset(t0 float64) float64

	// Bounds returns the bounding box of the segment.
	Bounds() rect.Rect
}

// Line is a straight segment from A to B.
type Line struct {
	A, B vec.Vec2
}

// Length implements the [Segment] interface.
func (l *Line) Length() float64 {
	return l.B.Sub(l.A).Length()
}

// PointAt implements the [Segment] interface.
// For zero-length lines the direction is the zero vector.
func (l *Line) PointAt(t float64) (pt, dir vec.Vec2) {
	d := l.B.Sub(l.A)
	pt = l.A.Add(d.Mul(t))
	if n := d.Length(); n > 0 {
		dir = d.Mul(1 / n)
	}
	return pt, dir
}

// Draw implements the [Segment] interface.
func (l *Line) Draw(s Surface, t0, t1 float64, move bool) (first, firstDir, last, lastDir vec.Vec2) {
	first, dir := l.PointAt(t0)
	last, _ = l.PointAt(t1)
	if move {
		s.MoveTo(first.X, first.Y)
	}
	s.LineTo(last.X, last.Y)
	return first, dir.Mul(-1), last, dir
}

// DashOffset implements the [Segment] interface.  Lines need no
// correction, so the result is always 0.
func (l *Line) DashOffset(float64) float64 {
	return 0
}

// Bounds implements the [Segment] interface.
func (l *Line) Bounds() rect.Rect {
	return rect.Rect{
		LLx: min(l.A.X, l.B.X),
		LLy: min(l.A.Y, l.B.Y),
		URx: max(l.A.X, l.B.X),
		URy: max(l.A.Y, l.B.Y),
	}
}

// Circle is a circular arc.  The arc starts at angle StartAngle and
// sweeps through Sweep radians, using the angle convention of [Surface].
// A positive Sweep runs clockwise on screen.
type Circle struct {
	Center     vec.Vec2
	Radius     float64
	StartAngle float64
	Sweep      float64
}

// Clockwise reports whether the arc runs through increasing angles.
func (c *Circle) Clockwise() bool {
	return c.Sweep >= 0
}

// Length implements the [Segment] interface.
func (c *Circle) Length() float64 {
	return math.Abs(c.Sweep * c.Radius)
}

func (c *Circle) angle(t float64) float64 {
	return c.StartAngle + t*c.Sweep
}

func (c *Circle) point(a float64) vec.Vec2 {
	sin, cos := math.Sincos(a)
	return vec.Vec2{X: c.Center.X + c.Radius*cos, Y: c.Center.Y + c.Radius*sin}
}

// direction returns the unit direction of travel at angle a.
func (c *Circle) direction(a float64) vec.Vec2 {
	sin, cos := math.Sincos(a)
	if c.Clockwise() {
		return vec.Vec2{X: -sin, Y: cos}
	}
	return vec.Vec2{X: sin, Y: -cos}
}

// PointAt implements the [Segment] interface.
func (c *Circle) PointAt(t float64) (pt, dir vec.Vec2) {
	a := c.angle(t)
	return c.point(a), c.direction(a)
}

// Draw implements the [Segment] interface.
func (c *Circle) Draw(s Surface, t0, t1 float64, move bool) (first, firstDir, last, lastDir vec.Vec2) {
	a0 := c.angle(t0)
	a1 := c.angle(t1)
	first = c.point(a0)
	last = c.point(a1)
	if move {
		s.MoveTo(first.X, first.Y)
	}
	s.Arc(c.Center.X, c.Center.Y, c.Radius, a0, a1, !c.Clockwise())
	return first, c.direction(a0).Mul(-1), last, c.direction(a1)
}

// DashOffset implements the [Segment] interface.  Counter-clockwise arcs
// need no correction.  For clockwise arcs the result is proportional to
// t0 and to the arc length, scaled by [DashCorrection].
func (c *Circle) DashOffset(t0 float64) float64 {
	if !c.Clockwise() {
		return 0
	}
	return t0 * DashCorrection * math.Abs(c.Sweep) * c.Radius / 2
}

// Bounds implements the [Segment] interface.
func (c *Circle) Bounds() rect.Rect {
	p0 := c.point(c.StartAngle)
	p1 := c.point(c.StartAngle + c.Sweep)
	b := rect.Rect{
		LLx: min(p0.X, p1.X),
		LLy: min(p0.Y, p1.Y),
		URx: max(p0.X, p1.X),
		URy: max(p0.Y, p1.Y),
	}

	// add the axis extremes which lie inside the sweep
	lo, hi := c.StartAngle, c.StartAngle+c.Sweep
	if hi < lo {
		lo, hi = hi, lo
	}
	for k := math.Ceil(lo / (math.Pi / 2)); k*math.Pi/2 <= hi; k++ {
		p := c.point(k * math.Pi / 2)
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}
