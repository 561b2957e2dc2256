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

// Package canvas implements the drawing surface used by the arrow
// package on top of a path based back end.
//
// A [Canvas] collects the current path as [path.Data], converting arcs
// into cubic Bézier curves, and hands it to a [Painter] when the path is
// stroked or filled.
package canvas

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Style describes how paths are stroked.
type Style struct {
	// Width is the line width in user space units.  Must be positive.
	Width float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// MiterLimit converts miter joins into bevel joins when the miter
	// length exceeds MiterLimit times the line width.  Must be at least 1.
	MiterLimit float64

	// Dash gives alternating on/off lengths.  Nil means solid lines.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which the
	// pattern starts.
	DashPhase float64
}

// DefaultStyle returns the PDF default stroke style: solid 1-unit lines
// with butt caps and miter joins.
func DefaultStyle() Style {
	return Style{
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
	}
}

// Painter renders paths collected by a [Canvas].
// The path passed to the methods is only valid during the call.
type Painter interface {
	StrokePath(p *path.Data, st *Style)
	FillPath(p *path.Data)
}

// Canvas is a drawing surface which records the current path and
// forwards stroke and fill operations to a [Painter].
type Canvas struct {
	// Style is used for all strokes.  The dash offset set by
	// SetDashOffset is added to Style.DashPhase.
	Style Style

	painter    Painter
	path       *path.Data
	current    vec.Vec2
	subStart   vec.Vec2
	hasCurrent bool
	dashOffset float64
}

// New returns a canvas which draws onto p, using the default style.
func New(p Painter) *Canvas {
	return &Canvas{
		Style:   DefaultStyle(),
		painter: p,
		path:    &path.Data{},
	}
}

// Path returns the current path.
func (c *Canvas) Path() *path.Data {
	return c.path
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path = &path.Data{}
	c.hasCurrent = false
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	pt := vec.Vec2{X: x, Y: y}
	c.path.MoveTo(pt)
	c.current = pt
	c.subStart = pt
	c.hasCurrent = true
}

// LineTo adds a straight line to (x, y).  Without a current point, this
// is the same as MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if !c.hasCurrent {
		c.MoveTo(x, y)
		return
	}
	pt := vec.Vec2{X: x, Y: y}
	c.path.LineTo(pt)
	c.current = pt
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	if !c.hasCurrent {
		return
	}
	c.path.Close()
	c.current = c.subStart
}

// SetDashOffset sets the dash offset used by the next stroke.
func (c *Canvas) SetDashOffset(offset float64) {
	c.dashOffset = offset
}

// Stroke strokes the current path.  Paths without drawing commands are
// not passed to the painter.
func (c *Canvas) Stroke() {
	if IsEmpty(c.path) {
		return
	}
	st := c.Style
	st.DashPhase += c.dashOffset
	c.painter.StrokePath(c.path, &st)
}

// Fill fills the current path, using the nonzero winding rule.  Paths
// without drawing commands are not passed to the painter.
func (c *Canvas) Fill() {
	if IsEmpty(c.path) {
		return
	}
	c.painter.FillPath(c.path)
}

// IsEmpty reports whether p consists of nothing but MoveTo commands.
func IsEmpty(p *path.Data) bool {
	for _, cmd := range p.Cmds {
		if cmd != path.CmdMoveTo {
			return false
		}
	}
	return true
}

// Arc adds a circular arc, following the conventions of the arrow
// package's Surface interface.  The arc is approximated by cubic Bézier
// curves, each spanning at most a quarter circle.
func (c *Canvas) Arc(cx, cy, r, a0, a1 float64, counterClockwise bool) {
	center := vec.Vec2{X: cx, Y: cy}
	sweep := ArcSweep(a0, a1, counterClockwise)

	start := onCircle(center, r, a0)
	if c.hasCurrent {
		if start != c.current {
			c.LineTo(start.X, start.Y)
		}
	} else {
		c.MoveTo(start.X, start.Y)
	}
	if r == 0 || sweep == 0 {
		return
	}

	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9)), 1)
	step := sweep / float64(n)
	arm := r * 4 / 3 * math.Tan(step/4)
	p0 := start
	for i := range n {
		b0 := a0 + float64(i)*step
		b1 := b0 + step
		p3 := onCircle(center, r, b1)
		if i == n-1 {
			p3 = onCircle(center, r, a0+sweep)
		}
		p1 := p0.Add(tangent(b0).Mul(arm))
		p2 := p3.Sub(tangent(b1).Mul(arm))
		c.path.CubeTo(p1, p2, p3)
		p0 = p3
	}
	c.current = p0
}

// ArcSweep returns the signed angle swept by an arc from a0 to a1 in the
// given direction.  The result is in [0, 2π] for clockwise arcs and in
// [-2π, 0] for counter-clockwise arcs.  Angle differences of more than a
// full turn give a full circle.
func ArcSweep(a0, a1 float64, counterClockwise bool) float64 {
	d := a1 - a0
	if !counterClockwise {
		if d >= 2*math.Pi {
			return 2 * math.Pi
		}
		d = math.Mod(d, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		return d
	}
	if d <= -2*math.Pi {
		return -2 * math.Pi
	}
	d = math.Mod(d, 2*math.Pi)
	if d > 0 {
		d -= 2 * math.Pi
	}
	return d
}

func onCircle(center vec.Vec2, r, a float64) vec.Vec2 {
	sin, cos := math.Sincos(a)
	return vec.Vec2{X: center.X + r*cos, Y: center.Y + r*sin}
}

// tangent returns the unit tangent of the circle at angle a, in the
// direction of increasing angles.
func tangent(a float64) vec.Vec2 {
	sin, cos := math.Sincos(a)
	return vec.Vec2{X: -sin, Y: cos}
}
