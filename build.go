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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrOddPoints is returned when a flat coordinate list has odd length.
	ErrOddPoints = errors.New("odd number of coordinates")

	// ErrNonFinite is returned when a coordinate is NaN or infinite.
	ErrNonFinite = errors.New("non-finite coordinate")

	// ErrRadius is returned for negative or non-finite corner radii.
	ErrRadius = errors.New("invalid corner radius")
)

// angleEpsilon is the tolerance used to detect corners where the path
// either doubles back on itself or continues straight on.  No rounding
// arc is added at such corners.
const angleEpsilon = 1e-9

// Path is a polyline with rounded corners.  Segments alternate between
// straight lines and rounding arcs.  Length is the sum of the segment
// lengths.
type Path struct {
	Segments []Segment
	Length   float64
}

func (p *Path) add(seg Segment) {
	p.Segments = append(p.Segments, seg)
	p.Length += seg.Length()
}

// BuildFlat is like [Build], but takes the vertices as a flat list
// x0, y0, x1, y1, ... of coordinates.
func BuildFlat(points []float64, radius float64) (*Path, error) {
	if len(points)%2 != 0 {
		return nil, fmt.Errorf("%d values: %w", len(points), ErrOddPoints)
	}
	vertices := make([]vec.Vec2, len(points)/2)
	for i := range vertices {
		vertices[i] = vec.Vec2{X: points[2*i], Y: points[2*i+1]}
	}
	return Build(vertices, radius)
}

// Build constructs the rounded path through the given vertices.  Every
// interior vertex is replaced by a circular arc of the given radius,
// which touches the two adjacent edges.
//
// If fewer than two vertices are given, the path is empty.  Corners
// where the path doubles back or runs straight on are left unrounded.
// The radius is not limited by the length of the adjacent edges; callers
// which need this must choose the radius accordingly.
func Build(vertices []vec.Vec2, radius float64) (*Path, error) {
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("radius %g: %w", radius, ErrRadius)
	}
	for i, v := range vertices {
		if !isFinite(v.X) || !isFinite(v.Y) {
			return nil, fmt.Errorf("vertex %d (%g, %g): %w", i, v.X, v.Y, ErrNonFinite)
		}
	}

	p := &Path{}
	n := len(vertices)
	if n < 2 {
		return p, nil
	}
	if n == 2 {
		p.add(&Line{A: vertices[0], B: vertices[1]})
		return p, nil
	}

	exit := vertices[0]
	for i := 1; i < n-1; i++ {
		corner := vertices[i]
		arc, t1, t2, ok := roundCorner(vertices[i-1], corner, vertices[i+1], radius)
		if !ok {
			p.add(&Line{A: exit, B: corner})
			exit = corner
			continue
		}
		p.add(&Line{A: exit, B: t1})
		p.add(arc)
		exit = t2
	}
	p.add(&Line{A: exit, B: vertices[n-1]})

	return p, nil
}

// TurnAngle returns the signed angle between the directions from corner
// to prev and from corner to next.  The angle is measured with the y-axis
// pointing up, so that a right turn on screen gives a positive value.
// The result is in the range (-π, π].
func TurnAngle(prev, corner, next vec.Vec2) float64 {
	v1 := prev.Sub(corner)
	v2 := next.Sub(corner)
	cross := v1.Y*v2.X - v1.X*v2.Y
	return math.Atan2(cross, v1.Dot(v2))
}

// roundCorner computes the arc which rounds the corner of the polyline
// prev-corner-next, and the two tangent points where the arc meets the
// edges towards prev and next.  If the corner is degenerate, ok is false.
func roundCorner(prev, corner, next vec.Vec2, radius float64) (arc *Circle, t1, t2 vec.Vec2, ok bool) {
	theta := TurnAngle(prev, corner, next)
	abs := math.Abs(theta)
	if abs < angleEpsilon || math.Pi-abs < angleEpsilon {
		return nil, vec.Vec2{}, vec.Vec2{}, false
	}

	u1 := unit(prev.Sub(corner))
	u2 := unit(next.Sub(corner))
	bisector := unit(u1.Add(u2))

	// distances from the corner for a circle of radius 1
	tanDist := 1 / math.Abs(math.Tan(theta/2))
	centerDist := 1 / math.Abs(math.Sin(theta/2))

	t1 = corner.Add(u1.Mul(radius * tanDist))
	t2 = corner.Add(u2.Mul(radius * tanDist))
	center := corner.Add(bisector.Mul(radius * centerDist))

	// The angles are found on the unit circle, so that they stay
	// meaningful for radius 0.
	d1 := u1.Mul(tanDist).Sub(bisector.Mul(centerDist))
	sweep := math.Pi - abs
	if theta < 0 {
		sweep = -sweep
	}

	arc = &Circle{
		Center:     center,
		Radius:     radius,
		StartAngle: math.Atan2(d1.Y, d1.X),
		Sweep:      sweep,
	}
	return arc, t1, t2, true
}

// PointAt returns the point at the given fraction of the total path
// length, together with the unit direction of travel there.  The
// fraction is clamped to [0, 1].  For an empty path, ok is false.
func (p *Path) PointAt(fraction float64) (pt, dir vec.Vec2, ok bool) {
	if len(p.Segments) == 0 {
		return vec.Vec2{}, vec.Vec2{}, false
	}
	target := min(max(fraction, 0), 1) * p.Length
	traversed := 0.0
	for i, seg := range p.Segments {
		l := seg.Length()
		if traversed+l >= target || i == len(p.Segments)-1 {
			pt, dir = seg.PointAt(localFraction(target-traversed, l))
			return pt, dir, true
		}
		traversed += l
	}
	panic("unreachable")
}

// Bounds returns the bounding box of the path.
// The zero rectangle is returned for an empty path.
func (p *Path) Bounds() rect.Rect {
	var b rect.Rect
	for i, seg := range p.Segments {
		sb := seg.Bounds()
		if i == 0 {
			b = sb
			continue
		}
		b.LLx = min(b.LLx, sb.LLx)
		b.LLy = min(b.LLy, sb.LLy)
		b.URx = max(b.URx, sb.URx)
		b.URy = max(b.URy, sb.URy)
	}
	return b
}

// localFraction converts a distance from the start of a segment of
// length l into a local fraction, clamped to [0, 1].
func localFraction(dist, l float64) float64 {
	if l <= 0 {
		if dist > 0 {
			return 1
		}
		return 0
	}
	return min(max(dist/l, 0), 1)
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
