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

	"seehuhn.de/go/geom/vec"
)

// MinArrowScale is the smallest arrow scale for which arrowheads are
// drawn.
const MinArrowScale = 0.0001

// RenderOptions selects the visible part of a path and its decoration.
type RenderOptions struct {
	// Start and End are fractions of the total path length.  They may be
	// given in either order.  NaN is treated as 0.
	Start, End float64

	// ArrowSize is the length of a full-size arrowhead.  Arrowheads
	// shrink when the visible part of the path is shorter than this.
	ArrowSize float64

	// StrokeWidth is the line width used by the surface.  Arrowheads are
	// moved outwards by half the stroke width.
	StrokeWidth float64

	StartArrow bool
	EndArrow   bool
}

// Trace describes what a call to [Path.Render] has drawn.
type Trace struct {
	// Drawn is false if no segment was drawn.
	Drawn bool

	// First and Last are the end points of the visible part of the path.
	// FirstDir and LastDir are unit directions pointing away from the
	// visible part.  For an empty visible range on a non-empty path,
	// First and Last both give the position of the range, even though
	// nothing is drawn.  For an empty path, they are zero.
	First, FirstDir vec.Vec2
	Last, LastDir   vec.Vec2

	// Segments is the number of segments drawn.
	Segments int

	// DashOffset is the dash phase passed to the surface.
	DashOffset float64

	// Scale is the arrowhead scale, in [0, 1].
	Scale float64

	// Arrows is the number of arrowheads drawn.
	Arrows int
}

// ArrowScale returns the scale factor for arrowheads on a visible path
// of the given length.  Arrowheads have full size once the visible path
// is at least arrowSize long.  The result is 0 if arrowSize is not
// positive.
func ArrowScale(distance, arrowSize float64) float64 {
	if !(arrowSize > 0) || math.IsNaN(distance) {
		return 0
	}
	return min(max(distance, 0), arrowSize) / arrowSize
}

// Render draws the part of the path between opt.Start and opt.End onto
// s, as a single stroked subpath.  Segments before the visible part
// only contribute to the dash phase.  Afterwards, the requested
// arrowheads are added to a new path and filled.
//
// If the visible range is empty, the stroked path is empty and no
// arrowheads are drawn.
func (p *Path) Render(s Surface, opt RenderOptions) Trace {
	start := position(opt.Start, p.Length)
	end := position(opt.End, p.Length)
	if start > end {
		start, end = end, start
	}

	tr := Trace{
		Scale: ArrowScale(end-start, opt.ArrowSize),
	}

	s.BeginPath()
	traversed := 0.0
	offset := 0.0
	for _, seg := range p.Segments {
		l := seg.Length()
		before := traversed
		traversed += l

		t0 := localFraction(start-before, l)
		if traversed < start {
			offset += seg.DashOffset(t0)
			continue
		}
		if start == end {
			pt, dir := seg.PointAt(t0)
			tr.First, tr.FirstDir = pt, dir.Mul(-1)
			tr.Last, tr.LastDir = pt, dir
			break
		}
		t1 := localFraction(end-before, l)

		first, firstDir, last, lastDir := seg.Draw(s, t0, t1, !tr.Drawn)
		if !tr.Drawn {
			tr.First, tr.FirstDir = first, firstDir
			tr.Drawn = true
		}
		tr.Last, tr.LastDir = last, lastDir
		tr.Segments++

		if traversed > end {
			break
		}
	}
	tr.DashOffset = offset

	s.SetDashOffset(offset)
	s.Stroke()

	if !tr.Drawn || tr.Scale <= MinArrowScale {
		return tr
	}
	s.BeginPath()
	halfWidth := opt.StrokeWidth / 2
	if opt.StartArrow {
		Arrowhead(s, tr.First, tr.FirstDir, tr.Scale, opt.ArrowSize, halfWidth)
		tr.Arrows++
	}
	if opt.EndArrow {
		Arrowhead(s, tr.Last, tr.LastDir, tr.Scale, opt.ArrowSize, halfWidth)
		tr.Arrows++
	}
	if tr.Arrows > 0 {
		s.Fill()
	}
	return tr
}

// position converts a fraction of the path length into a distance
// along the path.  NaN results, from NaN fractions or from infinite
// fractions on a path of length 0, are replaced by 0.
func position(fraction, length float64) float64 {
	d := fraction * length
	if math.IsNaN(d) {
		return 0
	}
	return d
}
