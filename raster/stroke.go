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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/arrow/canvas"
)

// strokeSegment is a straight piece of a flattened subpath, in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, 90° counter-clockwise from T
}

// flatten converts p into polylines, one per subpath.  The results are
// stored in r.pts, r.starts and r.closed.  A closing point equal to the
// subpath start is not stored twice.
func (r *Painter) flatten(p *path.Data) {
	r.pts = r.pts[:0]
	r.starts = r.starts[:0]
	r.closed = r.closed[:0]

	var current, start vec.Vec2
	inSubpath := false
	drawn := false // a drawing command was seen in the current subpath

	finish := func(closed bool) {
		if !inSubpath {
			return
		}
		inSubpath = false
		first := r.starts[len(r.starts)-1]
		if !drawn {
			r.pts = r.pts[:first]
			r.starts = r.starts[:len(r.starts)-1]
			return
		}
		if closed && len(r.pts)-first > 1 && r.pts[len(r.pts)-1] == start {
			r.pts = r.pts[:len(r.pts)-1]
		}
		r.closed = append(r.closed, closed)
	}

	for cmd, args := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = args[0]
			start = current
			r.starts = append(r.starts, len(r.pts))
			r.pts = append(r.pts, current)
			inSubpath = true
			drawn = false

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			drawn = true
			current = args[0]
			r.pts = append(r.pts, current)

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			drawn = true
			r.flattenQuadratic(current, args[0], args[1])
			current = args[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			drawn = true
			r.flattenCubic(current, args[0], args[1], args[2])
			current = args[2]

		case path.CmdClose:
			drawn = true
			finish(true)
			current = start
		}
	}
	finish(false)
}

// subpath returns the flattened points of subpath i.
func (r *Painter) subpath(i int) []vec.Vec2 {
	end := len(r.pts)
	if i+1 < len(r.starts) {
		end = r.starts[i+1]
	}
	return r.pts[r.starts[i]:end]
}

// flattenQuadratic appends the points of a quadratic Bézier, excluding
// p0, to r.pts.
func (r *Painter) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		r.pts = append(r.pts, pt)
	}
}

// flattenCubic appends the points of a cubic Bézier, excluding p0, to
// r.pts.  The number of pieces is given by Wang's formula, evaluated in
// device space.
func (r *Painter) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * r.Flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).
			Add(p1.Mul(3 * omt2 * t)).
			Add(p2.Mul(3 * omt * t2)).
			Add(p3.Mul(t2 * t))
		r.pts = append(r.pts, pt)
	}
}

// appendSegments appends the non-degenerate segments of a polyline to
// dst.  For closed polylines the closing segment is included.
func appendSegments(dst []strokeSegment, pts []vec.Vec2, closed bool) []strokeSegment {
	add := func(a, b vec.Vec2) {
		d := b.Sub(a)
		l := d.Length()
		if l < zeroLengthThreshold {
			return
		}
		t := d.Mul(1 / l)
		dst = append(dst, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
	}
	for i := 1; i < len(pts); i++ {
		add(pts[i-1], pts[i])
	}
	if closed && len(pts) > 1 {
		add(pts[len(pts)-1], pts[0])
	}
	return dst
}

// strokeSegments adds the outline of a connected run of segments.  Every
// segment contributes a rectangle, every interior vertex a join and,
// for open runs, both ends a cap.  The pieces overlap; this is harmless
// because all of them are added with the same orientation.
func (r *Painter) strokeSegments(segs []strokeSegment, closed bool, st *canvas.Style) {
	d := st.Width / 2
	for _, s := range segs {
		dn := s.N.Mul(d)
		r.poly = append(r.poly[:0], s.A.Add(dn), s.B.Add(dn), s.B.Sub(dn), s.A.Sub(dn))
		r.addPolygon(r.poly, true)
	}

	for i := 1; i < len(segs); i++ {
		r.addJoin(segs[i].A, segs[i-1].T, segs[i].T, d, st)
	}
	if closed {
		last := segs[len(segs)-1]
		r.addJoin(segs[0].A, last.T, segs[0].T, d, st)
		return
	}
	r.addCap(segs[0].A, segs[0].T.Mul(-1), d, st.Cap)
	r.addCap(segs[len(segs)-1].B, segs[len(segs)-1].T, d, st.Cap)
}

// addJoin adds the join at P between a segment with tangent T1 and a
// following segment with tangent T2.  Only the outer side of the corner
// needs extra geometry; the inner side is covered by the segment
// rectangles.
func (r *Painter) addJoin(P, T1, T2 vec.Vec2, d float64, st *canvas.Style) {
	cross := T1.X*T2.Y - T1.Y*T2.X
	if math.Abs(cross) < collinearityThreshold && T1.Dot(T2) > 0 {
		return
	}

	if st.Join == graphics.LineJoinRound {
		r.addCircle(P, d)
		return
	}

	// outer normals of both segments
	n1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	n2 := vec.Vec2{X: -T2.Y, Y: T2.X}
	if cross > 0 {
		n1 = n1.Mul(-1)
		n2 = n2.Mul(-1)
	}
	a := P.Add(n1.Mul(d))
	b := P.Add(n2.Mul(d))

	if st.Join == graphics.LineJoinMiter {
		// The miter ratio is 1/sin(φ/2), where φ is the angle between
		// the segments.  With m = n1+n2 this equals 2/|m|.
		m := n1.Add(n2)
		ml := m.Length()
		if ml > 0 && 2/ml <= st.MiterLimit {
			tip := P.Add(m.Mul(2 * d / (ml * ml)))
			r.poly = append(r.poly[:0], P, a, tip, b)
			r.addPolygon(r.poly, true)
			return
		}
	}

	r.poly = append(r.poly[:0], P, a, b)
	r.addPolygon(r.poly, true)
}

// addCap adds a line cap at P, where T is the unit direction pointing
// away from the line.
func (r *Painter) addCap(P, T vec.Vec2, d float64, capStyle graphics.LineCapStyle) {
	switch capStyle {
	case graphics.LineCapRound:
		r.addCircle(P, d)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -T.Y, Y: T.X}.Mul(d)
		ext := T.Mul(d)
		r.poly = append(r.poly[:0], P.Add(n), P.Add(n).Add(ext), P.Sub(n).Add(ext), P.Sub(n))
		r.addPolygon(r.poly, true)
	}
}
