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

import "seehuhn.de/go/geom/vec"

// Arrowhead adds a triangular arrowhead to the current path of s.  The
// arrow points in direction dir, which must be a unit vector, and has
// length and half-width size*scale.  The tip is placed halfWidth*scale
// beyond the given point, so that the corners of a stroke of half-width
// halfWidth ending at tip lie on the sides of the triangle.
//
// The apex is moved outward along dir, not back along the path, so the
// arrowhead reaches halfWidth*scale past the end of the visible stroke.
//
// Nothing is drawn if scale is at most [MinArrowScale].
func Arrowhead(s Surface, tip, dir vec.Vec2, scale, size, halfWidth float64) {
	if scale <= MinArrowScale {
		return
	}
	back := dir.Mul(-1)
	side := vec.Vec2{X: -dir.Y, Y: dir.X}

	apex := tip.Add(dir.Mul(halfWidth * scale))
	l := size * scale
	c1 := apex.Add(back.Add(side).Mul(l))
	c2 := apex.Add(back.Sub(side).Mul(l))

	s.MoveTo(apex.X, apex.Y)
	s.LineTo(c1.X, c1.Y)
	s.LineTo(c2.X, c2.Y)
	s.ClosePath()
}
