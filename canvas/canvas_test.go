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

package canvas

import (
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

type op struct {
	fill  bool
	cmds  []path.Command
	pts   []vec.Vec2
	style Style
}

type recorder struct {
	ops []op
}

func (r *recorder) StrokePath(p *path.Data, st *Style) {
	r.ops = append(r.ops, op{cmds: slices.Clone(p.Cmds), pts: slices.Clone(p.Coords), style: *st})
}

func (r *recorder) FillPath(p *path.Data) {
	r.ops = append(r.ops, op{fill: true, cmds: slices.Clone(p.Cmds), pts: slices.Clone(p.Coords)})
}

func TestArcSweep(t *testing.T) {
	cases := []struct {
		a0, a1 float64
		ccw    bool
		want   float64
	}{
		{0, math.Pi / 2, false, math.Pi / 2},
		{0, math.Pi / 2, true, -3 * math.Pi / 2},
		{math.Pi / 2, 0, true, -math.Pi / 2},
		{math.Pi / 2, 0, false, 3 * math.Pi / 2},
		{0, 0, false, 0},
		{0, 0, true, 0},
		{0, 7, false, 2 * math.Pi},
		{0, -7, true, -2 * math.Pi},
		{-math.Pi / 2, 0, false, math.Pi / 2},
	}
	for _, c := range cases {
		got := ArcSweep(c.a0, c.a1, c.ccw)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("ArcSweep(%g, %g, %t) = %g, want %g", c.a0, c.a1, c.ccw, got, c.want)
		}
	}
}

func TestArcApproximation(t *testing.T) {
	const r = 10.0
	center := vec.Vec2{X: 5, Y: 5}
	for _, ccw := range []bool{false, true} {
		rec := &recorder{}
		c := New(rec)
		c.BeginPath()
		c.Arc(center.X, center.Y, r, 0.3, 2.5, ccw)
		c.Stroke()

		p := rec.ops[0]
		if p.cmds[0] != path.CmdMoveTo {
			t.Fatalf("path starts with %v", p.cmds[0])
		}
		wantPieces := 2
		if ccw {
			wantPieces = 3
		}
		if len(p.cmds) != 1+wantPieces {
			t.Errorf("ccw=%t: %d commands, want %d", ccw, len(p.cmds), 1+wantPieces)
		}

		// evaluate every curve at a few points and compare with the circle
		p0 := p.pts[0]
		for i := 0; i+3 < len(p.pts); i += 3 {
			p1, p2, p3 := p.pts[i+1], p.pts[i+2], p.pts[i+3]
			for _, s := range []float64{0.25, 0.5, 0.75} {
				u := 1 - s
				q := p0.Mul(u * u * u).Add(p1.Mul(3 * u * u * s)).Add(p2.Mul(3 * u * s * s)).Add(p3.Mul(s * s * s))
				if d := math.Abs(q.Sub(center).Length() - r); d > 3e-4*r {
					t.Errorf("ccw=%t: curve point %v is %g off the circle", ccw, q, d)
				}
			}
			p0 = p3
		}

		end := p.pts[len(p.pts)-1]
		want := onCircle(center, r, 2.5)
		if end.Sub(want).Length() > 1e-9 {
			t.Errorf("ccw=%t: arc ends at %v, want %v", ccw, end, want)
		}
	}
}

func TestArcConnects(t *testing.T) {
	rec := &recorder{}
	c := New(rec)
	c.BeginPath()
	c.MoveTo(0, 0)
	c.Arc(10, 0, 2, math.Pi, math.Pi, false)
	c.Stroke()

	want := []path.Command{path.CmdMoveTo, path.CmdLineTo}
	if !slices.Equal(rec.ops[0].cmds, want) {
		t.Errorf("got commands %v, want %v", rec.ops[0].cmds, want)
	}
}

func TestCanvasPath(t *testing.T) {
	rec := &recorder{}
	c := New(rec)
	c.Style.DashPhase = 1
	c.Style.Dash = []float64{3, 2}

	c.BeginPath()
	c.LineTo(1, 1) // no current point: acts as MoveTo
	c.LineTo(5, 1)
	c.SetDashOffset(2.5)
	c.Stroke()

	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(4, 0)
	c.LineTo(2, 3)
	c.ClosePath()
	c.Fill()

	if len(rec.ops) != 2 {
		t.Fatalf("got %d paint operations", len(rec.ops))
	}
	stroke, fill := rec.ops[0], rec.ops[1]
	if stroke.fill || !fill.fill {
		t.Fatal("wrong order of operations")
	}
	if !slices.Equal(stroke.cmds, []path.Command{path.CmdMoveTo, path.CmdLineTo}) {
		t.Errorf("stroke commands %v", stroke.cmds)
	}
	if stroke.style.DashPhase != 3.5 {
		t.Errorf("dash phase %g, want 3.5", stroke.style.DashPhase)
	}
	if c.Style.DashPhase != 1 {
		t.Error("stroke modified the canvas style")
	}
	wantFill := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if !slices.Equal(fill.cmds, wantFill) {
		t.Errorf("fill commands %v", fill.cmds)
	}
}

func TestCanvasEmptyPath(t *testing.T) {
	rec := &recorder{}
	c := New(rec)

	c.BeginPath()
	c.SetDashOffset(1)
	c.Stroke()
	c.Fill()

	c.BeginPath()
	c.MoveTo(3, 4)
	c.Stroke()
	c.Fill()

	if len(rec.ops) != 0 {
		t.Errorf("empty paths were painted: %v", rec.ops)
	}

	c.LineTo(5, 4)
	c.Stroke()
	if len(rec.ops) != 1 {
		t.Errorf("got %d paint operations, want 1", len(rec.ops))
	}
}

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		p    *path.Data
		want bool
	}{
		{&path.Data{}, true},
		{(&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 2}), true},
		{(&path.Data{}).MoveTo(vec.Vec2{}).MoveTo(vec.Vec2{X: 1}), true},
		{(&path.Data{}).MoveTo(vec.Vec2{}).LineTo(vec.Vec2{}), false},
		{(&path.Data{}).MoveTo(vec.Vec2{}).Close(), false},
	}
	for i, c := range cases {
		if got := IsEmpty(c.p); got != c.want {
			t.Errorf("%d: got %t, want %t", i, got, c.want)
		}
	}
}
