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
	"image"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/arrow/canvas"
)

const (
	fullCoverage  = 245
	emptyCoverage = 10
)

func newTarget() (*image.Alpha, *Painter) {
	img := image.NewAlpha(image.Rect(0, 0, 32, 32))
	return img, NewPainter(img)
}

func style(width float64) *canvas.Style {
	st := canvas.DefaultStyle()
	st.Width = width
	return &st
}

// checkPixels verifies that the listed pixels are fully covered (on) or
// empty (off).
func checkPixels(t *testing.T, img *image.Alpha, on, off []image.Point) {
	t.Helper()
	for _, p := range on {
		if a := img.AlphaAt(p.X, p.Y).A; a < fullCoverage {
			t.Errorf("pixel %v: coverage %d, want full", p, a)
		}
	}
	for _, p := range off {
		if a := img.AlphaAt(p.X, p.Y).A; a > emptyCoverage {
			t.Errorf("pixel %v: coverage %d, want empty", p, a)
		}
	}
}

func TestStrokeHorizontal(t *testing.T) {
	img, r := newTarget()
	p := (&path.Data{}).MoveTo(pt(4, 16)).LineTo(pt(28, 16))
	r.StrokePath(p, style(4))

	checkPixels(t, img,
		[]image.Point{{4, 14}, {16, 15}, {16, 17}, {27, 16}},
		[]image.Point{{16, 13}, {16, 18}, {2, 16}, {3, 16}, {28, 16}})
}

func TestStrokeCaps(t *testing.T) {
	cases := []struct {
		cap     graphics.LineCapStyle
		on, off []image.Point
	}{
		{graphics.LineCapButt, nil, []image.Point{{3, 16}, {2, 15}, {28, 16}}},
		{graphics.LineCapSquare, []image.Point{{2, 14}, {3, 17}, {29, 16}}, []image.Point{{1, 16}, {30, 16}}},
		{graphics.LineCapRound, []image.Point{{3, 16}, {28, 15}}, []image.Point{{1, 16}, {30, 16}}},
	}
	for _, c := range cases {
		t.Run(c.cap.String(), func(t *testing.T) {
			img, r := newTarget()
			st := style(4)
			st.Cap = c.cap
			p := (&path.Data{}).MoveTo(pt(4, 16)).LineTo(pt(28, 16))
			r.StrokePath(p, st)
			checkPixels(t, img, c.on, c.off)
		})
	}
}

func TestStrokeJoins(t *testing.T) {
	// The path turns from rightwards to upwards at (16, 16), so the outer
	// corner is the pixel at (17, 17).
	cases := []struct {
		join graphics.LineJoinStyle
		want bool
	}{
		{graphics.LineJoinMiter, true},
		{graphics.LineJoinBevel, false},
	}
	for _, c := range cases {
		t.Run(c.join.String(), func(t *testing.T) {
			img, r := newTarget()
			st := style(4)
			st.Join = c.join
			p := (&path.Data{}).MoveTo(pt(4, 16)).LineTo(pt(16, 16)).LineTo(pt(16, 4))
			r.StrokePath(p, st)

			corner := []image.Point{{17, 17}}
			inner := []image.Point{{15, 15}, {17, 15}, {15, 17}}
			if c.want {
				checkPixels(t, img, append(corner, inner...), nil)
			} else {
				checkPixels(t, img, inner, corner)
			}
		})
	}
}

func TestMiterLimit(t *testing.T) {
	img, r := newTarget()
	st := style(4)
	st.MiterLimit = 1.2 // below √2, so the right angle gets a bevel
	p := (&path.Data{}).MoveTo(pt(4, 16)).LineTo(pt(16, 16)).LineTo(pt(16, 4))
	r.StrokePath(p, st)
	checkPixels(t, img, nil, []image.Point{{17, 17}})
}

func TestStrokeDash(t *testing.T) {
	cases := []struct {
		name    string
		dash    []float64
		phase   float64
		on, off []int // x coordinates of pixels in row 16
	}{
		{"even", []float64{4, 4}, 0, []int{0, 3, 8, 11}, []int{4, 7, 12}},
		{"phase", []float64{4, 4}, 2, []int{0, 1, 6, 9}, []int{2, 5, 10}},
		{"negative phase", []float64{4, 4}, -6, []int{0, 1, 6, 9}, []int{2, 5, 10}},
		{"odd", []float64{3}, 0, []int{0, 2, 6, 8}, []int{3, 5, 9}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			img, r := newTarget()
			st := style(4)
			st.Dash = c.dash
			st.DashPhase = c.phase
			p := (&path.Data{}).MoveTo(pt(0, 16)).LineTo(pt(32, 16))
			r.StrokePath(p, st)

			var on, off []image.Point
			for _, x := range c.on {
				on = append(on, image.Point{x, 16})
			}
			for _, x := range c.off {
				off = append(off, image.Point{x, 16})
			}
			checkPixels(t, img, on, off)
		})
	}
}

func TestStrokeZeroDash(t *testing.T) {
	// An all-zero pattern draws a solid line.
	img, r := newTarget()
	st := style(4)
	st.Dash = []float64{0, 0}
	p := (&path.Data{}).MoveTo(pt(0, 16)).LineTo(pt(32, 16))
	r.StrokePath(p, st)
	checkPixels(t, img, []image.Point{{1, 16}, {5, 16}, {30, 16}}, nil)
}

func TestStrokeDot(t *testing.T) {
	for _, capStyle := range []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound} {
		t.Run(capStyle.String(), func(t *testing.T) {
			img, r := newTarget()
			st := style(6)
			st.Cap = capStyle
			p := (&path.Data{}).MoveTo(pt(16, 16)).LineTo(pt(16, 16))
			r.StrokePath(p, st)

			center := []image.Point{{15, 15}, {16, 16}}
			if capStyle == graphics.LineCapRound {
				checkPixels(t, img, center, []image.Point{{10, 16}, {21, 16}})
			} else {
				checkPixels(t, img, nil, center)
			}
		})
	}
}

func TestStrokeClosed(t *testing.T) {
	img, r := newTarget()
	p := (&path.Data{}).MoveTo(pt(8, 8)).LineTo(pt(24, 8)).LineTo(pt(24, 24)).LineTo(pt(8, 24)).Close()
	r.StrokePath(p, style(2))

	// all four sides and the closing corner are drawn, the inside is not
	checkPixels(t, img,
		[]image.Point{{16, 7}, {24, 16}, {16, 24}, {7, 16}, {7, 7}},
		[]image.Point{{16, 16}, {5, 5}})
}

func TestFill(t *testing.T) {
	img, r := newTarget()
	p := (&path.Data{}).MoveTo(pt(0, 0)).LineTo(pt(32, 0)).LineTo(pt(0, 32)).Close()
	r.FillPath(p)
	checkPixels(t, img,
		[]image.Point{{1, 1}, {10, 10}, {0, 30}},
		[]image.Point{{28, 28}, {17, 17}})
}

func TestFillCurve(t *testing.T) {
	img, r := newTarget()
	// approximate circle of radius 12 around (16, 16)
	const k = 12 * 0.5523
	p := (&path.Data{}).MoveTo(pt(28, 16)).
		CubeTo(pt(28, 16+k), pt(16+k, 28), pt(16, 28)).
		CubeTo(pt(16-k, 28), pt(4, 16+k), pt(4, 16)).
		CubeTo(pt(4, 16-k), pt(16-k, 4), pt(16, 4)).
		CubeTo(pt(16+k, 4), pt(28, 16-k), pt(28, 16)).
		Close()
	r.FillPath(p)
	checkPixels(t, img,
		[]image.Point{{16, 16}, {5, 15}, {15, 26}},
		[]image.Point{{1, 1}, {29, 29}, {5, 5}})
}

func TestCTM(t *testing.T) {
	img, r := newTarget()
	r.CTM = matrix.Scale(2, 2)
	p := (&path.Data{}).MoveTo(pt(2, 8)).LineTo(pt(14, 8))
	r.StrokePath(p, style(2))

	checkPixels(t, img,
		[]image.Point{{4, 14}, {16, 15}, {27, 17}},
		[]image.Point{{16, 13}, {16, 18}, {3, 16}, {28, 16}})
}

func TestMirrorCTM(t *testing.T) {
	// A y-flip reverses orientation; overlapping stroke pieces must still
	// add up instead of cancelling.
	img, r := newTarget()
	r.CTM = matrix.Matrix{1, 0, 0, -1, 0, 32}
	st := style(4)
	st.Join = graphics.LineJoinRound
	p := (&path.Data{}).MoveTo(pt(4, 16)).LineTo(pt(16, 16)).LineTo(pt(16, 28))
	r.StrokePath(p, st)
	checkPixels(t, img, []image.Point{{15, 15}, {16, 16}, {10, 16}, {16, 8}}, nil)
}

func TestOffsetBounds(t *testing.T) {
	img := image.NewAlpha(image.Rect(100, 100, 132, 132))
	r := NewPainter(img)
	p := (&path.Data{}).MoveTo(pt(104, 116)).LineTo(pt(128, 116))
	r.StrokePath(p, style(4))
	checkPixels(t, img,
		[]image.Point{{116, 115}, {116, 116}},
		[]image.Point{{116, 112}, {102, 116}})
}
