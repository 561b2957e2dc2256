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
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/arrow/record"
)

func TestArrowDefaults(t *testing.T) {
	a := New()
	if len(a.Points()) != 0 || a.Radius() != 0 || a.Start() != 0 || a.End() != 1 {
		t.Errorf("unexpected defaults %+v", a)
	}
	if a.StartArrow() || !a.EndArrow() {
		t.Error("unexpected arrowhead defaults")
	}

	// an arrow without points paints nothing, but is not an error
	s := &record.Surface{}
	tr, err := a.Paint(s)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Drawn || s.Count(record.LineTo) != 0 {
		t.Errorf("unexpected trace %+v", tr)
	}
}

func TestArrowSize(t *testing.T) {
	a := New()
	if a.Width() != 0 || a.Height() != 0 {
		t.Errorf("empty arrow has size %g x %g", a.Width(), a.Height())
	}
	a.SetPoints([]float64{0, 0, 10, 0, 10, 10})
	if a.Width() != 10 || a.Height() != 10 {
		t.Errorf("size %g x %g, want 10 x 10", a.Width(), a.Height())
	}
	a.SetPoints([]float64{-3, 7, 5, -1})
	if a.Width() != 8 || a.Height() != 8 {
		t.Errorf("size %g x %g, want 8 x 8", a.Width(), a.Height())
	}
	a.SetPoints([]float64{4, 2})
	if a.Width() != 0 || a.Height() != 0 {
		t.Errorf("size %g x %g, want 0 x 0", a.Width(), a.Height())
	}
}

func TestArrowCache(t *testing.T) {
	a := New()
	a.SetPoints([]float64{0, 0, 10, 0, 10, 10})
	a.SetRadius(2)
	p1, err := a.Path()
	if err != nil {
		t.Fatal(err)
	}

	// these only change the visible part
	a.SetStart(0.2)
	a.SetEnd(0.1)
	a.SetArrowSize(3)
	a.SetStrokeWidth(5)
	a.SetStartArrow(true)
	a.SetEndArrow(false)
	p2, err := a.Path()
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Error("path rebuilt after a change of the visible range")
	}

	a.SetRadius(3)
	p3, err := a.Path()
	if err != nil {
		t.Fatal(err)
	}
	if p3 == p2 {
		t.Error("path not rebuilt after a radius change")
	}

	a.SetPoints([]float64{0, 0, 10, 0})
	p4, err := a.Path()
	if err != nil {
		t.Fatal(err)
	}
	if p4 == p3 || len(p4.Segments) != 1 {
		t.Error("path not rebuilt after a change of points")
	}
}

func TestArrowSetPointsCopies(t *testing.T) {
	pts := []float64{0, 0, 10, 0}
	a := New()
	a.SetPoints(pts)
	pts[2] = 20
	if a.Width() != 10 {
		t.Error("SetPoints does not copy its argument")
	}
	a.Points()[2] = 30
	if a.Width() != 10 {
		t.Error("Points does not return a copy")
	}
}

func TestArrowInvalid(t *testing.T) {
	a := New()
	a.SetPoints([]float64{0, 0, 10})

	s := &record.Surface{}
	_, err := a.Paint(s)
	if !errors.Is(err, ErrOddPoints) {
		t.Errorf("got error %v, want %v", err, ErrOddPoints)
	}
	if len(s.Ops) != 0 {
		t.Errorf("invalid arrow was drawn: %v", s.Ops)
	}

	// the error persists until the input is fixed
	a.SetStart(0.5)
	if _, err := a.Paint(s); err == nil {
		t.Error("missing error on second paint")
	}

	a.SetPoints([]float64{0, 0, 10, 0})
	tr, err := a.Paint(s)
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Drawn {
		t.Error("nothing drawn after fixing the input")
	}

	a.SetRadius(-1)
	if _, err := a.Paint(s); !errors.Is(err, ErrRadius) {
		t.Errorf("got error %v, want %v", err, ErrRadius)
	}
}

func TestArrowPaint(t *testing.T) {
	a := New()
	a.SetPoints([]float64{0, 0, 10, 0, 10, 10})
	a.SetRadius(2)
	a.SetArrowSize(4)
	a.SetStartArrow(true)

	s := &record.Surface{}
	tr, err := a.Paint(s)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Segments != 3 || tr.Arrows != 2 || s.Count(record.Arc) != 1 {
		t.Errorf("unexpected trace %+v", tr)
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	a := New()
	a.SetPoints([]float64{0, 0, 10, 0})
	if _, err := a.Paint(&record.Surface{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "arrow path rebuilt") {
		t.Errorf("missing log message, got %q", buf.String())
	}

	buf.Reset()
	a.SetPoints([]float64{0})
	if _, err := a.Paint(&record.Surface{}); err == nil {
		t.Fatal("missing error")
	}
	if !strings.Contains(buf.String(), "arrow not painted") {
		t.Errorf("missing log message, got %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestArrowZeroValue(t *testing.T) {
	var a Arrow
	p, err := a.Path()
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || len(p.Segments) != 0 {
		t.Fatalf("got path %v, want empty path", p)
	}

	a.SetEnd(1)
	s := &record.Surface{}
	tr, err := a.Paint(s)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Drawn {
		t.Error("zero arrow drew something")
	}

	// points set later are picked up
	a.SetPoints([]float64{0, 0, 10, 0})
	s.Reset()
	tr, err = a.Paint(s)
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Drawn || !nearVec(tr.Last, pt(10, 0)) {
		t.Errorf("unexpected trace %+v", tr)
	}
}
