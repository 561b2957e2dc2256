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

package pdfout

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/arrow"
	"seehuhn.de/go/arrow/canvas"
)

func TestWriteFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "arrow.pdf")

	a := arrow.New()
	a.SetPoints([]float64{10, 10, 90, 10, 90, 60})
	a.SetRadius(15)
	a.SetStartArrow(true)

	st := canvas.DefaultStyle()
	st.Width = a.StrokeWidth()
	st.Dash = []float64{6, 3}
	err := WriteFile(fname, 100, 70, st, func(c *canvas.Canvas) error {
		_, err := a.Paint(c)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestWriteFileError(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "broken.pdf")
	errDraw := errors.New("draw failed")
	err := WriteFile(fname, 10, 10, canvas.DefaultStyle(), func(*canvas.Canvas) error {
		return errDraw
	})
	if !errors.Is(err, errDraw) {
		t.Errorf("got error %v, want %v", err, errDraw)
	}
}

func TestWriteFileSize(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "empty.pdf")
	err := WriteFile(fname, 0, 10, canvas.DefaultStyle(), func(*canvas.Canvas) error {
		t.Error("draw called for invalid page size")
		return nil
	})
	if err == nil {
		t.Error("missing error for zero width")
	}
}

func TestWriteFileEmptyArrow(t *testing.T) {
	cases := map[string]func(a *arrow.Arrow){
		"no_points":    func(a *arrow.Arrow) {},
		"single_point": func(a *arrow.Arrow) { a.SetPoints([]float64{5, 5}) },
		"empty_window": func(a *arrow.Arrow) {
			a.SetPoints([]float64{5, 5, 40, 5})
			a.SetStart(0.5)
			a.SetEnd(0.5)
		},
	}
	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			fname := filepath.Join(t.TempDir(), name+".pdf")
			a := arrow.New()
			setup(a)
			err := WriteFile(fname, 50, 10, canvas.DefaultStyle(), func(c *canvas.Canvas) error {
				_, err := a.Paint(c)
				return err
			})
			if err != nil {
				t.Fatal(err)
			}
		})
	}
}
