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

// Package pdfout paints the paths collected by a canvas into a PDF page.
package pdfout

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/arrow/canvas"
)

// Painter writes strokes and fills to a PDF page.  It implements
// [canvas.Painter].
type Painter struct {
	// StrokeGray and FillGray are the DeviceGray colours used for
	// painting.  0 is black.
	StrokeGray float64
	FillGray   float64

	page   *document.Page
	dashed bool
}

var _ canvas.Painter = (*Painter)(nil)

// NewPainter returns a painter which paints black onto page.
func NewPainter(page *document.Page) *Painter {
	return &Painter{page: page}
}

// StrokePath strokes p using the given style.
// Paths without drawing commands are skipped, since PDF does not allow
// painting operators without a path.
func (w *Painter) StrokePath(p *path.Data, st *canvas.Style) {
	if canvas.IsEmpty(p) {
		return
	}
	page := w.page
	page.SetStrokeColor(color.DeviceGray(w.StrokeGray))

	// PDF requires the stroke parameters to be set before the path is
	// constructed.
	page.SetLineWidth(st.Width)
	page.SetLineCap(st.Cap)
	page.SetLineJoin(st.Join)
	page.SetMiterLimit(st.MiterLimit)
	if len(st.Dash) > 0 {
		page.SetLineDash(st.Dash, st.DashPhase)
		w.dashed = true
	} else if w.dashed {
		page.SetLineDash(nil, 0)
		w.dashed = false
	}

	w.emit(p)
	page.Stroke()
}

// FillPath fills p using the nonzero winding rule.  Paths without
// drawing commands are skipped.
func (w *Painter) FillPath(p *path.Data) {
	if canvas.IsEmpty(p) {
		return
	}
	w.page.SetFillColor(color.DeviceGray(w.FillGray))
	w.emit(p)
	w.page.Fill()
}

// emit writes the path construction operators for p.  Quadratic
// segments are converted to cubic ones, since PDF has no quadratic
// curves.
func (w *Painter) emit(p *path.Data) {
	page := w.page
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// WriteFile creates a single page PDF file of the given size in PDF
// points and calls draw to fill it.  The canvas passed to draw uses
// y-down coordinates with the origin in the top-left corner of the page.
func WriteFile(fileName string, width, height float64, style canvas.Style, draw func(c *canvas.Canvas) error) error {
	if !(width > 0 && height > 0) {
		return fmt.Errorf("pdfout: invalid page size %gx%g", width, height)
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, the canvas expects top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	c := canvas.New(NewPainter(page))
	c.Style = style
	if err := draw(c); err != nil {
		page.Close()
		return err
	}
	return page.Close()
}
