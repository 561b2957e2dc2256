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

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/arrow"
	"seehuhn.de/go/arrow/canvas"
	"seehuhn.de/go/arrow/testcases"
)

// Scene is the contents of a scene file.  Width and Height may be
// omitted, in which case the size is chosen to fit all arrows.
type Scene struct {
	Width  float64      `yaml:"width"`
	Height float64      `yaml:"height"`
	Arrows []SceneArrow `yaml:"arrows"`
}

// SceneArrow describes one arrow.  Unset fields take the defaults of
// [arrow.New] and [canvas.DefaultStyle].
type SceneArrow struct {
	Points     []float64    `yaml:"points"`
	Radius     float64      `yaml:"radius"`
	Start      *float64     `yaml:"start"`
	End        *float64     `yaml:"end"`
	ArrowSize  *float64     `yaml:"arrowSize"`
	StartArrow *bool        `yaml:"startArrow"`
	EndArrow   *bool        `yaml:"endArrow"`
	Stroke     *SceneStroke `yaml:"stroke"`
}

// SceneStroke describes the stroke style of an arrow.
type SceneStroke struct {
	Width      *float64  `yaml:"width"`
	Cap        string    `yaml:"cap"`
	Join       string    `yaml:"join"`
	MiterLimit *float64  `yaml:"miterLimit"`
	Dash       []float64 `yaml:"dash"`
	DashPhase  float64   `yaml:"dashPhase"`
}

var errScene = errors.New("invalid scene")

// item is an arrow of a scene, ready for painting.
type item struct {
	arrow *arrow.Arrow
	style canvas.Style
}

// readScene decodes a scene file.
func readScene(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	scene := &Scene{}
	if err := dec.Decode(scene); err != nil {
		return nil, fmt.Errorf("%w: %w", errScene, err)
	}
	if len(scene.Arrows) == 0 {
		return nil, fmt.Errorf("%w: no arrows", errScene)
	}
	return scene, nil
}

// items converts the scene into configured arrows.
func (s *Scene) items() ([]item, error) {
	res := make([]item, 0, len(s.Arrows))
	for i, sa := range s.Arrows {
		it, err := sa.item()
		if err != nil {
			return nil, fmt.Errorf("arrow %d: %w", i, err)
		}
		res = append(res, it)
	}
	return res, nil
}

func (sa *SceneArrow) item() (item, error) {
	a := arrow.New()
	a.SetPoints(sa.Points)
	a.SetRadius(sa.Radius)
	if sa.Start != nil {
		a.SetStart(*sa.Start)
	}
	if sa.End != nil {
		a.SetEnd(*sa.End)
	}
	if sa.ArrowSize != nil {
		a.SetArrowSize(*sa.ArrowSize)
	}
	if sa.StartArrow != nil {
		a.SetStartArrow(*sa.StartArrow)
	}
	if sa.EndArrow != nil {
		a.SetEndArrow(*sa.EndArrow)
	}

	st := canvas.DefaultStyle()
	st.Width = a.StrokeWidth()
	st.Join = graphics.LineJoinRound
	if ss := sa.Stroke; ss != nil {
		if ss.Width != nil {
			if !(*ss.Width > 0) {
				return item{}, fmt.Errorf("%w: stroke width %g", errScene, *ss.Width)
			}
			st.Width = *ss.Width
		}
		if ss.Cap != "" {
			c, err := parseCap(ss.Cap)
			if err != nil {
				return item{}, err
			}
			st.Cap = c
		}
		if ss.Join != "" {
			j, err := parseJoin(ss.Join)
			if err != nil {
				return item{}, err
			}
			st.Join = j
		}
		if ss.MiterLimit != nil {
			st.MiterLimit = *ss.MiterLimit
		}
		st.Dash = ss.Dash
		st.DashPhase = ss.DashPhase
	}
	a.SetStrokeWidth(st.Width)

	// Report invalid geometry before anything is drawn.
	if _, err := a.Path(); err != nil {
		return item{}, err
	}
	return item{arrow: a, style: st}, nil
}

// caseItems returns the single arrow of a named test case, given as
// "category/name", together with the canvas size of the case.
func caseItems(name string) ([]item, float64, float64, error) {
	category, caseName, ok := strings.Cut(name, "/")
	if ok {
		for _, tc := range testcases.All[category] {
			if tc.Name == caseName {
				it := item{arrow: tc.Arrow(), style: tc.Stroke}
				return []item{it}, float64(tc.Width), float64(tc.Height), nil
			}
		}
	}
	return nil, 0, 0, fmt.Errorf("unknown test case %q", name)
}

// fitSize returns a canvas size which contains all arrows, including
// stroke and arrowheads.
func fitSize(items []item) (float64, float64) {
	var w, h float64
	for _, it := range items {
		p, err := it.arrow.Path()
		if err != nil || len(p.Segments) == 0 {
			continue
		}
		b := p.Bounds()
		margin := it.style.Width + it.arrow.ArrowSize()
		w = max(w, b.URx+margin)
		h = max(h, b.URy+margin)
	}
	return math.Ceil(max(w, 1)), math.Ceil(max(h, 1))
}

func parseCap(s string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(s) {
	case "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	}
	return 0, fmt.Errorf("%w: unknown line cap %q", errScene, s)
}

func parseJoin(s string) (graphics.LineJoinStyle, error) {
	switch strings.ToLower(s) {
	case "miter":
		return graphics.LineJoinMiter, nil
	case "round":
		return graphics.LineJoinRound, nil
	case "bevel":
		return graphics.LineJoinBevel, nil
	}
	return 0, fmt.Errorf("%w: unknown line join %q", errScene, s)
}
