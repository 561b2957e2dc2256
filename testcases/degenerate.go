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

package testcases

var degenerateCases = []TestCase{
	{
		Name:   "collinear",
		Points: []float64{8, 32, 32, 32, 56, 32},
		Radius: 10,
		End:    1,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "reversal",
		Points: []float64{8, 32, 56, 32, 24, 32},
		Radius: 10,
		End:    1,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "repeated_vertex",
		Points: []float64{8, 8, 32, 32, 32, 32, 56, 8},
		Radius: 6,
		End:    1,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:      "zero_radius",
		Points:    []float64{8, 8, 56, 8, 56, 56},
		End:       1,
		ArrowSize: 10,
		EndArrow:  true,
		Stroke:    solid(4),
		Width:     64,
		Height:    64,
	},
	{
		Name:   "single_point",
		Points: []float64{32, 32},
		End:    1,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
}
