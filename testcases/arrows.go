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

var arrowCases = []TestCase{
	{
		Name:      "end",
		Points:    []float64{8, 32, 56, 32},
		End:       1,
		ArrowSize: 10,
		EndArrow:  true,
		Stroke:    solid(2),
		Width:     64,
		Height:    64,
	},
	{
		Name:       "both",
		Points:     []float64{8, 8, 56, 8, 56, 56},
		Radius:     16,
		End:        1,
		ArrowSize:  10,
		StartArrow: true,
		EndArrow:   true,
		Stroke:     solid(2),
		Width:      64,
		Height:     64,
	},
	{
		Name:      "growing",
		Points:    []float64{8, 32, 56, 32},
		End:       0.1,
		ArrowSize: 10,
		EndArrow:  true,
		Stroke:    solid(2),
		Width:     64,
		Height:    64,
	},
	{
		Name:       "shrinking",
		Points:     []float64{8, 32, 56, 32},
		Start:      0.95,
		End:        1,
		ArrowSize:  10,
		StartArrow: true,
		Stroke:     solid(2),
		Width:      64,
		Height:     64,
	},
	{
		Name:      "wide_stroke",
		Points:    []float64{8, 56, 8, 8, 56, 8},
		Radius:    10,
		End:       1,
		ArrowSize: 16,
		EndArrow:  true,
		Stroke:    solid(6),
		Width:     64,
		Height:    64,
	},
	{
		Name:       "partial_both",
		Points:     uShape,
		Radius:     12,
		Start:      0.2,
		End:        0.8,
		ArrowSize:  8,
		StartArrow: true,
		EndArrow:   true,
		Stroke:     solid(2),
		Width:      64,
		Height:     64,
	},
}
