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

var dashCases = []TestCase{
	{
		Name:   "full",
		Points: uShape,
		Radius: 12,
		End:    1,
		Stroke: dashed(3, 6, 4),
		Width:  64,
		Height: 64,
	},
	{
		// The dash offset carries over the skipped clockwise corner.
		Name:   "after_corner",
		Points: []float64{8, 8, 56, 8, 56, 56},
		Radius: 16,
		Start:  0.6,
		End:    1,
		Stroke: dashed(3, 6, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "counter_clockwise",
		Points: []float64{8, 56, 56, 56, 56, 8},
		Radius: 16,
		Start:  0.6,
		End:    1,
		Stroke: dashed(3, 6, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:      "with_arrow",
		Points:    []float64{8, 32, 32, 32, 32, 8, 56, 8},
		Radius:    8,
		End:       1,
		ArrowSize: 10,
		EndArrow:  true,
		Stroke:    dashed(2, 4),
		Width:     64,
		Height:    64,
	},
}
