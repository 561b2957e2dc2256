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

// U shaped path with two rounded corners, reused for the windows below.
var uShape = []float64{8, 8, 8, 56, 56, 56, 56, 8}

var partialCases = []TestCase{
	{
		Name:   "first_half",
		Points: uShape,
		Radius: 12,
		End:    0.5,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "second_half",
		Points: uShape,
		Radius: 12,
		Start:  0.5,
		End:    1,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "middle",
		Points: uShape,
		Radius: 12,
		Start:  0.3,
		End:    0.7,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "reversed_window",
		Points: uShape,
		Radius: 12,
		Start:  0.7,
		End:    0.3,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "inside_arc",
		Points: uShape,
		Radius: 20,
		Start:  0.3,
		End:    0.4,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "empty_window",
		Points: uShape,
		Radius: 12,
		Start:  0.4,
		End:    0.4,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "empty_window_round",
		Points: uShape,
		Radius: 12,
		Start:  0.4,
		End:    0.4,
		Stroke: rounded(4),
		Width:  64,
		Height: 64,
	},
}
