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

var basicCases = []TestCase{
	{
		Name:   "straight",
		Points: []float64{8, 32, 56, 32},
		End:    1,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "right_angle",
		Points: []float64{8, 8, 40, 8, 40, 56},
		Radius: 12,
		End:    1,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "left_turn",
		Points: []float64{8, 56, 40, 56, 40, 8},
		Radius: 12,
		End:    1,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag",
		Points: []float64{6, 54, 22, 10, 38, 54, 58, 10},
		Radius: 6,
		End:    1,
		Stroke: solid(3),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "spiral",
		Points: []float64{8, 8, 88, 8, 88, 88, 24, 88, 24, 24, 72, 24, 72, 72, 40, 72},
		Radius: 10,
		End:    1,
		Stroke: solid(4),
		Width:  96,
		Height: 96,
	},
	{
		Name:   "sharp_corners",
		Points: []float64{8, 8, 56, 8, 8, 56, 56, 56},
		End:    1,
		Stroke: solid(4),
		Width:  64,
		Height: 64,
	},
}
