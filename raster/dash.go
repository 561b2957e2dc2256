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

import "math"

// dasher splits stroke segments into the "on" pieces of a dash pattern.
type dasher struct {
	pattern []float64 // odd patterns are stored twice
	total   float64

	idx       int     // current pattern entry
	remaining float64 // length left in the current entry

	out     []strokeSegment
	offsets []int
}

// setPattern installs a dash pattern.  It returns false if the pattern
// does not produce dashes, in which case lines are drawn solid.
func (d *dasher) setPattern(dash []float64) bool {
	d.pattern = d.pattern[:0]
	d.total = 0
	for _, l := range dash {
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return false
		}
		d.total += l
	}
	if d.total <= 0 {
		return false
	}
	d.pattern = append(d.pattern, dash...)
	if len(dash)%2 == 1 {
		d.pattern = append(d.pattern, dash...)
		d.total *= 2
	}
	return true
}

// start positions the pattern at the given phase.  The pattern restarts
// at every subpath.
func (d *dasher) start(phase float64) {
	phase = math.Mod(phase, d.total)
	if phase < 0 {
		phase += d.total
	}
	d.idx = 0
	d.remaining = d.pattern[0]
	for phase > 0 {
		if phase >= d.remaining {
			phase -= d.remaining
			d.idx = (d.idx + 1) % len(d.pattern)
			d.remaining = d.pattern[d.idx]
		} else {
			d.remaining -= phase
			phase = 0
		}
	}
}

// split walks along segs and calls emit for every connected "on" piece.
// The slice passed to emit is only valid during the call.
func (d *dasher) split(segs []strokeSegment, emit func([]strokeSegment)) {
	d.out = d.out[:0]
	d.offsets = d.offsets[:0]

	pieceStart := 0
	endPiece := func() {
		if len(d.out) > pieceStart {
			d.offsets = append(d.offsets, pieceStart)
		}
		pieceStart = len(d.out)
	}

	for _, seg := range segs {
		segLen := seg.B.Sub(seg.A).Length()
		pos := 0.0
		for pos < segLen {
			on := d.idx%2 == 0
			step := min(d.remaining, segLen-pos)
			if on && step > zeroLengthThreshold {
				a := seg.A.Add(seg.T.Mul(pos))
				b := seg.A.Add(seg.T.Mul(pos + step))
				if pos+step >= segLen {
					b = seg.B
				}
				d.out = append(d.out, strokeSegment{A: a, B: b, T: seg.T, N: seg.N})
			}
			pos += step
			d.remaining -= step
			if d.remaining <= 0 {
				if on {
					endPiece()
				}
				d.idx = (d.idx + 1) % len(d.pattern)
				d.remaining = d.pattern[d.idx]
			}
		}
	}
	endPiece()

	for i, first := range d.offsets {
		last := len(d.out)
		if i+1 < len(d.offsets) {
			last = d.offsets[i+1]
		}
		emit(d.out[first:last])
	}
}
