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

// Package record provides a drawing surface which records all calls.
// It is used to inspect the output of the arrow renderer.
package record

import (
	"fmt"
	"strings"
)

// Kind identifies a drawing operation.
type Kind int

const (
	BeginPath Kind = iota
	MoveTo
	LineTo
	Arc
	ClosePath
	SetDashOffset
	Stroke
	Fill
)

func (k Kind) String() string {
	switch k {
	case BeginPath:
		return "BeginPath"
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case Arc:
		return "Arc"
	case ClosePath:
		return "ClosePath"
	case SetDashOffset:
		return "SetDashOffset"
	case Stroke:
		return "Stroke"
	case Fill:
		return "Fill"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Op is a single recorded call.  Args holds the numeric arguments in
// call order.  For Arc, CCW holds the direction flag.
type Op struct {
	Kind Kind
	Args []float64
	CCW  bool
}

func (op Op) String() string {
	var b strings.Builder
	b.WriteString(op.Kind.String())
	if len(op.Args) > 0 || op.Kind == Arc {
		b.WriteByte('(')
		for i, x := range op.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", x)
		}
		if op.Kind == Arc {
			fmt.Fprintf(&b, ", ccw=%t", op.CCW)
		}
		b.WriteByte(')')
	}
	return b.String()
}

// Surface records drawing calls.  The zero value is ready to use.
type Surface struct {
	Ops []Op
}

func (s *Surface) add(k Kind, args ...float64) {
	s.Ops = append(s.Ops, Op{Kind: k, Args: args})
}

func (s *Surface) BeginPath()          { s.add(BeginPath) }
func (s *Surface) MoveTo(x, y float64) { s.add(MoveTo, x, y) }
func (s *Surface) LineTo(x, y float64) { s.add(LineTo, x, y) }
func (s *Surface) ClosePath()          { s.add(ClosePath) }
func (s *Surface) Stroke()             { s.add(Stroke) }
func (s *Surface) Fill()               { s.add(Fill) }

func (s *Surface) SetDashOffset(offset float64) {
	s.add(SetDashOffset, offset)
}

func (s *Surface) Arc(cx, cy, r, a0, a1 float64, counterClockwise bool) {
	s.Ops = append(s.Ops, Op{
		Kind: Arc,
		Args: []float64{cx, cy, r, a0, a1},
		CCW:  counterClockwise,
	})
}

// Reset discards all recorded operations.
func (s *Surface) Reset() {
	s.Ops = s.Ops[:0]
}

// Kinds returns the kinds of all recorded operations, in order.
func (s *Surface) Kinds() []Kind {
	res := make([]Kind, len(s.Ops))
	for i, op := range s.Ops {
		res[i] = op.Kind
	}
	return res
}

// Count returns the number of recorded operations of the given kind.
func (s *Surface) Count(k Kind) int {
	n := 0
	for _, op := range s.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Between returns the operations recorded after the first operation of
// kind from and before the next operation of kind to.  The result is nil
// if there is no operation of kind from.
func (s *Surface) Between(from, to Kind) []Op {
	for i, op := range s.Ops {
		if op.Kind != from {
			continue
		}
		for j := i + 1; j < len(s.Ops); j++ {
			if s.Ops[j].Kind == to {
				return s.Ops[i+1 : j]
			}
		}
		return s.Ops[i+1:]
	}
	return nil
}
