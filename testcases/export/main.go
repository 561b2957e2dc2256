// Command export writes the arrow test cases, together with the drawing
// calls they produce, to JSON.  The output can be used to check other
// implementations of the renderer against this one.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/arrow/record"
	"seehuhn.de/go/arrow/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string    `json:"name"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Points     []float64 `json:"points"`
	Radius     float64   `json:"radius"`
	Start      float64   `json:"start"`
	End        float64   `json:"end"`
	ArrowSize  float64   `json:"arrow_size"`
	StartArrow bool      `json:"start_arrow,omitempty"`
	EndArrow   bool      `json:"end_arrow,omitempty"`
	LineWidth  float64   `json:"line_width"`
	LineCap    string    `json:"line_cap"`
	LineJoin   string    `json:"line_join"`
	Dash       []float64 `json:"dash,omitempty"`
	Calls      []jsonOp  `json:"calls"`
	Error      string    `json:"error,omitempty"`
}

type jsonOp struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args,omitempty"`
	CCW  bool      `json:"ccw,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Points:     tc.Points,
		Radius:     tc.Radius,
		Start:      tc.Start,
		End:        tc.End,
		ArrowSize:  tc.ArrowSize,
		StartArrow: tc.StartArrow,
		EndArrow:   tc.EndArrow,
		LineWidth:  tc.Stroke.Width,
		LineCap:    tc.Stroke.Cap.String(),
		LineJoin:   tc.Stroke.Join.String(),
		Dash:       tc.Stroke.Dash,
	}

	var s record.Surface
	if _, err := tc.Arrow().Paint(&s); err != nil {
		jtc.Error = err.Error()
	}
	for _, op := range s.Ops {
		jtc.Calls = append(jtc.Calls, jsonOp{
			Op:   op.Kind.String(),
			Args: op.Args,
			CCW:  op.CCW,
		})
	}
	return jtc
}
