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

// Command arrowdraw renders arrows to PNG or PDF.
//
// Usage:
//
//	arrowdraw [-v] [-scale s] -o out.png scene.yaml
//	arrowdraw [-v] -case dash/after_corner -o out.pdf
//
// The output format is chosen by the extension of the output file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/arrow"
	"seehuhn.de/go/arrow/canvas"
	"seehuhn.de/go/arrow/pdfout"
	"seehuhn.de/go/arrow/raster"
	"seehuhn.de/go/arrow/testcases"
)

func main() {
	out := flag.String("o", "", "output file (.png or .pdf)")
	caseName := flag.String("case", "", "render the named test case instead of a scene file")
	scale := flag.Float64("scale", 1, "pixels per unit for PNG output")
	list := flag.Bool("list", false, "list the test case names and exit")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	arrow.SetLogger(logger)

	if *list {
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, tc := range testcases.All[category] {
				fmt.Println(category + "/" + tc.Name)
			}
		}
		return
	}

	if err := run(*out, *caseName, flag.Args(), *scale, logger); err != nil {
		fmt.Fprintln(os.Stderr, "arrowdraw:", err)
		os.Exit(1)
	}
}

func run(out, caseName string, args []string, scale float64, logger *slog.Logger) error {
	if out == "" {
		return errors.New("missing output file (-o)")
	}
	if !(scale > 0) {
		return fmt.Errorf("invalid scale %g", scale)
	}

	var items []item
	var width, height float64
	switch {
	case caseName != "":
		var err error
		items, width, height, err = caseItems(caseName)
		if err != nil {
			return err
		}
	case len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		scene, err := readScene(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		items, err = scene.items()
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		width, height = scene.Width, scene.Height
		if width <= 0 || height <= 0 {
			width, height = fitSize(items)
		}
	default:
		return errors.New("need exactly one scene file or -case")
	}

	logger.Debug("rendering", "arrows", len(items), "width", width, "height", height, "out", out)

	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".png":
		return writePNG(out, items, width, height, scale)
	case ".pdf":
		return pdfout.WriteFile(out, width, height, canvas.DefaultStyle(), func(c *canvas.Canvas) error {
			return paintAll(c, items)
		})
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

// paintAll paints the items in order onto c.
func paintAll(c *canvas.Canvas, items []item) error {
	for i, it := range items {
		c.Style = it.style
		if _, err := it.arrow.Paint(c); err != nil {
			return fmt.Errorf("arrow %d: %w", i, err)
		}
	}
	return nil
}

func writePNG(fname string, items []item, width, height, scale float64) (err error) {
	w := max(int(width*scale+0.5), 1)
	h := max(int(height*scale+0.5), 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	r := raster.NewPainter(img)
	r.CTM = matrix.Scale(scale, scale)
	if err := paintAll(canvas.New(r), items); err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
