// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Fmt holds formatting codes for curves and markers
type Fmt struct {
	C  string  // colour; e.g. "k", "r", "b"
	Ls string  // line style: "-", "--", ":" or "none"
	M  string  // marker: "o", "^", "s" or ""
	L  string  // label
	Lw float64 // line width in points; 0 means 1
}

// colours holds the colours known by Fmt
var colours = map[string]color.RGBA{
	"k": {A: 255},
	"r": {R: 220, A: 255},
	"b": {B: 220, A: 255},
	"g": {G: 150, A: 255},
	"m": {R: 180, B: 180, A: 255},
}

// colour returns the colour of C; black if unknown
func (o Fmt) colour() color.Color {
	if c, ok := colours[o.C]; ok {
		return c
	}
	return colours["k"]
}

// lineStyle returns the line style
func (o Fmt) lineStyle() draw.LineStyle {
	lw := o.Lw
	if lw == 0 {
		lw = 1
	}
	s := draw.LineStyle{Color: o.colour(), Width: vg.Points(lw)}
	switch o.Ls {
	case "--":
		s.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	case ":":
		s.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	}
	return s
}

// glyphStyle returns the marker style
func (o Fmt) glyphStyle() draw.GlyphStyle {
	s := draw.GlyphStyle{Color: o.colour(), Radius: vg.Points(3)}
	switch o.M {
	case "^":
		s.Shape = draw.TriangleGlyph{}
	case "s":
		s.Shape = draw.SquareGlyph{}
	default:
		s.Shape = draw.CircleGlyph{}
	}
	return s
}

// hasLine tells whether the curve is drawn with a line
func (o Fmt) hasLine() bool {
	return o.Ls != "none" && !(o.Ls == "" && o.M != "")
}

// xys converts slices into plotter points
func xys(X, Y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(X))
	for i := range X {
		pts[i].X, pts[i].Y = X[i], Y[i]
	}
	return pts
}

// GetTexLabel returns the axis label of a quantity with unit
func GetTexLabel(key, unit string) string {
	var l string
	switch key {
	case "h":
		l = "h"
	case "theta":
		l = "θ"
	case "se":
		l = "Se"
	default:
		l = key
	}
	if unit != "" {
		l += " (" + unit + ")"
	}
	return l
}
