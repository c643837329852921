// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sekika/hystfit/hyst"
	"github.com/sekika/hystfit/mdl/retention"
	"gonum.org/v1/gonum/floats"
)

// CurveSmooth is the number of points of fitted drying curves
var CurveSmooth = 100

// FitFigure adds a figure with the drying and wetting data, the fitted drying curve
// and the scanning curve of the fitted hysteresis parameters
//  hd, θd -- drying data; may be empty
//  hw, θw -- wetting data in the order of wetting
//  p      -- fitted hysteresis parameters
// cos(γ0) of f is restored after the scanning curve is computed
func (o *Plotter) FitFigure(title string, f *hyst.Fit, hd, θd, hw, θw []float64, p hyst.Params) (err error) {

	// check
	if f.Dry == nil {
		return hyst.ErrNoBoundary
	}
	if len(hw) == 0 || len(hw) != len(θw) || len(hd) != len(θd) {
		return chk.Err("cannot draw figure with %d drying and %d wetting points\n", len(hd), len(hw))
	}

	// ranges
	qsDry := f.Dry.ThetaS()
	if f.DryFit != nil {
		qsDry = f.DryFit.Qs
	}
	hmax, θmax := floats.Max(hw), math.Max(qsDry, floats.Max(θw))
	if len(hd) > 0 {
		hmax, θmax = math.Max(hmax, floats.Max(hd)), math.Max(θmax, floats.Max(θd))
	}
	s := o.Splot(title, GetTexLabel("h", "cm"), GetTexLabel("theta", ""), true)
	s.Xrange = []float64{0.8, hmax * 2}
	s.Yrange = []float64{0, θmax * 1.1}

	// data; h = 0 is drawn at h = 1
	if len(hd) > 0 {
		if err = o.Plot(ones(hd), θd, Fmt{C: "k", M: "o", L: "Drying"}); err != nil {
			return
		}
	}
	if err = o.Plot(ones(hw), θw, Fmt{C: "r", M: "^", L: "Wetting"}); err != nil {
		return
	}

	// drying curve with the fitted θs
	dry := f.Dry
	if f.DryFit != nil {
		if dry, err = f.DryFit.NewModel(0); err != nil {
			return
		}
	}
	H, Θ, err := retention.Curve(dry, s.Xrange[0], s.Xrange[1], CurveSmooth)
	if err != nil {
		return
	}
	if err = o.Plot(H, Θ, Fmt{C: "k", Ls: "--", L: dry.Name()}); err != nil {
		return
	}

	// scanning curve
	prev := f.CosG0
	defer func() { f.CosG0 = prev }()
	θ := hyst.SmoothTheta([]float64{floats.Min(θw), f.Dry.ThetaS()}, 0.005)
	if f.CosG0, err = f.Contact(hw[0], θw[0]); err != nil {
		return
	}
	h, err := f.H(p, θ, true)
	if err != nil {
		return
	}
	return o.Plot(h, θ, Fmt{C: "r", Ls: ":", L: "Zhou"})
}

// ZhouCase holds the parameters of a scanning curve figure of Zhou (2013)
type ZhouCase struct {
	Label string    // label of figure
	Angle float64   // advancing contact angle in degrees
	B     float64   // shape exponent
	Theta []float64 // effective saturations visited after (1, 0.07, 1, 0.3)
}

// Zhou2013Fig6 holds the cases of Fig. 6 of Zhou (2013)
var Zhou2013Fig6 = []ZhouCase{
	{"a", 85, 0.3, []float64{0.70, 0.55, 0.90, 0.80}},
	{"b", 85, 0.6, []float64{0.85, 0.55, 0.95, 0.80}},
	{"c", 70, 0.3, []float64{0.92, 0.91, 0.55, 0.98}},
	{"d", 70, 0.6, []float64{0.92, 0.91, 0.55, 0.98}},
}

// ZhouFigure adds a figure of scanning curves with the drying curve of Zhou (2013):
// α⁻¹ = 180 kPa, n = 1.65, θs = 1 and θr = 0
// returns the computed curve
func (o *Plotter) ZhouFigure(c ZhouCase) (h, θ []float64, err error) {
	α, n := 1.0/180.0, 1.65
	p := hyst.Params{CosGa: math.Cos(c.Angle * (math.Pi / 180)), B: c.B}
	z := hyst.NewHyst()
	if err = z.SetVG(1, 0, α, n); err != nil {
		return
	}
	θ = hyst.SmoothTheta(append([]float64{1, 0.07, 1, 0.3}, c.Theta...), 0.005)
	if h, err = z.H(p, θ, true); err != nil {
		return
	}
	s := o.Splot(io.Sf("Zhou (2013) Fig. 6%s", c.Label), GetTexLabel("h", "kPa"), GetTexLabel("se", ""), true)
	s.Xrange = []float64{1, 10000}
	s.Yrange = []float64{0, 1}
	s.Text = io.Sf("1/α = %d kPa  n = %.2f  γA = %g°  b = %.2f", int(1/α), n, c.Angle, c.B)
	err = o.Plot(h, θ, Fmt{C: "k", Ls: "-"})
	return
}

// ones replaces h = 0 by h = 1 for logarithmic axes
func ones(h []float64) []float64 {
	res := make([]float64, len(h))
	for i, v := range h {
		res[i] = v
		if v == 0 {
			res[i] = 1
		}
	}
	return res
}
