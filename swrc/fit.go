// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package swrc fits drying (boundary) soil water retention curves with θr = 0
//  References:
//   [1] van Genuchten MT (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils. Soil Sci Soc Am J, 44, 892-898
//   [2] Fredlund DG and Xing A (1994) Equations for the soil-water characteristic curve.
//       Can Geotech J, 31, 521-532
package swrc

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/sekika/hystfit/lsq"
	"github.com/sekika/hystfit/mdl/retention"
	"gonum.org/v1/gonum/floats"
)

// Models lists the names of the models that can be fitted
var Models = []string{"VG", "FX"}

// Result holds a fitted drying curve
type Result struct {

	// parameters
	Model string  // "VG" or "FX"
	Qs    float64 // θs
	Alpha float64 // VG: α
	A     float64 // FX: a
	M     float64 // m
	N     float64 // n

	// solution
	QsFixed bool      // θs was given instead of fitted
	Fitted  []float64 // solution vector: VG (θs, α, m); FX (θs, a, m, n); θs omitted if QsFixed
	Success bool      // least squares converged
	Message string    // description of the termination reason
	Nfev    int       // number of function evaluations

	// statistics; only if Success
	Stats
}

// Theta computes θ(h) of the fitted curve
func (o *Result) Theta(h float64) float64 {
	if o.Model == "VG" {
		return ThetaVG(h, o.Qs, o.Alpha, o.M)
	}
	return ThetaFX(h, o.Qs, o.A, o.M, o.N)
}

// Params returns the parameters of the retention model with θr = 0 and the given θs;
// use qs ≤ 0 to keep the fitted θs
func (o *Result) Params(qs float64) dbf.Params {
	if qs <= 0 {
		qs = o.Qs
	}
	if o.Model == "VG" {
		return dbf.Params{
			&dbf.P{N: "qs", V: qs},
			&dbf.P{N: "qr", V: 0},
			&dbf.P{N: "alp", V: o.Alpha},
			&dbf.P{N: "n", V: o.N},
		}
	}
	return dbf.Params{
		&dbf.P{N: "qs", V: qs},
		&dbf.P{N: "qr", V: 0},
		&dbf.P{N: "a", V: o.A},
		&dbf.P{N: "m", V: o.M},
		&dbf.P{N: "n", V: o.N},
	}
}

// NewModel allocates and initialises the retention model with θr = 0 and the given θs;
// use qs ≤ 0 to keep the fitted θs
func (o *Result) NewModel(qs float64) (mdl retention.Model, err error) {
	mdl, err = retention.New(o.Model)
	if err != nil {
		return
	}
	err = mdl.Init(o.Params(qs))
	return
}

// String returns the fitted parameters
func (o *Result) String() string {
	if o.Model == "VG" {
		return io.Sf("qs = %.3g alpha = %.3g n = %.3g", o.Qs, o.Alpha, o.N)
	}
	return io.Sf("qs = %.3g a = %.3g m = %.3g n = %.3g", o.Qs, o.A, o.M, o.N)
}

// Fitter fits drying curves
type Fitter struct {
	Lsq   lsq.Config // least squares settings
	QsMin float64    // lower bound of θs as a factor of max θ
	QsMax float64    // upper bound of θs as a factor of max θ
	Qs    float64    // measured θs; 0 means θs is fitted
}

// NewFitter returns a new Fitter with default settings
func NewFitter() *Fitter {
	o := &Fitter{Lsq: lsq.DefaultConfig(), QsMin: 0.99, QsMax: 1.1}
	o.Lsq.MaxNfev = 2000
	return o
}

// Fit fits the model to the data (h, θ)
func (o *Fitter) Fit(model string, h, θ []float64) (res *Result, err error) {

	// check
	if err = checkData(h, θ); err != nil {
		return
	}
	model = strings.ToUpper(model)
	var k int
	switch model {
	case "VG":
		k = 3
	case "FX":
		k = 4
	default:
		return nil, chk.Err("swrc: cannot fit model %q; available models are %v\n", model, Models)
	}

	// θs
	res = &Result{Model: model, QsFixed: o.Qs > 0}
	qs := floats.Max(θ)
	lo, hi := []float64{o.QsMin * qs}, []float64{o.QsMax * qs}
	if res.QsFixed {
		qs = o.Qs
		lo, hi, k = nil, nil, k-1
	}

	// initial values and bounds
	var x0 []float64
	if model == "VG" {
		α, m, e := InitVG(h, θ, qs)
		if e != nil {
			return nil, e
		}
		x0 = []float64{α, m}
		lo = append(lo, 0, 0)
		hi = append(hi, math.Inf(1), 1-1e-9) // n = 1/(1-m) is infinite at m = 1
	} else {
		a, m, n, e := InitFX(h, θ, qs)
		if e != nil {
			return nil, e
		}
		x0 = []float64{a, m, n}
		lo = append(lo, 0, 0, 0)
		hi = append(hi, math.Inf(1), math.Inf(1), math.Inf(1))
	}
	if !res.QsFixed {
		x0 = append([]float64{qs}, x0...)
	}

	// residuals
	unpack := func(x []float64) {
		p := x
		if !res.QsFixed {
			res.Qs, p = x[0], x[1:]
		} else {
			res.Qs = qs
		}
		if model == "VG" {
			res.Alpha, res.M = p[0], p[1]
			res.N = 1 / (1 - res.M)
			return
		}
		res.A, res.M, res.N = p[0], p[1], p[2]
	}
	fcn := func(r, x []float64) error {
		unpack(x)
		for i, hh := range h {
			r[i] = res.Theta(hh) - θ[i]
		}
		return nil
	}

	// solve
	sol, err := lsq.SolveSeq(fcn, len(h), x0, lo, hi, &o.Lsq)
	if err != nil {
		return nil, err
	}
	unpack(sol.X)
	res.Fitted = sol.X
	res.Success = sol.Success
	res.Message = sol.Message
	res.Nfev = sol.Nfev
	if !res.Success {
		return
	}

	// statistics
	pred := make([]float64, len(h))
	for i, hh := range h {
		pred[i] = res.Theta(hh)
	}
	res.Stats, err = Statistics(θ, pred, k)
	if err != nil {
		return nil, err
	}
	res.Message = res.String()
	return
}

// Best fits all models and returns the successful fit with the smallest AICc (or AIC)
func (o *Fitter) Best(h, θ []float64) (best *Result, err error) {
	for _, name := range Models {
		res, e := o.Fit(name, h, θ)
		if e != nil {
			return nil, e
		}
		if !res.Success {
			continue
		}
		if best == nil || res.Criterion() < best.Criterion() {
			best = res
		}
	}
	if best == nil {
		return nil, chk.Err("swrc: none of the models %v converged\n", Models)
	}
	return
}

// checkData checks measured drying data
func checkData(h, θ []float64) error {
	if len(h) != len(θ) {
		return chk.Err("swrc: h (%d) and θ (%d) must have the same length\n", len(h), len(θ))
	}
	if len(h) == 0 {
		return chk.Err("swrc: there are no data points\n")
	}
	for i := range h {
		if h[i] < 0 || θ[i] < 0 {
			return chk.Err("swrc: negative data point (h, θ) = (%g, %g) is not allowed\n", h[i], θ[i])
		}
	}
	return nil
}
