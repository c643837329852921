// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyst

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/sekika/hystfit/lsq"
	"github.com/sekika/hystfit/swrc"
)

// Result holds the optimised hysteresis parameters and the goodness of fit
type Result struct {
	Hyst    []float64 // (cos(γA), b); empty if not Success
	Success bool      // optimisation converged
	Message string    // fitted parameters or the termination reason
	Nfev    int       // number of cost evaluations of the last solution

	// statistics of h; only if Success
	N       int     // sample size
	K       int     // number of parameters
	MeanH   float64 // mean of measured h
	VarH    float64 // population variance of measured h
	MSE     float64 // mean squared error
	SE      float64 // standard error
	R2      float64 // coefficient of determination
	AIC     float64 // Akaike information criterion
	AICc    float64 // corrected AIC; valid if HasAICc
	HasAICc bool    // n - k - 1 > 0
}

// Params returns the optimised parameters
func (o *Result) Params() Params {
	if len(o.Hyst) < 2 {
		return Params{}
	}
	return Params{CosGa: o.Hyst[0], B: o.Hyst[1]}
}

// Opt optimises (cos(γA), b) from measured points of a scanning curve
//  hm -- measured pressure heads (h0, h1, ...); h > 0
//  θ  -- water contents (θ0, θ1, ...); θr ≤ θ < θs
// The contact angle of the last measured point becomes cos(γ0) of the next trace
func (o *Fit) Opt(hm, θ []float64) (res *Result, err error) {

	// check
	if o.Dry == nil {
		return nil, ErrNoBoundary
	}
	if err = o.checkOpt(hm, θ); err != nil {
		return
	}

	// initial values
	ini := Params{CosGa: math.Inf(1), B: 0.5}
	for i, h := range hm {
		hd, e := o.dryH(o.Se(θ[i]))
		if e != nil {
			return nil, e
		}
		cosG := o.CosGr
		if hd > 0 {
			cosG = o.CosGr * h / hd
		}
		ini.CosGa = math.Min(ini.CosGa, cosG)
	}
	lo := []float64{o.BoundsCosGa[0], o.BoundsB[0]}
	hi := []float64{o.BoundsCosGa[1], o.BoundsB[1]}
	x0 := []float64{ini.CosGa, ini.B}

	// initial contact angle
	cosG0, err := o.Contact(hm[0], θ[0])
	if err != nil {
		return
	}
	cosG0 = math.Min(cosG0, 1)
	prev := o.CosG0
	o.CosG0 = cosG0

	// cost: ln(h_predicted / h_measured)
	hp := make([]float64, len(hm))
	fcn := func(r, x []float64) error {
		if e := o.trace(hp, Params{CosGa: x[0], B: x[1]}, θ, false); e != nil {
			return e
		}
		for i := range r {
			r[i] = math.Log(hp[i] / hm[i])
		}
		return nil
	}

	// solve
	sol, err := lsq.SolveSeq(fcn, len(hm), x0, lo, hi, &o.Lsq)
	if err != nil {
		o.CosG0 = prev
		return nil, err
	}
	res = &Result{Success: sol.Success, Nfev: sol.Nfev}
	if !sol.Success {
		o.CosG0 = prev
		res.Message = sol.Message
		if o.Verbose {
			io.Pforan("opt: %s\n", res.Message)
		}
		return
	}
	res.Hyst = []float64{sol.X[0], sol.X[1]}

	// statistics
	o.CosG0 = cosG0
	hs, err := o.H(res.Params(), θ, true)
	if err != nil {
		return nil, err
	}
	st, err := swrc.Statistics(hm, hs, len(res.Hyst))
	if err != nil {
		return nil, err
	}
	res.N, res.K = st.N, st.K
	res.MeanH, res.VarH = st.Mean, st.Var
	res.MSE, res.SE, res.R2 = st.MSE, st.SE, st.R2
	res.AIC, res.AICc, res.HasAICc = st.AIC, st.AICc, st.HasAICc
	res.Message = io.Sf("cos(γA) = %.3f b = %.2f", res.Hyst[0], res.Hyst[1])
	if o.Verbose {
		io.Pf("opt: %s R² = %.4f nfev = %d\n", res.Message, res.R2, res.Nfev)
	}

	// contact angle of the last measured point
	last := len(hm) - 1
	if o.CosG0, err = o.Contact(hm[last], θ[last]); err != nil {
		return nil, err
	}
	return
}

// checkOpt validates measured data for optimisation
func (o *Fit) checkOpt(hm, θ []float64) error {
	if len(hm) != len(θ) {
		return fmt.Errorf("%w: h has %d points and θ has %d points", ErrLengthMismatch, len(hm), len(θ))
	}
	if len(hm) == 0 {
		return fmt.Errorf("%w: there are no measured points", ErrInvalidInput)
	}
	for i := range hm {
		if math.IsNaN(hm[i]) || math.IsInf(hm[i], 0) {
			return fmt.Errorf("%w: h = %g at point %d", ErrInvalidInput, hm[i], i)
		}
		if math.IsNaN(θ[i]) || math.IsInf(θ[i], 0) {
			return fmt.Errorf("%w: θ = %g at point %d", ErrInvalidInput, θ[i], i)
		}
	}
	for _, h := range hm {
		if h < 0 {
			return fmt.Errorf("%w: h = %g", ErrNegativeHead, h)
		}
	}
	for i, h := range hm {
		if !(h > 0) {
			return fmt.Errorf("%w (point %d)", ErrZeroHead, i)
		}
	}
	maxSe, minSe := math.Inf(-1), math.Inf(1)
	for _, t := range θ {
		se := o.Se(t)
		maxSe, minSe = math.Max(maxSe, se), math.Min(minSe, se)
	}
	if maxSe > 1 {
		return fmt.Errorf("%w: Se = %g", ErrOverSaturated, maxSe)
	}
	if maxSe == 1 {
		return fmt.Errorf("%w (Se = 1)", ErrSaturatedPoint)
	}
	if minSe < 0 {
		return fmt.Errorf("%w: Se = %g", ErrBelowResidual, minSe)
	}
	return nil
}

