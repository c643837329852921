// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyst

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// H computes the pressure heads of the scanning curve passing through the water contents x
//  p    -- hysteresis parameters
//  x    -- water contents (θ0, θ1, θ2, ...); the curve starts at θ0 with cos(γ0)
//  cont -- the contact angle of the last point becomes cos(γ0) of the next call
// returns (h0, h1, h2, ...)
func (o *Hyst) H(p Params, x []float64, cont bool) (res []float64, err error) {
	res = make([]float64, len(x))
	err = o.trace(res, p, x, cont)
	if err != nil {
		return nil, err
	}
	return
}

// trace computes H into res; len(res) == len(x)
func (o *Hyst) trace(res []float64, p Params, x []float64, cont bool) (err error) {

	// check
	if o.Dry == nil {
		return ErrNoBoundary
	}
	if len(x) == 0 {
		return fmt.Errorf("%w: sequence of water contents is empty", ErrInvalidInput)
	}
	if math.IsNaN(o.CosG0) {
		return fmt.Errorf("%w: cos(γ0) is NaN", ErrComputation)
	}
	θs, θr := o.Dry.ThetaS(), o.Dry.ThetaR()
	if floats.Max(x) > θs*o.MaxSe && !o.NoWarn {
		io.Pforan("Effective saturation exceeding %g is fixed to %g.\n", o.MaxSe, o.MaxSe)
	}
	if xmin := floats.Min(x); xmin < θr {
		return fmt.Errorf("%w: θ = %g < θr = %g", ErrBelowResidual, xmin, θr)
	}

	// initial point
	hd, err := o.dryH(o.Se(x[0]))
	if err != nil {
		return
	}
	st := State{H: hd * o.CosG0 / o.CosGr, Theta: x[0]}
	res[0] = st.H

	// follow scanning curve
	maxθ := float64(o.MaxSe*(θs-θr)) + θr
	for i := 1; i < len(x); i++ {
		st, err = o.Advance(st, math.Min(x[i], maxθ), p)
		if err != nil {
			return
		}
		res[i] = st.H
	}
	if o.Verbose {
		io.Pf("trace: cos(γA)=%g b=%g cos(γ0)=%g h=%v\n", p.CosGa, p.B, o.CosG0, res)
	}

	// contact angle for next call
	if cont {
		cosG0, e := o.Contact(res[len(res)-1], x[len(x)-1])
		if e != nil {
			return e
		}
		if !(cosG0 >= 0) {
			return fmt.Errorf("%w: cos(γ0) = %g of last point is negative", ErrComputation, cosG0)
		}
		o.CosG0 = cosG0
	}
	return
}

// Advance applies Step until the water content reaches t
func (o *Hyst) Advance(st State, t float64, p Params) (State, error) {
	var err error
	for n := 0; st.Theta != t; n++ {
		if o.MaxSteps > 0 && n >= o.MaxSteps {
			return st, fmt.Errorf("%w: θ = %g was not reached from θ = %g after %d steps", ErrComputation, t, st.Theta, n)
		}
		st, err = o.Step(st, t, p)
		if err != nil {
			return st, err
		}
	}
	return st, nil
}

// Step performs one adaptive step from st towards the water content t
func (o *Hyst) Step(st State, t float64, p Params) (State, error) {
	h, θ := st.H, st.Theta
	Δθ := o.Dry.ThetaS() - o.Dry.ThetaR()
	dt := t - θ
	se := o.Se(θ)

	// drying beyond the drying curve or saturated: follow the drying curve
	if o.Dry.Se(h)*o.MaxSe < se && dt < 0 || h == 0 {
		hd, err := o.dryH(se)
		if err != nil {
			return st, err
		}
		return State{H: hd, Theta: t}, nil
	}

	// increments
	if math.Abs(dt) > o.DeltaTheta {
		dt = math.Copysign(o.DeltaTheta, dt)
	}
	dse := dt / Δθ
	c, err := o.Dsedh(h, θ, dt, p)
	if err != nil {
		return st, err
	}
	var dh float64
	if math.Abs(dse) < o.DeltaH*math.Abs(c) {
		dh = dse / c
	} else {
		dh = -math.Copysign(o.DeltaH, dt)
		dse = dh * c
		dt = float64(dse * Δθ)
	}

	// update; the scanning curve cannot cross the drying curve
	h = math.Max(h+dh, 0)
	θ += dt
	hd, err := o.dryH(o.Se(θ))
	if err != nil {
		return st, err
	}
	if h > hd {
		h = hd
	}
	return State{H: h, Theta: θ}, nil
}
