// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// FredXing implements Fredlund and Xing's model without the correction factor
//  Se(h) = [ln(e + (h/a)ⁿ)]^(-m)
type FredXing struct {

	// parameters
	θs, θr  float64 // saturated and residual water contents
	a, m, n float64 // shape parameters
}

// add model to factory
func init() {
	allocators["FX"] = func() Model { return new(FredXing) }
}

// Init initialises model
func (o *FredXing) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "qs":
			o.θs = p.V
		case "qr":
			o.θr = p.V
		case "a":
			o.a = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		default:
			return chk.Err("fx: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.θs <= o.θr {
		return chk.Err("fx: qs=%g must be greater than qr=%g\n", o.θs, o.θr)
	}
	if o.a <= 0 || o.m <= 0 || o.n <= 0 {
		return chk.Err("fx: a=%g, m=%g and n=%g must be positive\n", o.a, o.m, o.n)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o FredXing) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "qs", V: 0.35},
		&dbf.P{N: "qr", V: 0.02},
		&dbf.P{N: "a", V: 45},
		&dbf.P{N: "m", V: 1.25},
		&dbf.P{N: "n", V: 7.23},
	}
}

// Name returns "FX"
func (o FredXing) Name() string { return "FX" }

// ThetaS returns θs
func (o FredXing) ThetaS() float64 { return o.θs }

// ThetaR returns θr
func (o FredXing) ThetaR() float64 { return o.θr }

// Se computes Se(h)
func (o FredXing) Se(h float64) float64 {
	if h <= 0 {
		return 1
	}
	return Pow(math.Log(math.E+Pow(h/o.a, o.n)), -o.m)
}

// H computes h(Se)
func (o FredXing) H(se float64) (float64, error) {
	if se >= 1 {
		return 0, nil
	}
	h := o.a * Pow(math.Exp(Pow(se, -1.0/o.m))-math.E, 1.0/o.n)
	return finite(h, "h(Se)", se)
}

// Dse computes dSe/dh
func (o FredXing) Dse(h float64) (float64, error) {
	if h == 0 {
		return 0, nil
	}
	x := Pow(h/o.a, o.n)
	d := -o.m * Pow(o.Se(h), 1.0+1.0/o.m) * o.n / o.a * Pow(h/o.a, o.n-1.0) / (math.E + x)
	return finite(d, "dSe/dh", h)
}
