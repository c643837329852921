// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// VanGen implements van Genuchten's model with m = 1 - 1/n
//  Se(h) = (1 + (α h)ⁿ)^(1/n - 1)
type VanGen struct {

	// parameters
	θs, θr float64 // saturated and residual water contents
	α, n   float64 // shape parameters

	// derived
	m float64 // 1 - 1/n
}

// add model to factory
func init() {
	allocators["VG"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "qs":
			o.θs = p.V
		case "qr":
			o.θr = p.V
		case "alp":
			o.α = p.V
		case "n":
			o.n = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.θs <= o.θr {
		return chk.Err("vg: qs=%g must be greater than qr=%g\n", o.θs, o.θr)
	}
	if o.α <= 0 || o.n <= 1 {
		return chk.Err("vg: alp=%g must be positive and n=%g must be greater than 1\n", o.α, o.n)
	}
	o.m = 1.0 - 1.0/o.n
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "qs", V: 0.33},
		&dbf.P{N: "qr", V: 0.05},
		&dbf.P{N: "alp", V: 1.0 / 180.0},
		&dbf.P{N: "n", V: 1.65},
	}
}

// Name returns "VG"
func (o VanGen) Name() string { return "VG" }

// ThetaS returns θs
func (o VanGen) ThetaS() float64 { return o.θs }

// ThetaR returns θr
func (o VanGen) ThetaR() float64 { return o.θr }

// Se computes Se(h)
func (o VanGen) Se(h float64) float64 {
	if h <= 0 {
		return 1
	}
	return Pow(1.0+Pow(o.α*h, o.n), 1.0/o.n-1.0)
}

// H computes h(Se)
func (o VanGen) H(se float64) (float64, error) {
	if se >= 1 {
		return 0, nil
	}
	h := Pow(Pow(se, o.n/(1.0-o.n))-1.0, 1.0/o.n) / o.α
	return finite(h, "h(Se)", se)
}

// Dse computes dSe/dh
func (o VanGen) Dse(h float64) (float64, error) {
	if h == 0 {
		return 0, nil
	}
	c := Pow(o.α*h, o.n)
	d := (1.0 - o.n) / h * Pow(1.0+c, (1.0-2.0*o.n)/o.n) * c
	return finite(d, "dSe/dh", h)
}
