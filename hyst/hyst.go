// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hyst implements a contact angle-dependent hysteresis model for soil water retention
//  References:
//   [1] Zhou A (2013) A contact angle-dependent hysteresis model for soil–water retention
//       behaviour. Computers and Geotechnics, 49, 36-42,
//       http://dx.doi.org/10.1016/j.compgeo.2012.10.004
package hyst

import (
	"fmt"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/sekika/hystfit/mdl/retention"
)

// Params holds the hysteresis parameters
type Params struct {
	CosGa float64 // cos(γA): cosine of the advancing contact angle
	B     float64 // shape exponent
}

// State holds a point (h, θ) on a scanning curve
type State struct {
	H     float64 // pressure head
	Theta float64 // water content
}

// Hyst holds a hysteresis session: the drying (boundary) curve, the integration
// settings and the contact angle carried between successive traces
type Hyst struct {

	// boundary curve
	Dry retention.Model // drying curve; nil if not set

	// settings
	CosGr      float64 // cos(γR): cosine of the receding contact angle
	DeltaTheta float64 // maximum step of θ
	DeltaH     float64 // step of h when dSe/dh is small
	MaxSe      float64 // maximum effective saturation
	MaxSteps   int     // maximum number of steps to reach one target θ; 0 means unlimited
	NoWarn     bool    // do not print warnings
	Verbose    bool    // print messages

	// state
	CosG0 float64 // cos(γ0): cosine of the initial contact angle
}

// NewHyst returns a new session with default settings
func NewHyst() *Hyst {
	return &Hyst{
		CosGr:      1,
		DeltaTheta: 1e-4,
		DeltaH:     1,
		MaxSe:      1,
		MaxSteps:   10000000,
		CosG0:      1,
	}
}

// SetDry installs the drying curve and resets cos(γ0) to 1
func (o *Hyst) SetDry(mdl retention.Model) {
	o.Dry = mdl
	o.CosG0 = 1
}

// SetVG installs a van Genuchten drying curve
func (o *Hyst) SetVG(θs, θr, α, n float64) (err error) {
	return o.setModel("VG", dbf.Params{
		&dbf.P{N: "qs", V: θs},
		&dbf.P{N: "qr", V: θr},
		&dbf.P{N: "alp", V: α},
		&dbf.P{N: "n", V: n},
	})
}

// SetFX installs a Fredlund-Xing drying curve
func (o *Hyst) SetFX(θs, θr, a, m, n float64) (err error) {
	return o.setModel("FX", dbf.Params{
		&dbf.P{N: "qs", V: θs},
		&dbf.P{N: "qr", V: θr},
		&dbf.P{N: "a", V: a},
		&dbf.P{N: "m", V: m},
		&dbf.P{N: "n", V: n},
	})
}

// setModel allocates, initialises and installs a drying curve
func (o *Hyst) setModel(name string, prms dbf.Params) (err error) {
	mdl, err := retention.New(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err = mdl.Init(prms); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	o.SetDry(mdl)
	return
}

// Se computes the effective saturation (θ-θr)/(θs-θr)
func (o *Hyst) Se(θ float64) float64 {
	return (θ - o.Dry.ThetaR()) / (o.Dry.ThetaS() - o.Dry.ThetaR())
}

// dryH computes h on the drying curve
func (o *Hyst) dryH(se float64) (float64, error) {
	h, err := o.Dry.H(se)
	if err != nil {
		return h, fmt.Errorf("%w: h was not calculated at Se = %g: %w", ErrComputation, se, err)
	}
	return h, nil
}
