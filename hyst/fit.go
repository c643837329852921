// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyst

import (
	"fmt"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/sekika/hystfit/lsq"
	"github.com/sekika/hystfit/swrc"
	"gonum.org/v1/gonum/floats"
)

// Fit fits the hysteresis model: a drying curve fitted to drying data (or given
// directly) and the hysteresis parameters optimised from wetting data
type Fit struct {
	*Hyst

	// settings
	ModelName   string       // "VG" or "FX"; model of the drying curve fitted by InitHyst
	Swrc        *swrc.Fitter // drying curve fitting
	Lsq         lsq.Config   // least squares settings of Opt
	BoundsCosGa [2]float64   // bounds of cos(γA)
	BoundsB     [2]float64   // bounds of b

	// results
	DryFit *swrc.Result // fitted drying curve; nil if set directly
}

// NewFit returns a new fitting session with the drying curve model name
func NewFit(model string) (o *Fit, err error) {
	model = strings.ToUpper(model)
	ok := false
	for _, name := range swrc.Models {
		if name == model {
			ok = true
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: model %q is not implemented; available models are %v", ErrConfig, model, swrc.Models)
	}
	return &Fit{
		Hyst:        NewHyst(),
		ModelName:   model,
		Swrc:        swrc.NewFitter(),
		Lsq:         lsq.DefaultConfig(),
		BoundsCosGa: [2]float64{0, 1},
		BoundsB:     [2]float64{0, 1},
	}, nil
}

// InitHyst fits the drying curve to (h, θ) with θr = 0 and installs it
func (o *Fit) InitHyst(h, θ []float64) (err error) {
	res, err := o.Swrc.Fit(o.ModelName, h, θ)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return o.install(res, 0)
}

// BestModel fits all drying curve models to (h, θ) and installs the one with the
// smallest corrected AIC; ModelName is updated
func (o *Fit) BestModel(h, θ []float64) (err error) {
	res, err := o.Swrc.Best(h, θ)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	o.ModelName = res.Model
	return o.install(res, 0)
}

// SetWettingThetaS reinstalls the fitted drying curve with θs of the wetting branch
func (o *Fit) SetWettingThetaS(qs float64) (err error) {
	if o.DryFit == nil {
		return ErrNoBoundary
	}
	return o.install(o.DryFit, qs)
}

// install installs a fitted drying curve with θs = qs (qs ≤ 0 keeps the fitted θs)
func (o *Fit) install(res *swrc.Result, qs float64) (err error) {
	if !res.Success {
		return fmt.Errorf("%w: drying curve did not converge: %s", ErrComputation, res.Message)
	}
	mdl, err := res.NewModel(qs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	o.DryFit = res
	o.CosGr = 1
	o.SetDry(mdl)
	if o.Verbose {
		io.Pf("drying curve: %s %s R² = %.4f\n", res.Model, res, res.R2)
	}
	return
}

// WettingThetaS chooses θs of the wetting branch
//  qs   -- θs of the drying curve
//  hw   -- heads of the wetting data
//  θw   -- water contents of the wetting data
// θs of the drying curve is kept unless the wetting data exceed it, or the wetting
// data reach h ≤ 2 and stay below 0.95 θs; then the maximum wetting θ is used
func WettingThetaS(qs float64, hw, θw []float64) float64 {
	θmax := floats.Max(θw)
	if θmax > qs {
		return θmax
	}
	if floats.Min(hw) > 2 {
		return qs
	}
	if θmax < 0.95*qs {
		return θmax
	}
	return qs
}

// OmitSaturated removes the last wetting point if it is saturated (h = 0 or θ ≥ qs)
// returns the remaining points and whether the last point was removed
func OmitSaturated(hw, θw []float64, qs float64) (h, θ []float64, omit bool) {
	n := len(hw)
	if n > 0 && n == len(θw) && (hw[n-1] == 0 || θw[n-1] >= qs) {
		return hw[:n-1], θw[:n-1], true
	}
	return hw, θw, false
}
