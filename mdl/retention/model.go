// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements boundary (drying) water retention curves used to
// bound hysteretic scanning curves
//  References:
//   [1] van Genuchten MTh (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils. Soil Sci Soc Am J, 44(5), 892-898
//   [2] Fredlund DG and Xing A (1994) Equations for the soil-water characteristic curve.
//       Canadian Geotechnical Journal, 31(4), 521-532
package retention

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ErrNotFinite is returned when h(Se) or dSe/dh cannot be computed
var ErrNotFinite = errors.New("retention: result is not finite")

// Model implements a boundary water retention curve Se(h) with its inverse and derivative
//  h  -- pressure head (suction) ≥ 0
//  Se -- effective saturation (θ-θr)/(θs-θr)
type Model interface {
	Init(prms dbf.Params) error      // initialises retention model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Name() string                    // model name; e.g. "VG"
	ThetaS() float64                 // saturated water content θs
	ThetaR() float64                 // residual water content θr
	Se(h float64) float64            // computes Se(h)
	H(se float64) (float64, error)   // computes h(Se); inverse of Se(h)
	Dse(h float64) (float64, error)  // computes dSe/dh
}

// New returns new retention model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[strings.ToUpper(name)]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// Theta computes θ(h) for a given model
func Theta(mdl Model, h float64) float64 {
	return mdl.ThetaR() + (mdl.ThetaS()-mdl.ThetaR())*mdl.Se(h)
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// finite checks h(Se) and dSe/dh results
func finite(v float64, what string, at float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, fmt.Errorf("%w: %s at %g", ErrNotFinite, what, at)
	}
	return v, nil
}
