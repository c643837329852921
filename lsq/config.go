// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsq

import (
	"errors"
	"fmt"
	"math"
)

// ErrConfig is returned for invalid least-squares settings
var ErrConfig = errors.New("lsq: invalid configuration")

// Config holds least-squares settings
type Config struct {
	Method  string    `json:"method"`   // "trf" (bounded) or "lm" (unbounded)
	Loss    string    `json:"loss"`     // "linear", "soft_l1" or "cauchy"
	Jac     string    `json:"jac"`      // "2-point" or "3-point"
	Ftol    []float64 `json:"ftol"`     // decreasing sequence of function tolerances
	Xtol    float64   `json:"xtol"`     // tolerance of the step norm
	Gtol    float64   `json:"gtol"`     // tolerance of the gradient (max norm)
	MaxNfev int       `json:"max_nfev"` // maximum number of residual evaluations; 0 means 100*len(x)
	Tau     float64   `json:"tau"`      // initial damping relative to max(diag(JᵀJ))
	Verbose int       `json:"verbose"`  // 0: silent, 1: summary, 2: every iteration
}

// DefaultConfig returns the default settings
func DefaultConfig() Config {
	return Config{
		Method: "trf",
		Loss:   "linear",
		Jac:    "2-point",
		Ftol:   []float64{1e-8, 1e-10, 1e-12, 1e-15},
		Xtol:   1e-8,
		Gtol:   1e-8,
		Tau:    1,
	}
}

// SetDefault fills unset fields with default values
func (o *Config) SetDefault() {
	d := DefaultConfig()
	if o.Method == "" {
		o.Method = d.Method
	}
	if o.Loss == "" {
		o.Loss = d.Loss
	}
	if o.Jac == "" {
		o.Jac = d.Jac
	}
	if len(o.Ftol) == 0 {
		o.Ftol = d.Ftol
	}
	if o.Xtol == 0 {
		o.Xtol = d.Xtol
	}
	if o.Gtol == 0 {
		o.Gtol = d.Gtol
	}
	if o.Tau == 0 {
		o.Tau = d.Tau
	}
}

// Validate checks settings
//  bounded -- the problem has finite bounds
func (o *Config) Validate(bounded bool) error {
	switch o.Method {
	case "trf":
	case "lm":
		if bounded {
			return fmt.Errorf("%w: method 'lm' does not support bounds", ErrConfig)
		}
	default:
		return fmt.Errorf("%w: method %q is not available; options are \"trf\" and \"lm\"", ErrConfig, o.Method)
	}
	if _, ok := losses[o.Loss]; !ok {
		return fmt.Errorf("%w: loss %q is not available; options are \"linear\", \"soft_l1\" and \"cauchy\"", ErrConfig, o.Loss)
	}
	if o.Jac != "2-point" && o.Jac != "3-point" {
		return fmt.Errorf("%w: jac %q is not available; options are \"2-point\" and \"3-point\"", ErrConfig, o.Jac)
	}
	if len(o.Ftol) == 0 {
		return fmt.Errorf("%w: ftol sequence is empty", ErrConfig)
	}
	for i, tol := range o.Ftol {
		if !(tol > 0) || math.IsInf(tol, 0) {
			return fmt.Errorf("%w: ftol[%d] = %g must be positive", ErrConfig, i, tol)
		}
		if i > 0 && tol >= o.Ftol[i-1] {
			return fmt.Errorf("%w: ftol sequence must be decreasing; ftol[%d] = %g ≥ ftol[%d] = %g", ErrConfig, i, tol, i-1, o.Ftol[i-1])
		}
	}
	if o.Xtol < 0 || o.Gtol < 0 || o.MaxNfev < 0 || !(o.Tau > 0) {
		return fmt.Errorf("%w: xtol=%g, gtol=%g and max_nfev=%d must be non-negative and tau=%g positive", ErrConfig, o.Xtol, o.Gtol, o.MaxNfev, o.Tau)
	}
	return nil
}
