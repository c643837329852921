// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyst

import (
	"fmt"
	"math"

	"github.com/sekika/hystfit/mdl/retention"
)

// Contact computes the cosine of the contact angle at (h, θ) relative to the drying curve
func (o *Hyst) Contact(h, θ float64) (float64, error) {
	if o.Dry == nil {
		return 0, ErrNoBoundary
	}
	se := θ/(o.Dry.ThetaS()-o.Dry.ThetaR()) + o.Dry.ThetaR()
	if se >= 1 {
		return 1, nil
	}
	hd, err := o.dryH(se)
	if err != nil {
		return 0, err
	}
	return h / hd * o.CosGr, nil
}

// Dsedh computes dSe/dh of the scanning curve at (h, θ)
//  dθ -- direction of θ; negative for drying
func (o *Hyst) Dsedh(h, θ, dθ float64, p Params) (float64, error) {
	if h == 0 {
		return 0, nil
	}

	// h on the drying curve
	se := o.Se(θ)
	if se > o.MaxSe {
		se = o.MaxSe
	}
	hd, err := o.dryH(se)
	if err != nil {
		return 0, err
	}

	// cos(γ) of current point
	cosG := o.CosGr
	if hd != 0 {
		cosG = o.CosGr * h / hd
	}

	// k of eq. (11)
	var k float64
	if dθ < 0 {
		k = cosG - o.CosGr
	} else {
		k = p.CosGa - cosG
	}
	if den := p.CosGa - o.CosGr; den != 0 {
		k = k / den
	} else if k > 0 {
		k = 1
	} else {
		k = 0
	}
	k = retention.Pow(math.Min(math.Max(k, 0), 1), p.B)

	// slope
	c, err := o.Dry.Dse(hd)
	if err != nil {
		return 0, fmt.Errorf("%w: dSe/dh was not calculated at h = %g: %w", ErrComputation, hd, err)
	}
	return c * (hd / h * (1 - k)), nil
}
