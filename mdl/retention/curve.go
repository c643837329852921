// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Curve computes θ(h) of a retention model at npts log-spaced heads in [hmin, hmax]
//  hmin must be positive
func Curve(mdl Model, hmin, hmax float64, npts int) (H, Θ []float64, err error) {
	if hmin <= 0 || hmax <= hmin || npts < 2 {
		return nil, nil, chk.Err("cannot compute retention curve with hmin=%g, hmax=%g and npts=%d\n", hmin, hmax, npts)
	}
	X := utl.LinSpace(math.Log10(hmin), math.Log10(hmax), npts)
	H = make([]float64, npts)
	Θ = make([]float64, npts)
	for i, x := range X {
		H[i] = math.Pow(10, x)
		Θ[i] = Theta(mdl, H[i])
	}
	return
}
