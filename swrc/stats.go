// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swrc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/montanaflynn/stats"
)

// Stats holds goodness-of-fit statistics of a model with k parameters fitted to n observations
type Stats struct {
	N       int     // sample size
	K       int     // number of parameters
	Mean    float64 // mean of observations
	Var     float64 // population variance of observations
	MSE     float64 // mean squared error
	SE      float64 // standard error: √MSE
	R2      float64 // coefficient of determination: 1 - MSE/Var
	AIC     float64 // Akaike information criterion: n ln(MSE) + 2k
	AICc    float64 // corrected AIC; valid if HasAICc
	HasAICc bool    // n - k - 1 > 0
}

// Statistics computes goodness-of-fit statistics
//  obs  -- observed values
//  pred -- predicted values
//  k    -- number of fitted parameters
func Statistics(obs, pred []float64, k int) (o Stats, err error) {
	if len(obs) != len(pred) {
		return o, chk.Err("swrc: observed (%d) and predicted (%d) values must have the same length\n", len(obs), len(pred))
	}
	if len(obs) == 0 {
		return o, chk.Err("swrc: there are no observations\n")
	}
	o.N, o.K = len(obs), k
	if o.Mean, err = stats.Mean(obs); err != nil {
		return
	}
	if o.Var, err = stats.PopulationVariance(obs); err != nil {
		return
	}
	sq := make([]float64, len(obs))
	for i := range obs {
		r := pred[i] - obs[i]
		sq[i] = r * r
	}
	if o.MSE, err = stats.Mean(sq); err != nil {
		return
	}
	o.SE = math.Sqrt(o.MSE)
	o.R2 = 1 - o.MSE/o.Var
	n, kf := float64(o.N), float64(k)
	o.AIC = n*math.Log(o.MSE) + 2*kf
	if o.N-k-1 > 0 {
		o.AICc = o.AIC + 2*kf*(kf+1)/(n-kf-1)
		o.HasAICc = true
	}
	return
}

// Criterion returns AICc if available or AIC otherwise
func (o Stats) Criterion() float64 {
	if o.HasAICc {
		return o.AICc
	}
	return o.AIC
}
