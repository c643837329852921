// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyst

import "math"

// SmoothTheta inserts points between consecutive water contents for drawing smooth curves
//  theta -- (θ0, θ1, θ2, ...)
//  delta -- upper limit of increments
// returns (θ0, θ0+δ, ..., θ1, θ1, ..., θ2, ...); each segment keeps both ends
func SmoothTheta(theta []float64, delta float64) []float64 {
	if len(theta) < 2 {
		return theta
	}
	var res []float64
	prev := theta[0]
	for _, t := range theta[1:] {
		num := int(math.Floor(math.Abs(t-prev)/delta)) + 2
		step := (t - prev) / float64(num-1)
		for i := 0; i < num-1; i++ {
			res = append(res, float64(i)*step+prev)
		}
		res = append(res, t)
		prev = t
	}
	return res
}
