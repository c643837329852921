// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsq

import "math"

// lossFcn computes ρ(z), ρ'(z) and ρ''(z) with z = f²
type lossFcn func(z float64) (ρ0, ρ1, ρ2 float64)

// losses holds all available loss functions
var losses = map[string]lossFcn{
	"linear": func(z float64) (float64, float64, float64) {
		return z, 1, 0
	},
	"soft_l1": func(z float64) (float64, float64, float64) {
		t := 1 + z
		return 2 * (math.Sqrt(t) - 1), 1 / math.Sqrt(t), -0.5 / (t * math.Sqrt(t))
	},
	"cauchy": func(z float64) (float64, float64, float64) {
		t := 1 + z
		return math.Log1p(z), 1 / t, -1 / (t * t)
	},
}

// cost computes ½ Σ ρ(fᵢ²)
func cost(loss lossFcn, f []float64) (c float64) {
	for _, v := range f {
		ρ, _, _ := loss(v * v)
		c += ρ
	}
	return 0.5 * c
}
