// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swrc

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ThetaVG computes θ(h) = θs (1 + (αh)ⁿ)^(-m) with n = 1/(1-m) and θr = 0
func ThetaVG(h, θs, α, m float64) float64 {
	n := 1 / (1 - m)
	return θs * math.Pow(1+math.Pow(α*h, n), -m)
}

// ThetaFX computes θ(h) = θs (ln(e + (h/a)ⁿ))^(-m) with θr = 0
func ThetaFX(h, θs, a, m, n float64) float64 {
	return θs * math.Pow(math.Log(math.E+math.Pow(h/a, n)), -m)
}

// InitVG estimates (α, m) of the van Genuchten model by scanning n and
// averaging ln α over the data points with 0 < Se < 1
func InitVG(h, θ []float64, θs float64) (α, m float64, err error) {
	best := math.Inf(1)
	for i := 1; i < 100; i++ {
		n := 1.05 + float64(i)*0.05
		mm := 1 - 1/n
		sum, cnt := 0.0, 0
		for j, hh := range h {
			se := θ[j] / θs
			if hh <= 0 || se <= 0 || se >= 1 {
				continue
			}
			sum += math.Log(math.Pow(se, -1/mm)-1)/n - math.Log(hh)
			cnt++
		}
		if cnt == 0 {
			continue
		}
		αα := math.Exp(sum / float64(cnt))
		if sse := sse(h, θ, func(x float64) float64 { return ThetaVG(x, θs, αα, mm) }); sse < best {
			best, α, m = sse, αα, mm
		}
	}
	if math.IsInf(best, 1) {
		return 0, 0, chk.Err("swrc: cannot estimate initial VG parameters; no point with 0 < Se < 1 and h > 0\n")
	}
	return
}

// InitFX estimates (a, m, n) of the Fredlund-Xing model by scanning (m, n) and
// averaging ln a over the data points with 0 < Se < 1
func InitFX(h, θ []float64, θs float64) (a, m, n float64, err error) {
	best := math.Inf(1)
	for i := 1; i <= 30; i++ {
		mm := 0.1 * float64(i)
		for j := 1; j <= 40; j++ {
			nn := 0.25*float64(j) + 0.5
			sum, cnt := 0.0, 0
			for k, hh := range h {
				se := θ[k] / θs
				if hh <= 0 || se <= 0 || se >= 1 {
					continue
				}
				z := math.Pow(se, -1/mm)
				if z > 700 {
					continue
				}
				v := math.Exp(z) - math.E
				if v <= 0 {
					continue
				}
				sum += math.Log(hh) - math.Log(v)/nn
				cnt++
			}
			if cnt == 0 {
				continue
			}
			aa := math.Exp(sum / float64(cnt))
			if sse := sse(h, θ, func(x float64) float64 { return ThetaFX(x, θs, aa, mm, nn) }); sse < best {
				best, a, m, n = sse, aa, mm, nn
			}
		}
	}
	if math.IsInf(best, 1) {
		return 0, 0, 0, chk.Err("swrc: cannot estimate initial FX parameters; no point with 0 < Se < 1 and h > 0\n")
	}
	return
}

// sse returns the sum of squared errors of θ; NaN results count as +Inf
func sse(h, θ []float64, f func(h float64) float64) (res float64) {
	for i, hh := range h {
		r := f(hh) - θ[i]
		res += r * r
	}
	if math.IsNaN(res) {
		return math.Inf(1)
	}
	return
}
