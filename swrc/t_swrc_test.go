// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swrc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

var heads = []float64{0, 10, 20, 40, 60, 100, 200, 400, 1000, 3000, 10000, 15000}

func Test_stats01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stats01")

	s, err := Statistics([]float64{1, 2, 3}, []float64{1, 2, 4}, 1)
	if err != nil {
		tst.Errorf("Statistics failed: %v\n", err)
		return
	}
	chk.Int(tst, "n", s.N, 3)
	chk.Float64(tst, "mean", 1e-15, s.Mean, 2)
	chk.Float64(tst, "var", 1e-15, s.Var, 2.0/3.0)
	chk.Float64(tst, "mse", 1e-15, s.MSE, 1.0/3.0)
	chk.Float64(tst, "se", 1e-15, s.SE, math.Sqrt(1.0/3.0))
	chk.Float64(tst, "R²", 1e-15, s.R2, 0.5)
	chk.Float64(tst, "aic", 1e-14, s.AIC, 3*math.Log(1.0/3.0)+2)
	chk.Float64(tst, "aicc", 1e-14, s.AICc, s.AIC+4)
	chk.Float64(tst, "criterion", 1e-15, s.Criterion(), s.AICc)
	require.True(tst, s.HasAICc)

	s, err = Statistics([]float64{1, 2, 3}, []float64{1, 2, 4}, 2)
	require.NoError(tst, err)
	require.False(tst, s.HasAICc)
	chk.Float64(tst, "criterion", 1e-15, s.Criterion(), s.AIC)

	_, err = Statistics([]float64{1, 2}, []float64{1}, 1)
	require.Error(tst, err)
}

func Test_swrc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("swrc01. VG with fitted and fixed θs")

	θ := make([]float64, len(heads))
	for i, h := range heads {
		θ[i] = ThetaVG(h, 0.4, 0.02, 0.35)
	}

	f := NewFitter()
	res, err := f.Fit("vg", heads, θ)
	if err != nil {
		tst.Errorf("Fit failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", res)
	require.True(tst, res.Success)
	chk.String(tst, res.Model, "VG")
	chk.Int(tst, "k", res.K, 3)
	chk.Float64(tst, "θs", 1e-6, res.Qs, 0.4)
	chk.Float64(tst, "α", 1e-6, res.Alpha, 0.02)
	chk.Float64(tst, "m", 1e-6, res.M, 0.35)
	chk.Float64(tst, "n", 1e-5, res.N, 1/(1-0.35))
	require.Greater(tst, res.R2, 0.9999)

	mdl, err := res.NewModel(0)
	require.NoError(tst, err)
	chk.Float64(tst, "θs of model", 1e-15, mdl.ThetaS(), res.Qs)
	chk.Float64(tst, "θr of model", 1e-15, mdl.ThetaR(), 0)
	mdl, err = res.NewModel(0.45)
	require.NoError(tst, err)
	chk.Float64(tst, "wetting θs", 1e-15, mdl.ThetaS(), 0.45)

	f.Qs = 0.4
	res, err = f.Fit("VG", heads, θ)
	require.NoError(tst, err)
	require.True(tst, res.Success)
	require.True(tst, res.QsFixed)
	chk.Int(tst, "k", res.K, 2)
	chk.Int(tst, "len(fitted)", len(res.Fitted), 2)
	chk.Float64(tst, "θs", 1e-15, res.Qs, 0.4)
	chk.Float64(tst, "α", 1e-6, res.Alpha, 0.02)
	chk.Float64(tst, "m", 1e-6, res.M, 0.35)
}

func Test_swrc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("swrc02. FX and model selection")

	θ := make([]float64, len(heads))
	for i, h := range heads {
		θ[i] = ThetaFX(h, 0.35, 45, 1.25, 1.8075)
	}

	f := NewFitter()
	res, err := f.Fit("FX", heads, θ)
	if err != nil {
		tst.Errorf("Fit failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", res)
	require.True(tst, res.Success)
	chk.Float64(tst, "θs", 1e-5, res.Qs, 0.35)
	chk.Float64(tst, "a", 1e-2, res.A, 45)
	chk.Float64(tst, "m", 1e-3, res.M, 1.25)
	chk.Float64(tst, "n", 1e-3, res.N, 1.8075)
	for i, h := range heads {
		chk.Float64(tst, io.Sf("θ(%g)", h), 1e-5, res.Theta(h), θ[i])
	}

	// noisy VG data
	for i, h := range heads {
		θ[i] = ThetaVG(h, 0.4, 0.02, 0.35) * (1 + 0.01*math.Sin(7*float64(i)))
	}
	best, err := f.Best(heads, θ)
	require.NoError(tst, err)
	require.True(tst, best.Success)
	require.Greater(tst, best.R2, 0.99)
	io.Pforan("best = %s (%s)\n", best.Model, best)
}

func Test_swrc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("swrc03. errors")

	f := NewFitter()
	_, err := f.Fit("BC", heads, heads)
	require.Error(tst, err)
	_, err = f.Fit("VG", []float64{1, 2}, []float64{0.3})
	require.Error(tst, err)
	_, err = f.Fit("VG", []float64{-1, 2}, []float64{0.3, 0.2})
	require.Error(tst, err)
	_, err = f.Fit("VG", []float64{0, 0}, []float64{0.3, 0.3})
	require.Error(tst, err)
	_, _, _, err = InitFX([]float64{10}, []float64{0.3}, 0.3)
	require.Error(tst, err)
}


func Test_swrc04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("swrc04. VG with a sharp air-entry")

	// nearly a step at h = 10; the fitted m approaches its upper bound
	h := []float64{1, 5, 9, 11, 20, 100, 1000}
	θ := []float64{0.4, 0.4, 0.399, 0.01, 0.005, 0.001, 0.0001}
	f := NewFitter()
	res, err := f.Fit("VG", h, θ)
	require.NoError(tst, err)
	io.Pforan("%v\n", res)
	require.LessOrEqual(tst, res.M, 1-1e-9)
	require.False(tst, math.IsInf(res.N, 0) || math.IsNaN(res.N))
	for _, hh := range h {
		require.False(tst, math.IsNaN(res.Theta(hh)))
	}
}
