// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sekika/hystfit/hyst"
	"github.com/stretchr/testify/require"
)

func Test_job01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("job01. prefitted drying curve of Zhou (2013)")

	job, err := ReadJob("data/zhou.hyst")
	if err != nil {
		tst.Errorf("ReadJob failed:\n%v", err)
		return
	}
	chk.String(tst, job.Key, "zhou")
	chk.String(tst, job.DryFit.Model, "VG")
	chk.Int(tst, "len(ftol)", len(job.Lsq.Ftol), 4)
	chk.Float64(tst, "dtheta", 1e-17, job.Settings.DeltaTheta, 0.001)
	chk.Float64(tst, "dh", 1e-17, job.Settings.DeltaH, 1)
	chk.Array(tst, "bounds cosga", 1e-17, job.Bounds.CosGa, []float64{0, 1})
	chk.Array(tst, "bounds b", 1e-17, job.Bounds.B, []float64{0, 1})
	require.Len(tst, job.Traces, 2)

	// fitting session
	f, err := job.NewFit()
	require.NoError(tst, err)
	require.NotNil(tst, f.Dry)
	chk.String(tst, f.ModelName, "VG")
	chk.Float64(tst, "θs", 1e-17, f.Dry.ThetaS(), 0.33)
	chk.Float64(tst, "θr", 1e-17, f.Dry.ThetaR(), 0.05)
	chk.Float64(tst, "dtheta", 1e-17, f.DeltaTheta, 0.001)

	// first trace
	tr := job.Traces[0]
	p := tr.Params()
	chk.Float64(tst, "cos(γA)", 1e-15, p.CosGa, math.Cos(75*math.Pi/180))
	chk.Float64(tst, "b", 1e-17, p.B, 0.24)
	x := tr.Thetas(f.Hyst)
	chk.Int(tst, "len(θ)", len(x), len(tr.Se))
	chk.Float64(tst, "θ0", 1e-15, x[0], tr.Se[0]*0.28+0.05)
	h, err := f.H(p, x, true)
	require.NoError(tst, err)
	chk.Int(tst, "len(h)", len(h), len(x))
	for i := range h {
		require.GreaterOrEqual(tst, h[i], 0.0)
	}

	// second trace is smoothed
	tr = job.Traces[1]
	chk.Float64(tst, "cos(γA)", 1e-17, tr.Params().CosGa, 0.26)
	x = tr.Thetas(f.Hyst)
	require.Greater(tst, len(x), len(tr.Se))
	chk.Float64(tst, "θ first", 1e-15, x[0], 0.5*0.28+0.05)
	chk.Float64(tst, "θ last", 1e-15, x[len(x)-1], 0.9*0.28+0.05)

	// wetting data
	res, err := f.Opt(job.Wetting.H, job.Wetting.Theta)
	require.NoError(tst, err)
	io.Pforan("%s R² = %.5f\n", res.Message, res.R2)
	require.True(tst, res.Success)
	require.Greater(tst, res.R2, 0.999)
	require.InDelta(tst, 0.501368, res.Hyst[0]+res.Hyst[1], 1e-3)
}

func Test_job02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("job02. drying and wetting data")

	job, err := ReadJob("data/loam.hyst")
	if err != nil {
		tst.Errorf("ReadJob failed:\n%v", err)
		return
	}
	chk.String(tst, job.DryFit.Model, "BEST")
	chk.Array(tst, "ftol", 1e-17, job.Lsq.Ftol, []float64{1e-8, 1e-10})
	require.NotNil(tst, job.Drying)
	require.NotNil(tst, job.Wetting)
	require.Nil(tst, job.Boundary)

	f, err := job.NewFit()
	require.NoError(tst, err)
	require.Nil(tst, f.Dry)
	err = f.BestModel(job.Drying.H, job.Drying.Theta)
	require.NoError(tst, err)
	require.NotNil(tst, f.DryFit)
	io.Pforan("%s: %s R² = %.4f\n", f.ModelName, f.DryFit, f.DryFit.R2)
	require.Greater(tst, f.DryFit.R2, 0.99)

	// saturated wetting point
	qs := hyst.WettingThetaS(f.DryFit.Qs, job.Wetting.H, job.Wetting.Theta)
	chk.Float64(tst, "qs wetting", 1e-17, qs, f.DryFit.Qs)
	hw, θw, omit := hyst.OmitSaturated(job.Wetting.H, job.Wetting.Theta, qs)
	require.True(tst, omit)
	chk.Int(tst, "len(hw)", len(hw), 7)

	// hysteresis
	res, err := f.Opt(hw, θw)
	require.NoError(tst, err)
	io.Pforan("%s R² = %.5f\n", res.Message, res.R2)
	require.True(tst, res.Success)
	require.Greater(tst, res.R2, 0.95)
}

func Test_job03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("job03. errors")

	_, err := ReadJob("data/notfound.hyst")
	require.ErrorContains(tst, err, "cannot find job file")
	_, err = ReadJob("data")
	require.ErrorContains(tst, err, "cannot find job file")
	_, err = ReadJob("data/bad.hyst")
	require.Error(tst, err)

	var job Job
	job.SetDefault()
	job.Bounds.B = []float64{0}
	require.Error(tst, job.PostProcess())

	job.SetDefault()
	job.Bounds.B = nil
	job.Wetting = &Curve{H: []float64{100, 50}, Theta: []float64{0.2}}
	require.Error(tst, job.PostProcess())

	job.Wetting = nil
	job.Boundary = &Boundary{Model: "BC"}
	require.Error(tst, job.PostProcess())

	job.Boundary = nil
	job.Settings.DeltaTheta = 0
	require.Error(tst, job.PostProcess())

	// hyst.NewFit rejects unknown models
	job.SetDefault()
	job.DryFit.Model = "BC"
	_, err = job.NewFit()
	require.ErrorIs(tst, err, hyst.ErrConfig)
}
