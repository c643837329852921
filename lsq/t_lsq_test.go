// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsq

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func Test_lsq01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lsq01. Rosenbrock without bounds")

	cfg := DefaultConfig()
	cfg.Method = "lm"
	if chk.Verbose {
		cfg.Verbose = 2
	}
	fcn := func(r, x []float64) error {
		r[0] = 10 * (x[1] - x[0]*x[0])
		r[1] = 1 - x[0]
		return nil
	}
	res, err := Solve(fcn, 2, []float64{-1.2, 1}, nil, nil, 1e-12, &cfg)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if !res.Success {
		tst.Errorf("Solve did not converge: %s\n", res.Message)
		return
	}
	chk.Float64(tst, "x0", 1e-6, res.X[0], 1)
	chk.Float64(tst, "x1", 1e-6, res.X[1], 1)
	chk.Float64(tst, "cost", 1e-12, res.Cost, 0)
}

func Test_lsq02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lsq02. active bound")

	cfg := DefaultConfig()
	fcn := func(r, x []float64) error {
		r[0] = x[0] - 2
		r[1] = x[1] - 0.5
		return nil
	}
	res, err := Solve(fcn, 2, []float64{0, 0}, []float64{0, 0}, []float64{1, 1}, 1e-12, &cfg)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if !res.Success {
		tst.Errorf("Solve did not converge: %s\n", res.Message)
		return
	}
	chk.Float64(tst, "x0", 1e-15, res.X[0], 1)
	chk.Float64(tst, "x1", 1e-6, res.X[1], 0.5)
	chk.Float64(tst, "cost", 1e-10, res.Cost, 0.5)
}

func Test_lsq03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lsq03. exponential decay")

	T := []float64{0, 0.5, 1, 1.5, 2, 3, 4}
	Y := make([]float64, len(T))
	for i, t := range T {
		Y[i] = 2 * math.Exp(-1.3*t)
	}
	fcn := func(r, x []float64) error {
		for i, t := range T {
			r[i] = x[0]*math.Exp(-x[1]*t) - Y[i]
		}
		return nil
	}
	for _, jac := range []string{"2-point", "3-point"} {
		cfg := DefaultConfig()
		cfg.Jac = jac
		res, err := Solve(fcn, len(T), []float64{1, 0.1}, []float64{0, 0}, []float64{10, 10}, 1e-12, &cfg)
		if err != nil {
			tst.Errorf("Solve failed: %v\n", err)
			return
		}
		if !res.Success {
			tst.Errorf("Solve did not converge with %s: %s\n", jac, res.Message)
			return
		}
		chk.Float64(tst, "a ("+jac+")", 1e-6, res.X[0], 2)
		chk.Float64(tst, "b ("+jac+")", 1e-6, res.X[1], 1.3)
	}
}

func Test_lsq04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lsq04. robust loss with outlier")

	T := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	Y := []float64{1, 3, 5, 7, 9, 40, 13, 15}
	fcn := func(r, x []float64) error {
		for i, t := range T {
			r[i] = x[0] + x[1]*t - Y[i]
		}
		return nil
	}
	slope := func(loss string) float64 {
		cfg := DefaultConfig()
		cfg.Method = "lm"
		cfg.Loss = loss
		cfg.MaxNfev = 1000
		res, err := Solve(fcn, len(T), []float64{0, 1}, nil, nil, 1e-12, &cfg)
		if err != nil {
			tst.Errorf("Solve failed: %v\n", err)
			return 0
		}
		return res.X[1]
	}
	lin := slope("linear")
	soft := slope("soft_l1")
	cau := slope("cauchy")
	if math.Abs(soft-2) >= math.Abs(lin-2) || math.Abs(cau-2) >= math.Abs(lin-2) {
		tst.Errorf("robust losses should reduce the effect of the outlier: linear=%g soft_l1=%g cauchy=%g\n", lin, soft, cau)
	}
}

func Test_lsq05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lsq05. configuration and failures")

	fcn := func(r, x []float64) error {
		r[0] = x[0]
		return nil
	}

	cfg := DefaultConfig()
	cfg.Method = "lm"
	_, err := Solve(fcn, 1, []float64{1}, []float64{0}, []float64{1}, 1e-8, &cfg)
	require.ErrorIs(tst, err, ErrConfig)

	cfg = DefaultConfig()
	cfg.Loss = "huber"
	_, err = Solve(fcn, 1, []float64{1}, nil, nil, 1e-8, &cfg)
	require.ErrorIs(tst, err, ErrConfig)

	cfg = DefaultConfig()
	cfg.Ftol = []float64{1e-8, 1e-6}
	require.ErrorIs(tst, cfg.Validate(false), ErrConfig)

	cfg = Config{Method: "trf"}
	cfg.SetDefault()
	require.NoError(tst, cfg.Validate(true))
	chk.Int(tst, "len(ftol)", len(cfg.Ftol), 4)

	// errors from the residual function abort the solution
	errBad := errors.New("bad residual")
	bad := func(r, x []float64) error { return errBad }
	_, err = Solve(bad, 1, []float64{1}, nil, nil, 1e-8, &cfg)
	require.ErrorIs(tst, err, errBad)

	// non-convergence is not an error
	cfg = DefaultConfig()
	cfg.MaxNfev = 2
	slow := func(r, x []float64) error {
		r[0] = 10 * (x[1] - x[0]*x[0])
		r[1] = 1 - x[0]
		return nil
	}
	res, err := Solve(slow, 2, []float64{-1.2, 1}, []float64{-5, -5}, []float64{5, 5}, 1e-15, &cfg)
	require.NoError(tst, err)
	require.False(tst, res.Success)
	chk.String(tst, res.Message, messages[StatusMaxNfev])
}

func Test_lsq06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lsq06. sequence of tolerances")

	fcn := func(r, x []float64) error {
		r[0] = 10 * (x[1] - x[0]*x[0])
		r[1] = 1 - x[0]
		return nil
	}
	lo, hi := []float64{-5, -5}, []float64{5, 5}

	cfg := DefaultConfig()
	res, err := SolveSeq(fcn, 2, []float64{-1.2, 1}, lo, hi, &cfg)
	require.NoError(tst, err)
	require.True(tst, res.Success)
	chk.Float64(tst, "x0", 1e-6, res.X[0], 1)
	chk.Float64(tst, "x1", 1e-6, res.X[1], 1)

	// first tolerance fails
	cfg.MaxNfev = 2
	res, err = SolveSeq(fcn, 2, []float64{-1.2, 1}, lo, hi, &cfg)
	require.NoError(tst, err)
	require.False(tst, res.Success)

	// empty sequence
	cfg = DefaultConfig()
	cfg.Ftol = nil
	_, err = SolveSeq(fcn, 2, []float64{-1.2, 1}, lo, hi, &cfg)
	require.ErrorIs(tst, err, ErrConfig)
}
