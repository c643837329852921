// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lsq implements bounded nonlinear least squares with a projected
// Levenberg-Marquardt method
//  References:
//   [1] Madsen K, Nielsen HB and Tingleff O (2004) Methods for non-linear least squares
//       problems, 2nd edition, Technical University of Denmark
package lsq

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// termination status
const (
	StatusMaxNfev = 0 // maximum number of evaluations exceeded
	StatusGtol    = 1 // gradient is small
	StatusFtol    = 2 // relative reduction of cost is small
	StatusXtol    = 3 // step is small
)

// messages holds verbal descriptions of the termination status
var messages = map[int]string{
	StatusMaxNfev: "The maximum number of function evaluations is exceeded.",
	StatusGtol:    "`gtol` termination condition is satisfied.",
	StatusFtol:    "`ftol` termination condition is satisfied.",
	StatusXtol:    "`xtol` termination condition is satisfied.",
}

// Func computes the residuals r(x); len(r) is the number of residuals
type Func func(r, x []float64) error

// Result holds the solution of a least-squares problem
type Result struct {
	X          []float64 // solution
	Fun        []float64 // residuals at solution
	Cost       float64   // ½ Σ ρ(rᵢ²) at solution
	Optimality float64   // max norm of the gradient at solution
	Nfev       int       // number of residual evaluations, not counting the Jacobian
	Njev       int       // number of Jacobian evaluations
	Status     int       // termination status
	Success    bool      // Status > 0
	Message    string    // description of the termination reason
}

// solver holds the working data of Solve
type solver struct {

	// input
	fcn    Func
	lo, hi []float64
	cfg    *Config
	loss   lossFcn

	// workspace
	n, m int        // number of parameters and residuals
	x    []float64  // current point
	f    []float64  // current residuals
	ft   []float64  // trial residuals
	fs   []float64  // scaled residuals
	tmp  []float64  // perturbed point
	fp   []float64  // perturbed residuals
	fm   []float64  // perturbed residuals (backward)
	J    *mat.Dense // Jacobian (scaled by the loss function)
	A    mat.Dense  // JᵀJ
	g    *mat.VecDense
	nfev int
	njev int
}

// Solve minimises ½ Σ ρ(rᵢ(x)²) subject to lo ≤ x ≤ hi
//  m      -- number of residuals
//  lo, hi -- bounds; use ±Inf for unbounded parameters; nil means unbounded
//  ftol   -- function tolerance
// Non-convergence is reported with Result.Success == false; errors from fcn abort the solution
func Solve(fcn Func, m int, x0, lo, hi []float64, ftol float64, cfg *Config) (res *Result, err error) {

	// check input
	n := len(x0)
	if n == 0 || m < 1 {
		return nil, chk.Err("lsq: number of parameters (%d) and residuals (%d) must be positive\n", n, m)
	}
	if lo == nil {
		lo = make([]float64, n)
		floats.AddConst(math.Inf(-1), lo)
	}
	if hi == nil {
		hi = make([]float64, n)
		floats.AddConst(math.Inf(1), hi)
	}
	if len(lo) != n || len(hi) != n {
		return nil, chk.Err("lsq: bounds must have length %d\n", n)
	}
	bounded := false
	for i := 0; i < n; i++ {
		if lo[i] >= hi[i] {
			return nil, chk.Err("lsq: lower bound %g must be less than upper bound %g\n", lo[i], hi[i])
		}
		if !math.IsInf(lo[i], 0) || !math.IsInf(hi[i], 0) {
			bounded = true
		}
	}
	if err = cfg.Validate(bounded); err != nil {
		return
	}

	// allocate solver
	o := &solver{fcn: fcn, lo: lo, hi: hi, cfg: cfg, loss: losses[cfg.Loss], n: n, m: m}
	o.x = make([]float64, n)
	o.tmp = make([]float64, n)
	o.f = make([]float64, m)
	o.ft = make([]float64, m)
	o.fs = make([]float64, m)
	o.fp = make([]float64, m)
	o.fm = make([]float64, m)
	o.J = mat.NewDense(m, n, nil)
	o.g = mat.NewVecDense(n, nil)
	maxNfev := cfg.MaxNfev
	if maxNfev == 0 {
		maxNfev = 100 * n
	}

	// initial point
	copy(o.x, x0)
	o.project(o.x)
	if err = o.eval(o.f, o.x); err != nil {
		return
	}
	F := cost(o.loss, o.f)
	if err = o.jacobian(); err != nil {
		return
	}
	μ := cfg.Tau * o.maxDiag()
	if μ == 0 {
		μ = cfg.Tau
	}
	ν := 2.0

	// iterations
	d := make([]float64, n)
	xt := make([]float64, n)
	status := StatusMaxNfev
	for it := 0; o.nfev < maxNfev; it++ {

		// gradient
		gnorm := floats.Norm(o.g.RawVector().Data, math.Inf(1))
		if cfg.Verbose > 1 {
			io.Pf("%4d%6d  cost=%23.15e  μ=%13.6e  |g|=%13.6e  x=%v\n", it, o.nfev, F, μ, gnorm, o.x)
		}
		if gnorm < cfg.Gtol {
			status = StatusGtol
			break
		}

		// trial step
		if !o.step(d, μ) {
			μ *= ν
			ν *= 2
			if math.IsInf(μ, 1) {
				break
			}
			continue
		}
		for i := 0; i < n; i++ {
			xt[i] = o.x[i] + d[i]
		}
		o.project(xt)
		floats.SubTo(d, xt, o.x)
		if floats.Norm(d, 2) <= cfg.Xtol*(cfg.Xtol+floats.Norm(o.x, 2)) {
			status = StatusXtol
			break
		}
		if err = o.eval(o.ft, xt); err != nil {
			return
		}
		Ft := cost(o.loss, o.ft)

		// predicted reduction: ½ dᵀ(μ d - g)
		pred := 0.0
		for i := 0; i < n; i++ {
			pred += d[i] * (μ*d[i] - o.g.AtVec(i))
		}
		pred *= 0.5

		// reject
		if !(Ft < F) || !(pred > 0) {
			μ *= ν
			ν *= 2
			continue
		}

		// accept
		ρ := (F - Ft) / pred
		dF, Fold := F-Ft, F
		copy(o.x, xt)
		copy(o.f, o.ft)
		F = Ft
		if dF < ftol*Fold {
			status = StatusFtol
			break
		}
		if err = o.jacobian(); err != nil {
			return
		}
		μ *= math.Max(1.0/3.0, 1.0-math.Pow(2.0*ρ-1.0, 3))
		ν = 2
	}

	// results
	res = &Result{
		X:          o.x,
		Fun:        o.f,
		Cost:       F,
		Optimality: floats.Norm(o.g.RawVector().Data, math.Inf(1)),
		Nfev:       o.nfev,
		Njev:       o.njev,
		Status:     status,
		Success:    status > 0,
		Message:    messages[status],
	}
	if cfg.Verbose > 0 {
		io.Pf("lsq: %s nfev=%d njev=%d cost=%g x=%v\n", res.Message, res.Nfev, res.Njev, res.Cost, res.X)
	}
	return
}

// SolveSeq solves the problem for each tolerance of cfg.Ftol, starting each solution
// from the previous one. The sequence stops at the first tolerance that does not
// converge and the last converged result is returned; if the first tolerance does
// not converge, the failed result is returned
func SolveSeq(fcn Func, m int, x0, lo, hi []float64, cfg *Config) (res *Result, err error) {
	x := x0
	for _, ftol := range cfg.Ftol {
		r, e := Solve(fcn, m, x, lo, hi, ftol, cfg)
		if e != nil {
			return nil, e
		}
		if !r.Success {
			if res == nil {
				res = r
			}
			break
		}
		if cfg.Verbose > 0 {
			io.Pf("lsq: ftol=%g converged with x=%v\n", ftol, r.X)
		}
		res = r
		x = r.X
	}
	if res == nil {
		return nil, fmt.Errorf("%w: ftol sequence is empty", ErrConfig)
	}
	return
}

// eval evaluates residuals and counts evaluations
func (o *solver) eval(r, x []float64) error {
	o.nfev++
	return o.fcn(r, x)
}

// project clips x into [lo, hi]
func (o *solver) project(x []float64) {
	for i := range x {
		x[i] = math.Min(math.Max(x[i], o.lo[i]), o.hi[i])
	}
}

// jacobian computes J by finite differences, scales J and f by the loss function,
// and computes A = JᵀJ and g = Jᵀf
func (o *solver) jacobian() (err error) {
	o.njev++
	eps := math.Nextafter(1, 2) - 1
	for j := 0; j < o.n; j++ {
		copy(o.tmp, o.x)
		xj := o.x[j]
		central := o.cfg.Jac == "3-point"
		var h float64
		if central {
			h = math.Cbrt(eps) * math.Max(1, math.Abs(xj))
			central = xj-h >= o.lo[j] && xj+h <= o.hi[j]
		}
		if !central {
			h = math.Sqrt(eps) * math.Max(1, math.Abs(xj))
			if xj < 0 {
				h = -h
			}
			if xj+h > o.hi[j] || xj+h < o.lo[j] {
				h = -h
			}
		}
		o.tmp[j] = xj + h
		dx := o.tmp[j] - xj
		if err = o.fcn(o.fp, o.tmp); err != nil {
			return
		}
		if central {
			o.tmp[j] = xj - h
			if err = o.fcn(o.fm, o.tmp); err != nil {
				return
			}
			for i := 0; i < o.m; i++ {
				o.J.Set(i, j, (o.fp[i]-o.fm[i])/(2.0*dx))
			}
			continue
		}
		for i := 0; i < o.m; i++ {
			o.J.Set(i, j, (o.fp[i]-o.f[i])/dx)
		}
	}

	// robust loss
	for i, v := range o.f {
		z := v * v
		_, ρ1, ρ2 := o.loss(z)
		s := ρ1 + 2*ρ2*z
		if s < eps {
			s = eps
		}
		s = math.Sqrt(s)
		o.fs[i] = v * ρ1 / s
		for j := 0; j < o.n; j++ {
			o.J.Set(i, j, o.J.At(i, j)*s)
		}
	}

	// normal equations
	o.A.Reset()
	o.A.Mul(o.J.T(), o.J)
	o.g.MulVec(o.J.T(), mat.NewVecDense(o.m, o.fs))
	return
}

// maxDiag returns max(diag(A))
func (o *solver) maxDiag() (res float64) {
	for i := 0; i < o.n; i++ {
		res = math.Max(res, o.A.At(i, i))
	}
	return
}

// step solves (A + μI) d = -g; returns false if the system cannot be factorised
func (o *solver) step(d []float64, μ float64) bool {
	S := mat.NewSymDense(o.n, nil)
	for i := 0; i < o.n; i++ {
		for j := i; j < o.n; j++ {
			v := o.A.At(i, j)
			if i == j {
				v += μ
			}
			S.SetSym(i, j, v)
		}
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(S); !ok {
		return false
	}
	b := mat.NewVecDense(o.n, nil)
	b.ScaleVec(-1, o.g)
	if err := chol.SolveVecTo(mat.NewVecDense(o.n, d), b); err != nil {
		return false
	}
	for _, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
