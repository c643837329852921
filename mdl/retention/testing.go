// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SelfTest checks the inverse h(Se) and the derivative dSe/dh at Se = i/split, 1 ≤ i < split
//  tolSe  -- tolerance of |Se(h(Se)) - Se|; e.g. 1e-15
//  tolDse -- relative tolerance of dSe/dh against a centred finite difference; e.g. 1e-6
func SelfTest(mdl Model, split int, tolSe, tolDse float64) (err error) {
	for i := 1; i < split; i++ {
		se := float64(i) / float64(split)
		h, e := mdl.H(se)
		if e != nil {
			return e
		}
		if diff := math.Abs(mdl.Se(h) - se); diff >= tolSe {
			return chk.Err("%s: precision error of h(Se) at h = %.3f: |Se(h(Se))-Se| = %g\n", mdl.Name(), h, diff)
		}
		ana, e := mdl.Dse(h)
		if e != nil {
			return e
		}
		num := DseNum(mdl, h, 1e-8)
		if prec := math.Abs(num/ana - 1); prec >= tolDse {
			return chk.Err("%s: precision error of C(h) at h = %.3f: relative error = %g\n", mdl.Name(), h, prec)
		}
	}
	return
}

// DseNum computes dSe/dh with a centred finite difference of relative step rel
func DseNum(mdl Model, h, rel float64) float64 {
	δ := h * rel
	return (mdl.Se(h+δ) - mdl.Se(h-δ)) / (2.0 * δ)
}

// Check runs SelfTest and reports failures to tst
func Check(tst *testing.T, mdl Model, split int, tolSe, tolDse float64, verbose bool) {
	if verbose {
		for i := 1; i < split; i += split / 8 {
			se := float64(i) / float64(split)
			h, _ := mdl.H(se)
			d, _ := mdl.Dse(h)
			io.Pforan("Se=%.4f  h=%12.6f  dSe/dh=%13.6e  num=%13.6e\n", se, h, d, DseNum(mdl, h, 1e-8))
		}
	}
	if err := SelfTest(mdl, split, tolSe, tolDse); err != nil {
		tst.Errorf("self-test failed: %v\n", err)
	}
}
