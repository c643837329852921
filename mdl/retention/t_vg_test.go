// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_vg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg01")

	mdl := new(VanGen)
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	Check(tst, mdl, 87, 1e-15, 1e-6, chk.Verbose)

	// boundary values
	chk.Float64(tst, "Se(0)", 1e-17, mdl.Se(0), 1)
	h, err := mdl.H(1)
	if err != nil {
		tst.Errorf("H(1) failed: %v\n", err)
		return
	}
	chk.Float64(tst, "h(1)", 1e-17, h, 0)
	d, err := mdl.Dse(0)
	if err != nil {
		tst.Errorf("Dse(0) failed: %v\n", err)
		return
	}
	chk.Float64(tst, "dSe/dh(0)", 1e-17, d, 0)

	// monotonicity
	prev := 1.0
	for _, h := range []float64{1, 10, 100, 1000, 1e4, 1e5} {
		se := mdl.Se(h)
		if se > prev || se <= 0 || se >= 1 {
			tst.Errorf("Se(%g) = %g is not monotone in (0,1)\n", h, se)
		}
		prev = se
	}
	chk.Float64(tst, "θ(0)", 1e-17, Theta(mdl, 0), 0.33)
}

func Test_vg02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg02")

	mdl := new(VanGen)
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// Se = 0 cannot be inverted
	_, err = mdl.H(0)
	if !errors.Is(err, ErrNotFinite) {
		tst.Errorf("H(0) should fail with ErrNotFinite. err = %v\n", err)
	}
	_, err = mdl.H(math.NaN())
	if !errors.Is(err, ErrNotFinite) {
		tst.Errorf("H(NaN) should fail with ErrNotFinite. err = %v\n", err)
	}

	// wrong parameters
	err = new(VanGen).Init(dbf.Params{&dbf.P{N: "alpha", V: 1}})
	if err == nil {
		tst.Errorf("Init should fail with unknown parameter\n")
	}
	err = new(VanGen).Init(dbf.Params{
		&dbf.P{N: "qs", V: 0.4},
		&dbf.P{N: "qr", V: 0},
		&dbf.P{N: "alp", V: 0.1},
		&dbf.P{N: "n", V: 0.9},
	})
	if err == nil {
		tst.Errorf("Init should fail with n < 1\n")
	}
}

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01")

	for _, name := range []string{"VG", "vg", "FX", "fx"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New(%q) failed: %v\n", name, err)
			continue
		}
		err = mdl.Init(mdl.GetPrms(true))
		if err != nil {
			tst.Errorf("Init of %q failed: %v\n", name, err)
		}
	}
	_, err := New("BC")
	if err == nil {
		tst.Errorf("New(\"BC\") should fail\n")
	}
}
