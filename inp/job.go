// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.hyst) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/sekika/hystfit/hyst"
	"github.com/sekika/hystfit/lsq"
	"github.com/sekika/hystfit/mdl/retention"
)

// Data holds global data of a job
type Data struct {
	Desc     string `json:"desc"`     // description of job; e.g. name of sample
	DirOut   string `json:"dirout"`   // directory for output; e.g. /tmp/hystfit
	Figure   string `json:"figure"`   // file name of figure; e.g. fig.png; empty means no figure
	Markdown bool   `json:"markdown"` // markdown report
}

// Curve holds measured points of a retention curve
type Curve struct {
	H     []float64 `json:"h"`     // pressure heads
	Theta []float64 `json:"theta"` // water contents
}

// Boundary holds the parameters of a prefitted drying curve
type Boundary struct {
	Model string     `json:"model"` // "VG" or "FX"
	Prms  dbf.Params `json:"prms"`  // parameters; e.g. [{"n":"qs","v":0.33}, ...]
}

// DryFit holds settings of the drying curve fit
type DryFit struct {
	Model string  `json:"model"` // "VG", "FX" or "best" (smallest corrected AIC)
	Qs    float64 `json:"qs"`    // measured θs; 0 means θs is fitted
}

// Settings holds the settings of the hysteresis session
type Settings struct {
	CosGr      float64 `json:"cosgr"`    // cos(γR)
	DeltaTheta float64 `json:"dtheta"`   // maximum step of θ
	DeltaH     float64 `json:"dh"`       // step of h when dSe/dh is small
	MaxSe      float64 `json:"maxse"`    // maximum effective saturation
	MaxSteps   int     `json:"maxsteps"` // maximum number of steps per target θ
	NoWarn     bool    `json:"nowarn"`   // do not print warnings
	Verbose    bool    `json:"verbose"`  // print messages
}

// Bounds holds the bounds of the hysteresis parameters
type Bounds struct {
	CosGa []float64 `json:"cosga"` // bounds of cos(γA)
	B     []float64 `json:"b"`     // bounds of b
}

// Trace holds a scanning curve to be computed with given parameters
type Trace struct {
	CosGa  float64   `json:"cosga"`  // cos(γA); used if AngleA == 0
	AngleA float64   `json:"angle"`  // advancing contact angle in degrees
	B      float64   `json:"b"`      // shape exponent
	Se     []float64 `json:"se"`     // effective saturations to be visited
	Theta  []float64 `json:"theta"`  // water contents to be visited; used if Se is empty
	Smooth float64   `json:"smooth"` // increment of smoothed θ; 0 means no smoothing
}

// Job holds all data of a fitting job
type Job struct {

	// input
	Data     Data       `json:"data"`     // global data
	Drying   *Curve     `json:"drying"`   // drying data
	Wetting  *Curve     `json:"wetting"`  // wetting data in the order of wetting
	Boundary *Boundary  `json:"boundary"` // prefitted drying curve; used instead of Drying
	DryFit   DryFit     `json:"dryfit"`   // drying curve fit
	Settings Settings   `json:"settings"` // session settings
	Bounds   Bounds     `json:"bounds"`   // bounds of hysteresis parameters
	Lsq      lsq.Config `json:"lsq"`      // least squares settings
	Traces   []*Trace   `json:"traces"`   // scanning curves with given parameters

	// derived
	Key    string // job key; e.g. sample01.hyst => sample01
	DirOut string // directory to save results
}

// ReadJob reads a job from a .hyst JSON file
func ReadJob(path string) (o *Job, err error) {

	// new job with default values
	o = new(Job)
	o.SetDefault()

	// read file
	// io.ReadFile panics on failure
	if fi, e := os.Stat(os.ExpandEnv(path)); e != nil || fi.IsDir() {
		return nil, chk.Err("ReadJob: cannot find job file %q\n", path)
	}
	b := io.ReadFile(path)

	// decode
	if err := json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("ReadJob: cannot unmarshal job file %q: %v\n", path, err)
	}

	// key and output directory
	o.Key = io.FnKey(filepath.Base(path))
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "hystfit", o.Key)
	}

	// check
	if err = o.PostProcess(); err != nil {
		return nil, chk.Err("ReadJob: job file %q: %v\n", path, err)
	}
	return
}

// SetDefault sets default values
func (o *Job) SetDefault() {
	s := hyst.NewHyst()
	o.Settings = Settings{
		CosGr:      s.CosGr,
		DeltaTheta: s.DeltaTheta,
		DeltaH:     s.DeltaH,
		MaxSe:      s.MaxSe,
		MaxSteps:   s.MaxSteps,
	}
	o.DryFit.Model = "VG"
	o.Lsq = lsq.DefaultConfig()
}

// PostProcess completes and checks the just read data
func (o *Job) PostProcess() (err error) {
	o.Lsq.SetDefault()
	o.DryFit.Model = strings.ToUpper(o.DryFit.Model)
	if o.DryFit.Model != "BEST" {
		if _, err = retention.New(o.DryFit.Model); err != nil {
			return
		}
	}
	if o.Boundary != nil {
		if _, err = o.Boundary.NewModel(); err != nil {
			return
		}
	}
	if len(o.Bounds.CosGa) == 0 {
		o.Bounds.CosGa = []float64{0, 1}
	}
	if len(o.Bounds.B) == 0 {
		o.Bounds.B = []float64{0, 1}
	}
	if len(o.Bounds.CosGa) != 2 || len(o.Bounds.B) != 2 {
		return chk.Err("bounds must have two values: cosga=%v b=%v\n", o.Bounds.CosGa, o.Bounds.B)
	}
	for _, c := range []*Curve{o.Drying, o.Wetting} {
		if c != nil && len(c.H) != len(c.Theta) {
			return chk.Err("h (%d) and theta (%d) must have the same length\n", len(c.H), len(c.Theta))
		}
	}
	if o.Settings.DeltaTheta <= 0 || o.Settings.DeltaH <= 0 || o.Settings.MaxSe <= 0 {
		return chk.Err("dtheta=%g, dh=%g and maxse=%g must be positive\n", o.Settings.DeltaTheta, o.Settings.DeltaH, o.Settings.MaxSe)
	}
	return
}

// NewModel allocates and initialises the retention model of a prefitted drying curve
func (o *Boundary) NewModel() (mdl retention.Model, err error) {
	mdl, err = retention.New(o.Model)
	if err != nil {
		return
	}
	err = mdl.Init(o.Prms)
	return
}

// Apply copies the settings into a hysteresis session
func (o *Settings) Apply(h *hyst.Hyst) {
	h.CosGr = o.CosGr
	h.DeltaTheta = o.DeltaTheta
	h.DeltaH = o.DeltaH
	h.MaxSe = o.MaxSe
	h.MaxSteps = o.MaxSteps
	h.NoWarn = o.NoWarn
	h.Verbose = o.Verbose
}

// NewFit returns a fitting session with the settings of the job; the prefitted
// drying curve is installed if given
func (o *Job) NewFit() (f *hyst.Fit, err error) {
	model := o.DryFit.Model
	if model == "BEST" {
		model = "VG"
	}
	f, err = hyst.NewFit(model)
	if err != nil {
		return
	}
	o.Settings.Apply(f.Hyst)
	f.Lsq = o.Lsq
	f.Swrc.Qs = o.DryFit.Qs
	f.Swrc.Lsq.Verbose = o.Lsq.Verbose
	f.BoundsCosGa = [2]float64{o.Bounds.CosGa[0], o.Bounds.CosGa[1]}
	f.BoundsB = [2]float64{o.Bounds.B[0], o.Bounds.B[1]}
	if o.Boundary != nil {
		mdl, e := o.Boundary.NewModel()
		if e != nil {
			return nil, e
		}
		f.ModelName = mdl.Name()
		f.SetDry(mdl)
	}
	return
}

// Params returns the hysteresis parameters of a trace
func (o *Trace) Params() hyst.Params {
	p := hyst.Params{CosGa: o.CosGa, B: o.B}
	if o.AngleA != 0 {
		p.CosGa = cosd(o.AngleA)
	}
	return p
}

// Thetas returns the water contents of a trace for the drying curve of h
func (o *Trace) Thetas(h *hyst.Hyst) []float64 {
	x := o.Theta
	if len(o.Se) > 0 {
		θs, θr := h.Dry.ThetaS(), h.Dry.ThetaR()
		x = make([]float64, len(o.Se))
		for i, s := range o.Se {
			x[i] = s*(θs-θr) + θr
		}
	}
	if o.Smooth > 0 {
		x = hyst.SmoothTheta(x, o.Smooth)
	}
	return x
}

// cosd returns the cosine of an angle in degrees
func cosd(deg float64) float64 {
	return math.Cos(deg * (math.Pi / 180))
}
