// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	X     []float64 // x-values
	Y     []float64 // y-values
	Style Fmt       // style
}

// SplotDat stores all data for one figure
type SplotDat struct {
	Title  string       // title of figure
	Xlbl   string       // x-axis label
	Ylbl   string       // y-axis label
	Logx   bool         // logarithmic x-axis
	Xrange []float64    // x range; nil means automatic
	Yrange []float64    // y range; nil means automatic
	Text   string       // text drawn in the lower-left corner
	Data   []*PltEntity // data and styles to be plotted
}

// Plotter collects figures and draws them with gonum/plot
type Plotter struct {
	Splots []*SplotDat // all figures
	Csplot *SplotDat   // current figure
	Width  vg.Length   // width of figures
	Height vg.Length   // height of figures
}

// NewPlotter returns a new Plotter with the size of a single-column figure
func NewPlotter() *Plotter {
	return &Plotter{Width: 4.3 * vg.Inch, Height: 3.2 * vg.Inch}
}

// Splot activates a new figure
func (o *Plotter) Splot(title, xlbl, ylbl string, logx bool) *SplotDat {
	s := &SplotDat{Title: title, Xlbl: xlbl, Ylbl: ylbl, Logx: logx}
	o.Splots = append(o.Splots, s)
	o.Csplot = s
	return s
}

// Plot adds a curve to the current figure
func (o *Plotter) Plot(X, Y []float64, fm Fmt) (err error) {
	if len(X) != len(Y) {
		return chk.Err("lengths of x- and y-series are different. len(x)=%d, len(y)=%d\n", len(X), len(Y))
	}
	if o.Csplot == nil {
		o.Splot(io.Sf("%d", len(o.Splots)), "", "", false)
	}
	o.Csplot.Data = append(o.Csplot.Data, &PltEntity{X: X, Y: Y, Style: fm})
	return
}

// Draw saves all figures
//  dirout -- directory to save figures
//  fname  -- file name; e.g. myplot.png or myplot.svg; with more than one figure,
//            the index of the figure is appended to the file name key
// returns the paths of the saved files
func (o *Plotter) Draw(dirout, fname string) (paths []string, err error) {
	fnk := io.FnKey(fname)
	ext := io.FnExt(fname)
	for k, spl := range o.Splots {
		p, e := spl.build()
		if e != nil {
			return nil, e
		}
		fn := fnk + ext
		if len(o.Splots) > 1 {
			fn = io.Sf("%s%d%s", fnk, k, ext)
		}
		path := filepath.Join(dirout, fn)
		if err = p.Save(o.Width, o.Height, path); err != nil {
			return nil, chk.Err("cannot save figure %q: %v\n", path, err)
		}
		paths = append(paths, path)
	}
	return
}

// build creates the gonum plot of a figure
func (o *SplotDat) build() (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.Xlbl
	p.Y.Label.Text = o.Ylbl
	if o.Logx {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if len(o.Xrange) == 2 {
		p.X.Min, p.X.Max = o.Xrange[0], o.Xrange[1]
	}
	if len(o.Yrange) == 2 {
		p.Y.Min, p.Y.Max = o.Yrange[0], o.Yrange[1]
	}
	p.Legend.Top = true
	for _, e := range o.Data {
		if err = addEntity(p, e, o.Logx); err != nil {
			return
		}
	}
	if o.Text != "" && len(o.Xrange) == 2 && len(o.Yrange) == 2 {
		x := o.Xrange[0] * 2
		if !o.Logx {
			x = o.Xrange[0] + 0.05*(o.Xrange[1]-o.Xrange[0])
		}
		y := o.Yrange[0] + 0.05*(o.Yrange[1]-o.Yrange[0])
		lbl, e := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: x, Y: y}},
			Labels: []string{o.Text},
		})
		if e != nil {
			return nil, e
		}
		p.Add(lbl)
	}
	return
}

// addEntity adds a curve to p; points with x ≤ 0 are skipped on logarithmic axes
func addEntity(p *plot.Plot, e *PltEntity, logx bool) (err error) {
	var X, Y []float64
	for i, x := range e.X {
		if logx && x <= 0 {
			continue
		}
		X = append(X, x)
		Y = append(Y, e.Y[i])
	}
	if len(X) == 0 {
		return
	}
	pts := xys(X, Y)
	var thumbs []plot.Thumbnailer
	if e.Style.hasLine() {
		l, e2 := plotter.NewLine(pts)
		if e2 != nil {
			return e2
		}
		l.LineStyle = e.Style.lineStyle()
		p.Add(l)
		thumbs = append(thumbs, l)
	}
	if e.Style.M != "" {
		s, e2 := plotter.NewScatter(pts)
		if e2 != nil {
			return e2
		}
		s.GlyphStyle = e.Style.glyphStyle()
		p.Add(s)
		thumbs = append(thumbs, s)
	}
	if e.Style.L != "" {
		p.Legend.Add(e.Style.L, thumbs...)
	}
	return
}
