// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sekika/hystfit/hyst"
	"github.com/sekika/hystfit/inp"
	"github.com/sekika/hystfit/mdl/retention"
	"github.com/sekika/hystfit/out"
	"github.com/spf13/cobra"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	root := &cobra.Command{
		Use:           "hystfit",
		Short:         "Fit soil water retention hysteresis with the contact angle model of Zhou (2013)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newFitCmd(),
		newTraceCmd(),
		newZhouCmd(),
		newSelfTestCmd(),
	)
	if err := root.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func newFitCmd() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "fit [job.hyst]",
		Short: "Fit the drying curve and the hysteresis parameters of a job",
		Long: `Fit the drying curve (VG, FX or the best of both) to the drying data and
optimise cos(γA) and b from the wetting data. A prefitted drying curve given
in "boundary" is used instead of the drying data.

Example: hystfit fit loam.hyst --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(args[0], save)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "save the report into the output directory of the job")
	return cmd
}

func runFit(path string, save bool) (err error) {

	// job
	job, err := inp.ReadJob(path)
	if err != nil {
		return
	}
	if job.Wetting == nil || len(job.Wetting.H) == 0 {
		return chk.Err("job %q has no wetting data\n", path)
	}
	f, err := job.NewFit()
	if err != nil {
		return
	}

	// drying curve
	rpt := &out.Report{Title: job.Data.Desc}
	var hd, θd []float64
	if f.Dry == nil {
		if job.Drying == nil {
			return chk.Err("job %q needs drying data or a boundary curve\n", path)
		}
		hd, θd = job.Drying.H, job.Drying.Theta
		if job.DryFit.Model == "BEST" {
			err = f.BestModel(hd, θd)
		} else {
			err = f.InitHyst(hd, θd)
		}
		if err != nil {
			return
		}
		rpt.Dry = f.DryFit
	}
	rpt.Model = f.ModelName

	// θs of the wetting branch
	rpt.QsDry = f.Dry.ThetaS()
	rpt.QsWet = rpt.QsDry
	if f.DryFit != nil {
		rpt.QsWet = hyst.WettingThetaS(rpt.QsDry, job.Wetting.H, job.Wetting.Theta)
		if rpt.QsWet != rpt.QsDry {
			if err = f.SetWettingThetaS(rpt.QsWet); err != nil {
				return
			}
		}
	}
	hw, θw, omit := hyst.OmitSaturated(job.Wetting.H, job.Wetting.Theta, rpt.QsWet)
	rpt.Omit = omit

	// hysteresis parameters
	if rpt.Hyst, err = f.Opt(hw, θw); err != nil {
		return
	}

	// figure
	if job.Data.Figure != "" && rpt.Hyst.Success {
		if err = os.MkdirAll(job.DirOut, 0755); err != nil {
			return
		}
		plt := out.NewPlotter()
		if err = plt.FitFigure(job.Data.Desc, f, hd, θd, hw, θw, rpt.Hyst.Params()); err != nil {
			return
		}
		var paths []string
		if paths, err = plt.Draw(job.DirOut, job.Data.Figure); err != nil {
			return
		}
		rpt.Figure = filepath.Base(paths[0])
	}

	// report
	txt, ext := rpt.Text(), ".txt"
	if job.Data.Markdown {
		txt, ext = rpt.Markdown(), ".md"
	}
	io.Pf("%s", txt)
	if save {
		io.WriteFileD(job.DirOut, job.Key+ext, bytes.NewBufferString(txt))
		io.Pfgreen("report saved into %s\n", filepath.Join(job.DirOut, job.Key+ext))
	}
	return
}

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace [job.hyst]",
		Short: "Compute the scanning curves of a job with given hysteresis parameters",
		Long: `Compute h along the water contents of each trace of a job. The traces share
the session; the contact angle of the end of a trace starts the next one.

Example: hystfit trace zhou.hyst`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(args[0])
		},
	}
}

func runTrace(path string) (err error) {
	job, err := inp.ReadJob(path)
	if err != nil {
		return
	}
	f, err := job.NewFit()
	if err != nil {
		return
	}
	if f.Dry == nil {
		if job.Drying == nil {
			return chk.Err("job %q needs drying data or a boundary curve\n", path)
		}
		if err = f.InitHyst(job.Drying.H, job.Drying.Theta); err != nil {
			return
		}
	}
	for k, tr := range job.Traces {
		p := tr.Params()
		θ := tr.Thetas(f.Hyst)
		h, e := f.H(p, θ, true)
		if e != nil {
			return e
		}
		io.Pfyel("trace %d: cos(γA) = %g b = %g\n", k, p.CosGa, p.B)
		io.Pf("%14s%14s\n", "θ", "h")
		for i := range h {
			io.Pf("%14.6f%14.6f\n", θ[i], h[i])
		}
	}
	return
}

func newZhouCmd() *cobra.Command {
	var dirout, fname string
	cmd := &cobra.Command{
		Use:   "zhou",
		Short: "Draw the scanning curves of Fig. 6 of Zhou (2013)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plt := out.NewPlotter()
			for _, c := range out.Zhou2013Fig6 {
				if _, _, err := plt.ZhouFigure(c); err != nil {
					return err
				}
			}
			if err := os.MkdirAll(dirout, 0755); err != nil {
				return err
			}
			paths, err := plt.Draw(dirout, fname)
			if err != nil {
				return err
			}
			for _, p := range paths {
				io.Pfgreen("file <%s> written\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dirout, "dirout", filepath.Join(os.TempDir(), "hystfit"), "output directory")
	cmd.Flags().StringVar(&fname, "fname", "zhou2013.png", "file name of figures; the index of the case is appended")
	return cmd
}

func newSelfTestCmd() *cobra.Command {
	var split int
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Check the inverse and the derivative of the retention models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range []string{"VG", "FX"} {
				mdl, err := retention.New(name)
				if err != nil {
					return err
				}
				if err = mdl.Init(mdl.GetPrms(true)); err != nil {
					return err
				}
				if err = retention.SelfTest(mdl, split, 1e-15, 1e-6); err != nil {
					return err
				}
				io.Pf("%s: %v ok\n", name, mdl.GetPrms(true))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&split, "split", 87, "number of intervals of Se")
	return cmd
}
