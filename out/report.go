// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reports and figures of fitting results
package out

import (
	"bytes"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/sekika/hystfit/hyst"
	"github.com/sekika/hystfit/swrc"
)

// Report holds the results of fitting drying and wetting data
type Report struct {
	Title  string       // title; e.g. name of sample
	Model  string       // name of drying curve model
	Dry    *swrc.Result // fitted drying curve; nil if the drying curve was given
	QsDry  float64      // θs of the drying curve
	QsWet  float64      // θs of the wetting curve
	Omit   bool         // the saturated wetting point was omitted
	Hyst   *hyst.Result // fitted hysteresis parameters
	Figure string       // path of the figure; may be empty
}

// Text returns the report as plain text
func (o *Report) Text() string {
	b := new(bytes.Buffer)
	if o.Title != "" {
		io.Ff(b, "%s\n", o.Title)
	}
	if o.Dry != nil {
		io.Ff(b, "%s: %s R2 = %.4f\n", o.Model, o.Dry, o.Dry.R2)
	}
	if o.Omit {
		io.Ff(b, "Omitting saturated point\n")
	}
	if o.Hyst != nil {
		if o.Hyst.Success {
			io.Ff(b, "Zhou: %s R2 = %.3g\n", o.Hyst.Message, o.Hyst.R2)
		} else {
			io.Ff(b, "Zhou: %s\n", o.Hyst.Message)
		}
	}
	if o.QsDry != o.QsWet {
		io.Ff(b, "qs = %.3g for drying and qs = %.3g for wetting\n", o.QsDry, o.QsWet)
	}
	return b.String()
}

// Markdown returns the report as markdown
func (o *Report) Markdown() string {
	b := new(bytes.Buffer)
	if o.Title != "" {
		io.Ff(b, "### %s\n", o.Title)
	}
	if o.Dry != nil {
		msg := strings.NewReplacer("qs", "&theta;<sub>s</sub>", "alpha", "&alpha;").Replace(o.Dry.String())
		io.Ff(b, "- %s: %s R<sup>2</sup> = %.4f\n", o.Model, msg, o.Dry.R2)
	}
	if o.Omit {
		io.Ff(b, "- Omitting saturated point\n")
	}
	if o.Hyst != nil {
		msg := strings.ReplaceAll(o.Hyst.Message, "(γA)", "&gamma;<sub>A</sub>")
		if o.Hyst.Success {
			io.Ff(b, "- Zhou: %s R<sup>2</sup> = %.3g\n", msg, o.Hyst.R2)
		} else {
			io.Ff(b, "- Zhou: %s\n", msg)
		}
	}
	if o.QsDry != o.QsWet {
		io.Ff(b, "- &theta;<sub>s</sub> = %.3g for drying and &theta;<sub>s</sub> = %.3g for wetting\n", o.QsDry, o.QsWet)
	}
	if o.Figure != "" {
		io.Ff(b, "![%s](%s)\n", o.Title, o.Figure)
	}
	return b.String()
}
