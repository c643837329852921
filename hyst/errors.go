// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyst

import (
	"errors"
	"fmt"
)

// error kinds
var (
	ErrInvalidInput = errors.New("input value error")
	ErrComputation  = errors.New("numerical computation failed")
	ErrNoBoundary   = errors.New("drying curve not set; use SetVG, SetFX or InitHyst")
	ErrConfig       = errors.New("invalid configuration")
)

// input validation errors
var (
	ErrLengthMismatch = fmt.Errorf("%w: h and θ must have the same positive length", ErrInvalidInput)
	ErrNegativeHead   = fmt.Errorf("%w: h<0 is not allowed", ErrInvalidInput)
	ErrZeroHead       = fmt.Errorf("%w: h=0 is not allowed; omit the saturated point", ErrInvalidInput)
	ErrOverSaturated  = fmt.Errorf("%w: water content exceeds saturated value", ErrInvalidInput)
	ErrSaturatedPoint = fmt.Errorf("%w: water content at saturated value is not allowed; omit the saturated point", ErrInvalidInput)
	ErrBelowResidual  = fmt.Errorf("%w: water content is below residual value", ErrInvalidInput)
)
