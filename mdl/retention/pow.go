// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import "math"

// Pow returns x**y correctly rounded for x > 0 in the normal range of results.
// The scanning curves compare Se values of the drying curve to the last bit,
// so their trajectories depend on the rounding of x**y. Negative x, infinite y
// and results near underflow or overflow fall back to math.Pow.
// The float64 conversions keep the compiler from fusing products into FMA
func Pow(x, y float64) float64 {
	switch {
	case y == 0 || x == 1:
		return 1
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	case x == 0:
		if y > 0 {
			return 0
		}
		return math.Inf(1)
	case x < 0 || math.IsInf(y, 0):
		return math.Pow(x, y)
	case math.IsInf(x, 1):
		if y > 0 {
			return math.Inf(1)
		}
		return 0
	}
	z := ddLog(x).mulD(y)
	if math.Abs(z.hi) > 708 {
		return math.Pow(x, y)
	}
	return ddExp(z).hi
}

// dd is the unevaluated sum hi + lo of two float64 with |lo| <= ulp(hi)/2
type dd struct{ hi, lo float64 }

var (
	ddLn2     = dd{0.6931471805599453, 2.3190468138462996e-17}
	ddInvFact [14]dd // 1/i!
)

func init() {
	f := 1.0
	for i := range ddInvFact {
		if i > 0 {
			f *= float64(i)
		}
		q := 1 / f
		p, e := twoProd(q, f)
		ddInvFact[i] = fastTwoSum(q, (1-p-e)/f)
	}
}

func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return
}

// fastTwoSum requires |a| >= |b|
func fastTwoSum(a, b float64) dd {
	s := a + b
	return dd{s, b - (s - a)}
}

func twoProd(a, b float64) (p, e float64) {
	p = a * b
	e = math.FMA(a, b, -p)
	return
}

func (a dd) add(b dd) dd {
	s, e := twoSum(a.hi, b.hi)
	t, f := twoSum(a.lo, b.lo)
	r := fastTwoSum(s, e+t)
	return fastTwoSum(r.hi, r.lo+f)
}

func (a dd) mul(b dd) dd {
	p, e := twoProd(a.hi, b.hi)
	e += float64(a.hi*b.lo) + float64(a.lo*b.hi)
	return fastTwoSum(p, e)
}

func (a dd) mulD(b float64) dd {
	p, e := twoProd(a.hi, b)
	e += float64(a.lo * b)
	return fastTwoSum(p, e)
}

// ddExp computes exp(a) = 2**k (1 + s) with |a - k ln2| <= ln2/2, taking
// the Taylor series of exp(r/32) - 1 and squaring it five times
func ddExp(a dd) dd {
	k := math.RoundToEven(a.hi / ddLn2.hi)
	r := a.add(ddLn2.mulD(-k))
	r = dd{r.hi / 32, r.lo / 32}
	s := r.mul(ddInvFact[13])
	for i := 12; i >= 1; i-- {
		s = s.add(ddInvFact[i]).mul(r)
	}
	for j := 0; j < 5; j++ {
		s = s.mulD(2).add(s.mul(s)) // (1+s)² - 1
	}
	e := dd{1, 0}.add(s)
	n := int(k)
	return dd{math.Ldexp(e.hi, n), math.Ldexp(e.lo, n)}
}

// ddLog refines math.Log(x) with one Newton step
func ddLog(x float64) dd {
	l := math.Log(x)
	t := ddExp(dd{-l, 0}).mulD(x).add(dd{-1, 0})
	return dd{l, 0}.add(t)
}
