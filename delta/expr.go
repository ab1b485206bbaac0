// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package delta

import (
	"fmt"

	"znkr.io/symbol/linear"
)

// Expr is a linear combination of monoms.
type Expr = linear.Linear[Monom]

// D returns the expression (x_a - x_b). It's zero if a == b or if one of the points is [Inf].
func D(a, b int) Expr {
	if a == Inf || b == Inf || a == b {
		return Expr{}
	}
	return linear.Single(MonomOf(New(a, b)))
}

// CrossRatio returns the symbol of the cross ratio of the points p1, ..., pn:
//
//	(x1 - x2) - (x2 - x3) + (x3 - x4) - ... - (xn - x1)
//
// The number of points must be even.
func CrossRatio(points ...int) Expr {
	n := len(points)
	if n == 0 || n%2 != 0 {
		panic(fmt.Sprintf("cross ratio of an odd number of points: %v", points))
	}
	var out Expr
	for i := range n {
		sign := 1
		if i%2 == 1 {
			sign = -1
		}
		out.AddScaled(D(points[i], points[(i+1)%n]), sign)
	}
	return out
}

// NegCrossRatio returns the symbol of 1 - r where r is the cross ratio of a, b, c, d.
func NegCrossRatio(a, b, c, d int) Expr {
	return CrossRatio(a, c, b, d)
}

// NegInvCrossRatio returns the symbol of 1 - 1/r where r is the cross ratio of a, b, c, d.
func NegInvCrossRatio(a, b, c, d int) Expr {
	return CrossRatio(a, c, d, b)
}

// Product returns the tensor product of all expressions. The product of no expressions is the
// monom of weight 0.
func Product(exprs ...Expr) Expr {
	if len(exprs) == 0 {
		return linear.Single(Monom{})
	}
	return linear.TensorProductMany(Monom.Concat, exprs...)
}

// Substitute replaces every point p with m[p]. Points without a mapping are kept. Terms that
// contain a delta whose points become equal or [Inf] are dropped.
func Substitute(e Expr, m map[int]int) Expr {
	subst := func(p int) int {
		if q, ok := m[p]; ok {
			return q
		}
		return p
	}
	var out Expr
	for monom, c := range e.All() {
		ds := make([]Delta, 0, monom.Len())
		for _, d := range monom.Deltas() {
			a, b := subst(d.a), subst(d.b)
			if a == Inf || b == Inf || a == b {
				break
			}
			ds = append(ds, New(a, b))
		}
		if len(ds) == monom.Len() {
			out.AddTo(MonomOf(ds...), c)
		}
	}
	return out
}

// SubstitutePoints replaces point i with points[i-1] for all i in [1, len(points)].
func SubstitutePoints(e Expr, points ...int) Expr {
	m := make(map[int]int, len(points))
	for i, p := range points {
		m[i+1] = p
	}
	return Substitute(e, m)
}

// Dimension returns the largest point in e, or 0 if e is empty.
func Dimension(e Expr) int {
	dim := 0
	for monom := range e.All() {
		for _, d := range monom.Deltas() {
			dim = max(dim, d.b)
		}
	}
	return dim
}

// Format formats e with one term per line ordered by [CompareMonoms]. The empty expression formats
// as "0".
func Format(e Expr) string {
	return e.Format(CompareMonoms, Monom.String)
}
