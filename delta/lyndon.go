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
	"cmp"

	"github.com/npillmayer/schuko/tracing"

	"znkr.io/symbol"
	"znkr.io/symbol/linear"
	"znkr.io/symbol/word"
)

// tracer writes to trace with key 'symbol'
func tracer() tracing.Trace {
	return tracing.Select("symbol")
}

func toWords(e Expr) word.Expr { return linear.Map(e, Monom.Word) }

func fromWords(e word.Expr) Expr {
	return linear.Map(e, func(w word.Word) Monom { return Monom{w} })
}

// ToLyndonBasis rewrites e in the Lyndon basis modulo shuffle products, see
// [symbol.ToLyndonBasis]. The Lyndon words are taken with respect to the order of the letters that
// encode the deltas.
//
// The following options are supported: [symbol.Powers], [symbol.WithCache]
func ToLyndonBasis(e Expr, opts ...symbol.Option) Expr {
	return fromWords(symbol.ToLyndonBasis(toWords(e), opts...))
}

// ProjectOnIndex projects e on the point index: Terms where every delta contains index are turned
// into the word of the respective other points, all other terms are dropped.
//
// Example:
//
//	(x1 - x2) ⊗ (x1 - x3) + (x1 - x2) ⊗ (x2 - x3) - (x1 - x2) ⊗ (x1 - x4)
//
// projected on 1 is (2,3) - (2,4).
func ProjectOnIndex(e Expr, index int) word.Expr {
	var out word.Expr
	for m, c := range e.All() {
		var b word.Builder
		b.Grow(m.Len())
		for _, d := range m.Deltas() {
			switch index {
			case d.a:
				b.WriteLetter(d.b)
			case d.b:
				b.WriteLetter(d.a)
			}
		}
		if b.Len() == m.Len() {
			out.AddTo(b.Build(), c)
		}
	}
	return out
}

// IsZeroInLyndon is a fast check whether e vanishes in the Lyndon basis. Instead of reducing e, it
// reduces the much smaller projections of e on the points 1, ..., Dimension(e)-3.
//
// Vanishing projections are a necessary condition. The check is meant for symbols of functions of
// cross ratios, where it replaces the full reduction.
//
// The following options are supported: [symbol.Powers], [symbol.WithCache]
func IsZeroInLyndon(e Expr, opts ...symbol.Option) bool {
	if e.IsZero() {
		return true
	}
	dim := Dimension(e)
	for i := 1; i < dim-2; i++ {
		if !symbol.ToLyndonBasis(ProjectOnIndex(e, i), opts...).IsZero() {
			tracer().Debugf("delta: projection on x%d doesn't vanish", i)
			return false
		}
	}
	return true
}

// Pair is an element of the tensor product of monoms with themselves.
type Pair struct {
	Left, Right Monom
}

func (p Pair) String() string {
	return "[" + p.Left.String() + "] ⊗ [" + p.Right.String() + "]"
}

// ComparePairs orders pairs by their left monom and then by their right monom.
func ComparePairs(x, y Pair) int {
	return cmp.Or(CompareMonoms(x.Left, y.Left), CompareMonoms(x.Right, y.Right))
}

// CoExpr is a linear combination of pairs of monoms.
type CoExpr = linear.Linear[Pair]

// FormatCoExpr formats e with one term per line ordered by [ComparePairs]. The empty expression
// formats as "0".
func FormatCoExpr(e CoExpr) string {
	return e.Format(ComparePairs, Pair.String)
}

// Comultiply returns the (p, q) component of the coproduct of e, see [symbol.Comultiply].
//
// The following options are supported: [symbol.Powers], [symbol.WithCache]
func Comultiply(e Expr, p, q int, opts ...symbol.Option) CoExpr {
	return linear.Map(symbol.Comultiply(toWords(e), p, q, opts...), func(p symbol.Pair) Pair {
		return Pair{Monom{p.Left}, Monom{p.Right}}
	})
}
