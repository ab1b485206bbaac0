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

package symbol

import (
	"cmp"
	"fmt"

	"znkr.io/symbol/internal/config"
	"znkr.io/symbol/internal/lyndon"
	"znkr.io/symbol/linear"
	"znkr.io/symbol/word"
)

// Pair is an element of the tensor product of the word algebra with itself.
type Pair struct {
	Left, Right Word
}

func (p Pair) String() string {
	return p.Left.String() + " ⊗ " + p.Right.String()
}

// ComparePairs orders pairs by their left word and then by their right word.
func ComparePairs(a, b Pair) int {
	return cmp.Or(word.Compare(a.Left, b.Left), word.Compare(a.Right, b.Right))
}

// CoExpr is a linear combination of pairs of words.
type CoExpr = linear.Linear[Pair]

// FormatCoExpr formats e with one term per line ordered by [ComparePairs]. The empty expression
// formats as "0".
func FormatCoExpr(e CoExpr) string {
	return e.Format(ComparePairs, Pair.String)
}

// Coproduct returns the antisymmetric coproduct a ∧ b of two expressions: both expressions are
// rewritten in the Lyndon basis, combined into pairs and brought into canonical form with
// [Normalize].
//
// The following options are supported: [symbol.Powers], [symbol.WithCache]
func Coproduct(a, b Expr, opts ...Option) CoExpr {
	cfg := config.FromOptions(opts, config.Powers|config.Cache|config.ShortWords)
	return coproduct(a, b, cfg)
}

func coproduct(a, b Expr, cfg config.Config) CoExpr {
	pairs := linear.TensorProduct(lyndon.ToBasis(a, cfg), lyndon.ToBasis(b, cfg), func(l, r Word) Pair {
		return Pair{l, r}
	})
	return Normalize(pairs)
}

// Normalize brings every pair of e into canonical order using antisymmetry, u ∧ v = -(v ∧ u):
// The shorter word comes first, words of the same length are ordered lexicographically. Pairs of
// two equal words vanish.
func Normalize(e CoExpr) CoExpr {
	var out CoExpr
	for p, c := range e.All() {
		l, r := p.Left, p.Right
		switch {
		case l == r:
			// u ∧ u = 0
		case l.Len() < r.Len() || (l.Len() == r.Len() && word.Compare(l, r) < 0):
			out.AddTo(p, c)
		default:
			out.AddTo(Pair{r, l}, -c)
		}
	}
	return out
}

// Comultiply returns the (p, q) component of the coproduct of expr. Every word w is split into a
// prefix of length p and a suffix of length q and contributes the coproduct of both parts. If
// p != q, the split at q contributes with the opposite sign, so that the result only contains
// pairs of words of length min(p, q) and max(p, q).
//
// All words in expr must have length p + q, Comultiply panics otherwise.
//
// The following options are supported: [symbol.Powers], [symbol.WithCache]
func Comultiply(expr Expr, p, q int, opts ...Option) CoExpr {
	cfg := config.FromOptions(opts, config.Powers|config.Cache|config.ShortWords)
	if expr.IsZero() {
		return CoExpr{}
	}
	if p < 1 || q < 1 {
		panic(fmt.Sprintf("invalid form (%d, %d)", p, q))
	}
	weight := word.Weight(expr)
	if p+q != weight {
		panic(fmt.Sprintf("form (%d, %d) doesn't match weight %d", p, q, weight))
	}
	p, q = min(p, q), max(p, q)
	tracer().Debugf("comultiplying %d terms of weight %d into (%d, %d)", expr.Len(), weight, p, q)

	var out CoExpr
	for w, c := range expr.All() {
		out.AddScaled(coproduct(word.Single(w[:p]), word.Single(w[p:]), cfg), c)
		if p != q {
			out.AddScaled(coproduct(word.Single(w[q:]), word.Single(w[:q]), cfg), -c)
		}
	}
	return out
}
