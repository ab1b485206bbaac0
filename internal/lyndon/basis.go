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

package lyndon

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"

	"znkr.io/symbol/internal/checked"
	"znkr.io/symbol/internal/config"
	"znkr.io/symbol/internal/shuffle"
	"znkr.io/symbol/linear"
	"znkr.io/symbol/word"
)

// ToBasis rewrites expr as a linear combination of Lyndon words modulo shuffle products. All words
// in expr must have the same length.
func ToBasis(expr word.Expr, cfg config.Config) word.Expr {
	weight := word.Weight(expr)
	tracer().Debugf("lyndon: reducing %d terms of weight %d", expr.Len(), weight)

	q := newQueue()
	for w, c := range expr.All() {
		q.add(w, c)
	}

	var out word.Expr
	expansions := 0
	for !q.empty() {
		w, coeff := q.popMax()
		factors := Factorize(w)
		if len(factors) == 1 {
			out.AddTo(w, coeff)
			continue
		}
		if isPower(factors) {
			switch cfg.Powers {
			case config.ReducePowers:
			case config.RetainPowers:
				out.AddTo(w, coeff)
				continue
			case config.ForbidPowers:
				panic(fmt.Sprintf("lyndon: power word %v with factorization %v", w, factors))
			default:
				panic(fmt.Sprintf("unknown power policy: %v", cfg.Powers))
			}
		}

		var rest word.Expr
		switch {
		case cfg.ShortWords && w.Len() == 2:
			rest = shortWordRest(w)
		case cfg.Cache != nil:
			rest = cfg.Cache.Lookup(w, func(w word.Word) word.Expr { return expansionRest(w, factors) })
		default:
			rest = expansionRest(w, factors)
		}
		expansions++

		for u, c := range rest.All() {
			if word.Compare(u, w) >= 0 {
				panic(fmt.Sprintf("lyndon: expansion of %v contains %v which is not smaller", w, u))
			}
			if out.Coeff(u) != 0 {
				panic(fmt.Sprintf("lyndon: expansion of %v contains %v which was already emitted", w, u))
			}
			q.add(u, checked.Neg(checked.Mul(coeff, c)))
		}
	}

	tracer().Debugf("lyndon: reduced to %d terms with %d expansions", out.Len(), expansions)
	return out
}

// expansionRest returns the expansion of the non-Lyndon word w with the given factorization,
// without w itself.
func expansionRest(w word.Word, factors []word.Word) word.Expr {
	denom := 1
	for _, n := range linear.Count(factors...).All() {
		denom = checked.Mul(denom, checked.Factorial(n))
	}
	rest := shuffle.Expand(factors...).DivInt(denom)
	if rest.Coeff(w) != 1 {
		panic(fmt.Sprintf("lyndon: %v not found with coefficient 1 in expansion %v", w, word.Format(rest)))
	}
	rest.Set(w, 0)
	return rest
}

// shortWordRest is expansionRest for words of length 2: (b,a) with a < b expands to
// (b,a) + (a,b) and (a,a) to (a,a).
func shortWordRest(w word.Word) word.Expr {
	if w[0] == w[1] {
		return word.Expr{}
	}
	return word.Single(word.Concat(w[1:], w[:1]))
}

// queue is the work queue of the basis rewrite. It maps words to coefficients and never contains
// a zero coefficient.
type queue struct {
	m *treemap.Map
}

func newQueue() *queue {
	return &queue{treemap.NewWith(func(a, b any) int {
		return word.Compare(a.(word.Word), b.(word.Word))
	})}
}

func (q *queue) empty() bool { return q.m.Empty() }

func (q *queue) add(w word.Word, c int) {
	if v, ok := q.m.Get(w); ok {
		c = checked.Add(v.(int), c)
	}
	if c == 0 {
		q.m.Remove(w)
		return
	}
	q.m.Put(w, c)
}

func (q *queue) popMax() (word.Word, int) {
	k, v := q.m.Max()
	q.m.Remove(k)
	return k.(word.Word), v.(int)
}
