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

// Package shuffle computes shuffle products of words.
//
// The shuffle product u ⧢ v is the multiset of all interleavings of u and v that preserve the
// order of letters within u and within v:
//
//	ε ⧢ v = v
//	u ⧢ ε = u
//	ua ⧢ vb = (u ⧢ vb)a + (ua ⧢ v)b
//
// Duplicates are meaningful, |u ⧢ v| = C(|u|+|v|, |u|).
package shuffle

import (
	"znkr.io/symbol/internal/checked"
	"znkr.io/symbol/word"
)

// Product returns u ⧢ v as a list of words in the order given by the recursion in the package
// documentation.
func Product(u, v word.Word) []word.Word {
	n := len(u) + len(v)
	count := Binomial(n, len(u))

	// All words share a single buffer, every word is one row of length n.
	buf := make([]byte, checked.Mul(count, n))
	fill(buf, n, 0, count, u, v)

	out := make([]word.Word, count)
	for i := range out {
		out[i] = word.View(buf[i*n : (i+1)*n : (i+1)*n])
	}
	return out
}

// fill writes u ⧢ v into the first len(u)+len(v) columns of the rows [lo, hi).
func fill(buf []byte, stride, lo, hi int, u, v word.Word) {
	for len(u) > 0 && len(v) > 0 {
		pos := len(u) + len(v) - 1
		mid := lo + Binomial(pos, len(u)-1)
		for row := lo; row < mid; row++ {
			buf[row*stride+pos] = u[len(u)-1]
		}
		for row := mid; row < hi; row++ {
			buf[row*stride+pos] = v[len(v)-1]
		}
		// Recurse into the smaller half, loop on the other one.
		if mid-lo < hi-mid {
			fill(buf, stride, lo, mid, u[:len(u)-1], v)
			lo, v = mid, v[:len(v)-1]
		} else {
			fill(buf, stride, mid, hi, u, v[:len(v)-1])
			hi, u = mid, u[:len(u)-1]
		}
	}
	rest := u + v // at most one of them is non-empty
	for row := lo; row < hi; row++ {
		copy(buf[row*stride:], rest)
	}
}

// ProductMany returns w1 ⧢ w2 ⧢ ... ⧢ wk, folded left to right. It panics if ws is empty.
func ProductMany(ws ...word.Word) []word.Word {
	if len(ws) == 0 {
		panic("shuffle: product of nothing")
	}
	acc := []word.Word{ws[0]}
	for _, w := range ws[1:] {
		next := make([]word.Word, 0, checked.Mul(len(acc), Binomial(len(acc[0])+len(w), len(w))))
		for _, a := range acc {
			next = append(next, Product(a, w)...)
		}
		acc = next
	}
	return acc
}

// Expand returns w1 ⧢ w2 ⧢ ... ⧢ wk as a linear combination, i.e. every distinct word with its
// multiplicity. Expand folds over multiplicities instead of lists, which keeps intermediate
// results small when the words share letters. It panics if ws is empty.
func Expand(ws ...word.Word) word.Expr {
	if len(ws) == 0 {
		panic("shuffle: product of nothing")
	}
	acc := word.Single(ws[0])
	for _, w := range ws[1:] {
		var next word.Expr
		for a, c := range acc.All() {
			for _, s := range Product(a, w) {
				next.AddTo(s, c)
			}
		}
		acc = next
	}
	return acc
}

// Binomial returns the binomial coefficient C(n, k). It panics on overflow.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	c := 1
	for i := range k {
		c = checked.Div(checked.Mul(c, n-i), i+1)
	}
	return c
}
