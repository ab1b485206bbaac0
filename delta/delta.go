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

// Package delta provides expressions over differences of points (x_a - x_b) and their reduction to
// the Lyndon basis.
//
// A [Delta] is the difference of two distinct points, a [Monom] is a tensor product of deltas and
// an [Expr] is a linear combination of monoms. Every delta is stored as a single letter using a
// dense alphabet of all pairs of up to [MaxDimension] points, so monoms are words and all word
// algorithms of [znkr.io/symbol] apply.
//
// [znkr.io/symbol]: https://pkg.go.dev/znkr.io/symbol
package delta

import (
	"cmp"
	"fmt"
	"strings"

	"znkr.io/symbol/internal/alphabet"
	"znkr.io/symbol/word"
)

const (
	// MaxDimension is the largest point index that can be used in a delta.
	MaxDimension = alphabet.MaxDimension

	// Inf is the point at infinity. Deltas involving infinity vanish.
	Inf = word.Inf
)

// Delta is the difference (x_a - x_b) of two distinct points with a < b. The sign is not tracked,
// (x_a - x_b) and (x_b - x_a) are the same delta.
type Delta struct {
	a, b int
}

// New returns the delta (x_a - x_b). It panics unless a and b are distinct points in
// [1, MaxDimension].
func New(a, b int) Delta {
	if a > b {
		a, b = b, a
	}
	if a < 1 || b > MaxDimension || a == b {
		panic(fmt.Sprintf("invalid delta (x%d - x%d)", a, b))
	}
	return Delta{a, b}
}

// A returns the smaller point.
func (d Delta) A() int { return d.a }

// B returns the larger point.
func (d Delta) B() int { return d.b }

// Contains reports whether p is one of the points of d.
func (d Delta) Contains(p int) bool { return d.a == p || d.b == p }

func (d Delta) String() string {
	return fmt.Sprintf("(x%d - x%d)", d.a, d.b)
}

func (d Delta) letter() int {
	return alphabet.Default().ToAlphabet(d.a, d.b)
}

func fromLetter(l int) Delta {
	p := alphabet.Default().FromAlphabet(l)
	return Delta{p.A, p.B}
}

// Compare orders deltas by their smaller point and then by their larger point.
func Compare(x, y Delta) int {
	return cmp.Or(cmp.Compare(x.a, y.a), cmp.Compare(x.b, y.b))
}

// Monom is a tensor product of deltas.
type Monom struct {
	w word.Word // letters of the deltas
}

// MonomOf returns the tensor product of the given deltas.
func MonomOf(ds ...Delta) Monom {
	var b word.Builder
	b.Grow(len(ds))
	for _, d := range ds {
		b.WriteLetter(d.letter())
	}
	return Monom{b.Build()}
}

// Len returns the number of deltas in m, also called the weight of m.
func (m Monom) Len() int { return m.w.Len() }

// At returns the i-th delta of m.
func (m Monom) At(i int) Delta { return fromLetter(m.w.At(i)) }

// Deltas returns all deltas of m.
func (m Monom) Deltas() []Delta {
	out := make([]Delta, m.Len())
	for i := range out {
		out[i] = m.At(i)
	}
	return out
}

// Word returns the word encoding m.
func (m Monom) Word() word.Word { return m.w }

// Concat returns the tensor product m ⊗ o.
func (m Monom) Concat(o Monom) Monom { return Monom{word.Concat(m.w, o.w)} }

func (m Monom) String() string {
	if m.Len() == 0 {
		return "()"
	}
	parts := make([]string, m.Len())
	for i := range parts {
		parts[i] = m.At(i).String()
	}
	return strings.Join(parts, " ⊗ ")
}

// CompareMonoms orders monoms lexicographically by their deltas.
func CompareMonoms(x, y Monom) int {
	for i := range min(x.Len(), y.Len()) {
		if c := Compare(x.At(i), y.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(x.Len(), y.Len())
}
