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

// Package linear implements formal linear combinations of arbitrary comparable objects with integer
// coefficients.
//
// A [Linear] never stores a zero coefficient: a key whose coefficient reaches zero is removed. The
// zero value is the empty combination and is ready to use. Methods with a value receiver return a
// new combination and never modify the receiver, methods with a pointer receiver modify it in
// place.
//
// All coefficient arithmetic is checked, an overflow panics.
package linear

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"znkr.io/symbol/internal/checked"
)

// Linear is a linear combination of objects of type K with integer coefficients.
type Linear[K comparable] struct {
	data map[K]int
}

// Term is a single object and its coefficient.
type Term[K comparable] struct {
	Key   K
	Coeff int
}

// Single returns the combination 1·k.
func Single[K comparable](k K) Linear[K] {
	return Linear[K]{map[K]int{k: 1}}
}

// FromMap returns a combination with the coefficients from m. Zero coefficients are dropped and m
// is not retained.
func FromMap[K comparable](m map[K]int) Linear[K] {
	var l Linear[K]
	for k, c := range m {
		l.AddTo(k, c)
	}
	return l
}

// Count returns a combination where every item has its multiplicity as coefficient.
//
// Example: Count("a", "b", "a") is 2·a + 1·b.
func Count[K comparable](items ...K) Linear[K] {
	l := Linear[K]{make(map[K]int, len(items))}
	for _, item := range items {
		l.data[item]++
	}
	return l
}

// Coeff returns the coefficient of k, or 0 if k is not part of the combination.
func (l Linear[K]) Coeff(k K) int {
	return l.data[k]
}

// Set sets the coefficient of k to c. Setting a coefficient to zero removes k.
func (l *Linear[K]) Set(k K, c int) {
	if c == 0 {
		delete(l.data, k)
		return
	}
	if l.data == nil {
		l.data = make(map[K]int)
	}
	l.data[k] = c
}

// AddTo adds c to the coefficient of k.
func (l *Linear[K]) AddTo(k K, c int) {
	if c == 0 {
		return
	}
	l.Set(k, checked.Add(l.data[k], c))
}

// AddScaled adds c·o to l in place. AddScaled(o, 1) and AddScaled(o, -1) are the in-place
// addition and subtraction.
func (l *Linear[K]) AddScaled(o Linear[K], c int) {
	for k, v := range o.data {
		l.AddTo(k, checked.Mul(v, c))
	}
}

// Len returns the number of terms with a non-zero coefficient.
func (l Linear[K]) Len() int { return len(l.data) }

// IsZero returns true if l has no terms.
func (l Linear[K]) IsZero() bool { return len(l.data) == 0 }

// L1Norm returns the sum of the absolute values of all coefficients.
func (l Linear[K]) L1Norm() int {
	n := 0
	for _, c := range l.data {
		if c < 0 {
			c = checked.Neg(c)
		}
		n = checked.Add(n, c)
	}
	return n
}

// Copy returns a copy of l.
func (l Linear[K]) Copy() Linear[K] {
	if l.data == nil {
		return Linear[K]{}
	}
	return Linear[K]{maps.Clone(l.data)}
}

// Add returns l + o.
func (l Linear[K]) Add(o Linear[K]) Linear[K] {
	r := l.Copy()
	r.AddScaled(o, 1)
	return r
}

// Sub returns l - o.
func (l Linear[K]) Sub(o Linear[K]) Linear[K] {
	r := l.Copy()
	r.AddScaled(o, -1)
	return r
}

// Neg returns -l.
func (l Linear[K]) Neg() Linear[K] {
	return l.MapCoeff(checked.Neg)
}

// Scale returns c·l.
func (l Linear[K]) Scale(c int) Linear[K] {
	if c == 0 {
		return Linear[K]{}
	}
	return l.MapCoeff(func(v int) int { return checked.Mul(v, c) })
}

// DivInt returns l / c. It panics if any coefficient is not divisible by c.
func (l Linear[K]) DivInt(c int) Linear[K] {
	return l.MapCoeff(func(v int) int { return checked.Div(v, c) })
}

// MapCoeff returns the combination with f applied to every coefficient.
func (l Linear[K]) MapCoeff(f func(int) int) Linear[K] {
	var r Linear[K]
	for k, c := range l.data {
		r.Set(k, f(c))
	}
	return r
}

// Filter returns the terms of l whose key satisfies pred.
func (l Linear[K]) Filter(pred func(K) bool) Linear[K] {
	var r Linear[K]
	for k, c := range l.data {
		if pred(k) {
			r.Set(k, c)
		}
	}
	return r
}

// Map returns the combination with f applied to every key. If f maps several keys to the same
// key, their coefficients are summed up.
func Map[K, L comparable](l Linear[K], f func(K) L) Linear[L] {
	var r Linear[L]
	for k, c := range l.data {
		r.AddTo(f(k), c)
	}
	return r
}

// Equal returns true if l and o have the same terms.
func (l Linear[K]) Equal(o Linear[K]) bool {
	return maps.Equal(l.data, o.data)
}

// All returns an iterator over all terms of l. The order is unspecified, use [Linear.Sorted] if
// the order matters.
func (l Linear[K]) All() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		for k, c := range l.data {
			if !yield(k, c) {
				return
			}
		}
	}
}

// ToMap returns the terms of l as a map.
func (l Linear[K]) ToMap() map[K]int {
	return maps.Clone(l.data)
}

// Sorted returns the terms of l ordered by key.
func (l Linear[K]) Sorted(cmp func(a, b K) int) []Term[K] {
	terms := make([]Term[K], 0, len(l.data))
	for k, c := range l.data {
		terms = append(terms, Term[K]{k, c})
	}
	slices.SortFunc(terms, func(a, b Term[K]) int { return cmp(a.Key, b.Key) })
	return terms
}

// Format returns a text representation of l with one term per line, ordered by key. Every line has
// the form "%+d <key>". The zero combination is formatted as "0".
func (l Linear[K]) Format(cmp func(a, b K) int, str func(K) string) string {
	if l.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, t := range l.Sorted(cmp) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%+d %s", t.Coeff, str(t.Key))
	}
	return sb.String()
}

// String formats l like [Linear.Format], ordering the terms by the string representation of their
// keys.
func (l Linear[K]) String() string {
	str := func(k K) string { return fmt.Sprint(k) }
	return l.Format(func(a, b K) int { return strings.Compare(str(a), str(b)) }, str)
}
