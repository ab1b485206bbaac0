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

// Package alphabet maps unordered pairs of point indices to a dense integer alphabet.
//
// The pair (a, b) with 1 <= a < b <= N is mapped to the letter (b-1)(b-2)/2 + (a-1). The mapping
// is a bijection between all such pairs and [0, N(N-1)/2) and it's independent of N: growing the
// dimension only appends letters.
package alphabet

import (
	"fmt"
	"sync"
)

// MaxDimension is the largest dimension supported by [Default]. The resulting alphabet must fit
// into the letters of a word.
const MaxDimension = 20

// Pair is a normalized pair of point indices, A < B.
type Pair struct{ A, B int }

// Mapping is a precomputed bijection between pairs and letters. A Mapping is read-only after
// construction and safe for concurrent use.
type Mapping struct {
	dim     int
	toAlpha [][]int // toAlpha[b][a] for 0-based a < b
	pairs   []Pair  // indexed by letter
}

// New returns the mapping for points 1..dim.
func New(dim int) *Mapping {
	if dim < 0 {
		panic(fmt.Sprintf("alphabet: negative dimension %d", dim))
	}
	m := &Mapping{
		dim:     dim,
		toAlpha: make([][]int, dim),
		pairs:   make([]Pair, 0, dim*(dim-1)/2),
	}
	for b := range dim {
		m.toAlpha[b] = make([]int, b)
		for a := range b {
			m.toAlpha[b][a] = len(m.pairs)
			m.pairs = append(m.pairs, Pair{a + 1, b + 1})
		}
	}
	return m
}

var defaultMapping = sync.OnceValue(func() *Mapping { return New(MaxDimension) })

// Default returns the process-wide mapping for [MaxDimension] points.
func Default() *Mapping { return defaultMapping() }

// Dimension returns the number of points.
func (m *Mapping) Dimension() int { return m.dim }

// Size returns the number of letters, dim*(dim-1)/2.
func (m *Mapping) Size() int { return len(m.pairs) }

// ToAlphabet returns the letter for the pair (a, b). It panics unless 1 <= a < b <= Dimension().
func (m *Mapping) ToAlphabet(a, b int) int {
	if a < 1 || a >= b || b > m.dim {
		panic(fmt.Sprintf("alphabet: invalid pair (%d, %d) for dimension %d", a, b, m.dim))
	}
	return m.toAlpha[b-1][a-1]
}

// FromAlphabet returns the pair for a letter. It panics unless 0 <= letter < Size().
func (m *Mapping) FromAlphabet(letter int) Pair {
	if letter < 0 || letter >= len(m.pairs) {
		panic(fmt.Sprintf("alphabet: invalid letter %d for dimension %d", letter, m.dim))
	}
	return m.pairs[letter]
}
