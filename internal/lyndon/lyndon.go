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
	"iter"

	"znkr.io/symbol/word"
)

// Factorize returns the Lyndon factorization of w: a non-increasing sequence of Lyndon words whose
// concatenation is w. The empty word has no factors.
func Factorize(w word.Word) []word.Word {
	var factors []word.Word
	n := w.Len()
	start := 0
	for start < n {
		k, m := start, start+1
		for m < n && w[k] <= w[m] {
			if w[k] < w[m] {
				k = start
			} else {
				k++
			}
			m++
		}
		// w[start:m] is a power of the Lyndon word w[start:start+p].
		p := m - k
		for start <= k {
			factors = append(factors, w[start:start+p])
			start += p
		}
	}
	return factors
}

// IsLyndon reports whether w is a Lyndon word.
func IsLyndon(w word.Word) bool {
	if w.Len() == 0 {
		return false
	}
	return len(Factorize(w)) == 1
}

// isPower reports whether a factorization contains a factor more than once. Factors are
// non-increasing, repetitions are adjacent.
func isPower(factors []word.Word) bool {
	for i := 1; i < len(factors); i++ {
		if factors[i] == factors[i-1] {
			return true
		}
	}
	return false
}

// Generate returns all Lyndon words over the alphabet [0, alphabetSize) with length up to
// maxLength in lexicographic order. It panics if the alphabet has more than word.MaxLetter+1
// letters.
func Generate(alphabetSize, maxLength int) iter.Seq[word.Word] {
	if alphabetSize > word.MaxLetter+1 {
		panic(fmt.Sprintf("lyndon: alphabet of size %d doesn't fit into words", alphabetSize))
	}
	return func(yield func(word.Word) bool) {
		if alphabetSize <= 0 || maxLength <= 0 {
			return
		}
		last := []byte{0}
		if !yield(word.Of(0)) {
			return
		}
		for {
			// Repeat the last word up to the maximal length, strip trailing maximal letters and
			// increment the last letter. This yields the next Lyndon word (Duval 1988).
			w := make([]byte, maxLength)
			for i := range w {
				w[i] = last[i%len(last)]
			}
			for len(w) > 0 && int(w[len(w)-1]) == alphabetSize-1 {
				w = w[:len(w)-1]
			}
			if len(w) == 0 {
				return
			}
			w[len(w)-1]++
			if !yield(word.View(w)) {
				return
			}
			last = w
		}
	}
}
