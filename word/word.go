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

// Package word provides words over a small integer alphabet and linear combinations of them.
//
// A [Word] is stored as a string where every byte is one letter. This makes words comparable (they
// can be used as map keys), cheap to slice and concatenate, and the lexicographic order on words
// is the string order.
package word

import (
	"fmt"
	"strconv"
	"strings"
)

// Word is a finite sequence of letters in [0, MaxLetter].
type Word string

const (
	// MaxLetter is the largest letter a word can contain.
	MaxLetter = 255

	// Inf is the infinity sentinel. It's never a letter, it's only valid as the target of a
	// substitution and marks the substituted term as degenerate.
	Inf = -1
)

// Of returns the word with the given letters. It panics if a letter is out of range.
func Of(letters ...int) Word {
	var b Builder
	b.Grow(len(letters))
	for _, l := range letters {
		b.WriteLetter(l)
	}
	return b.Build()
}

// Len returns the number of letters in w, also called the weight of w.
func (w Word) Len() int { return len(w) }

// At returns the i-th letter of w.
func (w Word) At(i int) int { return int(w[i]) }

// Letters returns the letters of w.
func (w Word) Letters() []int {
	out := make([]int, len(w))
	for i := range len(w) {
		out[i] = int(w[i])
	}
	return out
}

// Slice returns the letters w[i:j].
func (w Word) Slice(i, j int) Word { return w[i:j] }

// Concat returns the concatenation of all words.
func Concat(ws ...Word) Word {
	var b Builder
	n := 0
	for _, w := range ws {
		n += len(w)
	}
	b.Grow(n)
	for _, w := range ws {
		b.WriteWord(w)
	}
	return b.Build()
}

// Compare compares two words lexicographically. A proper prefix of a word is smaller than the word.
func Compare(a, b Word) int {
	return strings.Compare(string(a), string(b))
}

// Substitute replaces every letter l of w with m[l]. Letters without a mapping are kept. If a
// letter is mapped to [Inf], Substitute returns false.
func (w Word) Substitute(m map[int]int) (Word, bool) {
	var b Builder
	b.Grow(len(w))
	for i := range len(w) {
		l := int(w[i])
		if r, ok := m[l]; ok {
			if r == Inf {
				return "", false
			}
			l = r
		}
		b.WriteLetter(l)
	}
	return b.Build(), true
}

// Template returns the canonical representative of w modulo renaming letters: letters are
// renamed to 0, 1, 2, ... in the order of their first occurrence.
//
// Example: Template((7,3,7,5)) is (0,1,0,2).
func Template(w Word) Word {
	var next [MaxLetter + 1]int
	var b Builder
	b.Grow(len(w))
	n := 0
	for i := range len(w) {
		if next[w[i]] == 0 {
			n++
			next[w[i]] = n
		}
		b.WriteLetter(next[w[i]] - 1)
	}
	return b.Build()
}

// String formats w as a tuple, e.g. "(1,0,2)".
func (w Word) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := range len(w) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(w[i])))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Parse parses a word in the format produced by [Word.String].
func Parse(s string) (Word, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return "", fmt.Errorf("word %q: missing parentheses", s)
	}
	s = strings.TrimSpace(s[1 : len(s)-1])
	if s == "" {
		return "", nil
	}
	var b Builder
	for f := range strings.SplitSeq(s, ",") {
		l, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return "", fmt.Errorf("word %q: %v", s, err)
		}
		if l < 0 || l > MaxLetter {
			return "", fmt.Errorf("word %q: letter %d out of range", s, l)
		}
		b.WriteLetter(l)
	}
	return b.Build(), nil
}
