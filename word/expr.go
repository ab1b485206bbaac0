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

package word

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"znkr.io/symbol/linear"
)

// Expr is a linear combination of words.
type Expr = linear.Linear[Word]

// Single returns the expression 1·w.
func Single(w Word) Expr { return linear.Single(w) }

// Weight returns the common length of all words in e, or 0 if e is empty. It panics if e mixes
// words of different lengths.
func Weight(e Expr) int {
	weight := -1
	for w := range e.All() {
		switch {
		case weight < 0:
			weight = w.Len()
		case weight != w.Len():
			panic(fmt.Sprintf("expression mixes weights %d and %d", weight, w.Len()))
		}
	}
	return max(weight, 0)
}

// MaxLetterIn returns the largest letter in e, or -1 if e contains no letters.
func MaxLetterIn(e Expr) int {
	m := -1
	for w := range e.All() {
		for i := range w.Len() {
			m = max(m, w.At(i))
		}
	}
	return m
}

// SubstituteExpr applies [Word.Substitute] to every word in e. Terms where a letter is mapped to
// [Inf] are dropped, terms that map to the same word are combined.
func SubstituteExpr(e Expr, m map[int]int) Expr {
	var out Expr
	for w, c := range e.All() {
		if s, ok := w.Substitute(m); ok {
			out.AddTo(s, c)
		}
	}
	return out
}

// TemplateExpr replaces every word in e with its [Template]. Each word is renamed independently.
func TemplateExpr(e Expr) Expr {
	return linear.Map(e, Template)
}

// DistinctLetters returns the number of distinct letters in w.
func DistinctLetters(w Word) int {
	return set.From(w.Letters()).Size()
}

// WithDistinctLetters returns the terms of e whose words contain exactly n distinct letters.
func WithDistinctLetters(e Expr, n int) Expr {
	return e.Filter(func(w Word) bool { return DistinctLetters(w) == n })
}

// Format formats e with one term per line in lexicographic order, e.g.
//
//	+1 (0,1)
//	-2 (0,2)
//
// The empty expression formats as "0".
func Format(e Expr) string {
	return e.Format(Compare, Word.String)
}

// ParseExpr parses an expression in the format produced by [Format].
func ParseExpr(s string) (Expr, error) {
	var e Expr
	s = strings.TrimSpace(s)
	if s == "0" || s == "" {
		return e, nil
	}
	for i, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		coeff, rest, ok := strings.Cut(line, " ")
		if !ok {
			return Expr{}, fmt.Errorf("line %d: missing word: %q", i+1, line)
		}
		c, err := strconv.Atoi(coeff)
		if err != nil {
			return Expr{}, fmt.Errorf("line %d: %v", i+1, err)
		}
		w, err := Parse(rest)
		if err != nil {
			return Expr{}, fmt.Errorf("line %d: %v", i+1, err)
		}
		e.AddTo(w, c)
	}
	return e, nil
}
