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
	"iter"

	"znkr.io/symbol/internal/config"
	"znkr.io/symbol/internal/lyndon"
	"znkr.io/symbol/internal/shuffle"
	"znkr.io/symbol/word"
)

// Word is a sequence of letters.
type Word = word.Word

// Expr is a linear combination of words with integer coefficients.
type Expr = word.Expr

// Factorize returns the Lyndon factorization of w: the unique non-increasing sequence of Lyndon
// words whose concatenation is w.
func Factorize(w Word) []Word { return lyndon.Factorize(w) }

// IsLyndon reports whether w is a Lyndon word, i.e. whether w is strictly smaller than all its
// proper rotations.
func IsLyndon(w Word) bool { return lyndon.IsLyndon(w) }

// LyndonWords returns all Lyndon words over the letters [0, alphabetSize) with length up to
// maxLength in lexicographic order.
func LyndonWords(alphabetSize, maxLength int) iter.Seq[Word] {
	return lyndon.Generate(alphabetSize, maxLength)
}

// Shuffle returns the shuffle product of u and v: all interleavings of u and v that preserve the
// order of letters within each word. The result is a multiset, duplicates are kept.
func Shuffle(u, v Word) []Word { return shuffle.Product(u, v) }

// ShuffleMany returns the shuffle product of all words. It panics if no word is provided.
func ShuffleMany(ws ...Word) []Word { return shuffle.ProductMany(ws...) }

// ToLyndonBasis rewrites expr as a linear combination of Lyndon words modulo shuffle products.
//
// All words in expr must have the same length, ToLyndonBasis panics otherwise.
//
// The following options are supported: [symbol.Powers], [symbol.WithCache]
func ToLyndonBasis(expr Expr, opts ...Option) Expr {
	cfg := config.FromOptions(opts, config.Powers|config.Cache|config.ShortWords)
	return lyndon.ToBasis(expr, cfg)
}
