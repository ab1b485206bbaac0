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

// Package lyndon contains Lyndon factorization and the rewrite of word expressions into the
// Lyndon basis of the shuffle algebra.
//
// # Lyndon words
//
// A word is a Lyndon word if it is strictly smaller than all of its proper rotations. For example,
// (0,0,1) is a Lyndon word, because it's smaller than (0,1,0) and (1,0,0). Neither (0,1,0) nor
// (0,0) are Lyndon words: the former is larger than its rotation (0,0,1) and the latter is equal
// to its only proper rotation.
//
// By the Chen-Fox-Lyndon theorem, every word w has a unique factorization w = l1 l2 ... lk into
// Lyndon words with l1 >= l2 >= ... >= lk. The factorization is computed in linear time with
// Duval's algorithm: It scans the word maintaining the start of the current factor, a candidate
// position k in the current factor and the lookahead position m. As long as w[k] == w[m], the
// lookahead extends a repetition of the current period. If w[k] < w[m], the whole prefix since
// the start becomes one (longer) Lyndon word. If w[k] > w[m], the period m-k is a factor and is
// emitted.
//
// # Lyndon basis
//
// Lyndon words form a basis of the shuffle algebra: every word can be written as a polynomial in
// Lyndon words with shuffle as multiplication. Consequently, modulo shuffle products, every word
// is equivalent to a linear combination of Lyndon words. This is the Lyndon basis.
//
// To rewrite a non-Lyndon word w with factorization l1^n1 l2^n2 ... lk^nk (li distinct), we use
// that the shuffle product of all factors divided by n1! n2! ... nk! contains w with coefficient
// exactly 1 and otherwise only words that are strictly smaller than w:
//
//	l1 ⧢ ... ⧢ l1 ⧢ ... ⧢ lk ⧢ ... ⧢ lk / (n1! ... nk!) = w + (smaller words)
//
// The shuffle product itself vanishes modulo shuffle products, so w is equivalent to the negated
// smaller words. Example:
//
//	(1,0) = (1) ⧢ (0) - (0,1) ≡ -(0,1)
//
// [ToBasis] maintains a work queue sorted by word. It repeatedly takes the largest word: Lyndon
// words are final, all other words are replaced by the negated rest of their expansion. Because
// every replacement only introduces strictly smaller words of the same length and there are only
// finitely many of them, the rewrite terminates and every word is taken at most once.
//
// # Power words
//
// A word whose factorization repeats a factor (n_i > 1) is a power word, for example (0,0) or
// (0,1,0,1). The standard rewrite reduces them like all other words: (0,0) = (0) ⧢ (0) / 2!
// vanishes. Some callers want to treat power words differently and can choose to keep power words
// as final words or to reject them (see config.PowerPolicy).
package lyndon

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'symbol'
func tracer() tracing.Trace {
	return tracing.Select("symbol")
}
