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

// Package symbol provides the word algebra behind the symbol calculus of multiple polylogarithms:
// shuffle products, Lyndon factorization and the rewrite of linear combinations of words into the
// Lyndon basis modulo shuffle products.
//
// The main function is [ToLyndonBasis], which converts an arbitrary linear combination of words of
// the same length into a canonical form. Two expressions are equal modulo shuffle products if and
// only if their Lyndon basis forms are equal. [Comultiply] splits words and takes the coproduct of
// both halves in the Lyndon basis.
//
// Performance: The rewrite of a word of length n with k distinct Lyndon factors expands a shuffle
// product with up to n!/(n1! ... nk!) terms. Long words with many short factors are expensive. Use
// [WithCache] to memoize expansions when reducing many expressions over the same alphabet.
//
// Note: For expressions over differences of points (x_i - x_j), please see
// [znkr.io/symbol/delta].
//
// [znkr.io/symbol/delta]: https://pkg.go.dev/znkr.io/symbol/delta
package symbol

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'symbol'
func tracer() tracing.Trace {
	return tracing.Select("symbol")
}
