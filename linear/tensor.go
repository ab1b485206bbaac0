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

package linear

import (
	"fmt"

	"znkr.io/symbol/internal/checked"
)

// TensorProduct returns the tensor product of a and b. For every pair of terms x·ka in a and
// y·kb in b, the result contains (x·y)·combine(ka, kb).
//
// combine must be injective on the keys of a and b, for example concatenation of words of fixed
// lengths. TensorProduct panics if two different pairs of keys are combined into the same key.
func TensorProduct[A, B, C comparable](a Linear[A], b Linear[B], combine func(A, B) C) Linear[C] {
	r := Linear[C]{make(map[C]int, len(a.data)*len(b.data))}
	for ka, ca := range a.data {
		for kb, cb := range b.data {
			k := combine(ka, kb)
			if _, ok := r.data[k]; ok {
				panic(fmt.Sprintf("linear: tensor product is not injective: %v = (%v) * (%v) was already produced", k, ka, kb))
			}
			r.data[k] = checked.Mul(ca, cb)
		}
	}
	return r
}

// TensorProductMany folds [TensorProduct] over exprs from left to right. It panics if exprs is
// empty.
func TensorProductMany[K comparable](combine func(K, K) K, exprs ...Linear[K]) Linear[K] {
	if len(exprs) == 0 {
		panic("linear: tensor product of nothing")
	}
	r := exprs[0].Copy()
	for _, e := range exprs[1:] {
		r = TensorProduct(r, e, combine)
	}
	return r
}
