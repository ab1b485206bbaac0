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

// Package checked provides integer arithmetic for coefficients. Every function panics instead of
// silently wrapping around or truncating, coefficients that leave the range of int indicate an
// input that is too large for this module.
package checked

import (
	"fmt"
	"math"
)

// Add returns a + b.
func Add(a, b int) int {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		panic(fmt.Sprintf("checked: integer overflow in %d + %d", a, b))
	}
	return c
}

// Sub returns a - b.
func Sub(a, b int) int {
	if b == math.MinInt {
		if a >= 0 {
			panic(fmt.Sprintf("checked: integer overflow in %d - %d", a, b))
		}
		return a - b
	}
	return Add(a, -b)
}

// Neg returns -a.
func Neg(a int) int {
	if a == math.MinInt {
		panic(fmt.Sprintf("checked: integer overflow in -(%d)", a))
	}
	return -a
}

// Mul returns a * b.
func Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) || c/b != a {
		panic(fmt.Sprintf("checked: integer overflow in %d * %d", a, b))
	}
	return c
}

// Div returns a / b and panics if b does not divide a.
func Div(a, b int) int {
	if b == 0 {
		panic(fmt.Sprintf("checked: division of %d by zero", a))
	}
	if a%b != 0 {
		panic(fmt.Sprintf("checked: %d is not divisible by %d", a, b))
	}
	if a == math.MinInt && b == -1 {
		panic(fmt.Sprintf("checked: integer overflow in %d / %d", a, b))
	}
	return a / b
}

// Factorial returns n!.
func Factorial(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("checked: factorial of negative number %d", n))
	}
	r := 1
	for i := 2; i <= n; i++ {
		r = Mul(r, i)
	}
	return r
}
