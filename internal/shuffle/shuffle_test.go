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

package shuffle

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"znkr.io/symbol/linear"
	"znkr.io/symbol/word"
)

func TestProduct(t *testing.T) {
	tests := []struct {
		name string
		u, v word.Word
		want []word.Word
	}{
		{
			name: "empty",
			want: []word.Word{word.Of()},
		},
		{
			name: "left-empty",
			v:    word.Of(1, 2),
			want: []word.Word{word.Of(1, 2)},
		},
		{
			name: "right-empty",
			u:    word.Of(1, 2),
			want: []word.Word{word.Of(1, 2)},
		},
		{
			name: "single-letters",
			u:    word.Of(1),
			v:    word.Of(2),
			want: []word.Word{word.Of(2, 1), word.Of(1, 2)},
		},
		{
			name: "two-and-one",
			u:    word.Of(1, 2),
			v:    word.Of(3),
			want: []word.Word{word.Of(3, 1, 2), word.Of(1, 3, 2), word.Of(1, 2, 3)},
		},
		{
			name: "same-letter",
			u:    word.Of(1),
			v:    word.Of(1),
			want: []word.Word{word.Of(1, 1), word.Of(1, 1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Product(tt.u, tt.v)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Product(%v, %v) result difference [-want,+got]:\n%s", tt.u, tt.v, diff)
			}
		})
	}
}

func TestProductTwoByTwo(t *testing.T) {
	got := linear.Count(Product(word.Of(0, 1), word.Of(2, 3))...)
	want := map[word.Word]int{
		word.Of(0, 1, 2, 3): 1,
		word.Of(0, 2, 1, 3): 1,
		word.Of(0, 2, 3, 1): 1,
		word.Of(2, 0, 1, 3): 1,
		word.Of(2, 0, 3, 1): 1,
		word.Of(2, 3, 0, 1): 1,
	}
	if diff := cmp.Diff(want, got.ToMap()); diff != "" {
		t.Errorf("Product((0,1), (2,3)) result difference [-want,+got]:\n%s", diff)
	}
}

func TestProductProperties(t *testing.T) {
	rnd := rand.New(rand.NewChaCha8([32]byte{}))
	for range 200 {
		u := randomWord(rnd, rnd.IntN(5), 4)
		v := randomWord(rnd, rnd.IntN(5), 4)
		t.Run(fmt.Sprintf("%v-%v", u, v), func(t *testing.T) {
			got := Product(u, v)
			if want := Binomial(u.Len()+v.Len(), u.Len()); len(got) != want {
				t.Errorf("len(Product(u, v)) = %d, want %d", len(got), want)
			}
			for _, w := range got {
				if !isInterleaving(w, u, v) {
					t.Errorf("%v is not an interleaving of %v and %v", w, u, v)
				}
			}
			// Shuffle is commutative as a multiset.
			if !linear.Count(got...).Equal(linear.Count(Product(v, u)...)) {
				t.Errorf("Product(u, v) != Product(v, u)")
			}
		})
	}
}

func TestProductMany(t *testing.T) {
	got := ProductMany(word.Of(1, 1), word.Of(1, 1), word.Of(1, 1))
	if len(got) != 90 {
		t.Errorf("len(ProductMany((1,1), (1,1), (1,1))) = %d, want 90", len(got))
	}
	want := map[word.Word]int{word.Of(1, 1, 1, 1, 1, 1): 90}
	if diff := cmp.Diff(want, linear.Count(got...).ToMap()); diff != "" {
		t.Errorf("ProductMany(...) result difference [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff(want, Expand(word.Of(1, 1), word.Of(1, 1), word.Of(1, 1)).ToMap()); diff != "" {
		t.Errorf("Expand(...) result difference [-want,+got]:\n%s", diff)
	}

	single := ProductMany(word.Of(3, 1))
	if diff := cmp.Diff([]word.Word{word.Of(3, 1)}, single); diff != "" {
		t.Errorf("ProductMany((3,1)) result difference [-want,+got]:\n%s", diff)
	}
}

func TestExpandMatchesProductMany(t *testing.T) {
	rnd := rand.New(rand.NewChaCha8([32]byte{1}))
	for range 50 {
		ws := make([]word.Word, 1+rnd.IntN(3))
		n := 0
		for i := range ws {
			ws[i] = randomWord(rnd, 1+rnd.IntN(3), 3)
			n += ws[i].Len()
		}
		want := linear.Count(ProductMany(ws...)...)
		got := Expand(ws...)
		if !got.Equal(want) {
			t.Errorf("Expand(%v) = %v, want %v", ws, got, want)
		}
		if got.L1Norm() != len(ProductMany(ws...)) {
			t.Errorf("Expand(%v).L1Norm() = %d, want %d", ws, got.L1Norm(), len(ProductMany(ws...)))
		}
		if word.Weight(got) != n {
			t.Errorf("Weight(Expand(%v)) = %d, want %d", ws, word.Weight(got), n)
		}
	}
}

func TestEmptyPanics(t *testing.T) {
	for name, f := range map[string]func(){
		"ProductMany": func() { ProductMany() },
		"Expand":      func() { Expand() },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s() didn't panic", name)
				}
			}()
			f()
		})
	}
}

func TestBinomial(t *testing.T) {
	tests := []struct{ n, k, want int }{
		{0, 0, 1},
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{10, 3, 120},
		{3, 4, 0},
		{3, -1, 0},
		{60, 30, 118264581564861424},
	}
	for _, tt := range tests {
		if got := Binomial(tt.n, tt.k); got != tt.want {
			t.Errorf("Binomial(%d, %d) = %d, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}

func BenchmarkProduct(b *testing.B) {
	rnd := rand.New(rand.NewChaCha8([32]byte{}))
	u := randomWord(rnd, 6, 8)
	v := randomWord(rnd, 6, 8)
	for b.Loop() {
		Product(u, v)
	}
}

func randomWord(rnd *rand.Rand, n, alphabet int) word.Word {
	var b word.Builder
	for range n {
		b.WriteLetter(rnd.IntN(alphabet))
	}
	return b.Build()
}

// isInterleaving reports whether w is an interleaving of u and v.
func isInterleaving(w, u, v word.Word) bool {
	if w.Len() != u.Len()+v.Len() {
		return false
	}
	// reachable[j] reports whether w[:i+j] can be split into u[:i] and v[:j].
	reachable := make([]bool, v.Len()+1)
	for i := 0; i <= u.Len(); i++ {
		for j := 0; j <= v.Len(); j++ {
			switch {
			case i == 0 && j == 0:
				reachable[j] = true
			default:
				fromU := i > 0 && reachable[j] && u.At(i-1) == w.At(i+j-1)
				fromV := j > 0 && reachable[j-1] && v.At(j-1) == w.At(i+j-1)
				reachable[j] = fromU || fromV
			}
		}
	}
	return reachable[v.Len()]
}
