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
	"bytes"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/tools/txtar"

	"znkr.io/symbol/internal/cache"
	"znkr.io/symbol/internal/config"
	"znkr.io/symbol/word"
)

var update = flag.Bool("update", false, "update golden files")

func TestToBasisKnown(t *testing.T) {
	tests := []struct {
		name string
		in   map[word.Word]int
		want map[word.Word]int
	}{
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "square",
			in:   map[word.Word]int{word.Of(0, 0): 1},
			want: nil,
		},
		{
			name: "swap",
			in:   map[word.Word]int{word.Of(1, 0): 1},
			want: map[word.Word]int{word.Of(0, 1): -1},
		},
		{
			name: "swap-scaled",
			in:   map[word.Word]int{word.Of(1, 0): 42},
			want: map[word.Word]int{word.Of(0, 1): -42},
		},
		{
			name: "two-steps",
			in:   map[word.Word]int{word.Of(1, 0, 0): 1},
			want: map[word.Word]int{word.Of(0, 0, 1): 1},
		},
		{
			name: "cancellation",
			in:   map[word.Word]int{word.Of(0, 1, 2): 1, word.Of(0, 2, 1): 1, word.Of(2, 0, 1): 1},
			want: nil,
		},
		{
			name: "lyndon-words-are-kept",
			in:   map[word.Word]int{word.Of(0, 1, 1): 3, word.Of(0, 0, 1): -2},
			want: map[word.Word]int{word.Of(0, 1, 1): 3, word.Of(0, 0, 1): -2},
		},
		{
			name: "power",
			in:   map[word.Word]int{word.Of(0, 1, 0, 1): 1},
			want: map[word.Word]int{word.Of(0, 0, 1, 1): -2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teardown := gotestingadapter.QuickConfig(t, "symbol")
			defer teardown()

			got := ToBasis(fromMap(tt.in), config.Default)
			if diff := cmp.Diff(tt.want, got.ToMap(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ToBasis(...) result difference [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestToBasisGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	for _, filename := range files {
		t.Run(strings.TrimPrefix(filename, "testdata/"), func(t *testing.T) {
			ar, err := txtar.ParseFile(filename)
			if err != nil {
				t.Fatalf("failed to parse test case: %v", err)
			}
			var input word.Expr
			for i, f := range ar.Files {
				switch f.Name {
				case "input":
					input, err = word.ParseExpr(string(f.Data))
					if err != nil {
						t.Fatalf("failed to parse input: %v", err)
					}
				case "want":
					pragmas, want := splitPragmas(t, f.Data)
					cfg, name := configFromPragmas(t, pragmas)
					t.Run(name, func(t *testing.T) {
						got := []byte(word.Format(ToBasis(input, cfg)) + "\n")
						if diff := cmp.Diff(string(want), string(got)); diff != "" {
							t.Errorf("ToBasis(...) result difference [-want,+got]:\n%s", diff)
						}
						if *update {
							ar.Files[i].Data = append(pragmas[:len(pragmas):len(pragmas)], got...)
						}
					})
				default:
					t.Fatalf("unknown file in archive: %v", f.Name)
				}
			}
			if *update {
				if err := os.WriteFile(filename, txtar.Format(ar), 0o644); err != nil {
					t.Fatalf("error writing golden file: %v", err)
				}
			}
		})
	}
}

// splitPragmas splits the leading "# key: value" lines off data.
func splitPragmas(t *testing.T, data []byte) (pragmas, rest []byte) {
	t.Helper()
	i := 0
	for i < len(data) && data[i] == '#' {
		eol := bytes.IndexByte(data[i:], '\n')
		if eol < 0 {
			t.Fatal("failed to parse test case: missing newline after pragma line")
		}
		i += eol + 1
	}
	return data[:i], data[i:]
}

func configFromPragmas(t *testing.T, pragmas []byte) (config.Config, string) {
	t.Helper()
	cfg := config.Default
	var name []string
	for line := range strings.Lines(string(pragmas)) {
		k, v, found := strings.Cut(strings.TrimPrefix(line, "#"), ":")
		if !found {
			t.Fatal("failed to parse test case: missing ':' in pragma line")
		}
		switch k, v := strings.TrimSpace(k), strings.TrimSpace(v); k {
		case "powers":
			switch v {
			case "reduce":
				cfg.Powers = config.ReducePowers
			case "retain":
				cfg.Powers = config.RetainPowers
			default:
				t.Fatalf("invalid value for powers: %q", v)
			}
			name = append(name, k+"="+v)
		case "short-words":
			switch v {
			case "true":
				cfg.ShortWords = true
			case "false":
				// do nothing
			default:
				t.Fatalf("invalid value for short-words: %q", v)
			}
			name = append(name, k)
		default:
			t.Fatalf("unknown option: %q", k)
		}
	}
	if len(name) == 0 {
		name = append(name, "default")
	}
	return cfg, strings.Join(name, ":")
}

func TestToBasisProperties(t *testing.T) {
	rnd := rand.New(rand.NewChaCha8([32]byte{}))
	for i := range 30 {
		weight := 2 + rnd.IntN(4)
		a := randomExpr(rnd, weight, 4, 6)
		b := randomExpr(rnd, weight, 4, 6)
		t.Run(fmt.Sprintf("%d-weight-%d", i, weight), func(t *testing.T) {
			for _, powers := range []config.PowerPolicy{config.ReducePowers, config.RetainPowers} {
				cfg := config.Config{Powers: powers}
				ra := ToBasis(a, cfg)
				rb := ToBasis(b, cfg)

				if again := ToBasis(ra, cfg); !again.Equal(ra) {
					t.Errorf("%v: ToBasis isn't idempotent:\n%s\n!=\n%s", powers, word.Format(again), word.Format(ra))
				}
				if sum := ToBasis(a.Add(b), cfg); !sum.Equal(ra.Add(rb)) {
					t.Errorf("%v: ToBasis isn't linear:\n%s\n!=\n%s", powers, word.Format(sum), word.Format(ra.Add(rb)))
				}
				if scaled := ToBasis(a.Scale(-7), cfg); !scaled.Equal(ra.Scale(-7)) {
					t.Errorf("%v: ToBasis doesn't commute with scaling", powers)
				}
				for w := range ra.All() {
					factors := Factorize(w)
					if len(factors) != 1 && (powers == config.ReducePowers || !isPower(factors)) {
						t.Errorf("%v: result contains %v which is not in the basis", powers, w)
					}
				}
				if word.Weight(ra) != 0 && word.Weight(ra) != weight {
					t.Errorf("%v: ToBasis changed the weight from %d to %d", powers, weight, word.Weight(ra))
				}
			}
		})
	}
}

func TestExpansionIsStrictlySmaller(t *testing.T) {
	for length := 2; length <= 6; length++ {
		for w := range allWords(3, length) {
			factors := Factorize(w)
			if len(factors) == 1 {
				continue
			}
			rest := expansionRest(w, factors)
			for u := range rest.All() {
				if word.Compare(u, w) >= 0 {
					t.Errorf("expansion of %v contains %v", w, u)
				}
				if u.Len() != w.Len() {
					t.Errorf("expansion of %v contains %v of different length", w, u)
				}
			}
		}
	}
}

func TestShortWords(t *testing.T) {
	for w := range allWords(5, 2) {
		for _, powers := range []config.PowerPolicy{config.ReducePowers, config.RetainPowers} {
			in := word.Single(w).Scale(3)
			want := ToBasis(in, config.Config{Powers: powers})
			got := ToBasis(in, config.Config{Powers: powers, ShortWords: true})
			if !got.Equal(want) {
				t.Errorf("%v: ToBasis(%v) with short words = %v, want %v", powers, w, got, want)
			}
		}
	}
}

func TestCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbol")
	defer teardown()

	rnd := rand.New(rand.NewChaCha8([32]byte{2}))
	c := cache.New(64)
	for range 10 {
		e := randomExpr(rnd, 4, 3, 8)
		want := ToBasis(e, config.Default)
		// The second run is served from the cache.
		for range 2 {
			got := ToBasis(e, config.Config{Cache: c})
			if !got.Equal(want) {
				t.Errorf("ToBasis with cache = %v, want %v", word.Format(got), word.Format(want))
			}
		}
	}
	hits, misses := c.Stats()
	if misses == 0 || hits == 0 {
		t.Errorf("cache stats = %d hits, %d misses, want both to be positive", hits, misses)
	}
}

func TestToBasisPanics(t *testing.T) {
	tests := []struct {
		name string
		in   map[word.Word]int
		cfg  config.Config
	}{
		{
			name: "forbid-square",
			in:   map[word.Word]int{word.Of(0, 0): 1},
			cfg:  config.Config{Powers: config.ForbidPowers},
		},
		{
			name: "forbid-nested-power",
			in:   map[word.Word]int{word.Of(1, 0, 1, 0): 1},
			cfg:  config.Config{Powers: config.ForbidPowers},
		},
		{
			name: "mixed-weights",
			in:   map[word.Word]int{word.Of(0, 1): 1, word.Of(0, 1, 1): 1},
			cfg:  config.Default,
		},
		{
			name: "unknown-policy",
			in:   map[word.Word]int{word.Of(0, 0): 1},
			cfg:  config.Config{Powers: config.PowerPolicy(42)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("ToBasis(...) didn't panic")
				}
			}()
			ToBasis(fromMap(tt.in), tt.cfg)
		})
	}
}

func TestForbidPowersWithoutPowers(t *testing.T) {
	in := fromMap(map[word.Word]int{word.Of(1, 0, 2): 1, word.Of(2, 1, 0): 2})
	got := ToBasis(in, config.Config{Powers: config.ForbidPowers})
	want := ToBasis(in, config.Default)
	if !got.Equal(want) {
		t.Errorf("ToBasis(...) with forbidden powers = %v, want %v", word.Format(got), word.Format(want))
	}
}

func BenchmarkToBasis(b *testing.B) {
	for _, weight := range []int{4, 6, 8} {
		b.Run(fmt.Sprintf("weight-%d", weight), func(b *testing.B) {
			rnd := rand.New(rand.NewChaCha8([32]byte{}))
			e := randomExpr(rnd, weight, 4, 20)
			for b.Loop() {
				ToBasis(e, config.Default)
			}
		})
	}
}

func fromMap(m map[word.Word]int) word.Expr {
	var e word.Expr
	for w, c := range m {
		e.AddTo(w, c)
	}
	return e
}

func randomExpr(rnd *rand.Rand, weight, alphabetSize, terms int) word.Expr {
	var e word.Expr
	for range terms {
		var b word.Builder
		for range weight {
			b.WriteLetter(rnd.IntN(alphabetSize))
		}
		e.AddTo(b.Build(), rnd.IntN(7)-3)
	}
	return e
}
