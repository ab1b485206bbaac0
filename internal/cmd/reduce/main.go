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

// reduce reads linear combinations of words and prints their form in the Lyndon basis.
//
// Every argument is a file with one term per line in the format "+3 (1,0,2)". Without arguments
// the expression is read from stdin. With -comultiply p,q the (p, q) component of the coproduct is
// printed instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"znkr.io/symbol"
	"znkr.io/symbol/word"
)

type config struct {
	powers     string
	cache      int
	comultiply string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.powers, "powers", "reduce", "treatment of power words: reduce, retain or forbid")
	flag.IntVar(&cfg.cache, "cache", 0, "if >0, memoize up to this many expansions across inputs")
	flag.StringVar(&cfg.comultiply, "comultiply", "", "if set, print the comultiplication with the form p,q")
	flag.Parse()

	if err := run(&cfg, flag.CommandLine.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config, files []string, stdin io.Reader, stdout io.Writer) error {
	var opts []symbol.Option
	switch cfg.powers {
	case "reduce":
		opts = append(opts, symbol.Powers(symbol.ReducePowers))
	case "retain":
		opts = append(opts, symbol.Powers(symbol.RetainPowers))
	case "forbid":
		opts = append(opts, symbol.Powers(symbol.ForbidPowers))
	default:
		return fmt.Errorf("unknown power policy %q", cfg.powers)
	}
	if cfg.cache > 0 {
		opts = append(opts, symbol.WithCache(symbol.NewCache(cfg.cache)))
	}

	var p, q int
	if cfg.comultiply != "" {
		var err error
		p, q, err = parseForm(cfg.comultiply)
		if err != nil {
			return err
		}
	}

	inputs := make(map[string]string)
	names := files
	if len(files) == 0 {
		in, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %v", err)
		}
		names = []string{"-"}
		inputs["-"] = string(in)
	}
	for _, f := range files {
		in, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("reading input: %v", err)
		}
		inputs[f] = string(in)
	}

	for i, name := range names {
		e, err := word.ParseExpr(inputs[name])
		if err != nil {
			return fmt.Errorf("%s: %v", name, err)
		}
		if err := checkWeight(e); err != nil {
			return fmt.Errorf("%s: %v", name, err)
		}
		if len(names) > 1 {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "# %s\n", name)
		}
		if cfg.comultiply != "" {
			fmt.Fprintln(stdout, symbol.FormatCoExpr(symbol.Comultiply(e, p, q, opts...)))
		} else {
			fmt.Fprintln(stdout, word.Format(symbol.ToLyndonBasis(e, opts...)))
		}
	}
	return nil
}

func checkWeight(e word.Expr) error {
	weight := -1
	for w := range e.All() {
		if weight >= 0 && w.Len() != weight {
			return fmt.Errorf("expression mixes weights %d and %d", weight, w.Len())
		}
		weight = w.Len()
	}
	return nil
}

func parseForm(s string) (p, q int, err error) {
	ps, qs, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid form %q, want p,q", s)
	}
	if p, err = strconv.Atoi(strings.TrimSpace(ps)); err != nil {
		return 0, 0, fmt.Errorf("invalid form %q: %v", s, err)
	}
	if q, err = strconv.Atoi(strings.TrimSpace(qs)); err != nil {
		return 0, 0, fmt.Errorf("invalid form %q: %v", s, err)
	}
	if p < 1 || q < 1 {
		return 0, 0, fmt.Errorf("invalid form %q: both parts must be positive", s)
	}
	return p, q, nil
}
