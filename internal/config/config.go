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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// symbol.Option.
package config

import "znkr.io/symbol/internal/cache"

//go:generate go tool golang.org/x/tools/cmd/stringer -type=PowerPolicy

// PowerPolicy selects how the basis reduction treats power words. A power word is a word whose
// Lyndon factorization repeats a factor, e.g. (0,0) or (0,1,0,1).
type PowerPolicy int

const (
	// Rewrite power words like all other non-Lyndon words: divide the shuffle product of the
	// factors by the product of the factorials of their multiplicities.
	ReducePowers PowerPolicy = iota

	// Keep power words as terminal elements of the result.
	RetainPowers

	// Panic if a power word is encountered.
	ForbidPowers
)

type Config struct {
	// Treatment of power words.
	Powers PowerPolicy

	// If set, expansions of non-Lyndon words are memoized in this cache.
	Cache *cache.Cache

	// If set, words of length 2 are reduced directly instead of via the shuffle product.
	ShortWords bool
}

var Default = Config{
	Powers:     ReducePowers,
	Cache:      nil,
	ShortWords: false,
}

// Flag is used to restrict the options that are allowed for a function.
type Flag int

const (
	Powers Flag = 1 << iota
	Cache
	ShortWords
)

// Option configures the basis reduction. Options return the flag identifying the option.
type Option func(*Config) Flag

// FromOptions returns the configuration obtained by applying opts to the default configuration.
// It panics if an option is not in allowed.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.Powers < ReducePowers || cfg.Powers > ForbidPowers {
		panic("unknown power policy: " + cfg.Powers.String())
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Powers:
		return "symbol.Powers"
	case Cache:
		return "symbol.WithCache"
	case ShortWords:
		return "symbol.ShortWordFastPath"
	default:
		panic("never reached")
	}
}
