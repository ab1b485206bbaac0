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
	"znkr.io/symbol/internal/cache"
	"znkr.io/symbol/internal/config"
)

// Option configures the behavior of the Lyndon basis rewrite.
type Option = config.Option

// PowerPolicy selects how [ToLyndonBasis] treats power words, words whose Lyndon factorization
// repeats a factor such as (0,0) or (0,1,0,1).
type PowerPolicy = config.PowerPolicy

const (
	ReducePowers = config.ReducePowers // Rewrite power words like all other words (default).
	RetainPowers = config.RetainPowers // Keep power words in the result.
	ForbidPowers = config.ForbidPowers // Panic when encountering a power word.
)

// Powers configures the treatment of power words. The default is [ReducePowers].
func Powers(p PowerPolicy) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Powers = p
		return config.Powers
	}
}

// Cache memoizes the expansion of words during the Lyndon basis rewrite. A Cache can be shared
// between goroutines. Use Purge to release all memoized expansions.
type Cache = cache.Cache

// NewCache returns a cache that holds the expansions of up to size words. It panics if size is
// not positive.
func NewCache(size int) *Cache { return cache.New(size) }

// WithCache memoizes word expansions in c. A nil cache disables memoization, which is the
// default.
//
// A cache only pays off when the same words need to be rewritten repeatedly, e.g. when reducing
// many expressions over the same alphabet.
func WithCache(c *Cache) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Cache = c
		return config.Cache
	}
}
