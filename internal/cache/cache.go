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

// Package cache memoizes word expansions of the Lyndon basis reduction.
package cache

import (
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/npillmayer/schuko/tracing"

	"znkr.io/symbol/word"
)

// tracer writes to trace with key 'symbol'
func tracer() tracing.Trace {
	return tracing.Select("symbol")
}

// Cache is a fixed size LRU cache from words to expressions. It is safe for concurrent use.
//
// Cached expressions are shared between callers and must not be modified.
type Cache struct {
	mu     sync.Mutex
	lru    *simplelru.LRU
	hits   int
	misses int
}

// New returns a cache holding up to size expansions. It panics if size is not positive.
func New(size int) *Cache {
	lru, err := simplelru.NewLRU(size, nil)
	if err != nil {
		panic(fmt.Sprintf("cache: %v", err))
	}
	tracer().Debugf("created expansion cache of size %d", size)
	return &Cache{lru: lru}
}

// Lookup returns the expression cached for w. If w isn't cached, fetch is called to compute it
// before storing it in the cache. fetch runs without holding the lock, concurrent misses on the
// same word may both compute it.
func (c *Cache) Lookup(w word.Word, fetch func(word.Word) word.Expr) word.Expr {
	c.mu.Lock()
	if e, ok := c.lru.Get(w); ok {
		c.hits++
		c.mu.Unlock()
		return e.(word.Expr)
	}
	c.misses++
	c.mu.Unlock()

	e := fetch(w)

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.lru.Get(w); ok {
		return prev.(word.Expr)
	}
	c.lru.Add(w, e)
	return e
}

// Purge removes all entries and resets the statistics.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
	c.hits, c.misses = 0, 0
}

// Len returns the number of cached expansions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns the number of cache hits and misses since creation or the last call to Purge.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
