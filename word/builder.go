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

package word

import (
	"fmt"
	"slices"
	"sync"
	"unsafe"
)

// View returns a word that shares memory with b. The caller must not modify b afterwards.
func View(b []byte) Word {
	return Word(unsafe.String(unsafe.SliceData(b), len(b)))
}

// Builder builds a word letter by letter without copying the result.
type Builder struct {
	_   [0]sync.Mutex // don't copy
	buf []byte
}

// Grow grows the builder's capacity to fit at least n more letters.
func (b *Builder) Grow(n int) {
	b.buf = slices.Grow(b.buf, n)
}

// WriteLetter appends a letter. It panics if the letter is out of range.
func (b *Builder) WriteLetter(l int) {
	if l < 0 || l > MaxLetter {
		panic(fmt.Sprintf("letter out of range: %d", l))
	}
	b.buf = append(b.buf, byte(l))
}

// WriteWord appends all letters of w.
func (b *Builder) WriteWord(w Word) {
	b.buf = append(b.buf, w...)
}

// Len returns the number of letters written so far.
func (b *Builder) Len() int { return len(b.buf) }

// Build returns the word and resets the builder.
func (b *Builder) Build() Word {
	defer func() {
		b.buf = nil
	}()
	return View(b.buf)
}
