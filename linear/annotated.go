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

// Annotated is a linear combination together with a record of where it came from.
//
// Notes is a linear combination of free-form descriptions (e.g. "QLi2(1,3,5,6)") that follows the
// same arithmetic as Terms. Keeping them in a separate container means algorithms that operate on
// Terms never have to tell terms and annotations apart.
type Annotated[K comparable] struct {
	Terms Linear[K]
	Notes Linear[string]
}

// Annotate returns terms annotated with note.
func Annotate[K comparable](terms Linear[K], note string) Annotated[K] {
	return Annotated[K]{Terms: terms, Notes: Single(note)}
}

// Add returns a + o.
func (a Annotated[K]) Add(o Annotated[K]) Annotated[K] {
	return Annotated[K]{a.Terms.Add(o.Terms), a.Notes.Add(o.Notes)}
}

// Sub returns a - o.
func (a Annotated[K]) Sub(o Annotated[K]) Annotated[K] {
	return Annotated[K]{a.Terms.Sub(o.Terms), a.Notes.Sub(o.Notes)}
}

// Scale returns c·a.
func (a Annotated[K]) Scale(c int) Annotated[K] {
	return Annotated[K]{a.Terms.Scale(c), a.Notes.Scale(c)}
}

// MapTerms returns the result of f applied to the terms, the notes are kept as they are.
func (a Annotated[K]) MapTerms(f func(Linear[K]) Linear[K]) Annotated[K] {
	return Annotated[K]{f(a.Terms), a.Notes.Copy()}
}
