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

package delta

import "github.com/hashicorp/go-set/v3"

// points returns the set of all points in m.
func points(m Monom) *set.Set[int] {
	s := set.New[int](2 * m.Len())
	for _, d := range m.Deltas() {
		s.Insert(d.a)
		s.Insert(d.b)
	}
	return s
}

// TermsContainingNumVariables returns the terms of e whose monoms involve exactly n distinct
// points.
func TermsContainingNumVariables(e Expr, n int) Expr {
	return e.Filter(func(m Monom) bool { return points(m).Size() == n })
}

// TermsContainingOnlyVariables returns the terms of e whose monoms only involve the given points.
func TermsContainingOnlyVariables(e Expr, pts ...int) Expr {
	allowed := set.From(pts)
	return e.Filter(func(m Monom) bool { return allowed.Subset(points(m)) })
}

// TermsWithUniqueMultiples returns the terms of e whose monoms don't repeat a delta.
func TermsWithUniqueMultiples(e Expr) Expr {
	return e.Filter(hasUniqueMultiples)
}

// TermsWithNonuniqueMultiples returns the terms of e whose monoms repeat a delta.
func TermsWithNonuniqueMultiples(e Expr) Expr {
	return e.Filter(func(m Monom) bool { return !hasUniqueMultiples(m) })
}

func hasUniqueMultiples(m Monom) bool {
	return set.From(m.Word().Letters()).Size() == m.Len()
}

// KeepConnectedGraphs returns the terms of e whose monoms, viewed as graphs with points as
// vertices and deltas as edges, are connected.
func KeepConnectedGraphs(e Expr) Expr {
	return e.Filter(isConnected)
}

func isConnected(m Monom) bool {
	if m.Len() == 0 {
		return true
	}
	ds := m.Deltas()
	reached := set.From([]int{ds[0].a})
	// Every pass over the edges reaches at least one more vertex, or nothing changes anymore.
	for changed := true; changed; {
		changed = false
		for _, d := range ds {
			if reached.Contains(d.a) != reached.Contains(d.b) {
				reached.Insert(d.a)
				reached.Insert(d.b)
				changed = true
			}
		}
	}
	return reached.Subset(points(m))
}
