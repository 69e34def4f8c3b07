// Copyright 2020 CUE Authors
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

// This file contains the pure, scratch-field-free arc set operations used
// at every complex/complex unification junction.

package graph

// labelSet builds the set of labels present in arcs, for membership tests
// in IntersectByLabel and ComplementByLabel.
func labelSet(arcs []Arc) map[Symbol]bool {
	set := make(map[Symbol]bool, len(arcs))
	for _, a := range arcs {
		set[a.Label] = true
	}
	return set
}

// IntersectByLabel returns the arcs of a whose label also appears in b, in
// a's order. Used to find the features that require recursive unification.
func IntersectByLabel(a, b []Arc) []Arc {
	inB := labelSet(b)
	var out []Arc
	for _, x := range a {
		if inB[x.Label] {
			out = append(out, x)
		}
	}
	return out
}

// ComplementByLabel returns the arcs of a whose label does not appear in b,
// in a's order. Used to find the features contributed uniquely by one side.
func ComplementByLabel(a, b []Arc) []Arc {
	inB := labelSet(b)
	var out []Arc
	for _, x := range a {
		if !inB[x.Label] {
			out = append(out, x)
		}
	}
	return out
}

// findArc returns the arc in arcs labeled label, if any.
func findArc(label Symbol, arcs []Arc) (Arc, bool) {
	for _, a := range arcs {
		if a.Label == label {
			return a, true
		}
	}
	return Arc{}, false
}
