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

package graph

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func arcsOf(labels ...string) []Arc {
	out := make([]Arc, len(labels))
	for i, l := range labels {
		out[i] = Arc{Label: Intern(l), Child: NewLeaf("X")}
	}
	return out
}

func labelsOf(arcs []Arc) []string {
	out := make([]string, len(arcs))
	for i, a := range arcs {
		out[i] = a.Label.String()
	}
	return out
}

func TestIntersectByLabel(t *testing.T) {
	a := arcsOf("f", "g", "h")
	b := arcsOf("g", "h", "k")

	got := labelsOf(IntersectByLabel(a, b))
	qt.Assert(t, qt.DeepEquals(got, []string{"g", "h"}))
}

func TestComplementByLabel(t *testing.T) {
	a := arcsOf("f", "g", "h")
	b := arcsOf("g", "h", "k")

	got := labelsOf(ComplementByLabel(a, b))
	qt.Assert(t, qt.DeepEquals(got, []string{"f"}))
}

func TestArcOpsAreOrderPreservingAndPure(t *testing.T) {
	a := arcsOf("f", "g")
	b := arcsOf("g")

	_ = IntersectByLabel(a, b)
	_ = ComplementByLabel(a, b)

	// Neither operation mutates its inputs.
	qt.Assert(t, qt.DeepEquals(labelsOf(a), []string{"f", "g"}))
	qt.Assert(t, qt.DeepEquals(labelsOf(b), []string{"g"}))
}

func TestEmptyArcLists(t *testing.T) {
	qt.Assert(t, qt.HasLen(IntersectByLabel(nil, nil), 0))
	qt.Assert(t, qt.HasLen(ComplementByLabel(nil, arcsOf("f")), 0))
	qt.Assert(t, qt.DeepEquals(labelsOf(ComplementByLabel(arcsOf("f"), nil)), []string{"f"}))
}
