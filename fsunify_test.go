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

// This file exercises the public facade end to end against the golden
// scenarios under testdata/scenarios, encoded as txtar archives the same
// way the teacher module encodes its own language-level golden tests.

package fsunify_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/rogpeppe/go-internal/txtar"

	"github.com/fsunify/fsunify"
	"github.com/fsunify/fsunify/internal/core/graph"
	"github.com/fsunify/fsunify/internal/core/graph/graphtest"
)

func archiveFile(a *txtar.Archive, name string) (string, bool) {
	for _, f := range a.Files {
		if f.Name == name {
			return strings.TrimSpace(string(f.Data)), true
		}
	}
	return "", false
}

func TestScenarios(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no scenario fixtures found")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			a, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatal(err)
			}
			n1Src, ok := archiveFile(a, "n1")
			if !ok {
				t.Fatal("fixture missing n1")
			}
			n2Src, ok := archiveFile(a, "n2")
			if !ok {
				t.Fatal("fixture missing n2")
			}
			wantSrc, ok := archiveFile(a, "want")
			if !ok {
				t.Fatal("fixture missing want")
			}

			u := fsunify.New(fsunify.Config{})
			got, err := u.Unify(graphtest.Parse(n1Src), graphtest.Parse(n2Src))

			if wantSrc == "FAIL" {
				if err == nil {
					t.Fatalf("expected failure, got %s", pretty.Sprint(graph.Dump(got)))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected failure: %v", err)
			}
			want := graphtest.Parse(wantSrc)
			if gd, wd := graph.Dump(got), graph.Dump(want); gd != wd {
				t.Fatalf("result mismatch:\n got: %s\nwant: %s", gd, wd)
			}
		})
	}
}

func TestMakeComplexRejectsDuplicateLabel(t *testing.T) {
	_, err := fsunify.MakeComplex([]fsunify.Arc{
		{Label: fsunify.Label("f"), Child: fsunify.MakeLeaf("A")},
		{Label: fsunify.Label("f"), Child: fsunify.MakeLeaf("B")},
	})
	if err == nil {
		t.Fatal("expected error for duplicate label")
	}
}

func TestEqualOperation(t *testing.T) {
	a, err := fsunify.MakeComplex([]fsunify.Arc{
		{Label: fsunify.Label("f"), Child: fsunify.MakeLeaf("A")},
	})
	if err != nil {
		t.Fatal(err)
	}
	b, err := fsunify.MakeComplex([]fsunify.Arc{
		{Label: fsunify.Label("f"), Child: fsunify.MakeLeaf("A")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !fsunify.Equal(a, b) {
		t.Fatal("expected structurally equal nodes to compare equal")
	}
}
