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

// Package graphtest provides a test-only fixture helper: a tiny textual
// notation for describing feature graphs. The txtar scenario files under
// testdata/scenarios are loaded by fsunify_test.go, not by this package,
// which only parses their graph texts. It exists only to keep test
// tables readable; it is not, and must not become, a parser for external
// input (spec.md places any parser or lexicon for feature structures out
// of scope).
package graphtest

import (
	"fmt"
	"strings"

	"github.com/fsunify/fsunify/internal/core/graph"
)

// Parse reads s, one of:
//
//	leaf(Name)
//	complex(label1: <node>, label2: <node>, ...)
//	atomic
//
// and returns the corresponding *graph.Node. It panics on malformed input:
// fixtures are test-authored, so a malformed fixture is a test bug, not a
// data-dependent condition to handle gracefully.
func Parse(s string) *graph.Node {
	n, rest := parseOne(strings.TrimSpace(s))
	rest = strings.TrimSpace(rest)
	if rest != "" {
		panic(fmt.Sprintf("graphtest.Parse: trailing input %q", rest))
	}
	return n
}

func parseOne(s string) (*graph.Node, string) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "atomic"):
		return graph.NewAtomic(), s[len("atomic"):]

	case strings.HasPrefix(s, "leaf("):
		rest := s[len("leaf("):]
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			panic("graphtest.Parse: unterminated leaf(")
		}
		name := strings.TrimSpace(rest[:end])
		return graph.NewLeaf(name), rest[end+1:]

	case strings.HasPrefix(s, "complex("):
		rest := s[len("complex("):]
		var arcs []graph.Arc
		for {
			rest = strings.TrimSpace(rest)
			if strings.HasPrefix(rest, ")") {
				rest = rest[1:]
				break
			}
			colon := strings.IndexByte(rest, ':')
			if colon < 0 {
				panic("graphtest.Parse: expected 'label: node' in complex(...)")
			}
			label := strings.TrimSpace(rest[:colon])
			child, remainder := parseOne(rest[colon+1:])
			arcs = append(arcs, graph.Arc{Label: graph.Intern(label), Child: child})
			remainder = strings.TrimSpace(remainder)
			if strings.HasPrefix(remainder, ",") {
				remainder = remainder[1:]
			}
			rest = remainder
		}
		n, err := graph.NewComplex(arcs)
		if err != nil {
			panic(fmt.Sprintf("graphtest.Parse: %v", err))
		}
		return n, rest

	default:
		panic(fmt.Sprintf("graphtest.Parse: unrecognized input %q", s))
	}
}
