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

// Package fsunify implements Tomabechi's quasi-destructive graph
// unification algorithm for untyped feature structures: atomic, leaf and
// complex nodes joined by labeled arcs.
//
// Unification is attempted by mutating scratch fields on the input graphs
// under a generation counter; a failed or abandoned attempt leaves the
// inputs logically unchanged, and a successful attempt materializes a
// fresh result via copy-out. See internal/core/graph for the engine.
package fsunify

import "github.com/fsunify/fsunify/internal/core/graph"

// A Node is a feature graph node. Node values returned by MakeLeaf and
// MakeComplex are owned by the caller and are never logically altered by
// Unify, which writes only their generation-gated scratch fields;
// Node values returned by Unify are fresh and share no mutable state with
// their inputs.
type Node = graph.Node

// An Arc is a labeled edge from a complex node to a child node.
type Arc = graph.Arc

// A Config configures a Unifier.
type Config = graph.Config

// Label interns s as an arc label or leaf name. Two Labels built from equal
// strings compare equal.
func Label(s string) graph.Symbol { return graph.Intern(s) }

// MakeLeaf returns a leaf node with the given name.
func MakeLeaf(name string) *Node { return graph.NewLeaf(name) }

// MakeComplex returns a complex node with the given arcs. It returns an
// error if arcs contains a duplicate label.
func MakeComplex(arcs []Arc) (*Node, error) { return graph.NewComplex(arcs) }

// Equal reports whether a and b are structurally equal modulo arc order.
func Equal(a, b *Node) bool { return graph.Equal(a, b) }

// A Unifier performs unification episodes. It is not safe for concurrent
// use by multiple goroutines; create one Unifier per thread of control, or
// serialize access to a shared one.
type Unifier struct {
	inner *graph.Unifier
}

// New returns a Unifier configured by cfg. The zero Config is ready to use.
func New(cfg Config) *Unifier {
	return &Unifier{inner: graph.New(cfg)}
}

// Unify attempts to unify n1 and n2, returning their most general common
// specialization on success, or a *graph.Failure describing the first
// disagreement found. It never panics on data-dependent disagreement;
// a panic out of Unify indicates an InvariantViolation (malformed input
// or an engine bug), per the error handling design.
func (u *Unifier) Unify(n1, n2 *Node) (*Node, error) {
	return u.inner.Unify(n1, n2)
}
