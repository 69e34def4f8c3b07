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

import "fmt"

// A Kind distinguishes the three node variants.
type Kind int8

const (
	// AtomicKind carries no sub-structure and no identity beyond reference
	// equality. It exists for completeness; the engine constructs one
	// itself only when copy-out copies an atomic node.
	AtomicKind Kind = iota
	// LeafKind carries an interned name. Two leaves unify iff their names
	// are equal.
	LeafKind
	// ComplexKind carries an arc list, an ordered sequence of
	// (label, child) pairs with labels unique within the list.
	ComplexKind
)

func (k Kind) String() string {
	switch k {
	case AtomicKind:
		return "atomic"
	case LeafKind:
		return "leaf"
	case ComplexKind:
		return "complex"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

// An Arc is a labeled edge to a child node.
type Arc struct {
	Label Symbol
	Child *Node
}

// A Node is a feature graph node: atomic, leaf, or complex, plus the four
// scratch fields used only during unification (forward, comp_arcs, copy,
// generation). Input nodes are built once by MakeLeaf/MakeComplex and are
// never mutated on their arc_list or name by the engine; everything the
// engine writes lives in the scratch fields below and is gated by
// generation, per the invariant 2 (generation gate) of the data model.
type Node struct {
	kind Kind
	name Symbol // valid for LeafKind
	arcs []Arc  // valid for ComplexKind; immutable across episodes

	// Scratch fields. Live only when generation equals the Unifier's
	// current counter value for the episode in progress; see stampLive and
	// the *Live read helpers below, which are the single point where that
	// gating is implemented.
	generation uint64
	forward    *Node
	compArcs   []Arc
	copyNode   *Node
}

// NewAtomic returns a fresh atomic node.
func NewAtomic() *Node { return &Node{kind: AtomicKind} }

// NewLeaf returns a fresh leaf node with the given name.
func NewLeaf(name string) *Node {
	return &Node{kind: LeafKind, name: Intern(name)}
}

// NewComplex returns a fresh complex node with the given arcs. It rejects
// arcs containing a duplicate label: this is an invariant violation (arc
// uniqueness, invariant 4), but one caught at construction time, before any
// scratch state exists, so it is surfaced as an ordinary error rather than
// a panic.
func NewComplex(arcs []Arc) (*Node, error) {
	cp := append([]Arc(nil), arcs...)
	seen := make(map[Symbol]bool, len(cp))
	for _, a := range cp {
		if seen[a.Label] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLabel, a.Label)
		}
		seen[a.Label] = true
	}
	return &Node{kind: ComplexKind, arcs: cp}, nil
}

// Kind reports the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the leaf's interned name. Only meaningful for LeafKind.
func (n *Node) Name() Symbol { return n.name }

// Arcs returns the node's primary arc list. Only meaningful for
// ComplexKind. Callers must not mutate the returned slice.
func (n *Node) Arcs() []Arc { return n.arcs }

// stampLive resets the scratch fields to "not yet touched this episode" the
// first time a node is written to under a new generation, then records gen
// as the node's current generation. Subsequent writes under the same gen
// accumulate onto whatever is already there. This is what makes the
// generation counter a sufficient substitute for explicit teardown between
// episodes (design notes, §9: "no explicit teardown is required").
func (n *Node) stampLive(gen uint64) {
	if n.generation != gen {
		n.generation = gen
		n.forward = nil
		n.compArcs = nil
		n.copyNode = nil
	}
}

// forwardLive returns the node's forward pointer if live under gen, or nil
// (absent) otherwise. This is the live-read helper design notes (§9) call
// out as the central abstraction of the scratch-field discipline.
func (n *Node) forwardLive(gen uint64) *Node {
	if n.generation != gen {
		return nil
	}
	return n.forward
}

// setForward stamps n live under gen and records to as its forward.
func (n *Node) setForward(gen uint64, to *Node) {
	n.stampLive(gen)
	n.forward = to
}

// compArcsLive returns the node's live comp_arcs under gen, or nil if not
// live.
func (n *Node) compArcsLive(gen uint64) []Arc {
	if n.generation != gen {
		return nil
	}
	return n.compArcs
}

// addCompArcs stamps n live under gen and appends arcs to its comp_arcs.
func (n *Node) addCompArcs(gen uint64, arcs []Arc) {
	if len(arcs) == 0 {
		return
	}
	n.stampLive(gen)
	n.compArcs = append(n.compArcs, arcs...)
}

// copyLive returns the node's live copy-out back-pointer under gen, or nil.
func (n *Node) copyLive(gen uint64) *Node {
	if n.generation != gen {
		return nil
	}
	return n.copyNode
}

// setCopy stamps n live under gen and records its copy-out back-pointer.
func (n *Node) setCopy(gen uint64, to *Node) {
	n.stampLive(gen)
	n.copyNode = to
}
