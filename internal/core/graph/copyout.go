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

// copyOut materializes a fresh, standalone graph from the representative of
// n's equivalence class (component C6). It dereferences first: the Python
// reference implementation invokes its equivalent on the input node
// directly, which, taken literally, risks copying from a non-representative
// (design notes, §9, Open Questions). This implementation corrects that by
// dereferencing before copying, as the specification requires.
//
// Structure sharing (the copy scratch field) is on within a single copyOut
// call unless Config.DisableCopySharing is set: it is what makes the walk
// terminate on re-entrant sub-structures and avoids exponential blow-up on
// diamond-shaped sharing. With DisableCopySharing set, every visit
// allocates a fresh node, so a shared child is copied once per path that
// reaches it. Sharing is never carried across calls; each call's output is fully
// independent, per the "no shared mutable state" testable property.
func (u *Unifier) copyOut(gen uint64, n *Node) *Node {
	r := Dereference(gen, n)

	if !u.cfg.DisableCopySharing {
		if c := r.copyLive(gen); c != nil {
			return c
		}
	}

	switch r.kind {
	case AtomicKind:
		fresh := &Node{kind: AtomicKind}
		if !u.cfg.DisableCopySharing {
			r.setCopy(gen, fresh)
		}
		return fresh

	case LeafKind:
		fresh := &Node{kind: LeafKind, name: r.name}
		if !u.cfg.DisableCopySharing {
			r.setCopy(gen, fresh)
		}
		return fresh

	default:
		fresh := &Node{kind: ComplexKind}
		// Publish before recursing: a cycle reached through the copy map
		// (substructure reshared via unification, not an input cycle)
		// must terminate on this node rather than recurse forever.
		if !u.cfg.DisableCopySharing {
			r.setCopy(gen, fresh)
		}

		seen := make(map[Symbol]bool, len(r.arcs)+len(r.compArcsLive(gen)))
		appendCopied := func(a Arc) {
			if seen[a.Label] {
				panic(InvariantViolation{Msg: "label present in both arc_list and comp_arcs: " + a.Label.String()})
			}
			seen[a.Label] = true
			fresh.arcs = append(fresh.arcs, Arc{Label: a.Label, Child: u.copyOut(gen, a.Child)})
		}
		for _, a := range r.arcs {
			appendCopied(a)
		}
		for _, a := range r.compArcsLive(gen) {
			appendCopied(a)
		}
		return fresh
	}
}
