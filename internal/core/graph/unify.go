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

// Config configures a Unifier. The zero Config is ready to use.
type Config struct {
	// InitialGeneration seeds the generation counter. Zero is the
	// sensible default: no Node is ever live at generation 0, since a
	// freshly constructed Node's zero-value generation field is 0, so the
	// first episode (generation 1) can never mistake an untouched node
	// for one carrying live scratch state.
	InitialGeneration uint64

	// DisableCopySharing forces copy-out to allocate a fresh node for
	// every visit instead of memoizing via the copy scratch field. The
	// specification treats sharing as always-on (§9); this flag exists
	// only so tests can assert the two modes agree (see copyout_test.go),
	// carrying forward the structure_sharing toggle the Python reference
	// implementation's constructor took (SPEC_FULL §13).
	DisableCopySharing bool
}

// A Unifier performs quasi-destructive graph unification episodes. It owns
// the generation counter for the scratch fields its episodes write, so it
// must not be used concurrently from more than one goroutine (§5): the
// generation-gated scratch discipline is not a substitute for a lock.
type Unifier struct {
	cfg     Config
	counter generationCounter
}

// New returns a Unifier configured by cfg.
func New(cfg Config) *Unifier {
	return &Unifier{cfg: cfg, counter: generationCounter{current: cfg.InitialGeneration}}
}

// Unify attempts to unify n1 and n2. On success it returns a fresh node
// representing their most general common specialization, built entirely
// from newly allocated nodes (it shares no node with the inputs); neither
// input is logically altered, win or lose. On failure it returns a *Failure describing the
// first disagreement found.
func (u *Unifier) Unify(n1, n2 *Node) (*Node, error) {
	gen := u.counter.advance()
	traceID := traceEpisode(gen, n1, n2)

	rep, err := u.unifyCore(gen, n1, n2, nil)
	if err != nil {
		traceResult(traceID, gen, err)
		return nil, err
	}
	out := u.copyOut(gen, rep)
	traceResult(traceID, gen, nil)
	return out, nil
}

// unifyCore is the recursive quasi-destructive unification procedure
// (component C5). path records the arc labels traversed so far, root
// first, for Failure attribution.
func (u *Unifier) unifyCore(gen uint64, n1, n2 *Node, path []Symbol) (*Node, error) {
	d1 := Dereference(gen, n1)
	d2 := Dereference(gen, n2)

	if d1 == d2 {
		return d1, nil
	}

	switch {
	case d1.kind == LeafKind && d2.kind == LeafKind:
		if d1.name == d2.name {
			return d1, nil
		}
		return nil, &Failure{
			Path:   path,
			Reason: fmt.Sprintf("leaf mismatch: %q vs %q", d1.name, d2.name),
		}

	case d1.kind == LeafKind: // d2 is complex (or atomic): complex strictly specializes.
		d1.setForward(gen, d2)
		return d2, nil

	case d2.kind == LeafKind:
		d2.setForward(gen, d1)
		return d1, nil

	default:
		// Complex/complex, and (by the data model's "present for
		// completeness" Atomic case, §3) complex/atomic or atomic/atomic:
		// an atomic node's nil arc list is simply the empty complex node,
		// so the general arc-set join below handles it without a special
		// case. An atomic node unifies with anything the same way an
		// empty-arc complex node does (§4.5, edge cases).
		//
		// d1 survives as the representative. copyOut reads only the
		// representative's own arc_list plus its live comp_arcs (it never
		// looks at a node that has been forwarded away), so whichever side
		// stops being live must not be the side holding the accumulated
		// arcs. d1 already owns its own arc_list, so stamping d2's
		// exclusive arcs onto d1 as comp_arcs and forwarding d2 onto d1 is
		// what gives the representative the full union of both operands'
		// arcs (invariant 3: the representative owns the live comp_arcs).
		//
		// An atomic d1 against a complex d2 is the one exception: copyOut
		// gives an atomic representative no arcs, so d2 (which already owns
		// every arc of the union) is kept as the representative instead.
		if d1.kind == AtomicKind && d2.kind == ComplexKind {
			d1.setForward(gen, d2)
			return d2, nil
		}
		shared := IntersectByLabel(d1.arcs, d2.arcs)
		newArcs := ComplementByLabel(d2.arcs, d1.arcs)

		for _, a1 := range shared {
			// a1.Label is, by construction of shared, present in d2.arcs.
			a2, _ := findArc(a1.Label, d2.arcs)
			childPath := append(append([]Symbol(nil), path...), a1.Label)
			if _, err := u.unifyCore(gen, a1.Child, a2.Child, childPath); err != nil {
				return nil, err
			}
		}

		d1.addCompArcs(gen, newArcs)
		d2.setForward(gen, d1)
		return d1, nil
	}
}
