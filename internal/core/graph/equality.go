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

// Equal reports whether a and b are structurally equal modulo arc order.
// It operates on plain, non-scratch-gated nodes (typically copy-out
// results) and does not dereference: comparing mid-episode scratch state
// is not a defined operation.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case AtomicKind:
		return true
	case LeafKind:
		return a.name == b.name
	default:
		if len(a.arcs) != len(b.arcs) {
			return false
		}
	outer:
		for _, x := range a.arcs {
			for _, y := range b.arcs {
				if x.Label == y.Label {
					if !Equal(x.Child, y.Child) {
						return false
					}
					continue outer
				}
			}
			return false
		}
		return true
	}
}
