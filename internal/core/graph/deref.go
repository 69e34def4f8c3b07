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

// Dereference walks n's live forward chain under gen until it reaches a
// node with no live forward, applies path compression along the way, and
// returns that representative. It panics with an InvariantViolation if a
// node is visited twice, which can only happen if the forward graph
// contains a cycle (invariant 1).
//
// Dereference never fails on well-formed input and is idempotent within a
// single generation: a second call with the same gen walks exactly one hop
// to the already-compressed representative.
func Dereference(gen uint64, n *Node) *Node {
	cur := n
	var path []*Node
	var seen map[*Node]bool

	for {
		fwd := cur.forwardLive(gen)
		if fwd == nil {
			break
		}
		if seen == nil {
			seen = make(map[*Node]bool, 4)
		}
		if seen[cur] {
			panic(InvariantViolation{Msg: "forward cycle detected during dereference"})
		}
		seen[cur] = true
		path = append(path, cur)
		cur = fwd
	}

	rep := cur
	for _, p := range path {
		p.setForward(gen, rep)
	}
	return rep
}
