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

// generationCounter produces a strictly increasing sequence of episode
// tags. The reference implementation keeps this as a process-wide
// singleton; design notes (§9) call that incidental and ask for one
// counter per unifier instance instead, which is what Unifier embeds.
//
// A single top-level Unify call advances the counter exactly once and
// reuses that value to stamp every scratch write the episode makes, per
// the "simpler and acceptable discipline" the component design allows.
type generationCounter struct {
	current uint64
}

// advance returns the next generation value and records it as current.
func (g *generationCounter) advance() uint64 {
	g.current++
	return g.current
}
