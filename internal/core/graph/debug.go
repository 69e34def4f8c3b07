// Copyright 2023 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graph

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// TraceEpisodes enables per-episode tracing to the standard logger. It is
// off by default, as it adds allocation overhead (an episode id per call)
// that a CPU-bound synchronous library should not pay unasked.
var TraceEpisodes = false

// traceEpisode logs the start of a unification episode and returns the
// episode id used to correlate further trace lines, or the nil UUID when
// tracing is disabled.
func traceEpisode(gen uint64, n1, n2 *Node) uuid.UUID {
	if !TraceEpisodes {
		return uuid.Nil
	}
	id := uuid.New()
	log.Printf("fsunify episode=%s generation=%d unify(%p, %p)", id, gen, n1, n2)
	return id
}

func traceResult(id uuid.UUID, gen uint64, err error) {
	if !TraceEpisodes {
		return
	}
	if err != nil {
		log.Printf("fsunify episode=%s generation=%d failed: %v", id, gen, err)
		return
	}
	log.Printf("fsunify episode=%s generation=%d succeeded", id, gen)
}

// Dump renders n as a deterministic, human-readable structure (arcs sorted
// by label) for use in test failure output. It is exported from this
// package, rather than left to a reflection-based pretty-printer, because
// Node's fields are unexported and a dump needs to describe the logical
// leaf/complex shape, not the scratch-field internals.
func Dump(n *Node) string {
	var b strings.Builder
	dump(&b, n)
	return b.String()
}

func dump(b *strings.Builder, n *Node) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	switch n.kind {
	case AtomicKind:
		b.WriteString("atomic")
	case LeafKind:
		fmt.Fprintf(b, "leaf(%s)", n.name)
	default:
		arcs := append([]Arc(nil), n.arcs...)
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].Label.String() < arcs[j].Label.String() })
		b.WriteString("complex(")
		for i, a := range arcs {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s: ", a.Label)
			dump(b, a.Child)
		}
		b.WriteString(")")
	}
}
