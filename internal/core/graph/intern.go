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

// Package graph implements the Tomabechi quasi-destructive unification
// engine: the node/arc data model, the generation-gated scratch fields,
// dereference, arc set operations, unify-core and copy-out.
package graph

import "github.com/josharian/intern"

// A Symbol is an interned name, used both for leaf values and arc labels.
// intern.String deduplicates the backing storage for equal strings across
// the process, so repeated labels and leaf names (the common case on any
// real feature structure) share one allocation instead of one per arc.
type Symbol struct {
	s string
}

// Intern returns the Symbol for s, interning s if it has not been seen
// before by this process.
func Intern(s string) Symbol {
	return Symbol{intern.String(s)}
}

// String returns the underlying string. The zero Symbol stringifies to "".
func (s Symbol) String() string { return s.s }

// IsZero reports whether s is the zero Symbol (no name interned).
func (s Symbol) IsZero() bool { return s.s == "" }
