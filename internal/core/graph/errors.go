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

// This file contains the two error vocabularies the engine raises:
// Failure, an expected, data-dependent result of a unification attempt,
// and InvariantViolation, a fatal programmer-error condition. The two are
// never to be confused: a Failure is returned, an InvariantViolation is
// panicked.

package graph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateLabel is wrapped by the error MakeComplex returns when its
// arc list contains a repeated label.
var ErrDuplicateLabel = errors.New("duplicate arc label")

// A Failure reports that two feature structures could not be unified. It is
// an ordinary value, not a panic: unification failure is expected and must
// be cheap to propagate through ordinary return values.
type Failure struct {
	// Path is the sequence of arc labels, root first, leading to the point
	// of disagreement.
	Path []Symbol
	// Reason describes the disagreement (e.g. the two leaf names).
	Reason string
}

func (f *Failure) Error() string {
	if len(f.Path) == 0 {
		return f.Reason
	}
	parts := make([]string, len(f.Path))
	for i, s := range f.Path {
		parts[i] = s.String()
	}
	return fmt.Sprintf("%s: %s", strings.Join(parts, "."), f.Reason)
}

// An InvariantViolation marks a condition the algorithm's own invariants
// rule out for well-formed input: a forward cycle, or a label appearing in
// both a node's arc_list and its comp_arcs at copy-out time. These are
// programmer errors, not unification outcomes, and are always raised as a
// panic rather than returned.
type InvariantViolation struct {
	Msg string
}

func (v InvariantViolation) Error() string {
	return "feature graph invariant violated: " + v.Msg
}
