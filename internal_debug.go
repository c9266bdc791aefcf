// Copyright 2026 The LITS Authors
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

package lits

import "fmt"

// debug, when true, traces the structural decisions pmssBulk and
// changeCount make (which node kind a group bulk-builds into, which
// ancestor a resize picks and why) the way the teacher's map.go traces its
// probe sequence. invariants, when true, enables runtime assertions that
// catch programmer errors (calling a mutating operation before Bulkload,
// violating a node's structural precondition, and so on). Both are
// compile-time constants, so a build with one set to false pays nothing for
// it; debug is off and invariants is on as shipped.
const (
	debug      = false
	invariants = true
)

// assertInvariant panics with a formatted message when cond is false and
// invariant checking is enabled. It is reserved for conditions that can
// only be violated by a bug in this package or its caller, never for
// conditions a well-formed caller can trigger through ordinary use (those
// are reported through ordinary return values instead).
func assertInvariant(cond bool, format string, args ...interface{}) {
	if invariants && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// countItemKind walks every item reachable from root and returns how many
// have the given kind. It exists for tests that need to assert a bulk
// build actually produced a particular node shape (a trie fallback, a
// compact node, and so on) rather than only checking the keys it holds
// still resolve correctly.
func countItemKind(root item, kind itemKind) int {
	var n int
	if root.kind == kind {
		n++
	}
	switch root.kind {
	case itemModel:
		for _, child := range root.modelNode().items {
			if !child.isEmpty() {
				n += countItemKind(child, kind)
			}
		}
	case itemCompact, itemSingle, itemTrie, itemNull:
		// leaves: nothing further to descend into
	}
	return n
}
