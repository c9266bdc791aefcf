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

// structureKind is the outcome of pmss.decideSubType: whether a group of
// keys should be bulk-built as a model-based inner node or as a trie.
type structureKind int

const (
	structureItems structureKind = iota
	structureTrie
)

// defaultPMSSThreshold is the default cutoff on a group's gpkl (see
// strutil.go) above which the group is judged too divergent for a learned
// linear model to place well, and is built as a trie instead. There is no
// PMSS policy in the source this package was ported from to calibrate
// against (see DESIGN.md); this value is a conservative starting point,
// exposed through WithPMSSThreshold for callers who want to tune it
// against their own workload.
const defaultPMSSThreshold = 2.0

// pmss (Performance Model for Structure Selection) is the tunable policy
// deciding, for each group formed during a bulk build or a node resize,
// whether a model-based node or a trie fallback is the better fit.
type pmss struct {
	threshold float64
}

func newPMSS() *pmss { return &pmss{threshold: defaultPMSSThreshold} }

// decideSubType chooses a structure for a group of size keys with the
// given gpkl (group partial key length, see strutil.go's gpkl). A high
// gpkl means the keys in the group diverge quickly relative to their
// shared prefix, which tends to defeat a linear positional model; such
// groups are routed to a trie instead of a model-based node.
func (p *pmss) decideSubType(size int, gpkl float64) structureKind {
	if gpkl >= p.threshold {
		return structureTrie
	}
	return structureItems
}
