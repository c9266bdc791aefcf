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

// pmssBulk builds a single item from kvs[l:r], a sorted, duplicate-free
// run of keys sharing ccpl bytes of confirmed common prefix. The structure
// chosen depends on the group's size and, for larger groups, on pmss's
// judgment of how well a learned linear model could place them:
//
//   - exactly one key: a single entry item
//   - at most cnodeSize keys: a compact node
//   - otherwise, if pmss favors it and the model can discriminate the
//     group: a model-based inner node
//   - otherwise: a trie
func pmssBulk(kvs kvBatch, l, r, ccpl int, hpt *hashPrefixTable, p *pmss) item {
	var it item
	size := r - l

	if size == 1 {
		if debug {
			fmt.Printf("pmssBulk(l=%d,r=%d,ccpl=%d): single\n", l, r, ccpl)
		}
		it.setEntry(kvs.entry(l))
		return it
	}

	if size <= cnodeSize {
		if debug {
			fmt.Printf("pmssBulk(l=%d,r=%d,ccpl=%d): compact size=%d\n", l, r, ccpl, size)
		}
		it.setCompactNode(newCnode(kvs, l, r, ccpl))
		return it
	}

	if p.decideSubType(size, gpkl(kvs, l, r)) == structureItems {
		if child := tryBuildModelNode(kvs, l, r, ccpl, hpt, p); child != nil {
			if debug {
				fmt.Printf("pmssBulk(l=%d,r=%d,ccpl=%d): model size=%d itemArrayLen=%d\n",
					l, r, ccpl, size, child.itemArrayLen)
			}
			it.setModelNode(child)
			return it
		}
	}

	if debug {
		fmt.Printf("pmssBulk(l=%d,r=%d,ccpl=%d): trie size=%d\n", l, r, ccpl, size)
	}
	t := newTrieNode()
	t.bulkInsert(kvs, l, r)
	it.setTrie(t)
	return it
}
