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

// scaleFactor sets how sparse a model-based node's item array is relative
// to the number of keys it holds: an array of scaleFactor*size slots gives
// the learned linear model room to misplace a key by a little without
// forcing a collision.
const scaleFactor = 2

// mnode is a model-based inner node: a sparse array of items whose
// position for a given key is predicted by a per-node linear
// rescaling (k, b) of the shared HPT's cumulative distribution, plus an
// incremental common prefix (prefix) confirmed by every key in the node
// relative to its parent's already-confirmed prefix.
//
// Index 0 and index itemArrayLen-1 of items are boundary sentinels: a key
// whose node-relative prefix compares less than prefix lands at 0, greater
// lands at itemArrayLen-1, and predictPos never returns either index for a
// key that matches the prefix.
type mnode struct {
	itemArrayLen int
	keyCount     int
	k, b         float64
	prefix       string
	items        []item
}

// predictPos returns the item-array index key should occupy within n. ccpl
// is the confirmed common prefix length accumulated by the caller's
// descent so far; it is advanced by n's own incremental prefix length as a
// side effect, the same way the original implementation threads ccpl by
// reference through every level of the tree.
func predictPos(n *mnode, key string, ccpl *int, model *hashPrefixTable) int {
	icpl := len(n.prefix)
	if icpl > 0 {
		switch cmp := compareBounded(n.prefix, key, *ccpl, icpl); {
		case cmp < 0:
			return n.itemArrayLen - 1
		case cmp > 0:
			return 0
		}
	}

	var pos int
	if *ccpl+icpl > 0 {
		pos = model.predict(key, *ccpl+icpl, n.itemArrayLen-2, n.k, n.b) + 1
	} else {
		pos = model.predictNoPrefix(key, n.itemArrayLen-2, n.k, n.b) + 1
	}
	*ccpl += icpl

	if pos > n.itemArrayLen-2 {
		pos = n.itemArrayLen - 2
	}
	if pos < 1 {
		pos = 1
	}
	return pos
}

// compareBounded compares prefix against key[ofs:ofs+n], treating any part
// of that range past the end of key as the byte 0 (matching how a
// null-terminated C string compares against a prefix longer than itself).
// It returns a value with the sign of strings.Compare(prefix,
// key[ofs:ofs+n]).
func compareBounded(prefix, key string, ofs, n int) int {
	for i := 0; i < n; i++ {
		pc := prefix[i]
		kc := charAt(key, ofs+i)
		if pc != kc {
			if pc > kc {
				return 1
			}
			return -1
		}
	}
	return 0
}

// tryBuildModelNode attempts to bulk-build kvs[l:r] (sharing ccpl bytes of
// confirmed common prefix with their parent) as a single model-based node.
// It returns nil if the learned model cannot discriminate the group well
// enough — either because its first and last key predict to the same or an
// inverted position, or because distributing every key produces a
// non-monotonic or out-of-range index — leaving the caller to fall back to
// a trie.
func tryBuildModelNode(kvs kvBatch, l, r, ccpl int, model *hashPrefixTable, p *pmss) *mnode {
	size := r - l
	firstKey, lastKey := kvs.key(l), kvs.key(r-1)
	gcpl := ucpl(firstKey, lastKey)
	icpl := gcpl - ccpl

	minCdf := model.cdf(firstKey, gcpl)
	maxCdf := model.cdf(lastKey, gcpl)
	if maxCdf <= minCdf {
		return nil
	}
	k := 1.0 / (maxCdf - minCdf)
	b := minCdf / (minCdf - maxCdf)

	n := &mnode{
		itemArrayLen: size * scaleFactor,
		keyCount:     size,
		k:            k,
		b:            b,
		prefix:       firstKey[ccpl : ccpl+icpl],
		items:        make([]item, size*scaleFactor),
	}

	tmp1, tmp2 := ccpl, ccpl
	firstIdx := predictPos(n, firstKey, &tmp1, model)
	lastIdx := predictPos(n, lastKey, &tmp2, model)
	if firstIdx >= lastIdx {
		return nil
	}

	type bulkRange struct{ idx, l, r int }
	var ranges []bulkRange

	prevIdx := -1
	runBegin, runLen := 0, 0
	for i := l; i < r; i++ {
		tmp := ccpl
		idx := predictPos(n, kvs.key(i), &tmp, model)
		if idx < prevIdx || idx < 0 || idx >= n.itemArrayLen {
			return nil
		}
		if idx != prevIdx {
			if prevIdx >= 0 {
				ranges = append(ranges, bulkRange{prevIdx, runBegin, runBegin + runLen})
			}
			runBegin, runLen = i, 1
		} else {
			runLen++
		}
		prevIdx = idx
	}
	ranges = append(ranges, bulkRange{prevIdx, runBegin, runBegin + runLen})

	for _, br := range ranges {
		n.items[br.idx] = pmssBulk(kvs, br.l, br.r, gcpl, model, p)
	}
	return n
}

// extractInnerNode appends every key-value pair stored under n, in
// ascending order, to batch.
func extractInnerNode(n *mnode, batch *extractedBatch) {
	for _, it := range n.items {
		if !it.isEmpty() {
			it.recursiveExtract(batch)
		}
	}
}
