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

// iterFrame is one level of an Iterator's descent: either a slice of a
// model-based node's items (entries non-nil means this frame is a compact
// node instead) and the index currently positioned within it.
type iterFrame struct {
	items   []item
	entries []*kvEntry
	idx     int
}

// Iterator walks LITS's key-value pairs in ascending key order. It is
// positioned either by LITS.Begin (at the first key; valid whenever the
// index is non-empty) or by
// LITS.Find (valid only if the exact key was present).
type Iterator struct {
	valid   bool
	ended   bool
	inTrie  bool
	inCnode bool
	trieCur *trieCursor
	data    *kvEntry
	frames  []iterFrame
}

// Valid reports whether the iterator currently refers to a key-value
// pair. It is false once Next has walked past the last pair, or if the
// iterator came from a Find call that found no matching key.
func (it *Iterator) Valid() bool { return it.valid && !it.ended }

// Key returns the key the iterator currently refers to. It must only be
// called while Valid reports true.
func (it *Iterator) Key() string {
	if it.inTrie {
		return it.trieCur.current().key
	}
	return it.data.key
}

// Value returns the value the iterator currently refers to. It must only
// be called while Valid reports true.
func (it *Iterator) Value() uint64 {
	if it.inTrie {
		return it.trieCur.current().val
	}
	return it.data.val
}

// Next advances the iterator to the next key in ascending order, reporting
// whether a next key-value pair exists.
func (it *Iterator) Next() bool {
	if it.inTrie {
		if it.trieCur.advance() {
			return true
		}
		it.inTrie = false
	}

	for len(it.frames) > 0 {
		if it.advance() {
			return true
		}
		it.frames = it.frames[:len(it.frames)-1]
	}
	it.ended = true
	return false
}

// first descends from root to the first valid key-value pair, pushing a
// frame onto it.frames for every level visited.
func (it *Iterator) first(root item) {
	if root.kind == itemNull {
		it.ended = true
		return
	}
	if root.kind == itemSingle {
		it.data = root.entry()
		return
	}
	if root.kind == itemTrie {
		it.inTrie = true
		it.trieCur = root.trie().newCursor()
		return
	}
	if root.kind == itemCompact {
		cn := root.compactNode()
		it.inCnode = true
		it.frames = append(it.frames, iterFrame{entries: cn.entries, idx: 0})
		it.data = cn.entries[0]
		return
	}

	n := root.modelNode()
	for i, cur := range n.items {
		if cur.isEmpty() {
			continue
		}
		it.frames = append(it.frames, iterFrame{items: n.items, idx: i})
		switch cur.kind {
		case itemSingle:
			it.data = cur.entry()
		case itemTrie:
			it.inTrie = true
			it.trieCur = cur.trie().newCursor()
		default:
			it.first(cur)
		}
		return
	}

	assertInvariant(false, "model-based node has no non-empty item to start iteration from")
}

// advance looks for the next valid item within the current (deepest)
// frame. It reports false, leaving the frame's exhausted state behind for
// the caller to pop, exactly mirroring how a compact node's exhaustion
// clears the in-cnode flag without popping a frame itself.
func (it *Iterator) advance() bool {
	f := &it.frames[len(it.frames)-1]

	if it.inCnode {
		f.idx++
		if f.idx >= len(f.entries) {
			it.inCnode = false
			return false
		}
		it.data = f.entries[f.idx]
		return true
	}

	for i := f.idx + 1; i < len(f.items); i++ {
		cur := f.items[i]
		if cur.isEmpty() {
			continue
		}
		f.idx = i
		switch cur.kind {
		case itemModel, itemCompact:
			it.first(cur)
		case itemSingle:
			it.data = cur.entry()
		case itemTrie:
			it.inTrie = true
			it.trieCur = cur.trie().newCursor()
		}
		return true
	}
	return false
}
