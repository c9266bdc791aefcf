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

// trieNode is LITS's own ordered byte trie, used as the structural
// fallback for groups of keys pmss judges too divergent for a model-based
// node to place well. The original implementation delegates this role to
// a third-party HOT trie with an 8-byte-representable handle; no ordered,
// arbitrary-length byte-string trie ships as a dependency anywhere in the
// retrieval pack this module was grounded on (see DESIGN.md), so this is a
// from-scratch replacement meeting the same contract: find, lookup,
// insert, upsert, remove, in-order iteration, and bulk insert.
//
// Each node holds one child slot per possible byte value (LITS's alphabet
// is already bounded to 128, so an uncompressed, array-indexed trie is
// simple and keeps every operation O(key length)). A node's entry is set
// when some key ends exactly at that node; because LITS keys are
// null-terminated conceptually, a key that is a strict prefix of another
// sorts before it, so a node's own entry is always visited before its
// children during iteration.
type trieNode struct {
	children [maxCh]*trieNode
	entry    *kvEntry
}

func newTrieNode() *trieNode { return &trieNode{} }

// descend walks key from t, creating any missing intermediate nodes, and
// returns the node key terminates at.
func (t *trieNode) descend(key string) *trieNode {
	n := t
	for i := 0; i < len(key); i++ {
		c := key[i]
		if n.children[c] == nil {
			n.children[c] = newTrieNode()
		}
		n = n.children[c]
	}
	return n
}

// search returns the entry for key, or nil if absent.
func (t *trieNode) search(key string) *kvEntry {
	n := t
	for i := 0; i < len(key); i++ {
		n = n.children[key[i]]
		if n == nil {
			return nil
		}
	}
	return n.entry
}

// insert adds key/val to t, reporting false if key is already present.
func (t *trieNode) insert(key string, val uint64) bool {
	n := t.descend(key)
	if n.entry != nil {
		return false
	}
	n.entry = &kvEntry{key: key, val: val}
	return true
}

// upsert inserts or updates key/val in t, returning the previous value and
// true if key was already present, or (0, false) if newly inserted.
func (t *trieNode) upsert(key string, val uint64) (uint64, bool) {
	n := t.descend(key)
	if n.entry != nil {
		old := n.entry.val
		n.entry.val = val
		return old, true
	}
	n.entry = &kvEntry{key: key, val: val}
	return 0, false
}

// remove deletes key from t, reporting whether it was present.
func (t *trieNode) remove(key string) bool {
	n := t
	for i := 0; i < len(key); i++ {
		n = n.children[key[i]]
		if n == nil {
			return false
		}
	}
	if n.entry == nil {
		return false
	}
	n.entry = nil
	return true
}

// bulkInsert inserts every entry of a sorted, duplicate-free batch.
func (t *trieNode) bulkInsert(kvs kvBatch, l, r int) {
	for i := l; i < r; i++ {
		e := kvs.entry(i)
		t.descend(e.key).entry = e
	}
}

// collect returns every entry reachable from t, in ascending key order.
func (t *trieNode) collect() []*kvEntry {
	var entries []*kvEntry
	var walk func(n *trieNode)
	walk = func(n *trieNode) {
		if n == nil {
			return
		}
		if n.entry != nil {
			entries = append(entries, n.entry)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t)
	return entries
}

// trieCursor is an in-order cursor over a trieNode's entries. It is built
// eagerly (the whole subtrie's entries are collected up front) rather than
// walking the trie lazily frame-by-frame the way the original HOT-backed
// iterator does. pmss does not take group size into account, so a sub-trie
// can hold any number of keys, up to the whole index when the root itself
// is a trie; creating a cursor costs time and memory proportional to that.
type trieCursor struct {
	entries []*kvEntry
	idx     int
}

func (t *trieNode) newCursor() *trieCursor {
	return &trieCursor{entries: t.collect()}
}

// find returns a cursor positioned at key, or nil if key is absent.
func (t *trieNode) find(key string) *trieCursor {
	e := t.search(key)
	if e == nil {
		return nil
	}
	cur := t.newCursor()
	for i, x := range cur.entries {
		if x == e {
			cur.idx = i
			return cur
		}
	}
	return nil
}

func (c *trieCursor) valid() bool      { return c.idx < len(c.entries) }
func (c *trieCursor) current() *kvEntry { return c.entries[c.idx] }
func (c *trieCursor) advance() bool {
	c.idx++
	return c.valid()
}
