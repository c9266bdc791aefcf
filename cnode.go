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

import "strings"

// cnodeSize is the maximum number of entries a compact node may hold
// before it must be rebuilt into something larger (a model-based node or a
// trie).
const cnodeSize = 16

// cnode is a small, sorted, hash-tagged leaf node for groups of at most
// cnodeSize keys. Every entry's partial hash (see hashKey) is kept in the
// parallel tags slice so a lookup can rule out most entries with a single
// integer comparison before paying for a string comparison; the original
// C++ implementation instead stole the top 16 bits of each stored pointer
// for this, which is unsafe in Go for the same reason item's tag is kept
// out of the pointer (see item.go).
type cnode struct {
	ccpl    int // bytes every entry shares with its parent's confirmed prefix
	tags    []uint16
	entries []*kvEntry // sorted ascending by key
}

// newCnode builds a compact node from kvs[l:r], which must already be
// sorted and unique and share ccpl bytes of common prefix.
func newCnode(kvs kvBatch, l, r, ccpl int) *cnode {
	n := r - l
	c := &cnode{ccpl: ccpl, tags: make([]uint16, n), entries: make([]*kvEntry, n)}
	for i := 0; i < n; i++ {
		e := kvs.entry(l + i)
		c.tags[i] = hashKey(e.key)
		c.entries[i] = e
	}
	return c
}

func (c *cnode) hasRoom() bool     { return len(c.entries) < cnodeSize }
func (c *cnode) moreThanTwo() bool { return len(c.entries) > 2 }

// search returns the entry for key, or nil if absent.
func (c *cnode) search(key string) *kvEntry {
	hv := hashKey(key)
	for i, t := range c.tags {
		if t != hv {
			continue
		}
		if e := c.entries[i]; verify(e.key, key, c.ccpl) {
			return e
		}
	}
	return nil
}

// splicePos returns the index at which key would be inserted to keep
// entries sorted, and whether an entry with that exact key already exists
// at the returned index.
func (c *cnode) splicePos(key string) (pos int, exists bool) {
	pos = len(c.entries)
	for i, e := range c.entries {
		switch cmp := strings.Compare(e.key[c.ccpl:], key[c.ccpl:]); {
		case cmp == 0:
			return i, true
		case cmp > 0:
			return i, false
		}
	}
	return pos, false
}

// insertWithRoom inserts key/val into c, which must have spare capacity. It
// reports false if key is already present.
func (c *cnode) insertWithRoom(key string, val uint64) bool {
	pos, exists := c.splicePos(key)
	if exists {
		return false
	}
	c.spliceIn(pos, &kvEntry{key: key, val: val})
	return true
}

// upsertWithRoom inserts or updates key/val into c, which must have spare
// capacity for the insert case. It returns the previous value and true if
// key was already present, or (0, false) if it was newly inserted.
func (c *cnode) upsertWithRoom(key string, val uint64) (uint64, bool) {
	pos, exists := c.splicePos(key)
	if exists {
		old := c.entries[pos].val
		c.entries[pos].val = val
		return old, true
	}
	c.spliceIn(pos, &kvEntry{key: key, val: val})
	return 0, false
}

func (c *cnode) spliceIn(pos int, e *kvEntry) {
	entries := make([]*kvEntry, len(c.entries)+1)
	tags := make([]uint16, len(c.entries)+1)
	copy(entries, c.entries[:pos])
	copy(tags, c.tags[:pos])
	entries[pos] = e
	tags[pos] = hashKey(e.key)
	copy(entries[pos+1:], c.entries[pos:])
	copy(tags[pos+1:], c.tags[pos:])
	c.entries, c.tags = entries, tags
}

// removeWithRoom removes key from c, which must have more than two entries
// afterward remain meaningful as a compact node (the caller is responsible
// for calling degrade instead once only two entries remain). It reports
// whether key was found.
func (c *cnode) removeWithRoom(key string) bool {
	hv := hashKey(key)
	delIdx := -1
	for i, t := range c.tags {
		if t != hv {
			continue
		}
		if verify(c.entries[i].key, key, c.ccpl) {
			delIdx = i
			break
		}
	}
	if delIdx == -1 {
		return false
	}
	entries := make([]*kvEntry, len(c.entries)-1)
	tags := make([]uint16, len(c.entries)-1)
	copy(entries, c.entries[:delIdx])
	copy(entries[delIdx:], c.entries[delIdx+1:])
	copy(tags, c.tags[:delIdx])
	copy(tags[delIdx:], c.tags[delIdx+1:])
	c.entries, c.tags = entries, tags
	return true
}

// degrade removes key from a two-entry compact node, returning the
// surviving entry so the caller can replace the node with a single item.
// It must only be called when c holds exactly two entries.
func (c *cnode) degrade(key string) (*kvEntry, bool) {
	assertInvariant(len(c.entries) == 2, "cnode.degrade requires exactly two entries, got %d", len(c.entries))

	hv := hashKey(key)
	delIdx := -1
	for i, t := range c.tags {
		if t != hv {
			continue
		}
		if verify(c.entries[i].key, key, c.ccpl) {
			delIdx = i
			break
		}
	}
	if delIdx == -1 {
		return nil, false
	}
	return c.entries[1-delIdx], true
}

// extractIfValidInsert returns the batch c's entries plus a new key/val
// pair would form if inserted, in sorted order, or (nil, false) if key
// already exists in c. It is used when a full compact node must grow
// beyond cnodeSize and be rebuilt as something larger.
func extractIfValidInsert(c *cnode, key string, val uint64) (*extractedBatch, bool) {
	pos, exists := c.splicePos(key)
	if exists {
		return nil, false
	}
	batch := newExtractedBatch()
	for j := 0; j < pos; j++ {
		batch.push(c.entries[j])
	}
	batch.push(&kvEntry{key: key, val: val})
	for j := pos; j < len(c.entries); j++ {
		batch.push(c.entries[j])
	}
	return batch, true
}
