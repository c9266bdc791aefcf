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

// singleInsert handles an insert arriving at a single-entry item. If the
// new key collides with the item's existing key it reports false;
// otherwise it replaces the item with a two-entry compact node holding
// both keys in order.
func singleInsert(cur *item, key string, val uint64, ccpl int) bool {
	old := cur.entry()
	cmp := strings.Compare(key[ccpl:], old.key[ccpl:])
	if cmp == 0 {
		return false
	}
	cur.setCompactNode(splitToCnode(old, &kvEntry{key: key, val: val}, ccpl, cmp))
	return true
}

// singleUpsert is singleInsert's upsert counterpart: a key collision
// updates the existing entry's value in place instead of failing.
func singleUpsert(cur *item, key string, val uint64, ccpl int) (uint64, bool) {
	old := cur.entry()
	cmp := strings.Compare(key[ccpl:], old.key[ccpl:])
	if cmp == 0 {
		prev := old.val
		old.val = val
		return prev, true
	}
	cur.setCompactNode(splitToCnode(old, &kvEntry{key: key, val: val}, ccpl, cmp))
	return 0, false
}

// splitToCnode builds the two-entry compact node a single-entry item turns
// into when a second, distinct key needs to share its slot. cmp is
// strings.Compare(newEntry.key[ccpl:], old.key[ccpl:]): positive means the
// new key sorts after old.
func splitToCnode(old, newEntry *kvEntry, ccpl int, cmp int) *cnode {
	c := &cnode{ccpl: ccpl, tags: make([]uint16, 2), entries: make([]*kvEntry, 2)}
	if cmp > 0 {
		c.entries[0], c.entries[1] = old, newEntry
	} else {
		c.entries[0], c.entries[1] = newEntry, old
	}
	c.tags[0] = hashKey(c.entries[0].key)
	c.tags[1] = hashKey(c.entries[1].key)
	return c
}

// singleRemove removes the entry held by a single-entry item if key
// matches it, replacing the item with an empty slot.
func singleRemove(cur *item, key string, ccpl int) bool {
	e := cur.entry()
	if strings.Compare(key[ccpl:], e.key[ccpl:]) != 0 {
		return false
	}
	cur.setNull()
	return true
}

// cnodeInsert handles an insert arriving at a compact node. If the node
// still has room, the key is spliced in directly; otherwise the node's
// entries (plus the new one) are extracted and rebuilt as whatever
// structure pmssBulk judges fits cnodeSize+1 keys best.
func cnodeInsert(cur *item, key string, val uint64, hpt *hashPrefixTable, p *pmss) bool {
	c := cur.compactNode()
	if c.hasRoom() {
		return c.insertWithRoom(key, val)
	}
	batch, ok := extractIfValidInsert(c, key, val)
	if !ok {
		return false
	}
	*cur = pmssBulk(batch, 0, len(batch.entries), c.ccpl, hpt, p)
	return true
}

// cnodeUpsert is cnodeInsert's upsert counterpart: a key collision in a
// full node updates the existing entry in place without triggering a
// rebuild, since the node's size does not change.
func cnodeUpsert(cur *item, key string, val uint64, hpt *hashPrefixTable, p *pmss) (uint64, bool) {
	c := cur.compactNode()
	if c.hasRoom() {
		return c.upsertWithRoom(key, val)
	}

	if e := c.search(key); e != nil {
		old := e.val
		e.val = val
		return old, true
	}

	batch, _ := extractIfValidInsert(c, key, val)
	*cur = pmssBulk(batch, 0, len(batch.entries), c.ccpl, hpt, p)
	return 0, false
}

// cnodeRemove handles a remove arriving at a compact node. Nodes with more
// than two entries shrink in place; a node with exactly two degrades to a
// single-entry item holding whichever entry survives.
func cnodeRemove(cur *item, key string) bool {
	c := cur.compactNode()
	if c.moreThanTwo() {
		return c.removeWithRoom(key)
	}
	survivor, ok := c.degrade(key)
	if !ok {
		return false
	}
	cur.setEntry(survivor)
	return true
}
