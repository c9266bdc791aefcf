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

// defaultMinBulkSize is the smallest batch Bulkload will accept: the HPT
// needs a reasonably large sample to learn a useful positional model from.
const defaultMinBulkSize = 1000

// BulkloadReason explains why a Bulkload call was rejected.
type BulkloadReason int

const (
	// ReasonTooSmall means fewer keys were supplied than the configured
	// minimum bulk load size (see WithMinBulkSize).
	ReasonTooSmall BulkloadReason = iota
	// ReasonNotSorted means keys were not in strictly ascending order.
	ReasonNotSorted
	// ReasonNotUnique means keys contained a duplicate.
	ReasonNotUnique
)

// BulkloadError reports why Bulkload rejected its input. Index is the
// position of the first offending key for ReasonNotSorted and
// ReasonNotUnique; it is meaningless for ReasonTooSmall.
type BulkloadError struct {
	Reason BulkloadReason
	Index  int
}

func (e *BulkloadError) Error() string {
	switch e.Reason {
	case ReasonTooSmall:
		return "lits: bulk load input is smaller than the configured minimum"
	case ReasonNotSorted:
		return "lits: bulk load input is not sorted"
	case ReasonNotUnique:
		return "lits: bulk load input contains a duplicate key"
	default:
		return "lits: bulk load rejected"
	}
}

// LITS is an in-memory ordered index mapping string keys to uint64 values.
// A zero-value LITS is not ready for use; construct one with Open.
type LITS struct {
	built       bool
	minBulkSize int
	hpt         *hashPrefixTable
	pmss        *pmss
	root        item
}

// Open constructs a LITS ready for Bulkload, applying any options given.
func Open(opts ...Option) *LITS {
	l := &LITS{minBulkSize: defaultMinBulkSize}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Bulkload loads keys and their corresponding vals as the index's initial
// (and, until Destroy, only) contents. keys must be sorted in strictly
// ascending order and free of duplicates, and len(keys) must be at least
// the configured minimum bulk size. It returns a non-nil *BulkloadError if
// the input fails any of those checks; otherwise the index is ready for
// Lookup, Insert, Upsert, Remove, Find and Begin.
func (l *LITS) Bulkload(keys []string, vals []uint64) *BulkloadError {
	assertInvariant(!l.built, "lits: Bulkload called on an already-built index")
	assertInvariant(len(keys) == len(vals), "lits: Bulkload given %d keys but %d values", len(keys), len(vals))

	n := len(keys)
	if n < l.minBulkSize {
		return &BulkloadError{Reason: ReasonTooSmall}
	}
	for i := 1; i < n; i++ {
		switch strings.Compare(keys[i], keys[i-1]) {
		case -1:
			return &BulkloadError{Reason: ReasonNotSorted, Index: i}
		case 0:
			return &BulkloadError{Reason: ReasonNotUnique, Index: i}
		}
	}

	if l.hpt == nil {
		l.hpt = newHashPrefixTable()
		l.hpt.train(keys)
	}
	if l.pmss == nil {
		l.pmss = newPMSS()
	}

	batch := &externalBatch{keys: keys, vals: vals}
	l.root = pmssBulk(batch, 0, n, 0, l.hpt, l.pmss)
	l.built = true
	return nil
}

// Destroy releases the index's contents; the LITS is not usable again
// until Bulkload is called on it.
func (l *LITS) Destroy() {
	assertInvariant(l.built, "lits: Destroy called on an index that was never built")
	l.root = item{}
	l.hpt = nil
	l.pmss = nil
	l.built = false
}

// Lookup returns the value stored for key, and whether it was found.
func (l *LITS) Lookup(key string) (uint64, bool) {
	assertInvariant(l.built, "lits: Lookup called before Bulkload")

	ccpl := 0
	cur := l.root
	for {
		switch cur.kind {
		case itemTrie:
			e := cur.trie().search(key)
			if e == nil {
				return 0, false
			}
			return e.val, true
		case itemSingle:
			e := cur.entry()
			if verify(e.key, key, ccpl) {
				return e.val, true
			}
			return 0, false
		case itemCompact:
			e := cur.compactNode().search(key)
			if e == nil {
				return 0, false
			}
			return e.val, true
		case itemNull:
			return 0, false
		}
		cur = *cur.locate(key, &ccpl, l.hpt)
	}
}

// Insert adds key/val to the index, reporting false without modifying
// anything if key is already present.
func (l *LITS) Insert(key string, val uint64) bool {
	assertInvariant(l.built, "lits: Insert called before Bulkload")

	ccpl := 0
	cur := &l.root
	stack := newPathStack(l.hpt, l.pmss)
	for {
		switch cur.kind {
		case itemTrie:
			ok := cur.trie().insert(key, val)
			if ok {
				stack.changeCount(1)
			}
			return ok
		case itemSingle:
			ok := singleInsert(cur, key, val, ccpl)
			if ok {
				stack.changeCount(1)
			}
			return ok
		case itemCompact:
			ok := cnodeInsert(cur, key, val, l.hpt, l.pmss)
			if ok {
				stack.changeCount(1)
			}
			return ok
		case itemNull:
			cur.setEntry(&kvEntry{key: key, val: val})
			stack.changeCount(1)
			return true
		}
		stack.record(cur, ccpl)
		cur = cur.locate(key, &ccpl, l.hpt)
	}
}

// Upsert inserts key/val, or updates it if key is already present. It
// returns the previous value and true if key existed, or (0, false) if it
// was newly inserted.
func (l *LITS) Upsert(key string, val uint64) (uint64, bool) {
	assertInvariant(l.built, "lits: Upsert called before Bulkload")

	ccpl := 0
	cur := &l.root
	stack := newPathStack(l.hpt, l.pmss)
	for {
		switch cur.kind {
		case itemTrie:
			old, existed := cur.trie().upsert(key, val)
			if !existed {
				stack.changeCount(1)
			}
			return old, existed
		case itemSingle:
			old, existed := singleUpsert(cur, key, val, ccpl)
			if !existed {
				stack.changeCount(1)
			}
			return old, existed
		case itemCompact:
			old, existed := cnodeUpsert(cur, key, val, l.hpt, l.pmss)
			if !existed {
				stack.changeCount(1)
			}
			return old, existed
		case itemNull:
			cur.setEntry(&kvEntry{key: key, val: val})
			stack.changeCount(1)
			return 0, false
		}
		stack.record(cur, ccpl)
		cur = cur.locate(key, &ccpl, l.hpt)
	}
}

// Remove deletes key from the index, reporting whether it was present.
func (l *LITS) Remove(key string) bool {
	assertInvariant(l.built, "lits: Remove called before Bulkload")

	ccpl := 0
	cur := &l.root
	stack := newPathStack(l.hpt, l.pmss)
	for {
		switch cur.kind {
		case itemTrie:
			ok := cur.trie().remove(key)
			if ok {
				stack.changeCount(-1)
			}
			return ok
		case itemSingle:
			ok := singleRemove(cur, key, ccpl)
			if ok {
				stack.changeCount(-1)
			}
			return ok
		case itemCompact:
			ok := cnodeRemove(cur, key)
			if ok {
				stack.changeCount(-1)
			}
			return ok
		case itemNull:
			return false
		}
		stack.record(cur, ccpl)
		cur = cur.locate(key, &ccpl, l.hpt)
	}
}

// Find returns an iterator positioned exactly at key. Iterator.Valid
// reports false if key is not present.
func (l *LITS) Find(key string) *Iterator {
	assertInvariant(l.built, "lits: Find called before Bulkload")

	it := &Iterator{valid: true}
	ccpl := 0
	cur := l.root
	for {
		switch cur.kind {
		case itemTrie:
			tc := cur.trie().find(key)
			if tc == nil {
				it.valid = false
				return it
			}
			it.inTrie = true
			it.trieCur = tc
			return it
		case itemSingle:
			e := cur.entry()
			if !verify(e.key, key, ccpl) {
				it.valid = false
				return it
			}
			it.data = e
			return it
		case itemCompact:
			cn := cur.compactNode()
			hv := hashKey(key)
			for i, tag := range cn.tags {
				if tag != hv {
					continue
				}
				if e := cn.entries[i]; verify(e.key, key, cn.ccpl) {
					it.inCnode = true
					it.frames = append(it.frames, iterFrame{entries: cn.entries, idx: i})
					it.data = e
					return it
				}
			}
			it.valid = false
			return it
		case itemNull:
			it.valid = false
			return it
		}
		n := cur.modelNode()
		pos := predictPos(n, key, &ccpl, l.hpt)
		it.frames = append(it.frames, iterFrame{items: n.items, idx: pos})
		cur = n.items[pos]
	}
}

// Begin returns an iterator positioned at the index's first key in
// ascending order. It is always valid for a non-empty index.
func (l *LITS) Begin() *Iterator {
	assertInvariant(l.built, "lits: Begin called before Bulkload")
	it := &Iterator{valid: true}
	it.first(l.root)
	return it
}
