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

// kvEntry is a single stored key-value pair. LITS keys are ordinary Go
// strings (their length is carried alongside them, so there is no need for
// the null terminator the original C++ implementation relied on).
type kvEntry struct {
	key string
	val uint64
}

// kvBatch is a sorted, duplicate-free run of key-value pairs, indexed by
// position. It abstracts over where the pairs actually live: either in
// caller-supplied parallel slices (externalBatch, used at Bulkload time) or
// in an owned list gathered while extracting an existing subtree
// (extractedBatch, used while resizing or degrading a node). Every bulk
// build walks a kvBatch rather than a concrete slice type so the same
// node-construction code serves both cases.
type kvBatch interface {
	// key returns the key at position i.
	key(i int) string
	// entry returns the *kvEntry to store at position i, allocating one
	// lazily for externalBatch or reusing an already-owned one for
	// extractedBatch.
	entry(i int) *kvEntry
}

// externalBatch views a pair of caller-supplied key/value slices as a
// kvBatch, mirroring the original's KVS2 (used for the initial bulk load,
// where the key-value pairs do not yet have backing entries of their own).
type externalBatch struct {
	keys []string
	vals []uint64
}

func (b *externalBatch) key(i int) string { return b.keys[i] }

func (b *externalBatch) entry(i int) *kvEntry {
	return &kvEntry{key: b.keys[i], val: b.vals[i]}
}

// extractedBatch is a growable, owned list of key-value pairs, mirroring
// the original's KVS1. It is built up by recursively extracting the
// entries already stored under some item (during a resize or a compact
// node degrade) before rebuilding a fresh subtree from them.
type extractedBatch struct {
	entries []*kvEntry
}

func newExtractedBatch() *extractedBatch { return &extractedBatch{} }

func (b *extractedBatch) push(e *kvEntry) { b.entries = append(b.entries, e) }

func (b *extractedBatch) key(i int) string { return b.entries[i].key }

func (b *extractedBatch) entry(i int) *kvEntry { return b.entries[i] }
