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

// Package lits implements LITS, an in-memory ordered index over
// null-terminated byte strings. It maps variable-length keys (drawn from
// the printable-ASCII-ish alphabet, bytes 0..127) to uint64 values, and
// supports lookup, insert, upsert, remove, and in-order iteration in
// addition to a one-shot bulk load.
//
// The index is a tree of five node kinds dispatched through a single
// tagged "item" value: an empty slot, a single key-value pair, a
// model-based inner node whose position-prediction is learned from the
// bulk-loaded key distribution (a Hash-enhanced Prefix Table, or HPT), a
// small hash-tagged compact node for groups of at most sixteen keys, and a
// byte trie used as a structural fallback when the HPT's model cannot
// discriminate a group of keys well enough. A pluggable structural chooser
// (PMSS) decides, for each group formed during a bulk build or a resize,
// whether a model-based node or a trie is the better fit.
//
// LITS is not safe for concurrent use without external synchronization,
// and it keeps no on-disk representation: it is a pure in-memory data
// structure, intended to be embedded the way a hash map or a B-tree would
// be.
package lits
