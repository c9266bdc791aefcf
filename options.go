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

// Option configures a LITS at construction time, following the functional-
// options pattern the teacher's own options.go used for Map[K,V] (WithHash,
// WithAllocator). LITS has a single concrete element type rather than a
// generic one, so Option is a plain function instead of an interface with
// a type parameter.
type Option func(*LITS)

// WithMinBulkSize overrides the smallest batch Bulkload will accept. The
// default, defaultMinBulkSize, reflects how much data the HPT needs to
// learn a useful positional model; lowering it trades prediction quality
// for the ability to bulk load smaller datasets.
func WithMinBulkSize(n int) Option {
	return func(l *LITS) { l.minBulkSize = n }
}

// WithHPT supplies an already-trained Hash-enhanced Prefix Table instead
// of training a fresh one from the batch passed to Bulkload. This is
// useful when the same key distribution is bulk-loaded repeatedly (for
// benchmarking, or when rebuilding an index after a bulk delete) and
// re-training would just reproduce the same model.
func WithHPT(h *hashPrefixTable) Option {
	return func(l *LITS) { l.hpt = h }
}

// WithPMSSThreshold overrides the group-partial-key-length cutoff PMSS
// uses to choose between a model-based node and a trie for a given group
// (see pmss.go). Lower thresholds favor tries; higher thresholds favor
// model-based nodes.
func WithPMSSThreshold(threshold float64) Option {
	return func(l *LITS) { l.pmss = &pmss{threshold: threshold} }
}
