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

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAdversarialSharedPrefixFallsBackToTrie is spec.md §8 scenario 6: a
// worst-case batch of keys sharing a long common prefix and differing only
// in their last few bytes defeats a learned linear model (the HPT has
// nothing to discriminate on for ~100 bytes of every key), so pmss must
// route at least one subtree to a trie instead of a model-based node.
func TestAdversarialSharedPrefixFallsBackToTrie(t *testing.T) {
	const (
		n         = 2000
		prefixLen = 100
	)
	prefix := make([]byte, prefixLen)
	for i := range prefix {
		prefix[i] = byte('a' + i%26)
	}

	keys := make([]string, n)
	vals := make([]uint64, n)
	for i := range keys {
		keys[i] = string(prefix) + fmt.Sprintf("%04d", i)
		vals[i] = uint64(i)
	}

	l := Open(WithMinBulkSize(1))
	require.Nil(t, l.Bulkload(keys, vals))

	for i, k := range keys {
		v, ok := l.Lookup(k)
		require.True(t, ok, "key %q", k)
		require.Equal(t, vals[i], v)
	}

	require.Greater(t, countItemKind(l.root, itemTrie), 0,
		"adversarial shared-prefix batch should fall back to at least one trie subtree")
}
