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
	"math/rand"
	"sort"
	"testing"

	qt "github.com/frankban/quicktest"
)

// TestPropertyRandomMutationSequence builds an index, then drives it through
// a long randomized sequence of Insert/Upsert/Remove/Lookup operations
// cross-checked against a plain Go map, the same way the teacher's
// TestRandom cross-checks Map[K,V] against a map[K]V.
func TestPropertyRandomMutationSequence(t *testing.T) {
	c := qt.New(t)

	const initial = 6000
	keys := make([]string, initial)
	for i := range keys {
		keys[i] = fmt.Sprintf("p-%08d", i)
	}
	vals := make([]uint64, initial)
	for i := range vals {
		vals[i] = uint64(i)
	}

	l := Open(WithMinBulkSize(1))
	c.Assert(l.Bulkload(keys, vals), qt.Equals, (*BulkloadError)(nil))

	model := make(map[string]uint64, initial)
	for i, k := range keys {
		model[k] = vals[i]
	}

	rng := rand.New(rand.NewSource(42))
	randKey := func() string {
		if rng.Intn(2) == 0 && len(model) > 0 {
			i := rng.Intn(len(keys))
			return keys[i]
		}
		return fmt.Sprintf("extra-%06d", rng.Intn(20000))
	}

	for i := 0; i < 20000; i++ {
		k := randKey()
		switch r := rng.Float64(); {
		case r < 0.4: // insert
			v := uint64(rng.Int63())
			_, wasPresent := model[k]
			ok := l.Insert(k, v)
			c.Assert(ok, qt.Equals, !wasPresent, qt.Commentf("insert %q", k))
			if !wasPresent {
				model[k] = v
			}
		case r < 0.7: // upsert
			v := uint64(rng.Int63())
			want, wasPresent := model[k]
			prev, existed := l.Upsert(k, v)
			c.Assert(existed, qt.Equals, wasPresent, qt.Commentf("upsert %q", k))
			if wasPresent {
				c.Assert(prev, qt.Equals, want)
			}
			model[k] = v
		case r < 0.9: // remove
			_, wasPresent := model[k]
			ok := l.Remove(k)
			c.Assert(ok, qt.Equals, wasPresent, qt.Commentf("remove %q", k))
			delete(model, k)
		default: // lookup
			want, wasPresent := model[k]
			got, ok := l.Lookup(k)
			c.Assert(ok, qt.Equals, wasPresent, qt.Commentf("lookup %q", k))
			if wasPresent {
				c.Assert(got, qt.Equals, want)
			}
		}
	}

	// Cross-check the full surviving key set through Lookup and through
	// full in-order iteration.
	for k, v := range model {
		got, ok := l.Lookup(k)
		c.Assert(ok, qt.IsTrue, qt.Commentf("missing key %q", k))
		c.Assert(got, qt.Equals, v)
	}

	var wantOrder []string
	for k := range model {
		wantOrder = append(wantOrder, k)
	}
	sort.Strings(wantOrder)

	var gotOrder []string
	it := l.Begin()
	for it.Valid() {
		gotOrder = append(gotOrder, it.Key())
		it.Next()
	}
	c.Assert(gotOrder, qt.DeepEquals, wantOrder)
}

// TestPropertyFindMatchesLookup checks that Find agrees with Lookup on both
// hits and misses across a mix of present and absent keys.
func TestPropertyFindMatchesLookup(t *testing.T) {
	c := qt.New(t)

	const n = 4000
	keys := make([]string, n)
	vals := make([]uint64, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("f-%08d", i*2) // even-spaced, leaves odd gaps absent
		vals[i] = uint64(i)
	}
	l := Open(WithMinBulkSize(1))
	c.Assert(l.Bulkload(keys, vals), qt.Equals, (*BulkloadError)(nil))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		idx := rng.Intn(n * 2)
		key := fmt.Sprintf("f-%08d", idx)
		wantVal, wantOK := l.Lookup(key)

		it := l.Find(key)
		c.Assert(it.Valid(), qt.Equals, wantOK)
		if wantOK {
			c.Assert(it.Key(), qt.Equals, key)
			c.Assert(it.Value(), qt.Equals, wantVal)
		}
	}
}
