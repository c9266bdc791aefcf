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
	"testing"

	"github.com/aclements/go-perfevent/perfbench"
)

func genBenchKeys(n int) ([]string, []uint64) {
	keys := make([]string, n)
	vals := make([]uint64, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("bench-%010d", i)
		vals[i] = uint64(i)
	}
	return keys, vals
}

var benchSizes = []int{1000, 10_000, 100_000}

func BenchmarkBulkload(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			keys, vals := genBenchKeys(n)
			c := perfbench.Open(b)
			defer c.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l := Open(WithMinBulkSize(1))
				if err := l.Bulkload(keys, vals); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLookupHit(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			keys, vals := genBenchKeys(n)
			l := Open(WithMinBulkSize(1))
			if err := l.Bulkload(keys, vals); err != nil {
				b.Fatal(err)
			}
			c := perfbench.Open(b)
			defer c.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.Lookup(keys[i%n])
			}
		})
	}
}

func BenchmarkLookupMiss(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			keys, vals := genBenchKeys(n)
			l := Open(WithMinBulkSize(1))
			if err := l.Bulkload(keys, vals); err != nil {
				b.Fatal(err)
			}
			c := perfbench.Open(b)
			defer c.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.Lookup(fmt.Sprintf("absent-%010d", i))
			}
		})
	}
}

func BenchmarkInsert(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			keys, vals := genBenchKeys(n)
			extra := make([]string, b.N)
			for i := range extra {
				extra[i] = fmt.Sprintf("insert-%010d", i)
			}
			l := Open(WithMinBulkSize(1))
			if err := l.Bulkload(keys, vals); err != nil {
				b.Fatal(err)
			}
			c := perfbench.Open(b)
			defer c.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.Insert(extra[i], uint64(i))
			}
		})
	}
}

func BenchmarkUpsert(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			keys, vals := genBenchKeys(n)
			l := Open(WithMinBulkSize(1))
			if err := l.Bulkload(keys, vals); err != nil {
				b.Fatal(err)
			}
			c := perfbench.Open(b)
			defer c.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.Upsert(keys[i%n], uint64(i))
			}
		})
	}
}

func BenchmarkRemove(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.StopTimer()
			keys, vals := genBenchKeys(n + b.N)
			l := Open(WithMinBulkSize(1))
			if err := l.Bulkload(keys[:n], vals[:n]); err != nil {
				b.Fatal(err)
			}
			// Top up with b.N extra keys so every removed key is distinct
			// and none of them come from the original bulk-loaded batch
			// used for steady-state density.
			for i := 0; i < b.N; i++ {
				l.Insert(keys[n+i], vals[n+i])
			}
			c := perfbench.Open(b)
			defer c.Close()
			b.StartTimer()
			for i := 0; i < b.N; i++ {
				l.Remove(keys[n+i])
			}
		})
	}
}

func BenchmarkIterateAll(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			keys, vals := genBenchKeys(n)
			l := Open(WithMinBulkSize(1))
			if err := l.Bulkload(keys, vals); err != nil {
				b.Fatal(err)
			}
			c := perfbench.Open(b)
			defer c.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				it := l.Begin()
				for it.Valid() {
					it.Next()
				}
			}
		})
	}
}

func BenchmarkRandomMutation(b *testing.B) {
	const n = 50_000
	keys, vals := genBenchKeys(n)
	l := Open(WithMinBulkSize(1))
	if err := l.Bulkload(keys, vals); err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	c := perfbench.Open(b)
	defer c.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[rng.Intn(n)]
		if rng.Intn(2) == 0 {
			l.Remove(k)
		} else {
			l.Insert(k, uint64(i))
		}
	}
}
