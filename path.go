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

import "fmt"

// pathFrame records one ancestor model-based node visited while
// descending toward a mutation site: the node itself, a pointer to the
// item slot in its parent that holds it (so it can be overwritten wholesale
// if the node needs to be rebuilt), and the confirmed common prefix length
// at the point of descent into it.
type pathFrame struct {
	header *mnode
	father *item
	ccpl   int
}

// pathStack records the chain of model-based ancestors visited during an
// insert or remove, then walks it after the mutation succeeds to keep each
// ancestor's key count current and trigger a resize if one crosses a
// density threshold.
type pathStack struct {
	hpt    *hashPrefixTable
	pmss   *pmss
	frames []pathFrame
}

func newPathStack(hpt *hashPrefixTable, p *pmss) *pathStack {
	return &pathStack{hpt: hpt, pmss: p}
}

// record appends the model-based node it points at to the stack, along
// with the confirmed common prefix length at this point in the descent.
func (s *pathStack) record(it *item, ccpl int) {
	s.frames = append(s.frames, pathFrame{header: it.modelNode(), father: it, ccpl: ccpl})
}

// changeCount applies delta (+1 for a successful insert, -1 for a
// successful remove) to every recorded ancestor's key count, walking from
// the root down. The first ancestor whose key count crosses an overflow
// (>= 2x its item array length) or underflow (item array length >= 4x key
// count) threshold is rebuilt in place from scratch, and the walk stops
// there: a single rebuild already re-balances everything below it.
func (s *pathStack) changeCount(delta int) {
	for i := range s.frames {
		f := &s.frames[i]
		if delta > 0 {
			f.header.keyCount++
		} else {
			f.header.keyCount--
		}

		overflow := f.header.keyCount >= 2*f.header.itemArrayLen
		underflow := 4*f.header.keyCount <= f.header.itemArrayLen
		if overflow || underflow {
			if debug {
				fmt.Printf("changeCount(delta=%d): resizing ancestor %d of %d, keyCount=%d itemArrayLen=%d overflow=%v underflow=%v\n",
					delta, i, len(s.frames), f.header.keyCount, f.header.itemArrayLen, overflow, underflow)
			}
			batch := newExtractedBatch()
			f.father.recursiveExtract(batch)
			*f.father = pmssBulk(batch, 0, len(batch.entries), f.ccpl, s.hpt, s.pmss)
			return
		}
	}
}
