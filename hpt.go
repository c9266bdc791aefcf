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

// The alphabet LITS keys are drawn from: byte values 0..127.
const maxCh = 128

const (
	psHashLen = 5
	fcHashLen = 5
	psMask    = (1 << psHashLen) - 1
	fcMask    = (1 << fcHashLen) - 1
	psSize    = psMask + 1
	fcSize    = fcMask + 1
)

// attenuationFactor decays the contribution of a byte position to the
// model the farther it sits from the start of a key's distinguishing
// prefix, so bytes that rarely help tell keys apart at a given depth
// contribute less to the learned distribution.
const attenuationFactor = 0.5

// hptUnit is one table cell: a single byte value's probability (pro) of
// following the given (position, previous-byte) context, and the
// cumulative distribution (cdf) of all byte values strictly less than it
// in that same context.
type hptUnit struct {
	cdf float64
	pro float64
}

// hashPrefixTable is the Hash-enhanced Prefix Table (HPT): a string-to-CDF
// model trained once over the bulk-loaded batch of keys, then reused by
// every model-based node to predict where a key should land in its sparse
// item array.
type hashPrefixTable struct {
	table [psSize][fcSize][maxCh]hptUnit
}

func newHashPrefixTable() *hashPrefixTable { return &hashPrefixTable{} }

// train fits the table to keys, a sorted, duplicate-free batch. Only the
// distinguishing prefix of each key (the part that separates it from its
// immediate neighbors) is recorded; bytes beyond that carry no positional
// information and are skipped.
func (h *hashPrefixTable) train(keys []string) {
	n := len(keys)
	gcpl := ucpl(keys[0], keys[n-1])

	var weight [256]float64
	weight[0] = 1
	for i := 1; i < len(weight); i++ {
		weight[i] = weight[i-1] * attenuationFactor
	}

	for i := 0; i < n; i++ {
		var maxLen int
		switch {
		case i == 0:
			maxLen = ucpl(keys[0], keys[1]) + 1
		case i == n-1:
			maxLen = ucpl(keys[n-1], keys[n-2]) + 1
		default:
			maxLen = max(ucpl(keys[i], keys[i-1]), ucpl(keys[i], keys[i+1])) + 1
		}

		upper := len(keys[i])
		if maxLen < upper {
			upper = maxLen
		}
		for b := gcpl; b < upper; b++ {
			dst := keys[i][b]
			ps := b & psMask
			fc := frontCharBucket(keys[i], b)
			h.table[ps][fc][dst].cdf += weight[b-gcpl]
		}
	}

	for x := 0; x < psSize; x++ {
		for y := 0; y < fcSize; y++ {
			var lineWeight float64
			for j := 0; j < maxCh; j++ {
				lineWeight += h.table[x][y][j].cdf
			}
			if lineWeight <= 0 {
				continue
			}
			for j := 0; j < maxCh; j++ {
				h.table[x][y][j].cdf /= lineWeight
				h.table[x][y][j].pro = h.table[x][y][j].cdf
			}
			sum := h.table[x][y][0].cdf
			h.table[x][y][0].cdf = 0
			for j := 1; j < maxCh; j++ {
				tmp := h.table[x][y][j].cdf
				h.table[x][y][j].cdf = sum
				sum += tmp
			}
		}
	}
}

// predict returns a linearly-rescaled position estimate for key within an
// item array of length size, given the local model's slope k and
// intercept b, starting from byte offset start (the node's confirmed
// common prefix length). It assumes start > 0 and so never needs the
// special index-0 handling predictNoPrefix does.
func (h *hashPrefixTable) predict(key string, start, size int, k, b float64) int {
	ps := float64(size) * k
	c := float64(size) * b
	for i := start; i < len(key) && ps >= 1; i++ {
		u := &h.table[i&psMask][frontCharBucket(key, i)][key[i]]
		c += ps * u.cdf
		ps *= u.pro
	}
	return int(c)
}

// predictNoPrefix is predict's counterpart for the case where the node has
// no confirmed common prefix at all (start would be 0), seeding the walk
// from the table's (0,0) cell before falling through to the same loop.
func (h *hashPrefixTable) predictNoPrefix(key string, size int, k, b float64) int {
	pro := float64(size) * k
	cdf := float64(size) * b
	if len(key) == 0 {
		return int(cdf)
	}
	u := &h.table[0][0][key[0]]
	cdf += pro * u.cdf
	pro *= u.pro
	for i := 1; i < len(key) && pro >= 1; i++ {
		u := &h.table[i&psMask][frontCharBucket(key, i)][key[i]]
		cdf += pro * u.cdf
		pro *= u.pro
	}
	return int(cdf)
}

// cdf returns key's raw cumulative distribution value starting from byte
// offset start, without any local linear rescaling. It is used to derive a
// node's own slope and intercept from its first and last key.
func (h *hashPrefixTable) cdf(key string, start int) float64 {
	const minDouble = 1.0 / (1 << 52)
	pro := 1.0
	cdf := 0.0
	for i := start; i < len(key) && pro >= minDouble; i++ {
		u := &h.table[i&psMask][frontCharBucket(key, i)][key[i]]
		cdf += pro * u.cdf
		pro *= u.pro
	}
	return cdf
}
