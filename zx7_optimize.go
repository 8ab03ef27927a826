// SPDX-License-Identifier: MIT

package zxopt

// zx7Cell is a ZX7 decision cell (spec §3): len == 0 marks a literal step;
// offset/len > 0 mark a sequence step. bits holds the minimum bit cost of
// encoding input[0..=i] for the cell at index i.
type zx7Cell struct {
	bits   int
	offset int
	len    int
}

const (
	zx7MaxOffset = 2176  // range 1..2176
	zx7MaxLen    = 65536 // range 2..65536
)

// countBits returns the incremental bit cost of a (offset, length) sequence
// step: one mode bit, the classic Elias-gamma code for length-1, one offset
// byte, plus 4 extra bits when offset needs the extended (>128) form (spec
// §4.4; grounded on original_source/zx7/compress.c's count_bits).
func countBits(offset, length int) int {
	bits := 1 + eliasGammaBits(length-1) + 8
	if offset > 128 {
		bits += 4
	}
	return bits
}

// zx7Optimize fills a dense per-position cost table, the ZX7 analogue of
// zx0Optimize's decision DAG (spec §4.4). It uses a hash-less inverted
// index keyed on adjacent byte pairs (matches, chained through matchSlots)
// to enumerate candidate back-references, and a run window (minWin, maxWin)
// to short-circuit byte-by-byte extension of matches already known to
// extend. The technique — bucket by a short prefix, chain candidates by
// previous position — is the same one the teacher's sliding-window
// dictionary uses for its 2-byte hash chains (sliding_window.go's head2
// chain via hashHead2/chainNext), adapted here to ZX7's fixed 256² index.
func zx7Optimize(input []byte, skip int) []zx7Cell {
	n := len(input)

	matches := make([]int, 256*256)
	matchSlots := make([]int, n)
	minWin := make([]int, zx7MaxOffset+1)
	maxWin := make([]int, zx7MaxOffset+1)
	optimal := make([]zx7Cell, n)

	// Index the skipped prefix so it is matchable context without being
	// itself a candidate position to encode.
	for i := 1; i <= skip; i++ {
		matchIndex := int(input[i-1])<<8 | int(input[i])
		matchSlots[i] = matches[matchIndex]
		matches[matchIndex] = i
	}

	// The very first emitted byte carries no mode bit (spec §4.5).
	optimal[skip].bits = 8

	for i := skip + 1; i < n; i++ {
		optimal[i].bits = optimal[i-1].bits + 9
		matchIndex := int(input[i-1])<<8 | int(input[i])

		bestLen := 1
		m := matches[matchIndex]
		slotIsBucket := true
		slotPos := matchIndex

		for m != 0 && bestLen < zx7MaxLen {
			offset := i - m
			if offset > zx7MaxOffset {
				if slotIsBucket {
					matches[slotPos] = 0
				} else {
					matchSlots[slotPos] = 0
				}
				break
			}

			var length int
			for length = 2; length <= zx7MaxLen && i >= skip+length; length++ {
				if length > bestLen {
					bestLen = length
					bits := optimal[i-length].bits + countBits(offset, length)
					if optimal[i].bits > bits {
						optimal[i].bits = bits
						optimal[i].offset = offset
						optimal[i].len = length
					}
				} else if maxWin[offset] != 0 && i+1 == maxWin[offset]+length {
					length = i - minWin[offset]
					if length > bestLen {
						length = bestLen
					}
				}
				if i < offset+length || input[i-length] != input[i-length-offset] {
					break
				}
			}
			minWin[offset] = i + 1 - length
			maxWin[offset] = i

			slotIsBucket = false
			slotPos = m
			m = matchSlots[m]
		}

		matchSlots[i] = matches[matchIndex]
		matches[matchIndex] = i
	}

	return optimal
}
