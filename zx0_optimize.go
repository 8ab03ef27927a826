// SPDX-License-Identifier: MIT

package zxopt

// initialOffset seeds the synthetic root node's offset field, matching the
// format's INITIAL_OFFSET constant (spec §3, §4.2).
const initialOffset = 1

// zx0MaxScale bounds the number of progress callbacks per optimize() call
// (spec §5: "at most MAX_SCALE (~10) times").
const zx0MaxScale = 10

// offsetCeiling clamps a candidate offset range to [initialOffset,
// offsetLimit], capped by the current input position (an offset can never
// exceed how far into the input we already are).
func offsetCeiling(index, offsetLimit int) int {
	switch {
	case index > offsetLimit:
		return offsetLimit
	case index < initialOffset:
		return initialOffset
	default:
		return index
	}
}

// zx0Optimize builds the decision DAG described in spec §4.2 and returns the
// tail node of the minimum-bit-cost path encoding input[skip:]. The caller
// owns arena and must call arena.release() once done with the returned node
// (and everything reachable through its chain).
func zx0Optimize(input []byte, skip, offsetLimit int, progress func(int), arena *zx0Arena) (*zx0Node, error) {
	n := len(input)

	lastLiteral := make([]*zx0Node, offsetLimit+1)
	lastMatch := make([]*zx0Node, offsetLimit+1)
	matchLength := make([]int, offsetLimit+1)
	optimal := make([]*zx0Node, n)
	bestLength := make([]int, n)
	if n > 2 {
		bestLength[2] = 2
	}

	if progress != nil {
		progress(1)
	}

	root, err := arena.allocate(-1, skip-1, initialOffset, nil)
	if err != nil {
		return nil, err
	}
	arena.assign(&lastMatch[initialOffset], root)

	if progress != nil {
		progress(2)
	}

	dots := 2
	for index := skip; index < n; index++ {
		bestLengthSize := 2
		maxOffset := offsetCeiling(index, offsetLimit)

		for offset := 1; offset <= maxOffset; offset++ {
			if index != skip && index >= offset && input[index] == input[index-offset] {
				// Match feasible at this offset: extend from a literal run,
				// and/or grow the run started at a new offset.
				if lastLiteral[offset] != nil {
					length := index - lastLiteral[offset].index
					bits := lastLiteral[offset].bits + 1 + eliasGammaBits(length)
					node, err := arena.allocate(bits, index, offset, lastLiteral[offset])
					if err != nil {
						return nil, err
					}
					arena.assign(&lastMatch[offset], node)
					if optimal[index] == nil || optimal[index].bits > bits {
						arena.assign(&optimal[index], lastMatch[offset])
					}
				}

				matchLength[offset]++
				if matchLength[offset] > 1 {
					if bestLengthSize < matchLength[offset] {
						bits := optimal[index-bestLength[bestLengthSize]].bits + eliasGammaBits(bestLength[bestLengthSize]-1)
						for bestLengthSize < matchLength[offset] {
							bestLengthSize++
							bits2 := optimal[index-bestLengthSize].bits + eliasGammaBits(bestLengthSize-1)
							if bits2 <= bits {
								bestLength[bestLengthSize] = bestLengthSize
								bits = bits2
							} else {
								bestLength[bestLengthSize] = bestLength[bestLengthSize-1]
							}
						}
					}

					length := bestLength[matchLength[offset]]
					bits := optimal[index-length].bits + 8 + eliasGammaBits((offset-1)/128+1) + eliasGammaBits(length-1)
					if lastMatch[offset] == nil || lastMatch[offset].index != index || lastMatch[offset].bits > bits {
						node, err := arena.allocate(bits, index, offset, optimal[index-length])
						if err != nil {
							return nil, err
						}
						arena.assign(&lastMatch[offset], node)
						if optimal[index] == nil || optimal[index].bits > bits {
							arena.assign(&optimal[index], lastMatch[offset])
						}
					}
				}
			} else {
				// Match infeasible: this offset's run (if any) ends here,
				// and a literal-run node may now be cheaper.
				matchLength[offset] = 0
				if lastMatch[offset] != nil {
					length := index - lastMatch[offset].index
					bits := lastMatch[offset].bits + 1 + eliasGammaBits(length) + length*8
					node, err := arena.allocate(bits, index, 0, lastMatch[offset])
					if err != nil {
						return nil, err
					}
					arena.assign(&lastLiteral[offset], node)
					if optimal[index] == nil || optimal[index].bits > bits {
						arena.assign(&optimal[index], lastLiteral[offset])
					}
				}
			}
		}

		if progress != nil {
			if (index*zx0MaxScale)/n > dots {
				dots++
				progress(dots)
			}
		}
	}

	if progress != nil {
		progress(zx0MaxScale)
	}

	return optimal[n-1], nil
}
