// SPDX-License-Identifier: MIT

package zxopt

// Minimal decoders used only by this package's own tests, as round-trip
// oracles for the properties in spec §8 ("Round-trip", "Delta soundness",
// "End-marker presence"). Decompression itself is out of scope for the
// public API (spec §1 Non-goals: "the decompressor (a separate artifact)");
// these exist purely to verify CompressZX0/CompressZX7 against their own
// wire format.

// bitReader mirrors bitWriter's registers in reverse: a cached current byte
// plus mask for bit-level reads, and a raw byte cursor shared with it (the
// two interleave in the stream exactly as the writer produces them). A
// single pending bit supports ZX0's backtrack trick: the first control bit
// of the length code right after a new-offset LSB byte is that byte's own
// bit 0, not a freshly reserved bit-byte.
type bitReader struct {
	data    []byte
	pos     int
	mask    byte
	current byte
	pending *bool
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

func (r *bitReader) readByte() byte {
	b := r.data[r.pos]
	r.pos++
	return b
}

func (r *bitReader) readBit() bool {
	if r.pending != nil {
		b := *r.pending
		r.pending = nil
		return b
	}
	if r.mask == 0 {
		r.current = r.readByte()
		r.mask = 0x80
	}
	bit := r.current&r.mask != 0
	r.mask >>= 1
	return bit
}

func (r *bitReader) setPending(v bool) {
	r.pending = &v
}

// interlacedEliasGamma is the inverse of bitWriter.interlacedEliasGamma.
func (r *bitReader) interlacedEliasGamma(reverse, invert bool) int {
	value := 1
	for {
		ctrl := r.readBit()
		if ctrl != reverse {
			break
		}
		data := r.readBit()
		if invert {
			data = !data
		}
		value <<= 1
		if data {
			value |= 1
		}
	}
	return value
}

// zx7Gamma is the inverse of bitWriter.eliasGamma, returning isEnd=true when
// it encounters ZX7's 17-bit end marker (16 leading zero bits, impossible
// for any length the format can legitimately encode).
func (r *bitReader) zx7Gamma() (value int, isEnd bool) {
	zeros := 0
	for {
		if r.readBit() {
			break
		}
		zeros++
		if zeros == 16 {
			return 0, true
		}
	}
	value = 1
	for i := 0; i < zeros; i++ {
		value <<= 1
		if r.readBit() {
			value |= 1
		}
	}
	return value, false
}

// zx0Decompress reconstructs the bytes that produced compressed, given the
// skip-prefix context (already-known bytes available for back-references).
// It returns just the reconstructed suffix (not including context).
func zx0Decompress(compressed []byte, context []byte, backwards, invert bool) ([]byte, error) {
	r := newBitReader(compressed)
	buf := append([]byte(nil), context...)

	copyLen := r.interlacedEliasGamma(backwards, false)
	for i := 0; i < copyLen; i++ {
		buf = append(buf, r.readByte())
	}

	lastOffset := 1
	lastWasLiteral := true

	for {
		if r.readBit() {
			// New-offset match.
			msb := r.interlacedEliasGamma(backwards, invert)
			if msb == 256 {
				break
			}
			lsb := r.readByte()
			r.setPending(lsb&1 != 0)

			var low int
			if backwards {
				low = int(lsb >> 1)
			} else {
				low = 127 - int(lsb>>1)
			}
			offset := (msb-1)*128 + low + 1
			lastOffset = offset

			length := r.interlacedEliasGamma(backwards, false) + 1
			start := len(buf) - offset
			if start < 0 {
				return nil, ErrCompressInternal
			}
			for i := 0; i < length; i++ {
				buf = append(buf, buf[start+i])
			}
			lastWasLiteral = false
			continue
		}

		length := r.interlacedEliasGamma(backwards, false)
		if lastWasLiteral {
			start := len(buf) - lastOffset
			if start < 0 {
				return nil, ErrCompressInternal
			}
			for i := 0; i < length; i++ {
				buf = append(buf, buf[start+i])
			}
			lastWasLiteral = false
		} else {
			for i := 0; i < length; i++ {
				buf = append(buf, r.readByte())
			}
			lastWasLiteral = true
		}
	}

	return buf[len(context):], nil
}

// zx7Decompress reconstructs the bytes that produced compressed, given the
// skip-prefix context, mirroring zx0Decompress above but for ZX7's simpler
// single-offset-class format.
func zx7Decompress(compressed []byte, context []byte) ([]byte, error) {
	r := newBitReader(compressed)
	buf := append([]byte(nil), context...)
	buf = append(buf, r.readByte())

	for {
		if !r.readBit() {
			buf = append(buf, r.readByte())
			continue
		}

		length, isEnd := r.zx7Gamma()
		if isEnd {
			break
		}
		length++

		offByte := r.readByte()
		var offset int
		if offByte&0x80 == 0 {
			offset = int(offByte) + 1
		} else {
			hi := 0
			for mask := 1024; mask > 127; mask >>= 1 {
				hi <<= 1
				if r.readBit() {
					hi |= 1
				}
			}
			offset = ((hi << 7) | int(offByte&0x7f)) + 128 + 1
		}

		start := len(buf) - offset
		if start < 0 {
			return nil, ErrCompressInternal
		}
		for i := 0; i < length; i++ {
			buf = append(buf, buf[start+i])
		}
	}

	return buf[len(context):], nil
}
