// SPDX-License-Identifier: MIT

/*
Package zxopt implements the optimal parsers for the ZX0 and ZX7 byte-stream
formats used by retrocomputing (Z80 and similar) decompressors. It finds, in
polynomial time and bounded memory, the minimum-bit-cost encoding of an input
byte slice under each format's cost model, and emits the matching bit stream.

Both formats compress the whole input in memory; there is no streaming mode.
Decompression, file I/O, CLI parsing and multithreaded block splitting are
external concerns and are not implemented here.

# ZX0

	out, delta, err := zxopt.CompressZX0(data, 0, nil)
	out, delta, err := zxopt.CompressZX0(data, 0, &zxopt.Options{Invert: true})

# ZX7

	out, delta, err := zxopt.CompressZX7(data, 0, nil)

skip marks a prefix of data already available to the decompressor as
matchable context; it is not itself encoded. delta is the minimum forward
distance an in-place decompressor must keep between its read and write
pointers.
*/
package zxopt
