// SPDX-License-Identifier: MIT

package zxopt

// CompressZX0 finds the minimum-bit-cost ZX0 encoding of input[skip:] and
// serializes it. skip bytes of input are available as matchable context for
// back-references but are not themselves encoded.
//
// opts may be nil, equivalent to DefaultOptions(). opts.Progress, if set, is
// called synchronously from the optimizer's main loop with a monotonically
// increasing stage in 1..10; it must not block or call back into this
// package.
//
// delta is the minimum forward distance an in-place decompressor must keep
// between its write and read pointers while decoding output.
func CompressZX0(input []byte, skip int, opts *Options) (output []byte, delta int, err error) {
	if len(input) == 0 {
		return nil, 0, ErrEmptyInput
	}
	if skip < 0 || skip >= len(input) {
		return nil, 0, ErrSkipOutOfRange
	}

	o := opts.normalize()
	if o.OffsetLimit <= 0 {
		return nil, 0, ErrOffsetLimitInvalid
	}

	arena := newZX0Arena()
	defer arena.release()

	tail, err := zx0Optimize(input, skip, o.OffsetLimit, o.Progress, arena)
	if err != nil {
		return nil, 0, err
	}

	output, delta = zx0Emit(tail, input, skip, o.Backwards, o.Invert)

	callStats{
		format:      "zx0",
		inputSize:   len(input),
		skip:        skip,
		slabsAlloc:  arena.slabsAllocated(),
		nodesReused: arena.nodesReused(),
		outputSize:  len(output),
		delta:       delta,
	}.log(o.Logger)

	return output, delta, nil
}
