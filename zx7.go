// SPDX-License-Identifier: MIT

package zxopt

// CompressZX7 finds the minimum-bit-cost ZX7 encoding of input[skip:] and
// serializes it. ZX7 has no repeat-offset concept and no format variants
// (no backwards/invert modes); opts.Logger is honored, but opts.Progress
// is never called — the ZX7 optimizer runs a
// single dense-table pass with no natural progress checkpoints, unlike
// ZX0's DAG walk (spec §4.4 defines no progress contract for ZX7).
func CompressZX7(input []byte, skip int, opts *Options) (output []byte, delta int, err error) {
	if len(input) == 0 {
		return nil, 0, ErrEmptyInput
	}
	if skip < 0 || skip >= len(input) {
		return nil, 0, ErrSkipOutOfRange
	}

	o := opts.normalize()

	optimal := zx7Optimize(input, skip)
	output, delta = zx7Emit(optimal, input, skip)

	callStats{
		format:     "zx7",
		inputSize:  len(input),
		skip:       skip,
		outputSize: len(output),
		delta:      delta,
	}.log(o.Logger)

	return output, delta, nil
}
