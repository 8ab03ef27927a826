// SPDX-License-Identifier: MIT

package zxopt

import "errors"

// Sentinel errors returned by CompressZX0 and CompressZX7.
var (
	// ErrEmptyInput is returned when input has zero length.
	ErrEmptyInput = errors.New("zxopt: empty input")
	// ErrSkipOutOfRange is returned when skip is negative or not less than len(input).
	ErrSkipOutOfRange = errors.New("zxopt: skip out of range")
	// ErrOffsetLimitInvalid is returned when Options.OffsetLimit is negative, or
	// zero after defaulting (it must allow at least one matchable offset).
	ErrOffsetLimitInvalid = errors.New("zxopt: offset limit invalid")
	// ErrResourceExhausted is returned when the ZX0 node arena needs a slab
	// beyond its slab cap. No partial output is returned.
	ErrResourceExhausted = errors.New("zxopt: resource exhausted")

	// ErrCompressInternal marks an internal compressor error. Neither
	// CompressZX0 nor CompressZX7 returns it: the optimizers and emitters
	// perform no checks that produce it.
	ErrCompressInternal = errors.New("zxopt: internal compressor error")
)
