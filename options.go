// SPDX-License-Identifier: MIT

package zxopt

import (
	"log/slog"
)

// ZX0MaxOffsetLimit is the largest offset ZX0's format can address.
const ZX0MaxOffsetLimit = 32640

// Options configures CompressZX0 and CompressZX7. A nil *Options is
// equivalent to DefaultOptions().
type Options struct {
	// Backwards selects the ZX0 format variant consumed tail-first by a
	// decompressor running high to low in memory. ZX0 only.
	Backwards bool
	// Invert XORs the data bits of ZX0's new-offset Elias-gamma fields,
	// producing a variant stream the decoder must decode correspondingly.
	// ZX0 only.
	Invert bool
	// OffsetLimit caps the match offsets the ZX0 optimizer explores. Zero
	// means ZX0MaxOffsetLimit. ZX0 only; ZX7's offset ceiling is fixed by
	// its format (zx7MaxOffset) and is not configurable.
	OffsetLimit int
	// Progress, if non-nil, is called synchronously from the ZX0 optimizer
	// with a monotonically increasing stage in 1..10. It must be
	// non-blocking and must not call back into this package. ZX0 only;
	// CompressZX7 never calls it.
	Progress func(stage int)
	// Logger receives one structured summary line per successful call
	// (input size, skip, slab and node-reuse counts, output size, delta).
	// Nothing is logged for a call that returns an error. A nil Logger
	// discards events.
	Logger *slog.Logger
}

// DefaultOptions returns the zero-value variant formats with ZX0's default
// offset limit and a discard logger.
func DefaultOptions() *Options {
	return &Options{OffsetLimit: ZX0MaxOffsetLimit}
}

// normalize returns opts with defaults applied, never mutating the caller's
// Options value.
func (o *Options) normalize() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.OffsetLimit == 0 {
		out.OffsetLimit = ZX0MaxOffsetLimit
	}
	if out.Logger == nil {
		out.Logger = discardLogger
	}
	return &out
}
