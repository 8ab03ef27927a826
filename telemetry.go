// SPDX-License-Identifier: MIT

package zxopt

import (
	"io"
	"log/slog"
)

// discardLogger is used whenever Options.Logger is nil, so call sites never
// need a nil check before logging.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// callStats accumulates the per-call counters surfaced in the final log
// line of a compress run: arena slab growth, nodes recycled, and the
// resulting output size and delta. Kept as plain fields rather than atomics
// since a single call never logs concurrently with itself.
type callStats struct {
	format      string
	inputSize   int
	skip        int
	slabsAlloc  int
	nodesReused int
	outputSize  int
	delta       int
}

// log emits one structured summary line for a completed compress call.
func (s callStats) log(logger *slog.Logger) {
	logger.Info("compress",
		slog.String("format", s.format),
		slog.Int("input_size", s.inputSize),
		slog.Int("skip", s.skip),
		slog.Int("slabs_allocated", s.slabsAlloc),
		slog.Int("nodes_reused", s.nodesReused),
		slog.Int("output_size", s.outputSize),
		slog.Int("delta", s.delta),
	)
}
