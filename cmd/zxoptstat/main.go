// SPDX-License-Identifier: MIT

// Command zxoptstat is a minimal example binary exercising zxopt's public
// API and telemetry hooks. It is not a general-purpose compression tool:
// given a file path, it compresses the whole file with both ZX0 and ZX7
// using a structured logger and a progress callback, and prints a one-line
// summary per format. File splitting, CLI flags, and a decompressor are
// out of scope (see SPEC_FULL.md Non-goals).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/saukas-zx/zxopt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: zxoptstat <file>")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "zxoptstat: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var dots int
	zx0Out, zx0Delta, err := zxopt.CompressZX0(data, 0, &zxopt.Options{
		Logger: logger,
		Progress: func(stage int) {
			dots = stage
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "zxoptstat: CompressZX0: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("zx0: %d -> %d bytes (delta=%d, progress stages=%d)\n", len(data), len(zx0Out), zx0Delta, dots)

	zx7Out, zx7Delta, err := zxopt.CompressZX7(data, 0, &zxopt.Options{Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "zxoptstat: CompressZX7: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("zx7: %d -> %d bytes (delta=%d)\n", len(data), len(zx7Out), zx7Delta)
}
