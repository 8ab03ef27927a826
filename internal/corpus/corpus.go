// SPDX-License-Identifier: MIT

// Package corpus generates deterministic byte slices for round-trip and
// optimality property tests, in place of a checked-in binary test-data
// directory (the teacher's compat_corpus_test.go instead reads .lzo/.bin
// pairs from a vendored ref/ tree).
package corpus

import "math/rand"

// Case is one named input for a property test table.
type Case struct {
	Name string
	Data []byte
}

// Generate returns a fixed set of deterministic inputs spanning the shapes
// that exercise ZX0/ZX7's optimizer differently: pure runs, short cycles,
// natural-language text, and pseudo-random noise at a few sizes. Every call
// with the same seed returns byte-identical data.
func Generate(seed int64) []Case {
	rng := rand.New(rand.NewSource(seed))

	text := []byte("the quick brown fox jumps over the lazy dog. " +
		"pack my box with five dozen liquor jugs. " +
		"how vexingly quick daft zebras jump!")

	cases := []Case{
		{Name: "single-run-64", Data: repeat([]byte{0xAA}, 64)},
		{Name: "single-run-4096", Data: repeat([]byte{0x00}, 4096)},
		{Name: "short-cycle", Data: repeat([]byte{1, 2, 3, 4}, 1024)},
		{Name: "natural-text", Data: repeat(text, 20)},
		{Name: "noise-256", Data: randomBytes(rng, 256)},
		{Name: "noise-8192", Data: randomBytes(rng, 8192)},
		{Name: "text-then-run", Data: append(append([]byte(nil), text...), repeat([]byte{0x7F}, 512)...)},
	}
	return cases
}

func repeat(pattern []byte, n int) []byte {
	out := make([]byte, 0, len(pattern)*n)
	for i := 0; i < n; i++ {
		out = append(out, pattern...)
	}
	return out
}

func randomBytes(rng *rand.Rand, n int) []byte {
	out := make([]byte, n)
	rng.Read(out)
	return out
}
