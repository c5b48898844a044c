// Package testutil provides testing utilities for bitarray.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for generating bit
// patterns and index sequences.
//
// # Random Bit Patterns
//
//	rng := testutil.NewRNG(seed)
//	pattern := rng.BitPattern(1000, 0.25) // ~25% of positions true
//	order := rng.Perm(1000)               // visit order for Set/Unset
package testutil
