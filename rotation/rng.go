// SPDX-License-Identifier: MIT

// Package rotation - random sources for the generator.
//
// A generator call draws one parent value per chunk from the configured
// source, in chunk order, and seeds that chunk's own *rand.Rand from it.
// Chunk boundaries are fixed, so a given seed yields the same batch for any
// WithWorkers value, and no *rand.Rand is shared between goroutines.
package rotation

import "math/rand"

// zeroSeedSubstitute replaces WithSeed(0), so the zero Options value still
// names one fixed stream.
const zeroSeedSubstitute int64 = 1

// parentSource returns the source chunk seeds are drawn from: the caller's
// *rand.Rand when set, otherwise one seeded from o.seed.
func parentSource(o Options) *rand.Rand {
	if o.rng != nil {
		return o.rng
	}
	seed := o.seed
	if seed == 0 {
		seed = zeroSeedSubstitute
	}

	return rand.New(rand.NewSource(seed))
}

// chunkSeed scrambles a parent draw with the chunk index (SplitMix64
// finalizer), so adjacent chunks start from unrelated states.
func chunkSeed(parent int64, chunk int) int64 {
	z := uint64(parent) + uint64(chunk+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return int64(z ^ (z >> 31))
}

// chunkStreams returns one independent stream per chunk, in chunk order.
func chunkStreams(o Options, chunks int) []*rand.Rand {
	parent := parentSource(o)
	out := make([]*rand.Rand, chunks)
	for c := range out {
		out[c] = rand.New(rand.NewSource(chunkSeed(parent.Int63(), c)))
	}

	return out
}
