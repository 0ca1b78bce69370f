package problemgen

import "math/rand/v2"

// Source is the randomness used for question draws and shuffles.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n). Panics if n <= 0.
	IntN(n int) int

	// Shuffle applies a uniform random permutation of n elements.
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomSource returns a source seeded from the runtime's entropy.
func NewRandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// shuffled returns a permuted copy of values.
func shuffled[T any](src Source, values []T) []T {
	out := make([]T, len(values))
	copy(out, values)
	src.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// sample draws k values without replacement: the pool is permuted and the
// first k elements taken. The caller checks k <= len(values).
func sample[T any](src Source, values []T, k int) []T {
	return shuffled(src, values)[:k]
}

// intInRange returns a uniform integer in [lo, hi].
func intInRange(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
