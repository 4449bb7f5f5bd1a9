// Package num provides number helpers.
package num

import "math/rand/v2"

// Random returns a uniformly distributed integer in [lo, hi], both bounds
// included. The bounds are swapped when lo > hi. The full int range is
// supported.
//
//	Random(1, 10) // → 1, 2, … or 10
func Random(lo, hi int) int {
	return between(rand.Uint64N, rand.Uint64, lo, hi)
}

// RandomFrom is like [Random] but draws from r, which makes sequences
// reproducible with a seeded source.
func RandomFrom(r *rand.Rand, lo, hi int) int {
	return between(r.Uint64N, r.Uint64, lo, hi)
}

func between(n func(uint64) uint64, full func() uint64, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	// Unsigned arithmetic keeps the span exact for negative bounds; it wraps
	// to zero only when [lo, hi] covers every 64-bit int.
	span := uint64(hi) - uint64(lo) + 1
	var offset uint64
	if span == 0 {
		offset = full()
	} else {
		offset = n(span)
	}
	return lo + int(offset)
}
