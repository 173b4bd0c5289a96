// Sweep orders.
//
// The kernel never picks an order itself; these helpers build the usual ones.
// Randomness follows a fixed-seed policy: same seed ⇒ same permutation on
// every platform, and seed 0 maps to a documented default rather than the clock.

package varbvs

import "math/rand"

// defaultOrderSeed is the stream used when callers pass seed == 0.
const defaultOrderSeed int64 = 1

// Ascending returns 0, 1, ..., p-1. For p <= 0 the order is empty.
func Ascending(p int) []int {
	if p <= 0 {
		return []int{}
	}
	out := make([]int, p)
	for j := range out {
		out[j] = j
	}

	return out
}

// Descending returns p-1, ..., 1, 0.
func Descending(p int) []int {
	out := Ascending(p)
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out
}

// Alternating returns Ascending(p) for even pass numbers and Descending(p)
// for odd ones. Reversing direction every other pass is the customary outer
// loop schedule: it keeps early predictors from always being updated against
// the stalest residual.
func Alternating(p, pass int) []int {
	if pass%2 == 0 {
		return Ascending(p)
	}

	return Descending(p)
}

// Shuffled returns a permutation of 0..p-1 drawn by Fisher–Yates from a
// deterministic stream seeded by seed (0 ⇒ defaultOrderSeed).
// Complexity: O(p) time and space.
func Shuffled(p int, seed int64) []int {
	if seed == 0 {
		seed = defaultOrderSeed
	}
	rng := rand.New(rand.NewSource(seed))
	out := Ascending(p)

	var i, j int
	for i = len(out) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}
