// Package varbvs implements the coordinate-ascent update pass of variational
// inference for Bayesian variable selection in linear regression.
//
// 🚀 What is varbvs?
//
//	Each predictor j carries a spike-and-slab prior: a point mass at zero mixed
//	with a normal slab of variance sa·sigma. The fully-factorized variational
//	posterior keeps, per predictor,
//	  • alpha[j] — posterior inclusion probability, in [0,1]
//	  • mu[j]    — posterior mean of the slab coefficient given inclusion
//	and the fitted-value accumulator Xr = X·(alpha⊙mu).
//
// ✨ Key features:
//   - UpdatePass / CoordinateUpdatePass: one ordered sweep, O(n) per step,
//     maintaining Xr incrementally instead of recomputing X·(alpha⊙mu).
//   - Sigmoid: overflow-free logistic transform.
//   - Fail-fast validation: every precondition is checked before the first
//     mutation, so a rejected call leaves the state untouched.
//   - Sweep orders: Ascending, Descending, Alternating, Shuffled (seeded).
//   - Helpers around the kernel: NewStats (Xᵀy, diag XᵀX), NewState,
//     WarmState, State.Refit / State.Drift.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/varbvs/varbvs"
//
//	stats, _ := varbvs.NewStats(X, y)
//	state, _ := varbvs.NewState(X.Rows(), X.Cols())
//	prm := varbvs.Params{Sigma: 1, Sa: 1, LogOdds: varbvs.RepeatLogOdds(X.Cols(), -2)}
//
//	for pass := 0; pass < 100; pass++ {
//	  if err := varbvs.UpdatePass(X, prm, stats, state, varbvs.Alternating(X.Cols(), pass)); err != nil {
//	    // ErrInvalidParameter, ErrDimensionMismatch or ErrIndexOutOfRange
//	  }
//	}
//
// Concurrency:
//
//	A pass is strictly sequential: every step reads the Xr left by the previous
//	one. Independent States may be swept concurrently while X and Stats are
//	shared read-only; see package batch. A single State must not be touched by
//	two goroutines at once; the package does no locking.
//
// Performance:
//
//   - Time:   O(n·len(order)) per pass
//   - Memory: O(1) beyond the caller's vectors
package varbvs
