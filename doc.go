// Package varbvs is the module root of a variational Bayes variable-selection
// toolkit for sparse linear regression with a spike-and-slab prior.
//
// 🚀 What is it?
//
//	The heart of the module is one coordinate-ascent update pass: for each
//	predictor j of a chosen order it refreshes the posterior inclusion
//	probability alpha_j and slab mean mu_j, and keeps the fitted values
//	Xr = X·(alpha⊙mu) exactly in sync. Everything else exists to feed that
//	pass or to run many of them.
//
// ✨ Why this layout?
//
//   - Explicit state – the caller owns every posterior vector; warm starts are free
//   - Fail-fast – every argument is checked before the first write
//   - Deterministic – same inputs and order, same bits out
//
// Under the hood, everything is organized under five subpackages:
//
//	matrix/    — column-major Dense, ColumnAccessor, Dot/AddScaled (gonum/floats)
//	varbvs/    — Sigmoid, UpdatePass, sufficient statistics, states, sweep orders
//	batch/     — concurrent independent chains over a shared design (errgroup, slog)
//	snapshot/  — zstd-compressed state checkpoints for warm starts
//	selection/ — roaring-bitmap predictor sets, stable sets across chains, active-set orders
//
// Quick example:
//
//	X, _ := matrix.NewDenseFromRows(rows)
//	stats, _ := varbvs.NewStats(X, y)
//	s, _ := varbvs.NewState(X.Rows(), X.Cols())
//	prm := varbvs.Params{Sigma: 1, Sa: 1, LogOdds: varbvs.RepeatLogOdds(X.Cols(), -2)}
//	for pass := 0; pass < 100; pass++ {
//		if err := varbvs.UpdatePass(X, prm, stats, s, varbvs.Alternating(X.Cols(), pass)); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The outer convergence loop, hyperparameter search and the evidence lower
// bound are left to the caller; see examples/ for complete programs.
package varbvs
