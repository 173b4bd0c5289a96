// Package batch runs many independent coordinate-update sweeps over one shared
// design matrix concurrently.
//
// 🚀 What is it?
//
//	A Runner fans a list of Jobs out over a bounded pool of goroutines. Every
//	Job owns its PosteriorState; the design matrix X and the sufficient
//	statistics are shared read-only. This is the shape of a hyperparameter grid
//	or of multiple random restarts: same data, many states.
//
// ✨ Guarantees
//
//   - Every Job is validated with varbvs.Validate before ANY state is touched;
//     one bad Job rejects the whole batch with nothing mutated.
//   - Two Jobs may not share a State (ErrSharedState): a State is never
//     written by two goroutines.
//   - Within a Job, sweeps run strictly in sequence, so results are identical
//     to a sequential loop regardless of concurrency.
//   - Cancellation is observed between sweeps; a sweep in progress always
//     completes, leaving its State consistent.
//
// ⚙️ Usage
//
//	r := batch.NewRunner(batch.WithConcurrency(4))
//	err := r.Run(ctx, X, stats, jobs)
//
// Logging goes through log/slog; pass batch.WithLogger to redirect or
// silence it.
package batch
