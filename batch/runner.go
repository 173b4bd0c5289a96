package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/varbvs/matrix"
	"github.com/katalvlaran/varbvs/varbvs"
)

// Job is one independent chain of sweeps.
type Job struct {
	// Name labels the job in logs and errors; optional.
	Name string

	// Params holds sigma, sa and the per-predictor prior log-odds.
	Params varbvs.Params

	// State is updated in place. Must be unique across the batch.
	State *varbvs.State

	// Order is the sweep order. When Alternate is set, odd sweeps run it
	// reversed.
	Order     []int
	Alternate bool

	// Sweeps is the number of passes; zero means one.
	Sweeps int
}

// Runner executes Jobs concurrently. The zero value is not usable; build one
// with NewRunner.
type Runner struct {
	concurrency int
	logger      *slog.Logger
}

// NewRunner returns a Runner with DefaultConcurrency and a text logger on
// stderr at Info level, then applies opts in order.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		concurrency: DefaultConcurrency,
		logger:      NewTextLogger(slog.LevelInfo),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Run processes every job against the shared X and stats.
//
// Implementation:
//   - Stage 1: validate each job (sweep count, state uniqueness, then
//     varbvs.Validate with the job's order).
//   - Stage 2: launch jobs under an errgroup limited to the concurrency bound.
//   - Stage 3: each job checks ctx before every sweep.
//
// The first failure cancels the remaining jobs; Run returns that error.
// Jobs that completed keep their updated states.
func (r *Runner) Run(ctx context.Context, X matrix.ColumnAccessor, stats varbvs.Stats, jobs []Job) error {
	if err := r.validate(X, stats, jobs); err != nil {
		return err
	}
	if len(jobs) == 0 {
		return nil
	}

	start := time.Now()
	r.logger.Info("batch started", "jobs", len(jobs), "concurrency", r.concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i := range jobs {
		job := &jobs[i]
		g.Go(func() error {
			if err := r.runJob(gctx, X, stats, job); err != nil {
				return jobErrorf(i, job.Name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		r.logger.Error("batch failed", "err", err, "elapsed", time.Since(start))
		return err
	}
	r.logger.Info("batch finished", "jobs", len(jobs), "elapsed", time.Since(start))

	return nil
}

func (r *Runner) validate(X matrix.ColumnAccessor, stats varbvs.Stats, jobs []Job) error {
	seen := make(map[*varbvs.State]int, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		if job.Sweeps < 0 {
			return jobErrorf(i, job.Name, ErrNegativeSweeps)
		}
		if prev, ok := seen[job.State]; ok && job.State != nil {
			return jobErrorf(i, job.Name, fmt.Errorf("%w with job %d", ErrSharedState, prev))
		}
		seen[job.State] = i
		if err := varbvs.Validate(X, job.Params, stats, job.State, job.Order); err != nil {
			return jobErrorf(i, job.Name, err)
		}
	}

	return nil
}

// runJob performs the job's sweeps. Arguments were validated by Run, so the
// only failure left is cancellation.
func (r *Runner) runJob(ctx context.Context, X matrix.ColumnAccessor, stats varbvs.Stats, job *Job) error {
	sweeps := job.Sweeps
	if sweeps == 0 {
		sweeps = 1
	}
	var reversed []int
	if job.Alternate {
		reversed = make([]int, len(job.Order))
		for k, j := range job.Order {
			reversed[len(job.Order)-1-k] = j
		}
	}

	var order []int
	for pass := 0; pass < sweeps; pass++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if job.Alternate && pass%2 == 1 {
			order = reversed
		} else {
			order = job.Order
		}
		if err := varbvs.UpdatePass(X, job.Params, stats, job.State, order); err != nil {
			return err
		}
	}
	r.logger.Debug("job done", "name", job.Name, "sweeps", sweeps)

	return nil
}
