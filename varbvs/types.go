package varbvs

// Params holds the prior hyperparameters of one model.
//
// Fields:
//   - Sigma   — residual variance, > 0.
//   - Sa      — slab prior variance (in units of Sigma), > 0.
//   - LogOdds — prior log-odds of inclusion, one entry per predictor.
type Params struct {
	Sigma   float64
	Sa      float64
	LogOdds []float64
}

// Stats are the sufficient statistics of the data, fixed for a pass.
//
// Fields:
//   - XY — XY[j] = dot(X_j, y).
//   - D  — D[j]  = dot(X_j, X_j); zero marks an all-zero column, which is legal.
type Stats struct {
	XY []float64
	D  []float64
}

// State is the mutable variational posterior, owned by the caller and carried
// across passes for warm starts.
//
// Invariant (maintained by UpdatePass): Xr == X·(Alpha⊙Mu) within floating
// tolerance after every completed step.
type State struct {
	Alpha []float64 // inclusion probabilities, len p, each in [0,1]
	Mu    []float64 // slab means given inclusion, len p
	Xr    []float64 // fitted values, len n
}
