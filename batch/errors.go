package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrSharedState indicates two jobs point at the same *varbvs.State.
	ErrSharedState = errors.New("batch: state shared between jobs")

	// ErrNegativeSweeps indicates a Job with Sweeps < 0.
	ErrNegativeSweeps = errors.New("batch: negative sweep count")
)

// jobErrorf tags err with the job index and name.
func jobErrorf(i int, name string, err error) error {
	if name == "" {
		return fmt.Errorf("job %d: %w", i, err)
	}

	return fmt.Errorf("job %d (%s): %w", i, name, err)
}
