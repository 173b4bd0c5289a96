package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrNilState is returned by Encode for a nil *varbvs.State.
	ErrNilState = errors.New("snapshot: nil state")

	// ErrInconsistentState indicates len(Mu) != len(Alpha).
	ErrInconsistentState = errors.New("snapshot: alpha and mu lengths differ")

	// ErrBadMagic indicates the stream does not start with the snapshot magic.
	ErrBadMagic = errors.New("snapshot: bad magic")

	// ErrUnsupportedVersion indicates a format version this package cannot read.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")

	// ErrCorrupt indicates a truncated, oversized or otherwise invalid payload.
	ErrCorrupt = errors.New("snapshot: corrupt payload")
)

// corruptf wraps ErrCorrupt together with the underlying cause, if any.
func corruptf(what string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrCorrupt, what)
	}

	return fmt.Errorf("%w: %s: %w", ErrCorrupt, what, err)
}
