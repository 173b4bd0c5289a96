package selection

import "errors"

var (
	// ErrThreshold indicates a threshold outside [0,1] or NaN.
	ErrThreshold = errors.New("selection: threshold must be in [0,1]")

	// ErrIndexOutOfRange indicates an index that does not fit a uint32 slot.
	ErrIndexOutOfRange = errors.New("selection: index out of range")

	// ErrNilState indicates a nil *varbvs.State in the input.
	ErrNilState = errors.New("selection: nil state")
)
