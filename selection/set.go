package selection

import (
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/varbvs/varbvs"
)

// Set is a set of predictor indices. The zero value is not usable; use New
// or one of the constructors.
type Set struct {
	rb *roaring.Bitmap
}

// New returns an empty Set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// FromAlpha returns {j : alpha[j] > threshold}.
// Errors: ErrThreshold, ErrIndexOutOfRange for a selected j beyond MaxUint32.
func FromAlpha(alpha []float64, threshold float64) (*Set, error) {
	if !(threshold >= 0 && threshold <= 1) {
		return nil, fmt.Errorf("%w: %g", ErrThreshold, threshold)
	}
	s := New()
	for j, a := range alpha {
		if a > threshold {
			if err := s.Add(j); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

// Stable returns the predictors selected in every state, the intersection of
// FromAlpha over all of them. No states yields an empty Set.
// Errors: ErrThreshold, ErrNilState.
func Stable(states []*varbvs.State, threshold float64) (*Set, error) {
	return combine(states, threshold, (*Set).And)
}

// Any returns the predictors selected in at least one state.
// Errors: ErrThreshold, ErrNilState.
func Any(states []*varbvs.State, threshold float64) (*Set, error) {
	return combine(states, threshold, (*Set).Or)
}

func combine(states []*varbvs.State, threshold float64, op func(*Set, *Set)) (*Set, error) {
	var acc *Set
	for i, st := range states {
		if st == nil {
			return nil, fmt.Errorf("state %d: %w", i, ErrNilState)
		}
		s, err := FromAlpha(st.Alpha, threshold)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = s
			continue
		}
		op(acc, s)
	}
	if acc == nil {
		return New(), nil
	}

	return acc, nil
}

// Add inserts j. Errors: ErrIndexOutOfRange for negative j or j > MaxUint32.
func (s *Set) Add(j int) error {
	if !fitsSlot(j) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, j)
	}
	s.rb.Add(uint32(j))

	return nil
}

// fitsSlot reports whether j converts to uint32 without wrapping.
func fitsSlot(j int) bool {
	return j >= 0 && uint64(j) <= math.MaxUint32
}

// Contains reports whether j is in the set.
func (s *Set) Contains(j int) bool {
	if !fitsSlot(j) {
		return false
	}

	return s.rb.Contains(uint32(j))
}

// Len returns the number of indices in the set.
func (s *Set) Len() int { return int(s.rb.GetCardinality()) }

// Clone returns a deep copy.
func (s *Set) Clone() *Set { return &Set{rb: s.rb.Clone()} }

// And keeps only indices also present in other.
func (s *Set) And(other *Set) { s.rb.And(other.rb) }

// Or adds every index of other.
func (s *Set) Or(other *Set) { s.rb.Or(other.rb) }

// Indices yields the members in ascending order.
func (s *Set) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Order returns the members as an ascending update order. Pass it to
// varbvs.UpdatePass to sweep only the active set.
func (s *Set) Order() []int {
	out := make([]int, 0, s.Len())
	for j := range s.Indices() {
		out = append(out, j)
	}

	return out
}

// String renders the set like a Go slice, e.g. "[0 3 7]".
func (s *Set) String() string { return fmt.Sprint(s.Order()) }
