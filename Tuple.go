package gospaces

import "fmt"

// TupleSpace implements a tuple (i.e., product) of simpler spaces.
//
// A TupleSpace treats all the spaces it contains in a recursive
// manner: sampling, containment and seeding call the corresponding
// method on each sub-space in order. Its samples are []interface{}
// values with one sub-sample per sub-space, matched positionally.
type TupleSpace struct {
	spaces []Space
}

// NewTupleSpace returns a new TupleSpace over the given sub-spaces.
func NewTupleSpace(spaces ...Space) (*TupleSpace, error) {
	if len(spaces) == 0 {
		return nil, fmt.Errorf("newTupleSpace: no sub-spaces given")
	}
	for i, space := range spaces {
		if space == nil {
			return nil, fmt.Errorf("newTupleSpace: nil sub-space at index %d",
				i)
		}
	}
	return &TupleSpace{spaces: append([]Space(nil), spaces...)}, nil
}

// Seed seeds the RNG for all sub-spaces recursively
func (t *TupleSpace) Seed(seed uint64) {
	for _, space := range t.spaces {
		space.Seed(seed)
	}
}

// Sample takes a sample from within the space bounds of each space in
// the tuple space, in order.
func (t *TupleSpace) Sample() interface{} {
	sample := make([]interface{}, t.Len())
	for i, space := range t.spaces {
		sample[i] = space.Sample()
	}
	return sample
}

// Contains returns whether x is in the space. The argument x must be
// a []interface{}, and each element of x must be a valid sample of the
// sub-space at the same index.
func (t *TupleSpace) Contains(x interface{}) bool {
	xs, ok := x.([]interface{})
	if !ok || len(xs) != t.Len() {
		return false
	}

	for i := range xs {
		if !t.spaces[i].Contains(xs[i]) {
			return false
		}
	}
	return true
}

// Len returns the number of sub-spaces in the space
func (t *TupleSpace) Len() int {
	return len(t.spaces)
}

// At returns the Space in the TupleSpace at index i
func (t *TupleSpace) At(i int) Space {
	return t.spaces[i]
}
