package gospaces

// Space describes a space of actions, observations, etc. Spaces are
// immutable once constructed: no method mutates its receiver, and the
// transform functions never mutate their space arguments.
//
// The concrete sample type a space produces (and the type Flatten
// accepts and Unflatten returns) depends on the space kind:
//
//	Discrete        int
//	Box             *mat.VecDense (row-major for multi-dimensional shapes)
//	MultiDiscrete   *mat.VecDense of integer-valued components
//	MultiBinary     *mat.VecDense of 0/1 components
//	TupleSpace      []interface{}, one sample per sub-space
//	DictSpace       map[string]interface{}, one sample per key
type Space interface {
	// Sample takes a sample from within the space's bounds
	Sample() interface{}

	// Contains returns whether x is in the space
	Contains(x interface{}) bool

	// Seed seeds the sampler for the space
	Seed(uint64)

	// isSpace seals the space kinds to the fixed set defined in this
	// package, so that each transform operation can dispatch
	// exhaustively over the kinds it handles.
	isSpace()
}

func (*Discrete) isSpace()      {}
func (*Box) isSpace()           {}
func (*MultiDiscrete) isSpace() {}
func (*MultiBinary) isSpace()   {}
func (*TupleSpace) isSpace()    {}
func (*DictSpace) isSpace()     {}
