// Package gospaces implements the structured observation and action
// spaces used by reinforcement learning environments, together with a
// canonical bidirectional transform between structured samples and flat
// numeric vectors.
//
// A Space describes the shape and range of valid values of one kind:
// Discrete (a scalar choice), Box (a bounded continuous or discrete
// box), MultiDiscrete (a vector of independent choices), MultiBinary
// (a 0/1 vector), TupleSpace (an ordered product of spaces), and
// DictSpace (a named, insertion-ordered mapping of spaces). The set of
// space kinds is closed: every operation in this package dispatches
// over exactly these six.
//
// The transform engine is the reason this package exists. FlatDim
// computes the length of a space's flat encoding, FlattenSpace derives
// the Box which bounds every possible flat encoding, Flatten encodes a
// structured sample as a flat *mat.VecDense, and Unflatten inverts the
// encoding. Algorithms that consume flat numeric vectors can thereby
// operate uniformly over arbitrarily nested spaces.
package gospaces
