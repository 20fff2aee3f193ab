// Package wrappers implements decorators for gospaces Environments:
// observation flattening and filtering, action clipping and rescaling,
// and episode time limits.
package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gospaces"
	"gonum.org/v1/gonum/mat"
)

// FlattenObservation wraps a gospaces.Environment and flattens the
// observations.
//
// The observation space of a FlattenObservation wrapper is always a
// *gospaces.Box of length gospaces.FlatDim(inner observation space).
type FlattenObservation struct {
	gospaces.Environment
	obsSpace *gospaces.Box
}

// NewFlattenObservation returns a new gospaces.Environment that
// flattens state observations.
func NewFlattenObservation(env gospaces.Environment) (gospaces.Environment,
	error) {
	obsSpace, err := gospaces.FlattenSpace(env.ObservationSpace())
	if err != nil {
		return nil, fmt.Errorf("newFlattenObservation: could not flatten "+
			"observation space: %w", err)
	}

	return &FlattenObservation{
		Environment: env,
		obsSpace:    obsSpace,
	}, nil
}

// Name gets the name of the environment
func (f *FlattenObservation) Name() string {
	return fmt.Sprintf("FlattenObservation(%v)", f.Environment.Name())
}

// ObservationSpace returns the space of flattened observations
func (f *FlattenObservation) ObservationSpace() gospaces.Space {
	return f.obsSpace
}

// Observation returns a flattened version of some observation x.
// The argument x must be a valid argument to gospaces.Flatten.
func (f *FlattenObservation) Observation(x interface{}) (*mat.VecDense,
	error) {
	return gospaces.Flatten(f.Environment.ObservationSpace(), x)
}

// Reset resets the Environment and returns the starting observation,
// flattened
func (f *FlattenObservation) Reset() (interface{}, error) {
	obs, err := f.Environment.Reset()
	if err != nil {
		return nil, err
	}
	return f.Observation(obs)
}

// Step takes one environmental step and returns the next observation,
// flattened
func (f *FlattenObservation) Step(a interface{}) (interface{}, float64,
	bool, error) {
	obs, reward, done, err := f.Environment.Step(a)
	if err != nil {
		return nil, 0, false, err
	}

	flat, err := f.Observation(obs)
	if err != nil {
		return nil, 0, false, err
	}
	return flat, reward, done, nil
}
