package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gospaces"
)

// FilterObservation wraps a gospaces.Environment with a DictSpace
// observation space and filters its observations by their keys.
//
// The observation space of the wrapper is the DictSpace restricted to
// the filter keys, in the original space's fixed key order.
type FilterObservation struct {
	gospaces.Environment
	keys     []string
	obsSpace *gospaces.DictSpace
}

// NewFilterObservation returns a new gospaces.Environment that filters
// DictSpace state observations by the specified keys. Every key must
// exist in env's observation space.
func NewFilterObservation(env gospaces.Environment,
	keys ...string) (gospaces.Environment, error) {
	dict, ok := env.ObservationSpace().(*gospaces.DictSpace)
	if !ok {
		return nil, fmt.Errorf("newFilterObservation: could not wrap "+
			"environment with %T observation space, need *gospaces.DictSpace",
			env.ObservationSpace())
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("newFilterObservation: no filter keys given")
	}

	want := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := dict.At(key); !ok {
			return nil, fmt.Errorf("newFilterObservation: key %q is not in "+
				"the observation space", key)
		}
		want[key] = struct{}{}
	}

	// Restrict to the filter keys, keeping the space's own key order.
	var filteredKeys []string
	var filteredSpaces []gospaces.Space
	for _, key := range dict.Keys() {
		if _, ok := want[key]; !ok {
			continue
		}
		space, _ := dict.At(key)
		filteredKeys = append(filteredKeys, key)
		filteredSpaces = append(filteredSpaces, space)
	}
	obsSpace, err := gospaces.NewDictSpace(filteredKeys, filteredSpaces)
	if err != nil {
		return nil, fmt.Errorf("newFilterObservation: could not create "+
			"observation space: %w", err)
	}

	return &FilterObservation{
		Environment: env,
		keys:        filteredKeys,
		obsSpace:    obsSpace,
	}, nil
}

// Name gets the name of the environment
func (f *FilterObservation) Name() string {
	return fmt.Sprintf("FilterObservation(%v)", f.Environment.Name())
}

// ObservationSpace returns the filtered observation space
func (f *FilterObservation) ObservationSpace() gospaces.Space {
	return f.obsSpace
}

// Observation returns the filtered observation of x
func (f *FilterObservation) Observation(
	x map[string]interface{}) map[string]interface{} {

	newObs := make(map[string]interface{}, len(f.keys))
	for _, key := range f.keys {
		newObs[key] = x[key]
	}
	return newObs
}

// Reset resets the Environment and returns the starting observation,
// filtered
func (f *FilterObservation) Reset() (interface{}, error) {
	obs, err := f.Environment.Reset()
	if err != nil {
		return nil, err
	}
	return f.filtered(obs)
}

// Step takes one environmental step and returns the next observation,
// filtered
func (f *FilterObservation) Step(a interface{}) (interface{}, float64, bool,
	error) {
	obs, reward, done, err := f.Environment.Step(a)
	if err != nil {
		return nil, 0, false, err
	}

	filtered, err := f.filtered(obs)
	if err != nil {
		return nil, 0, false, err
	}
	return filtered, reward, done, nil
}

func (f *FilterObservation) filtered(obs interface{}) (
	map[string]interface{}, error) {
	m, ok := obs.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("filterObservation: observation must be a "+
			"map[string]interface{}, got %T: %w", obs,
			gospaces.ErrInvalidSample)
	}
	return f.Observation(m), nil
}
