package wrappers

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gospaces"
	"gonum.org/v1/gonum/mat"
)

// RescaleAction wraps a gospaces.Environment and rescales the
// continuous action space of the environment to the range [a, b]. The
// action space of the wrapped environment must be a fully bounded
// *gospaces.Box; the wrapper exposes a Box with bounds [a, b] per
// element and affinely maps actions back to the inner bounds before
// stepping.
type RescaleAction struct {
	gospaces.Environment
	a, b        float64
	inner       *gospaces.Box
	actionSpace *gospaces.Box
}

// NewRescaleAction returns a new gospaces.Environment that rescales
// the actions taken in env from [a, b] to the bounds of env's action
// space.
func NewRescaleAction(env gospaces.Environment, a, b float64) (
	gospaces.Environment, error) {
	if a >= b {
		return nil, fmt.Errorf("newRescaleAction: need a < b, got [%v, %v]",
			a, b)
	}

	inner, ok := env.ActionSpace().(*gospaces.Box)
	if !ok {
		return nil, fmt.Errorf("newRescaleAction: could not wrap "+
			"environment with %T action space, need *gospaces.Box",
			env.ActionSpace())
	}
	low, high := inner.Low(), inner.High()
	for i := 0; i < low.Len(); i++ {
		if math.IsInf(low.AtVec(i), 0) || math.IsInf(high.AtVec(i), 0) {
			return nil, fmt.Errorf("newRescaleAction: action space must be "+
				"bounded, interval %d is not", i)
		}
	}

	n := low.Len()
	newLow := make([]float64, n)
	newHigh := make([]float64, n)
	for i := range newLow {
		newLow[i] = a
		newHigh[i] = b
	}
	actionSpace, err := gospaces.NewBox(mat.NewVecDense(n, newLow),
		mat.NewVecDense(n, newHigh), inner.Shape(), inner.Dtype())
	if err != nil {
		return nil, fmt.Errorf("newRescaleAction: could not create action "+
			"space: %w", err)
	}

	return &RescaleAction{
		Environment: env,
		a:           a,
		b:           b,
		inner:       inner,
		actionSpace: actionSpace,
	}, nil
}

// Name gets the name of the environment
func (r *RescaleAction) Name() string {
	return fmt.Sprintf("RescaleAction(%v)", r.Environment.Name())
}

// ActionSpace returns the rescaled action space
func (r *RescaleAction) ActionSpace() gospaces.Space {
	return r.actionSpace
}

// Action rescales the argument action from [a, b] to the legal bounds
// of the wrapped environment, clipping into those bounds
func (r *RescaleAction) Action(action *mat.VecDense) *mat.VecDense {
	low := r.inner.Low()
	high := r.inner.High()

	rescaled := mat.NewVecDense(action.Len(), nil)
	for i := 0; i < action.Len(); i++ {
		lo, hi := low.AtVec(i), high.AtVec(i)
		v := lo + (hi-lo)*(action.AtVec(i)-r.a)/(r.b-r.a)
		v = math.Min(math.Max(v, lo), hi)
		rescaled.SetVec(i, v)
	}
	return rescaled
}

// Step rescales the action to the wrapped environment's bounds, then
// takes one environmental step
func (r *RescaleAction) Step(a interface{}) (interface{}, float64, bool,
	error) {
	vec, ok := a.(*mat.VecDense)
	if !ok {
		return nil, 0, false, fmt.Errorf("step: action must be a "+
			"*mat.VecDense, got %T: %w", a, gospaces.ErrInvalidSample)
	}
	return r.Environment.Step(r.Action(vec))
}
