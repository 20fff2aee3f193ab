package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gospaces"
	"gonum.org/v1/gonum/mat"
)

// ClipAction wraps a gospaces.Environment and clips the continuous
// action within the valid bounds of the environment's Box action
// space before stepping.
type ClipAction struct {
	gospaces.Environment
	actionSpace *gospaces.Box
}

// NewClipAction returns a new gospaces.Environment that clips the
// actions taken in env. The action space of env must be a
// *gospaces.Box.
func NewClipAction(env gospaces.Environment) (gospaces.Environment, error) {
	box, ok := env.ActionSpace().(*gospaces.Box)
	if !ok {
		return nil, fmt.Errorf("newClipAction: could not wrap environment "+
			"with %T action space, need *gospaces.Box", env.ActionSpace())
	}

	return &ClipAction{
		Environment: env,
		actionSpace: box,
	}, nil
}

// Name gets the name of the environment
func (c *ClipAction) Name() string {
	return fmt.Sprintf("ClipAction(%v)", c.Environment.Name())
}

// Action returns the argument action clipped elementwise into the
// bounds of the action space
func (c *ClipAction) Action(action *mat.VecDense) *mat.VecDense {
	low := c.actionSpace.Low()
	high := c.actionSpace.High()

	clipped := mat.VecDenseCopyOf(action)
	for i := 0; i < clipped.Len(); i++ {
		v := clipped.AtVec(i)
		if v < low.AtVec(i) {
			v = low.AtVec(i)
		} else if v > high.AtVec(i) {
			v = high.AtVec(i)
		}
		clipped.SetVec(i, v)
	}
	return clipped
}

// Step clips the action into the action space's bounds, then takes one
// environmental step
func (c *ClipAction) Step(a interface{}) (interface{}, float64, bool, error) {
	vec, ok := a.(*mat.VecDense)
	if !ok {
		return nil, 0, false, fmt.Errorf("step: action must be a "+
			"*mat.VecDense, got %T: %w", a, gospaces.ErrInvalidSample)
	}
	return c.Environment.Step(c.Action(vec))
}
