package wrappers_test

import (
	"testing"

	"github.com/samuelfneumann/gospaces"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func vec(data ...float64) *mat.VecDense {
	return mat.NewVecDense(len(data), data)
}

// countEnv is a deterministic toy environment: the observation encodes
// the number of steps taken since the last Reset, and every step is
// recorded so tests can assert on what the environment received.
type countEnv struct {
	actionSpace gospaces.Space
	obsSpace    gospaces.Space
	obs         func(t int) interface{}
	t           int
	lastAction  interface{}
}

func (e *countEnv) Name() string                     { return "Count-v0" }
func (e *countEnv) ActionSpace() gospaces.Space      { return e.actionSpace }
func (e *countEnv) ObservationSpace() gospaces.Space { return e.obsSpace }
func (e *countEnv) Seed(uint64)                      {}
func (e *countEnv) Close()                           {}

func (e *countEnv) Reset() (interface{}, error) {
	e.t = 0
	return e.obs(0), nil
}

func (e *countEnv) Step(a interface{}) (interface{}, float64, bool, error) {
	e.lastAction = a
	e.t++
	return e.obs(e.t), 1, false, nil
}

// newDictEnv returns a countEnv with a Dict observation space holding a
// Discrete position and a Box velocity, and a Box action space on
// [-1, 1]^2.
func newDictEnv(t *testing.T) *countEnv {
	t.Helper()

	position, err := gospaces.NewDiscrete(5, 0)
	require.NoError(t, err)
	velocity, err := gospaces.NewBox(vec(0, 0), vec(1, 5), []int{2},
		gospaces.Float64)
	require.NoError(t, err)
	obsSpace, err := gospaces.NewDictSpace(
		[]string{"position", "velocity"},
		[]gospaces.Space{position, velocity},
	)
	require.NoError(t, err)

	actionSpace, err := gospaces.NewBox(vec(-1, -1), vec(1, 1), []int{2},
		gospaces.Float64)
	require.NoError(t, err)

	return &countEnv{
		actionSpace: actionSpace,
		obsSpace:    obsSpace,
		obs: func(step int) interface{} {
			return map[string]interface{}{
				"position": step % 5,
				"velocity": vec(0.5, 3.5),
			}
		},
	}
}
