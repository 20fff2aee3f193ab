package wrappers_test

import (
	"testing"

	"github.com/samuelfneumann/gospaces"
	"github.com/samuelfneumann/gospaces/wrappers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestRescaleAction(t *testing.T) {
	inner := newDictEnv(t)
	actionSpace, err := gospaces.NewBox(vec(0), vec(4), []int{1},
		gospaces.Float64)
	require.NoError(t, err)
	inner.actionSpace = actionSpace

	env, err := wrappers.NewRescaleAction(inner, -1, 1)
	require.NoError(t, err)
	assert.Equal(t, "RescaleAction(Count-v0)", env.Name())

	// The exposed action space has the new bounds
	box, ok := env.ActionSpace().(*gospaces.Box)
	require.True(t, ok)
	assert.Equal(t, -1.0, box.Low().AtVec(0))
	assert.Equal(t, 1.0, box.High().AtVec(0))

	for _, test := range []struct {
		action, want float64
	}{
		{-1, 0},
		{0, 2},
		{1, 4},
		{0.5, 3},
	} {
		_, _, _, err = env.Step(vec(test.action))
		require.NoError(t, err)

		got, ok := inner.lastAction.(*mat.VecDense)
		require.True(t, ok)
		assert.True(t, floats.EqualApprox([]float64{test.want},
			got.RawVector().Data, 1e-12),
			"action %v rescaled to %v, want %v", test.action,
			got.RawVector().Data, test.want)
	}
}

func TestRescaleActionValidation(t *testing.T) {
	inner := newDictEnv(t)

	// a must be strictly below b
	_, err := wrappers.NewRescaleAction(inner, 1, -1)
	assert.Error(t, err)

	// Discrete action spaces cannot be rescaled
	discrete, err := gospaces.NewDiscrete(3, 0)
	require.NoError(t, err)
	inner.actionSpace = discrete
	_, err = wrappers.NewRescaleAction(inner, -1, 1)
	assert.Error(t, err)
}
