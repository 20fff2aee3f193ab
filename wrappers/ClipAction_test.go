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

func TestClipAction(t *testing.T) {
	inner := newDictEnv(t)
	env, err := wrappers.NewClipAction(inner)
	require.NoError(t, err)
	assert.Equal(t, "ClipAction(Count-v0)", env.Name())

	_, _, _, err = env.Step(vec(2, -3))
	require.NoError(t, err)

	got, ok := inner.lastAction.(*mat.VecDense)
	require.True(t, ok)
	assert.True(t, floats.Equal([]float64{1, -1}, got.RawVector().Data))

	// In-bounds actions pass through unchanged
	_, _, _, err = env.Step(vec(0.25, -0.5))
	require.NoError(t, err)
	got = inner.lastAction.(*mat.VecDense)
	assert.True(t, floats.Equal([]float64{0.25, -0.5},
		got.RawVector().Data))
}

func TestClipActionRequiresBox(t *testing.T) {
	inner := newDictEnv(t)
	discrete, err := gospaces.NewDiscrete(3, 0)
	require.NoError(t, err)
	inner.actionSpace = discrete

	_, err = wrappers.NewClipAction(inner)
	assert.Error(t, err)
}
