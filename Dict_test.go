package gospaces_test

import (
	"testing"

	"github.com/samuelfneumann/gospaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDictSpaceValidation(t *testing.T) {
	discrete := mustDiscrete(t, 3, 0)

	_, err := gospaces.NewDictSpace(nil, nil)
	assert.Error(t, err)

	_, err = gospaces.NewDictSpace([]string{"a", "b"},
		[]gospaces.Space{discrete})
	assert.Error(t, err)

	_, err = gospaces.NewDictSpace([]string{"a", "a"},
		[]gospaces.Space{discrete, discrete})
	assert.Error(t, err)

	_, err = gospaces.NewDictSpace([]string{"a"}, []gospaces.Space{nil})
	assert.Error(t, err)
}

// The key order given at construction is the space's fixed order,
// regardless of lexicographic or sample-map order.
func TestDictSpaceKeyOrder(t *testing.T) {
	space := mustDict(t, []string{"velocity", "position"}, []gospaces.Space{
		mustBox(t, vec(0, 0), vec(1, 5), []int{2}, gospaces.Float64),
		mustDiscrete(t, 5, 0),
	})

	assert.Equal(t, []string{"velocity", "position"}, space.Keys())

	position, ok := space.At("position")
	require.True(t, ok)
	assert.IsType(t, &gospaces.Discrete{}, position)

	_, ok = space.At("acceleration")
	assert.False(t, ok)
}

func TestDictSpaceContains(t *testing.T) {
	space := mustDict(t, []string{"position", "velocity"}, []gospaces.Space{
		mustDiscrete(t, 5, 0),
		mustBox(t, vec(0, 0), vec(1, 5), []int{2}, gospaces.Float64),
	})

	assert.True(t, space.Contains(map[string]interface{}{
		"position": 3,
		"velocity": vec(0.5, 3.5),
	}))

	// Wrong key set
	assert.False(t, space.Contains(map[string]interface{}{
		"position": 3,
	}))
	assert.False(t, space.Contains(map[string]interface{}{
		"position":     3,
		"velocity":     vec(0.5, 3.5),
		"acceleration": vec(0.0),
	}))

	// Value out of a sub-space
	assert.False(t, space.Contains(map[string]interface{}{
		"position": 5,
		"velocity": vec(0.5, 3.5),
	}))

	assert.False(t, space.Contains([]interface{}{3, vec(0.5, 3.5)}))
}

func TestDictSpaceSample(t *testing.T) {
	space := mustDict(t, []string{"position", "velocity"}, []gospaces.Space{
		mustDiscrete(t, 5, 0),
		mustBox(t, vec(0, 0), vec(1, 5), []int{2}, gospaces.Float64),
	})
	space.Seed(3)

	for i := 0; i < 25; i++ {
		sample := space.Sample()
		assert.True(t, space.Contains(sample), "sample %v out of space",
			sample)
	}
}
