package gospaces_test

import (
	"testing"

	"github.com/samuelfneumann/gospaces"
	"github.com/stretchr/testify/assert"
)

func TestNewMultiDiscreteValidation(t *testing.T) {
	_, err := gospaces.NewMultiDiscrete(nil)
	assert.Error(t, err)

	_, err = gospaces.NewMultiDiscrete([]int{2, 0, 3})
	assert.Error(t, err)
}

func TestMultiDiscreteContains(t *testing.T) {
	space := mustMultiDiscrete(t, []int{2, 2, 10})
	assert.Equal(t, 3, space.Len())
	assert.Equal(t, []int{2, 2, 10}, space.Nvec())

	assert.True(t, space.Contains(vec(0, 1, 7)))
	assert.True(t, space.Contains([]float64{1, 1, 9}))
	assert.False(t, space.Contains(vec(0, 2, 7)))
	assert.False(t, space.Contains(vec(0, 1, 7.5)))
	assert.False(t, space.Contains(vec(0, 1)))
	assert.False(t, space.Contains(7))
}

func TestMultiDiscreteSample(t *testing.T) {
	space := mustMultiDiscrete(t, []int{2, 2, 10})
	space.Seed(23)

	for i := 0; i < 100; i++ {
		sample := space.Sample()
		assert.True(t, space.Contains(sample), "sample %v out of space",
			sample)
	}
}
