package gospaces

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// MultiDiscrete represents a fixed-length vector of independent
// discrete choices, component i taking values in (0, 1, ..., nvec[i]-1).
// Its samples are integer-valued *mat.VecDense vectors, and its flat
// encoding is the concatenation of one one-hot block per component,
// of width Int64.
type MultiDiscrete struct {
	rand.Source
	rngs []distuv.Categorical
	nvec []int
}

// NewMultiDiscrete returns a new MultiDiscrete space with the given
// number of choices per component.
func NewMultiDiscrete(nvec []int) (*MultiDiscrete, error) {
	if len(nvec) == 0 {
		return nil, fmt.Errorf("newMultiDiscrete: nvec must not be empty")
	}

	src := rand.NewSource(uint64(time.Now().UnixNano()))
	rngs := make([]distuv.Categorical, len(nvec))
	for i, n := range nvec {
		if n < 1 {
			return nil, fmt.Errorf("newMultiDiscrete: nvec[%d] must be "+
				"positive, got %d", i, n)
		}
		weights := make([]float64, n)
		for j := range weights {
			weights[j] = 1.0
		}
		rngs[i] = distuv.NewCategorical(weights, src)
	}

	return &MultiDiscrete{
		Source: src,
		rngs:   rngs,
		nvec:   append([]int(nil), nvec...),
	}, nil
}

// Sample takes a sample from within the space's bounds
func (m *MultiDiscrete) Sample() interface{} {
	data := make([]float64, len(m.nvec))
	for i := range data {
		data[i] = float64(int(m.rngs[i].Rand()))
	}
	return mat.NewVecDense(len(data), data)
}

// Contains returns whether x is in the space. The argument x must be
// either a []float64 or a *mat.VecDense of integer values.
func (m *MultiDiscrete) Contains(x interface{}) bool {
	data, ok := vecData(x)
	if !ok || len(data) != len(m.nvec) {
		return false
	}

	for i, v := range data {
		iv := int(v)
		if float64(iv) != v || iv < 0 || iv >= m.nvec[i] {
			return false
		}
	}
	return true
}

// Nvec returns a copy of the number of choices per component
func (m *MultiDiscrete) Nvec() []int {
	return append([]int(nil), m.nvec...)
}

// Len returns the number of components in the space
func (m *MultiDiscrete) Len() int {
	return len(m.nvec)
}
