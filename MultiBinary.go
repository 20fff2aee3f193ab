package gospaces

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// MultiBinary represents a fixed-length vector of 0/1 values. Its
// samples are *mat.VecDense vectors holding only 0 and 1, and its flat
// encoding is the sample itself, of width Int8.
type MultiBinary struct {
	rand.Source
	rng distuv.Bernoulli
	n   int
}

// NewMultiBinary returns a new MultiBinary space of length n.
func NewMultiBinary(n int) (*MultiBinary, error) {
	if n < 1 {
		return nil, fmt.Errorf("newMultiBinary: n must be positive, got %d", n)
	}

	src := rand.NewSource(uint64(time.Now().UnixNano()))
	return &MultiBinary{
		Source: src,
		rng:    distuv.Bernoulli{P: 0.5, Src: src},
		n:      n,
	}, nil
}

// Sample takes a sample from within the space's bounds
func (m *MultiBinary) Sample() interface{} {
	data := make([]float64, m.n)
	for i := range data {
		data[i] = m.rng.Rand()
	}
	return mat.NewVecDense(m.n, data)
}

// Contains returns whether x is in the space. The argument x must be
// either a []float64 or a *mat.VecDense holding only 0 and 1.
func (m *MultiBinary) Contains(x interface{}) bool {
	data, ok := vecData(x)
	if !ok || len(data) != m.n {
		return false
	}

	for _, v := range data {
		if v != 0 && v != 1 {
			return false
		}
	}
	return true
}

// Len returns the number of components in the space
func (m *MultiBinary) Len() int {
	return m.n
}
