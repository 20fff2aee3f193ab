package gospaces

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Discrete represents a space of n consecutive integers
// (start, start+1, ..., start+n-1). Its samples are of type int, and
// its flat encoding is a length-n one-hot vector of width Int64.
type Discrete struct {
	rand.Source
	rng      distuv.Categorical
	n, start int
}

// NewDiscrete returns a new Discrete space with n choices, the first
// of which is start.
func NewDiscrete(n, start int) (*Discrete, error) {
	if n < 1 {
		return nil, fmt.Errorf("newDiscrete: n must be positive, got %d", n)
	}

	src := rand.NewSource(uint64(time.Now().UnixNano()))
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0
	}

	return &Discrete{
		Source: src,
		rng:    distuv.NewCategorical(weights, src),
		n:      n,
		start:  start,
	}, nil
}

// Sample takes a sample from within the space's bounds
func (d *Discrete) Sample() interface{} {
	return d.start + int(d.rng.Rand())
}

// Contains returns whether x is in the space. The argument x must be
// an int.
func (d *Discrete) Contains(x interface{}) bool {
	v, ok := x.(int)
	if !ok {
		return false
	}
	return v >= d.start && v < d.start+d.n
}

// N returns the number of choices in the space
func (d *Discrete) N() int {
	return d.n
}

// Start returns the first valid choice in the space
func (d *Discrete) Start() int {
	return d.start
}
