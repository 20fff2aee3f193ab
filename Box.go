package gospaces

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// Box represents a (possibly unbounded) box in R^n. Specifically, a
// Box represents the Cartesian product of n closed intervals. Each
// interval has the form of one of [a, b], (-∞, b], [a, ∞), or
// (-∞, ∞) for a, b ϵ R. Unbounded ends are only legal for
// floating-point widths.
//
// A Box may declare a multi-dimensional shape; its bounds and samples
// are nevertheless held as row-major *mat.VecDense values of length
// prod(shape), with the shape carried as metadata on the space.
type Box struct {
	rand.Source
	low, high                  *mat.VecDense
	shape                      []int
	dtype                      Dtype
	boundedBelow, boundedAbove []bool
	rng                        *distmv.Uniform // only when fully bounded and floating
}

// NewBox returns a new Box with the given elementwise bounds, shape
// and numeric width. The bounds must be in row-major order and of
// length equal to the product of shape.
func NewBox(low, high *mat.VecDense, shape []int, dtype Dtype) (*Box, error) {
	if low == nil || high == nil {
		return nil, fmt.Errorf("newBox: nil bounds")
	}
	if low.Len() != high.Len() {
		return nil, fmt.Errorf("newBox: low has length %d but high has "+
			"length %d", low.Len(), high.Len())
	}
	if n := prodShape(shape); n != low.Len() {
		return nil, fmt.Errorf("newBox: shape %v needs %d bounds, got %d",
			shape, n, low.Len())
	}

	n := low.Len()
	goLow := make([]float64, n)
	goHigh := make([]float64, n)
	boundedBelow := make([]bool, n)
	boundedAbove := make([]bool, n)
	bounded := true
	for i := 0; i < n; i++ {
		goLow[i] = low.AtVec(i)
		goHigh[i] = high.AtVec(i)
		if math.IsNaN(goLow[i]) || math.IsNaN(goHigh[i]) {
			return nil, fmt.Errorf("newBox: NaN bound at index %d", i)
		}
		if goLow[i] > goHigh[i] {
			return nil, fmt.Errorf("newBox: low %v > high %v at index %d",
				goLow[i], goHigh[i], i)
		}
		boundedBelow[i] = !math.IsInf(goLow[i], -1)
		boundedAbove[i] = !math.IsInf(goHigh[i], 1)
		if !boundedBelow[i] || !boundedAbove[i] {
			if !dtype.IsFloat() {
				return nil, fmt.Errorf("newBox: unbounded interval at index "+
					"%d is illegal for integer width %v", i, dtype)
			}
			bounded = false
		}
	}

	src := rand.NewSource(uint64(time.Now().UnixNano()))
	b := &Box{
		Source:       src,
		low:          mat.NewVecDense(n, goLow),
		high:         mat.NewVecDense(n, goHigh),
		shape:        append([]int(nil), shape...),
		dtype:        dtype,
		boundedBelow: boundedBelow,
		boundedAbove: boundedAbove,
	}

	if bounded && dtype.IsFloat() {
		bounds := make([]r1.Interval, n)
		for i := range bounds {
			bounds[i] = r1.Interval{Min: goLow[i], Max: goHigh[i]}
		}
		b.rng = distmv.NewUniform(bounds, src)
	}
	return b, nil
}

// Sample takes a sample from within the space's bounds. Doubly
// unbounded elements are drawn from a standard normal and half-bounded
// elements from an exponential offset of the finite bound.
func (b *Box) Sample() interface{} {
	n := b.low.Len()
	if b.rng != nil {
		sample := b.rng.Rand(nil)
		return mat.NewVecDense(n, sample)
	}

	data := make([]float64, n)
	for i := range data {
		lo, hi := b.low.AtVec(i), b.high.AtVec(i)
		switch {
		case b.boundedBelow[i] && b.boundedAbove[i]:
			if b.dtype.IsFloat() {
				data[i] = distuv.Uniform{Min: lo, Max: hi, Src: b.Source}.Rand()
			} else {
				v := math.Floor(distuv.Uniform{Min: lo, Max: hi + 1,
					Src: b.Source}.Rand())
				data[i] = math.Min(v, hi)
			}
		case b.boundedBelow[i]:
			data[i] = lo + distuv.Exponential{Rate: 1, Src: b.Source}.Rand()
		case b.boundedAbove[i]:
			data[i] = hi - distuv.Exponential{Rate: 1, Src: b.Source}.Rand()
		default:
			data[i] = distuv.Normal{Mu: 0, Sigma: 1, Src: b.Source}.Rand()
		}
	}
	return mat.NewVecDense(n, data)
}

// Contains returns whether x is in the space. The argument x must be
// either a []float64 or a *mat.VecDense, in row-major order for
// multi-dimensional shapes.
func (b *Box) Contains(x interface{}) bool {
	data, ok := vecData(x)
	if !ok || len(data) != b.low.Len() {
		return false
	}

	for i, v := range data {
		if math.IsNaN(v) {
			return false
		}
		if v < b.low.AtVec(i) || v > b.high.AtVec(i) {
			return false
		}
		if !b.dtype.IsFloat() && math.Trunc(v) != v {
			return false
		}
	}
	return true
}

// Low returns a copy of the lower bounds of the space
func (b *Box) Low() *mat.VecDense {
	return mat.VecDenseCopyOf(b.low)
}

// High returns a copy of the upper bounds of the space
func (b *Box) High() *mat.VecDense {
	return mat.VecDenseCopyOf(b.high)
}

// Shape returns the declared shape of the space's samples
func (b *Box) Shape() []int {
	return append([]int(nil), b.shape...)
}

// Dtype returns the numeric width of the space's samples
func (b *Box) Dtype() Dtype {
	return b.dtype
}

// BoundedBelow returns whether each interval of the space is bounded
// below
func (b *Box) BoundedBelow() []bool {
	return append([]bool(nil), b.boundedBelow...)
}

// BoundedAbove returns whether each interval of the space is bounded
// above
func (b *Box) BoundedAbove() []bool {
	return append([]bool(nil), b.boundedAbove...)
}

// prodShape returns the number of elements a shape holds. A shape must
// have at least one dimension and no dimension smaller than one; an
// illegal shape yields 0 so that constructors reject it against the
// bounds length.
func prodShape(shape []int) int {
	if len(shape) == 0 {
		return 0
	}
	n := 1
	for _, dim := range shape {
		if dim < 1 {
			return 0
		}
		n *= dim
	}
	return n
}

// vecData extracts the backing values of a vector-valued sample, which
// may be given as a *mat.VecDense or a []float64.
func vecData(x interface{}) ([]float64, bool) {
	switch v := x.(type) {
	case *mat.VecDense:
		raw := v.RawVector()
		if raw.Inc == 1 {
			return raw.Data, true
		}
		out := make([]float64, v.Len())
		for i := range out {
			out[i] = v.AtVec(i)
		}
		return out, true
	case []float64:
		return v, true
	}
	return nil, false
}
