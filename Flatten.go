package gospaces

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FlatDim returns the length of the flat encoding of space: the number
// of choices for a Discrete, the number of elements for a Box,
// MultiBinary or (summing one-hot block lengths) MultiDiscrete, and the
// sum over sub-spaces for TupleSpace and DictSpace.
func FlatDim(space Space) (int, error) {
	switch s := space.(type) {
	case *Discrete:
		return s.n, nil

	case *Box:
		return s.low.Len(), nil

	case *MultiDiscrete:
		dim := 0
		for _, n := range s.nvec {
			dim += n
		}
		return dim, nil

	case *MultiBinary:
		return s.n, nil

	case *TupleSpace:
		return flatDimAll(s.spaces)

	case *DictSpace:
		return flatDimAll(s.spaces)

	default:
		return 0, fmt.Errorf("flatDim: %T: %w", space, ErrUnsupportedSpace)
	}
}

func flatDimAll(spaces []Space) (int, error) {
	dim := 0
	for _, space := range spaces {
		d, err := FlatDim(space)
		if err != nil {
			return 0, err
		}
		dim += d
	}
	return dim, nil
}

// FlattenSpace returns the one-dimensional Box that bounds every flat
// encoding Flatten can produce for space. Its length is FlatDim(space)
// and its width is the width Flatten encodes with: the space's own
// width for a single space, and the Promote of the sub-space widths
// for TupleSpace and DictSpace.
//
// FlattenSpace is idempotent: applied to its own result it returns an
// equal Box.
func FlattenSpace(space Space) (*Box, error) {
	switch s := space.(type) {
	case *Discrete:
		return indicatorBox(s.n, Int64)

	case *Box:
		return NewBox(s.Low(), s.High(), []int{s.low.Len()}, s.dtype)

	case *MultiDiscrete:
		dim := 0
		for _, n := range s.nvec {
			dim += n
		}
		return indicatorBox(dim, Int64)

	case *MultiBinary:
		return indicatorBox(s.n, Int8)

	case *TupleSpace:
		return flattenSpaceAll(s.spaces)

	case *DictSpace:
		return flattenSpaceAll(s.spaces)

	default:
		return nil, fmt.Errorf("flattenSpace: %T: %w", space,
			ErrUnsupportedSpace)
	}
}

// indicatorBox returns a [0, 1]^n Box of the given integer width, the
// bounding box of n concatenated one-hot indicators.
func indicatorBox(n int, dtype Dtype) (*Box, error) {
	high := make([]float64, n)
	for i := range high {
		high[i] = 1
	}
	return NewBox(mat.NewVecDense(n, nil), mat.NewVecDense(n, high),
		[]int{n}, dtype)
}

// flattenSpaceAll concatenates the flattened bounding boxes of the
// sub-spaces in order, promoting to the smallest common width.
func flattenSpaceAll(spaces []Space) (*Box, error) {
	var low, high []float64
	dtypes := make([]Dtype, 0, len(spaces))
	for _, space := range spaces {
		box, err := FlattenSpace(space)
		if err != nil {
			return nil, err
		}
		raw := box.low.RawVector().Data
		low = append(low, raw...)
		high = append(high, box.high.RawVector().Data...)
		dtypes = append(dtypes, box.dtype)
	}

	return NewBox(mat.NewVecDense(len(low), low),
		mat.NewVecDense(len(high), high), []int{len(low)},
		Promote(dtypes...))
}

// Flatten encodes a structured sample of space as a flat vector of
// length FlatDim(space). Discrete and MultiDiscrete values become
// one-hot blocks, Box and MultiBinary samples are copied through in
// row-major order, and composite samples are the concatenation of
// their flattened sub-samples in the space's fixed order. The vector's
// numeric width is FlattenSpace(space).Dtype().
//
// Flatten fails with ErrDomain if a value lies outside its space's
// declared range, and with ErrInvalidSample if the sample's concrete
// type or component count does not match the space. The sample is
// never mutated.
func Flatten(space Space, x interface{}) (*mat.VecDense, error) {
	dim, err := FlatDim(space)
	if err != nil {
		return nil, err
	}

	out := mat.NewVecDense(dim, nil)
	if err := flattenInto(space, x, out.RawVector().Data); err != nil {
		return nil, err
	}
	return out, nil
}

// flattenInto encodes x into dst, a zeroed slice of length
// FlatDim(space). Composites slice dst into one window per sub-space,
// so the whole encoding writes through a single allocation.
func flattenInto(space Space, x interface{}, dst []float64) error {
	switch s := space.(type) {
	case *Discrete:
		v, ok := x.(int)
		if !ok {
			return fmt.Errorf("flatten: Discrete sample must be an int, "+
				"got %T: %w", x, ErrInvalidSample)
		}
		if v < s.start || v >= s.start+s.n {
			return fmt.Errorf("flatten: Discrete value %d outside [%d, %d): "+
				"%w", v, s.start, s.start+s.n, ErrDomain)
		}
		dst[v-s.start] = 1
		return nil

	case *Box:
		data, ok := vecData(x)
		if !ok {
			return fmt.Errorf("flatten: Box sample must be a *mat.VecDense "+
				"or []float64, got %T: %w", x, ErrInvalidSample)
		}
		if len(data) != len(dst) {
			return fmt.Errorf("flatten: Box sample has %d elements, space "+
				"needs %d: %w", len(data), len(dst), ErrInvalidSample)
		}
		copy(dst, data)
		return nil

	case *MultiDiscrete:
		data, ok := vecData(x)
		if !ok {
			return fmt.Errorf("flatten: MultiDiscrete sample must be a "+
				"*mat.VecDense or []float64, got %T: %w", x, ErrInvalidSample)
		}
		if len(data) != len(s.nvec) {
			return fmt.Errorf("flatten: MultiDiscrete sample has %d "+
				"components, space needs %d: %w", len(data), len(s.nvec),
				ErrInvalidSample)
		}
		offset := 0
		for i, n := range s.nvec {
			v := int(data[i])
			if float64(v) != data[i] || v < 0 || v >= n {
				return fmt.Errorf("flatten: MultiDiscrete component %d is "+
					"%v, want an integer in [0, %d): %w", i, data[i], n,
					ErrDomain)
			}
			dst[offset+v] = 1
			offset += n
		}
		return nil

	case *MultiBinary:
		data, ok := vecData(x)
		if !ok {
			return fmt.Errorf("flatten: MultiBinary sample must be a "+
				"*mat.VecDense or []float64, got %T: %w", x, ErrInvalidSample)
		}
		if len(data) != s.n {
			return fmt.Errorf("flatten: MultiBinary sample has %d "+
				"components, space needs %d: %w", len(data), s.n,
				ErrInvalidSample)
		}
		for i, v := range data {
			if v != 0 && v != 1 {
				return fmt.Errorf("flatten: MultiBinary component %d is %v, "+
					"want 0 or 1: %w", i, v, ErrDomain)
			}
			dst[i] = v
		}
		return nil

	case *TupleSpace:
		xs, ok := x.([]interface{})
		if !ok {
			return fmt.Errorf("flatten: TupleSpace sample must be a "+
				"[]interface{}, got %T: %w", x, ErrInvalidSample)
		}
		if len(xs) != s.Len() {
			return fmt.Errorf("flatten: TupleSpace sample has %d elements, "+
				"space needs %d: %w", len(xs), s.Len(), ErrInvalidSample)
		}
		offset := 0
		for i, child := range s.spaces {
			dim, err := FlatDim(child)
			if err != nil {
				return err
			}
			if err := flattenInto(child, xs[i],
				dst[offset:offset+dim]); err != nil {
				return err
			}
			offset += dim
		}
		return nil

	case *DictSpace:
		xm, ok := x.(map[string]interface{})
		if !ok {
			return fmt.Errorf("flatten: DictSpace sample must be a "+
				"map[string]interface{}, got %T: %w", x, ErrInvalidSample)
		}
		offset := 0
		for i, key := range s.keys {
			val, ok := xm[key]
			if !ok {
				return fmt.Errorf("flatten: DictSpace sample is missing "+
					"key %q: %w", key, ErrInvalidSample)
			}
			child := s.spaces[i]
			dim, err := FlatDim(child)
			if err != nil {
				return err
			}
			if err := flattenInto(child, val,
				dst[offset:offset+dim]); err != nil {
				return err
			}
			offset += dim
		}
		return nil

	default:
		return fmt.Errorf("flatten: %T: %w", space, ErrUnsupportedSpace)
	}
}

// Unflatten decodes a flat vector produced by Flatten back into a
// structured sample of space, the exact inverse of the encoding. The
// decoded sub-samples are reconstructed in each sub-space's own
// declared width, not the promoted width of the flat vector.
//
// One-hot blocks decode by the index of the maximal element rather
// than by searching for an exact 1. The leniency is deliberate: a
// noisy vector, e.g. the output of a learned model, decodes to its
// best-matching choice instead of failing.
//
// Unflatten fails with ErrShapeMismatch if the vector's length does
// not equal FlatDim(space). The vector is never mutated.
func Unflatten(space Space, flat *mat.VecDense) (interface{}, error) {
	dim, err := FlatDim(space)
	if err != nil {
		return nil, err
	}
	if flat == nil || flat.Len() != dim {
		length := 0
		if flat != nil {
			length = flat.Len()
		}
		return nil, fmt.Errorf("unflatten: flat vector has length %d, "+
			"space needs %d: %w", length, dim, ErrShapeMismatch)
	}

	data, _ := vecData(flat)
	return unflattenFrom(space, data)
}

// unflattenFrom decodes the window of the flat vector belonging to
// space; len(flat) is FlatDim(space). Composites slice the window into
// one sub-window per sub-space at the same offsets flattenInto wrote.
func unflattenFrom(space Space, flat []float64) (interface{}, error) {
	switch s := space.(type) {
	case *Discrete:
		return s.start + floats.MaxIdx(flat), nil

	case *Box:
		out := make([]float64, len(flat))
		copy(out, flat)
		return mat.NewVecDense(len(out), out), nil

	case *MultiDiscrete:
		out := make([]float64, len(s.nvec))
		offset := 0
		for i, n := range s.nvec {
			out[i] = float64(floats.MaxIdx(flat[offset : offset+n]))
			offset += n
		}
		return mat.NewVecDense(len(out), out), nil

	case *MultiBinary:
		out := make([]float64, len(flat))
		copy(out, flat)
		return mat.NewVecDense(len(out), out), nil

	case *TupleSpace:
		out := make([]interface{}, s.Len())
		offset := 0
		for i, child := range s.spaces {
			dim, err := FlatDim(child)
			if err != nil {
				return nil, err
			}
			sub, err := unflattenFrom(child, flat[offset:offset+dim])
			if err != nil {
				return nil, err
			}
			out[i] = sub
			offset += dim
		}
		return out, nil

	case *DictSpace:
		out := make(map[string]interface{}, s.Len())
		offset := 0
		for i, key := range s.keys {
			child := s.spaces[i]
			dim, err := FlatDim(child)
			if err != nil {
				return nil, err
			}
			sub, err := unflattenFrom(child, flat[offset:offset+dim])
			if err != nil {
				return nil, err
			}
			out[key] = sub
			offset += dim
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unflatten: %T: %w", space,
			ErrUnsupportedSpace)
	}
}
