package gospaces

// Dtype is the declared numeric width of the values a space holds.
// Values are stored as float64 throughout this package (the backing
// type of *mat.VecDense); a Dtype records the width those values must
// remain losslessly representable in, so that the flat encoding of a
// space can be handed to consumers that allocate real typed storage.
type Dtype uint8

const (
	Int8 Dtype = iota
	Int16
	Int32
	Int64
	Float16
	Float32
	Float64
)

// IsFloat returns whether d is a floating-point width.
func (d Dtype) IsFloat() bool {
	return d == Float16 || d == Float32 || d == Float64
}

// Bits returns the storage width of d in bits.
func (d Dtype) Bits() int {
	switch d {
	case Int8:
		return 8
	case Int16, Float16:
		return 16
	case Int32, Float32:
		return 32
	default:
		return 64
	}
}

func (d Dtype) String() string {
	switch d {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	default:
		return "float64"
	}
}

// floatFor returns the narrowest floating-point width whose mantissa
// can hold every value of the integer width d without precision loss.
func floatFor(d Dtype) Dtype {
	switch d {
	case Int8:
		return Float16
	case Int16:
		return Float32
	default:
		return Float64
	}
}

// Promote returns the smallest Dtype capable of losslessly representing
// values of every argument width. This is the rule used when the flat
// encodings of heterogeneous sub-spaces are concatenated: among purely
// integer widths the widest integer wins; as soon as a floating width
// participates the result is floating, and wide integers drag the
// result up to a float wide enough to hold them exactly.
//
// Promote of no widths returns Float64.
func Promote(dtypes ...Dtype) Dtype {
	if len(dtypes) == 0 {
		return Float64
	}

	var widestInt, widestFloat Dtype
	var hasInt, hasFloat bool
	for _, d := range dtypes {
		if d.IsFloat() {
			if !hasFloat || d.Bits() > widestFloat.Bits() {
				widestFloat = d
			}
			hasFloat = true
		} else {
			if !hasInt || d.Bits() > widestInt.Bits() {
				widestInt = d
			}
			hasInt = true
		}
	}

	switch {
	case !hasFloat:
		return widestInt
	case !hasInt:
		return widestFloat
	default:
		if need := floatFor(widestInt); need.Bits() > widestFloat.Bits() {
			return need
		}
		return widestFloat
	}
}
