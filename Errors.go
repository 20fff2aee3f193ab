package gospaces

import "errors"

// Sentinel errors returned by the transform operations. Call sites wrap
// them with context via fmt.Errorf("...: %w", Err...), so callers match
// with errors.Is.
var (
	// ErrUnsupportedSpace is returned when a space kind outside the
	// closed set reaches a transform operation. This indicates a
	// missing dispatch branch, not a runtime condition to recover from.
	ErrUnsupportedSpace = errors.New("gospaces: unsupported space kind")

	// ErrDomain is returned by Flatten when a sample value violates
	// its space's declared range. Values are never silently clamped.
	ErrDomain = errors.New("gospaces: sample value out of range")

	// ErrShapeMismatch is returned by Unflatten when the flat vector's
	// length does not equal FlatDim of the space.
	ErrShapeMismatch = errors.New("gospaces: flat vector length mismatch")

	// ErrInvalidSample is returned by Flatten when a sample has the
	// wrong concrete type for its space, the wrong number of
	// components, or a missing DictSpace key.
	ErrInvalidSample = errors.New("gospaces: sample does not conform to space")
)
