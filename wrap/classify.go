package wrap

import "strings"

// Category is the wrapping strategy for one raw parameter.
type Category int

const (
	// CategoryScalar is a dimension, stride, or flag argument: the
	// pointer indirection is dropped and the value passed directly.
	CategoryScalar Category = iota
	// CategoryArray is a matrix, vector, or workspace argument: the
	// pointer becomes a slice.
	CategoryArray
	// CategoryStatus is the error-code output argument: the pointer
	// becomes *int32 regardless of the declared pointee.
	CategoryStatus
)

func (c Category) String() string {
	switch c {
	case CategoryScalar:
		return "scalar"
	case CategoryArray:
		return "array"
	case CategoryStatus:
		return "status"
	}
	return "unknown"
}

// Classify maps a raw parameter name to its category. The four array
// names are a closed LAPACK convention; matching is case-insensitive.
// This table is the single source of truth for both Signature and Call,
// which keeps the two transformations inverse by construction.
func Classify(name string) Category {
	switch strings.ToLower(name) {
	case "info":
		return CategoryStatus
	case "a", "b", "ipiv", "work":
		return CategoryArray
	default:
		return CategoryScalar
	}
}
