package symkernel

import "github.com/scigolib/symkernel/internal/numeric"

// Value is the kernel's numeric payload: a scalar int32/float64 or a
// rectangular n-dimensional array of one of those element kinds. It is
// an alias for internal/numeric.Value so callers never need to import
// the internal package.
type Value = numeric.Value

const (
	KindInt   = numeric.KindInt
	KindFloat = numeric.KindFloat
)

// IntValue builds a scalar integer value.
func IntValue(v int32) Value { return numeric.Int(v) }

// FloatValue builds a scalar float value.
func FloatValue(v float64) Value { return numeric.Float(v) }

// IntArrayValue builds a rectangular integer array value. len(data)
// must equal the product of shape.
func IntArrayValue(shape []uint32, data []int32) (Value, error) {
	return numeric.IntArray(shape, data)
}

// FloatArrayValue builds a rectangular float array value. len(data)
// must equal the product of shape.
func FloatArrayValue(shape []uint32, data []float64) (Value, error) {
	return numeric.FloatArray(shape, data)
}
