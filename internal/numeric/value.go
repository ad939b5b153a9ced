// Package numeric implements the kernel's numeric payload type (component
// A of the expression kernel): scalars and rectangular n-dimensional
// arrays of ints or floats, their arithmetic, and their binary codec.
package numeric

import (
	"fmt"

	"github.com/scigolib/symkernel/internal/kerrors"
)

// Kind distinguishes the two element types a Value may carry.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
)

// MaxShapeLength is the largest number of dimensions the wire format
// can represent (the shape length is packed into the 7 high bits of the
// leading byte).
const MaxShapeLength = 127

// Value is a tagged numeric payload: either a scalar int32/float64 or a
// rectangular n-dimensional array of one of those element kinds. A nil
// Shape denotes a scalar.
type Value struct {
	Kind   Kind
	Shape  []uint32
	Ints   []int32
	Floats []float64
}

// Int builds a scalar integer value.
func Int(v int32) Value {
	return Value{Kind: KindInt, Ints: []int32{v}}
}

// Float builds a scalar float value.
func Float(v float64) Value {
	return Value{Kind: KindFloat, Floats: []float64{v}}
}

// IntArray builds a rectangular integer array with the given shape.
// len(data) must equal the product of shape.
func IntArray(shape []uint32, data []int32) (Value, error) {
	if err := checkShape(shape, len(data)); err != nil {
		return Value{}, err
	}
	return Value{Kind: KindInt, Shape: shape, Ints: data}, nil
}

// FloatArray builds a rectangular float array with the given shape.
// len(data) must equal the product of shape.
func FloatArray(shape []uint32, data []float64) (Value, error) {
	if err := checkShape(shape, len(data)); err != nil {
		return Value{}, err
	}
	return Value{Kind: KindFloat, Shape: shape, Floats: data}, nil
}

func checkShape(shape []uint32, n int) error {
	if len(shape) > MaxShapeLength {
		return kerrors.Encode("too many dimensions in array (%d)", len(shape))
	}
	product, err := shapeProduct(shape)
	if err != nil {
		return err
	}
	if product != uint64(n) {
		return kerrors.Type("shape %v implies %d elements, got %d", shape, product, n)
	}
	return nil
}

func shapeProduct(shape []uint32) (uint64, error) {
	total := uint64(1)
	for i, d := range shape {
		dim := uint64(d)
		if dim != 0 && total > (^uint64(0))/dim {
			return 0, kerrors.Encode("shape product overflow at dimension %d", i)
		}
		total *= dim
	}
	return total, nil
}

// IsScalar reports whether v has no shape (a bare int32/float64).
func (v Value) IsScalar() bool {
	return v.Shape == nil
}

// Len returns the total element count.
func (v Value) Len() int {
	if v.Kind == KindInt {
		return len(v.Ints)
	}
	return len(v.Floats)
}

// ScalarInt returns the scalar's integer value; panics if not a scalar int.
func (v Value) ScalarInt() int32 {
	if !v.IsScalar() || v.Kind != KindInt {
		panic("numeric: ScalarInt called on non-scalar-int value")
	}
	return v.Ints[0]
}

// ScalarFloat returns the scalar's float value; panics if not a scalar float.
func (v Value) ScalarFloat() float64 {
	if !v.IsScalar() || v.Kind != KindFloat {
		panic("numeric: ScalarFloat called on non-scalar-float value")
	}
	return v.Floats[0]
}

// AsFloat64 returns the scalar's value widened to float64 regardless of
// its stored kind; panics if v is not a scalar.
func (v Value) AsFloat64() float64 {
	if !v.IsScalar() {
		panic("numeric: AsFloat64 called on non-scalar value")
	}
	if v.Kind == KindInt {
		return float64(v.Ints[0])
	}
	return v.Floats[0]
}

func sameShape(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Equal implements the value-equality rule used by the matcher: scalar
// equality for scalars, elementwise equality for arrays, and arrays of
// differing shape never match.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	if !sameShape(v.Shape, other.Shape) {
		return false
	}
	switch v.Kind {
	case KindInt:
		if len(v.Ints) != len(other.Ints) {
			return false
		}
		for i := range v.Ints {
			if v.Ints[i] != other.Ints[i] {
				return false
			}
		}
		return true
	default:
		if len(v.Floats) != len(other.Floats) {
			return false
		}
		for i := range v.Floats {
			if v.Floats[i] != other.Floats[i] {
				return false
			}
		}
		return true
	}
}

// String renders the value as a scalar or a compact shape+values summary.
func (v Value) String() string {
	if v.IsScalar() {
		if v.Kind == KindInt {
			return fmt.Sprintf("%d", v.Ints[0])
		}
		return fmt.Sprintf("%g", v.Floats[0])
	}
	if v.Kind == KindInt {
		return fmt.Sprintf("array%v%v", v.Shape, v.Ints)
	}
	return fmt.Sprintf("array%v%v", v.Shape, v.Floats)
}
