package numeric

import (
	"math"

	"github.com/scigolib/symkernel/internal/kerrors"
)

// broadcastShape returns the shape two operands must share after
// broadcasting: a scalar paired with anything takes the other's shape,
// two arrays must already match (elementwise only — no numpy-style
// dimension stretching beyond scalar broadcast).
func broadcastShape(a, b Value) ([]uint32, error) {
	switch {
	case a.IsScalar() && b.IsScalar():
		return nil, nil
	case a.IsScalar():
		return b.Shape, nil
	case b.IsScalar():
		return a.Shape, nil
	default:
		if !sameShape(a.Shape, b.Shape) {
			return nil, kerrors.Evaluation("shape mismatch: %v vs %v", a.Shape, b.Shape)
		}
		return a.Shape, nil
	}
}

// elementwise applies op to every pairing of a and b under the
// broadcast rule above, promoting to float64 whenever either operand
// is a float or alwaysFloat is set (used for true division, power,
// and the transcendental unary ops).
func elementwise(a, b Value, alwaysFloat bool, op func(x, y float64) float64) (Value, error) {
	shape, err := broadcastShape(a, b)
	if err != nil {
		return Value{}, err
	}

	bothInt := a.Kind == KindInt && b.Kind == KindInt && !alwaysFloat

	n := 1
	for _, d := range shape {
		n *= int(d)
	}
	if shape == nil {
		n = 1
	}

	getA := scalarOrIndex(a)
	getB := scalarOrIndex(b)

	if bothInt {
		ints := make([]int32, n)
		for i := 0; i < n; i++ {
			ints[i] = int32(op(getA(i), getB(i)))
		}
		if shape == nil {
			return Int(ints[0]), nil
		}
		return IntArray(shape, ints)
	}

	floats := make([]float64, n)
	for i := 0; i < n; i++ {
		floats[i] = op(getA(i), getB(i))
	}
	if shape == nil {
		return Float(floats[0]), nil
	}
	return FloatArray(shape, floats)
}

func scalarOrIndex(v Value) func(i int) float64 {
	if v.IsScalar() {
		x := v.AsFloat64()
		return func(int) float64 { return x }
	}
	if v.Kind == KindInt {
		return func(i int) float64 { return float64(v.Ints[i]) }
	}
	return func(i int) float64 { return v.Floats[i] }
}

func Add(a, b Value) (Value, error) {
	return elementwise(a, b, false, func(x, y float64) float64 { return x + y })
}

func Sub(a, b Value) (Value, error) {
	return elementwise(a, b, false, func(x, y float64) float64 { return x - y })
}

func Mul(a, b Value) (Value, error) {
	return elementwise(a, b, false, func(x, y float64) float64 { return x * y })
}

func Div(a, b Value) (Value, error) {
	return elementwise(a, b, true, func(x, y float64) float64 { return x / y })
}

func Mod(a, b Value) (Value, error) {
	return elementwise(a, b, false, func(x, y float64) float64 { return math.Mod(x, y) })
}

func Pow(a, b Value) (Value, error) {
	return elementwise(a, b, true, func(x, y float64) float64 { return math.Pow(x, y) })
}

func unary(a Value, alwaysFloat bool, op func(x float64) float64) (Value, error) {
	n := a.Len()
	bothInt := a.Kind == KindInt && !alwaysFloat

	get := scalarOrIndex(a)

	if bothInt {
		ints := make([]int32, n)
		for i := 0; i < n; i++ {
			ints[i] = int32(op(get(i)))
		}
		if a.IsScalar() {
			return Int(ints[0]), nil
		}
		return IntArray(a.Shape, ints)
	}

	floats := make([]float64, n)
	for i := 0; i < n; i++ {
		floats[i] = op(get(i))
	}
	if a.IsScalar() {
		return Float(floats[0]), nil
	}
	return FloatArray(a.Shape, floats)
}

func Neg(a Value) (Value, error) {
	return unary(a, false, func(x float64) float64 { return -x })
}

func ExpOf(a Value) (Value, error) {
	return unary(a, true, math.Exp)
}

func LogOf(a Value) (Value, error) {
	return unary(a, true, math.Log)
}

func CosOf(a Value) (Value, error) {
	return unary(a, true, math.Cos)
}

func SinOf(a Value) (Value, error) {
	return unary(a, true, math.Sin)
}

func AbsOf(a Value) (Value, error) {
	return unary(a, false, math.Abs)
}

func SignOf(a Value) (Value, error) {
	return unary(a, false, func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	})
}
