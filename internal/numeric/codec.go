package numeric

import (
	"encoding/binary"
	"math"

	"github.com/scigolib/symkernel/internal/kerrors"
)

// Element widths, fixed by the wire format.
const (
	intElementWidth   = 4
	floatElementWidth = 8
)

// Encode writes v to its self-describing byte layout:
//
//	byte 0: (shape_length << 1) | kind_bit   kind_bit: 0=int, 1=float
//	bytes 1..1+4*shape_length: shape, big-endian uint32 dims
//	then shape_product * element_width data bytes, big-endian
//
// A scalar is encoded with shape_length == 0.
func Encode(v Value) ([]byte, error) {
	if len(v.Shape) > MaxShapeLength {
		return nil, kerrors.Encode("too many dimensions in array (%d)", len(v.Shape))
	}

	shapeLen := len(v.Shape)
	var kindBit byte
	var elemWidth int
	if v.Kind == KindFloat {
		kindBit = 1
		elemWidth = floatElementWidth
	} else {
		elemWidth = intElementWidth
	}

	n := v.Len()
	out := make([]byte, 0, 1+4*shapeLen+elemWidth*n)
	out = append(out, byte(shapeLen<<1)|kindBit)

	for _, dim := range v.Shape {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], dim)
		out = append(out, buf[:]...)
	}

	if v.Kind == KindInt {
		for _, x := range v.Ints {
			var buf [4]byte
			binary.BigEndian.PutUint32(buf[:], uint32(x))
			out = append(out, buf[:]...)
		}
	} else {
		for _, x := range v.Floats {
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], math.Float64bits(x))
			out = append(out, buf[:]...)
		}
	}

	return out, nil
}

// DecodeWithSize reads a Value from the front of data, returning it
// along with the number of bytes consumed. A scalar's payload is
// unwrapped to a plain Value carrying no Shape (not a 0-d array).
func DecodeWithSize(data []byte) (Value, int, error) {
	if len(data) < 1 {
		return Value{}, 0, kerrors.Decode("numeric payload too short")
	}

	head := data[0]
	kindBit := head & 1
	shapeLen := int(head >> 1)

	kind := KindInt
	elemWidth := intElementWidth
	if kindBit == 1 {
		kind = KindFloat
		elemWidth = floatElementWidth
	}

	offset := 1
	if len(data) < offset+4*shapeLen {
		return Value{}, 0, kerrors.Decode("numeric payload truncated (shape)")
	}

	shape := make([]uint32, shapeLen)
	for i := 0; i < shapeLen; i++ {
		shape[i] = binary.BigEndian.Uint32(data[offset : offset+4])
		offset += 4
	}

	n, err := shapeProduct(shape)
	if err != nil {
		return Value{}, 0, err
	}

	dataEnd := offset + elemWidth*int(n)
	if len(data) < dataEnd {
		return Value{}, 0, kerrors.Decode("numeric payload truncated (data)")
	}

	if kind == KindInt {
		ints := make([]int32, n)
		for i := range ints {
			start := offset + i*4
			ints[i] = int32(binary.BigEndian.Uint32(data[start : start+4]))
		}
		if shapeLen == 0 {
			return Int(ints[0]), dataEnd, nil
		}
		v, err := IntArray(shape, ints)
		return v, dataEnd, err
	}

	floats := make([]float64, n)
	for i := range floats {
		start := offset + i*8
		floats[i] = math.Float64frombits(binary.BigEndian.Uint64(data[start : start+8]))
	}
	if shapeLen == 0 {
		return Float(floats[0]), dataEnd, nil
	}
	v, err := FloatArray(shape, floats)
	return v, dataEnd, err
}
