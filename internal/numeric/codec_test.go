package numeric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	arr, err := FloatArray([]uint32{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	intArr, err := IntArray([]uint32{3}, []int32{-1, 0, 1})
	require.NoError(t, err)

	tests := []Value{
		Int(42),
		Int(-7),
		Float(3.5),
		arr,
		intArr,
	}

	for _, v := range tests {
		encoded, err := Encode(v)
		require.NoError(t, err)

		decoded, n, err := DecodeWithSize(encoded)
		require.NoError(t, err)
		require.Equal(t, len(encoded), n)
		require.True(t, v.Equal(decoded))
	}
}

func TestDecodeWithSizeIgnoresTrailingBytes(t *testing.T) {
	encoded, err := Encode(Int(9))
	require.NoError(t, err)
	encoded = append(encoded, 0xFF, 0xFF)

	decoded, n, err := DecodeWithSize(encoded)
	require.NoError(t, err)
	require.Equal(t, int32(9), decoded.ScalarInt())
	require.Equal(t, len(encoded)-2, n)
}

func TestDecodeTruncated(t *testing.T) {
	_, _, err := DecodeWithSize([]byte{})
	require.Error(t, err)

	encoded, err := Encode(Int(9))
	require.NoError(t, err)
	_, _, err = DecodeWithSize(encoded[:len(encoded)-1])
	require.Error(t, err)
}
