package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBytestringRoundTrip(t *testing.T) {
	tests := [][]byte{
		nil,
		{},
		[]byte("hello"),
		make([]byte, 1000),
	}

	for _, data := range tests {
		encoded, err := EncodeBytestring(data)
		require.NoError(t, err)
		require.Len(t, encoded, LengthBytes+len(data))

		decoded, n, err := DecodeBytestringWithSize(encoded)
		require.NoError(t, err)
		require.Equal(t, len(encoded), n)
		require.Equal(t, len(data), len(decoded))
	}
}

func TestDecodeBytestringWithSizeIgnoresTrailingBytes(t *testing.T) {
	encoded, err := EncodeBytestring([]byte("abc"))
	require.NoError(t, err)
	encoded = append(encoded, []byte("trailing")...)

	decoded, n, err := DecodeBytestringWithSize(encoded)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), decoded)
	require.Equal(t, LengthBytes+3, n)
}

func TestDecodeBytestringTruncated(t *testing.T) {
	_, _, err := DecodeBytestringWithSize([]byte{0, 0})
	require.Error(t, err)

	_, _, err = DecodeBytestringWithSize([]byte{0, 0, 0, 5, 'a'})
	require.Error(t, err)
}
