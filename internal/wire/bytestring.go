// Package wire implements the kernel's bytestring codec (component B):
// length-prefixed opaque byte blobs, the building block the expression
// codec (component I) uses for variable identities and aliases.
package wire

import (
	"encoding/binary"
	"math"

	"github.com/scigolib/symkernel/internal/kerrors"
)

// LengthBytes is the width of the big-endian length prefix.
const LengthBytes = 4

// MaxLength is the largest payload EncodeBytestring will accept.
const MaxLength = math.MaxUint32

// EncodeBytestring writes a 4-byte big-endian length prefix followed by
// data itself.
func EncodeBytestring(data []byte) ([]byte, error) {
	if uint64(len(data)) > MaxLength {
		return nil, kerrors.Encode("bytestring too long to encode (length=%d, limit=%d)", len(data), MaxLength)
	}

	out := make([]byte, LengthBytes+len(data))
	binary.BigEndian.PutUint32(out, uint32(len(data)))
	copy(out[LengthBytes:], data)
	return out, nil
}

// DecodeBytestringWithSize reads a length-prefixed payload from the
// front of data and returns it along with the total number of bytes
// consumed (prefix + payload). Any trailing bytes beyond the payload
// are ignored.
func DecodeBytestringWithSize(data []byte) ([]byte, int, error) {
	if len(data) < LengthBytes {
		return nil, 0, kerrors.Decode("encoded bytestring too short (need %d byte length prefix)", LengthBytes)
	}

	length := binary.BigEndian.Uint32(data[:LengthBytes])
	total := LengthBytes + int(length)
	if len(data) < total {
		return nil, 0, kerrors.Decode("encoded bytestring truncated (want %d bytes, have %d)", total, len(data))
	}

	return data[LengthBytes:total], total, nil
}
