package symkernel

import (
	encbin "encoding/binary"
	"sort"

	"github.com/scigolib/symkernel/internal/numeric"
	"github.com/scigolib/symkernel/internal/wire"
)

// variableIndexBytes is the width of a variable-table index reference
// inside an encoded Variable node: at most 65535 distinct variables per
// tree.
const variableIndexBytes = 2

type variableEntry struct {
	identity []byte
	alias    string
	hasAlias bool
}

// Serialize encodes e into the kernel's wire format: a variable table
// (every distinct Variable identity appearing in e, sorted by
// identity, with its print alias if any) followed by the tree body,
// where each node is a one-byte tag ordinal plus its payload and
// Variable leaves reference the table by index instead of repeating
// their identity inline.
//
// Wildcard nodes have no wire ordinal and cannot be serialized.
func Serialize(e *Expr) ([]byte, error) {
	entries := collectVariables(e)

	lookup := make(map[string]int, len(entries))
	for i, ve := range entries {
		lookup[string(ve.identity)] = i
	}

	table, err := encodeVariableTable(entries)
	if err != nil {
		return nil, err
	}

	body, err := serializeNode(e, lookup)
	if err != nil {
		return nil, err
	}

	return append(table, body...), nil
}

// Deserialize decodes an Expr previously produced by Serialize,
// returning it along with the number of bytes consumed.
func Deserialize(data []byte) (*Expr, int, error) {
	entries, tableLen, err := decodeVariableTable(data)
	if err != nil {
		return nil, 0, err
	}

	variables := make([]*Expr, len(entries))
	for i, ve := range entries {
		alias := ""
		if ve.hasAlias {
			alias = ve.alias
		}
		variables[i] = NewVariable(ve.identity, alias)
	}

	e, bodyLen, err := deserializeNode(data[tableLen:], variables)
	if err != nil {
		return nil, 0, err
	}

	return e, tableLen + bodyLen, nil
}

func collectVariables(e *Expr) []variableEntry {
	seen := map[string]variableEntry{}
	var walk func(n *Expr)
	walk = func(n *Expr) {
		if n.tag == TagVariable {
			key := string(n.identity)
			if _, ok := seen[key]; !ok {
				seen[key] = variableEntry{identity: n.identity, alias: n.alias, hasAlias: n.alias != ""}
			}
			return
		}
		for _, t := range n.Terms() {
			walk(t)
		}
	}
	walk(e)

	out := make([]variableEntry, 0, len(seen))
	for _, ve := range seen {
		out = append(out, ve)
	}
	sort.Slice(out, func(i, j int) bool {
		return string(out[i].identity) < string(out[j].identity)
	})
	return out
}

func encodeVariableTable(entries []variableEntry) ([]byte, error) {
	if len(entries) > (1<<(variableIndexBytes*8) - 1) {
		return nil, encodeErrorf("too many variables to encode (%d)", len(entries))
	}

	out := make([]byte, variableIndexBytes)
	encbin.BigEndian.PutUint16(out, uint16(len(entries)))

	for _, ve := range entries {
		idBytes, err := wire.EncodeBytestring(ve.identity)
		if err != nil {
			return nil, err
		}
		out = append(out, idBytes...)

		aliasPayload := []byte(nil)
		if ve.hasAlias {
			aliasPayload = []byte(ve.alias)
		}
		aliasBytes, err := wire.EncodeBytestring(aliasPayload)
		if err != nil {
			return nil, err
		}
		out = append(out, aliasBytes...)
	}

	return out, nil
}

func decodeVariableTable(data []byte) ([]variableEntry, int, error) {
	if len(data) < variableIndexBytes {
		return nil, 0, decodeErrorf("truncated variable table header")
	}
	n := int(encbin.BigEndian.Uint16(data[:variableIndexBytes]))
	offset := variableIndexBytes

	entries := make([]variableEntry, n)
	for i := 0; i < n; i++ {
		identity, idLen, err := wire.DecodeBytestringWithSize(data[offset:])
		if err != nil {
			return nil, 0, err
		}
		offset += idLen

		aliasBytes, aliasLen, err := wire.DecodeBytestringWithSize(data[offset:])
		if err != nil {
			return nil, 0, err
		}
		offset += aliasLen

		entries[i] = variableEntry{
			identity: identity,
			alias:    string(aliasBytes),
			hasAlias: len(aliasBytes) > 0,
		}
	}

	return entries, offset, nil
}

func serializeNode(e *Expr, lookup map[string]int) ([]byte, error) {
	if e.tag == TagWildcard {
		return nil, encodeErrorf("cannot serialize an expression containing a wildcard")
	}

	out := []byte{byte(e.tag)}

	switch e.tag {
	case TagConstant:
		payload, err := numeric.Encode(e.value)
		if err != nil {
			return nil, err
		}
		return append(out, payload...), nil

	case TagVariable:
		idx, ok := lookup[string(e.identity)]
		if !ok {
			return nil, encodeErrorf("variable missing from table during serialization")
		}
		idxBytes := make([]byte, variableIndexBytes)
		encbin.BigEndian.PutUint16(idxBytes, uint16(idx))
		return append(out, idxBytes...), nil

	default:
		aBytes, err := serializeNode(e.a, lookup)
		if err != nil {
			return nil, err
		}
		out = append(out, aBytes...)
		if e.tag.arity() == 2 {
			bBytes, err := serializeNode(e.b, lookup)
			if err != nil {
				return nil, err
			}
			out = append(out, bBytes...)
		}
		return out, nil
	}
}

func deserializeNode(data []byte, variables []*Expr) (*Expr, int, error) {
	if len(data) < 1 {
		return nil, 0, decodeErrorf("truncated expression: missing tag byte")
	}

	tag, ok := tagFromOrdinal(data[0])
	if !ok {
		return nil, 0, decodeErrorf("unknown expression tag ordinal %d", data[0])
	}
	rest := data[1:]

	switch tag {
	case TagConstant:
		v, n, err := numeric.DecodeWithSize(rest)
		if err != nil {
			return nil, 0, err
		}
		return NewConstant(v), 1 + n, nil

	case TagVariable:
		if len(rest) < variableIndexBytes {
			return nil, 0, decodeErrorf("truncated variable reference")
		}
		idx := int(encbin.BigEndian.Uint16(rest[:variableIndexBytes]))
		if idx < 0 || idx >= len(variables) {
			return nil, 0, decodeErrorf("variable index %d out of range (table has %d entries)", idx, len(variables))
		}
		return variables[idx], 1 + variableIndexBytes, nil

	default:
		a, aLen, err := deserializeNode(rest, variables)
		if err != nil {
			return nil, 0, err
		}
		if tag.arity() == 1 {
			return unary(tag, a), 1 + aLen, nil
		}
		b, bLen, err := deserializeNode(rest[aLen:], variables)
		if err != nil {
			return nil, 0, err
		}
		return binary(tag, a, b), 1 + aLen + bLen, nil
	}
}
