package numeric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryOpsScalar(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Value) (Value, error)
		a, b Value
		want Value
	}{
		{"add ints stays int", Add, Int(2), Int(3), Int(5)},
		{"sub ints stays int", Sub, Int(5), Int(2), Int(3)},
		{"mul ints stays int", Mul, Int(2), Int(3), Int(6)},
		{"div always float", Div, Int(6), Int(3), Float(2)},
		{"pow always float", Pow, Int(2), Int(3), Float(8)},
		{"mod ints stays int", Mod, Int(7), Int(3), Int(1)},
		{"add promotes to float when either is float", Add, Int(2), Float(0.5), Float(2.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(tt.a, tt.b)
			require.NoError(t, err)
			require.True(t, tt.want.Equal(got), "want %v got %v", tt.want, got)
		})
	}
}

func TestUnaryOps(t *testing.T) {
	tests := []struct {
		name string
		op   func(a Value) (Value, error)
		a    Value
		want Value
	}{
		{"neg preserves int", Neg, Int(4), Int(-4)},
		{"abs preserves int", AbsOf, Int(-4), Int(4)},
		{"sign preserves int", SignOf, Int(-9), Int(-1)},
		{"exp always float", ExpOf, Int(0), Float(1)},
		{"log always float", LogOf, Int(1), Float(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(tt.a)
			require.NoError(t, err)
			require.True(t, tt.want.Equal(got), "want %v got %v", tt.want, got)
		})
	}
}

func TestBroadcastScalarOverArray(t *testing.T) {
	arr, err := IntArray([]uint32{3}, []int32{1, 2, 3})
	require.NoError(t, err)

	got, err := Add(arr, Int(10))
	require.NoError(t, err)

	want, err := IntArray([]uint32{3}, []int32{11, 12, 13})
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestShapeMismatchErrors(t *testing.T) {
	a, err := IntArray([]uint32{2}, []int32{1, 2})
	require.NoError(t, err)
	b, err := IntArray([]uint32{3}, []int32{1, 2, 3})
	require.NoError(t, err)

	_, err = Add(a, b)
	require.Error(t, err)
}
