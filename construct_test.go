package symkernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func x() *Expr { return NewVariable([]byte("x"), "x") }
func y() *Expr { return NewVariable([]byte("y"), "y") }

func TestNumCoercion(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"int", 3, "3"},
		{"float", 2.5, "2.5"},
		{"expr passthrough", x(), "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Num(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, e.String())
		})
	}
}

func TestNumRejectsUnknownType(t *testing.T) {
	_, err := Num(struct{}{})
	require.Error(t, err)
	require.True(t, IsKind(err, KindType))
}

func TestFluentCombinators(t *testing.T) {
	sum, err := x().Add(1)
	require.NoError(t, err)
	require.Equal(t, "(x + 1)", sum.String())

	prod, err := x().Mul(y())
	require.NoError(t, err)
	require.Equal(t, "(x * y)", prod.String())

	require.Equal(t, "-x", x().Negate().String())
}

func TestVariableIdentitySurvivesCopy(t *testing.T) {
	v := NewVariable([]byte{1, 2, 3}, "v")
	require.Equal(t, []byte{1, 2, 3}, v.Identity())
	require.Equal(t, "v", v.Alias())
}
