package symkernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateConstant(t *testing.T) {
	v, err := Evaluate(c(42), Bindings{})
	require.NoError(t, err)
	require.Equal(t, int32(42), v.ScalarInt())
}

func TestEvaluateVariable(t *testing.T) {
	b := Bindings{}
	b.Set(x().Identity(), IntValue(9))

	v, err := Evaluate(x(), b)
	require.NoError(t, err)
	require.Equal(t, int32(9), v.ScalarInt())
}

func TestEvaluateUnboundVariableErrors(t *testing.T) {
	_, err := Evaluate(x(), Bindings{})
	require.Error(t, err)
	require.True(t, IsKind(err, KindEvaluation))
}

func TestEvaluateArithmetic(t *testing.T) {
	b := Bindings{}
	b.Set(x().Identity(), IntValue(3))
	b.Set(y().Identity(), IntValue(4))

	expr := Plus(Times(x(), x()), Times(y(), y()))
	v, err := Evaluate(expr, b)
	require.NoError(t, err)
	require.Equal(t, int32(25), v.ScalarInt())
}

func TestEvaluateTranscendentalIsFloat(t *testing.T) {
	v, err := Evaluate(ExpOf(c(0)), Bindings{})
	require.NoError(t, err)
	require.Equal(t, KindFloat, v.Kind)
	require.Equal(t, 1.0, v.AsFloat64())
}

func TestEvaluateWildcardErrors(t *testing.T) {
	_, err := Evaluate(Wild(1), Bindings{})
	require.Error(t, err)
}
