package symkernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchBasicWildcard(t *testing.T) {
	pattern := Plus(Wild(1), NewConstant(IntValue(0)))
	expr := Plus(x(), NewConstant(IntValue(0)))

	binding, ok, err := Match(pattern, expr)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, binding[1].FullIdentity(x()))
}

func TestMatchRepeatedWildcardRequiresIdenticalBinding(t *testing.T) {
	pattern := Plus(Wild(1), Wild(1))

	_, ok, err := Match(pattern, Plus(x(), x()))
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = Match(pattern, Plus(x(), y()))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMatchFailsOnDifferentHead(t *testing.T) {
	pattern := Plus(Wild(1), Wild(2))
	_, ok, err := Match(pattern, Times(x(), y()))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMatchConstantValue(t *testing.T) {
	pattern := NewConstant(IntValue(5))
	_, ok, err := Match(pattern, NewConstant(IntValue(5)))
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = Match(pattern, NewConstant(IntValue(6)))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMatchVariableIdentity(t *testing.T) {
	pattern := x()
	_, ok, err := Match(pattern, x())
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = Match(pattern, y())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMatchRejectsWildcardInExpr(t *testing.T) {
	_, _, err := Match(x(), Wild(1))
	require.Error(t, err)
	require.True(t, IsKind(err, KindMatch))
}
