package symkernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubstituteRewritesMatch(t *testing.T) {
	source := Plus(Wild(1), NewConstant(IntValue(0)))
	target := Wild(1)

	result, err := Substitute(Plus(x(), NewConstant(IntValue(0))), source, target)
	require.NoError(t, err)
	require.True(t, result.FullIdentity(x()))
}

func TestSubstituteRewritesNestedOccurrence(t *testing.T) {
	source := Plus(Wild(1), NewConstant(IntValue(0)))
	target := Wild(1)

	tree := Times(Plus(x(), NewConstant(IntValue(0))), y())
	result, err := Substitute(tree, source, target)
	require.NoError(t, err)
	require.True(t, result.FullIdentity(Times(x(), y())))
}

func TestSubstituteLeavesNonMatchingTreeUnchanged(t *testing.T) {
	source := Plus(Wild(1), NewConstant(IntValue(0)))
	target := Wild(1)

	tree := Times(x(), y())
	result, err := Substitute(tree, source, target)
	require.NoError(t, err)
	require.True(t, result.FullIdentity(tree))
}

func TestSubstituteRejectsUnboundTargetWildcard(t *testing.T) {
	source := Wild(1)
	target := Plus(Wild(1), Wild(2))

	_, err := Substitute(x(), source, target)
	require.Error(t, err)
	require.True(t, IsKind(err, KindSubstitution))
}

func TestSubstituteRejectsWildcardInRoot(t *testing.T) {
	_, err := Substitute(Wild(9), NewConstant(IntValue(0)), NewConstant(IntValue(1)))
	require.Error(t, err)
	require.True(t, IsKind(err, KindSubstitution))
}
