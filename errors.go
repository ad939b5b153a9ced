package symkernel

import "github.com/scigolib/symkernel/internal/kerrors"

// Error is a structural kernel error, carrying a Kind that callers can
// switch on instead of relying on sentinel values or type assertions
// per error site.
type Error = kerrors.Error

// Error kinds, re-exported from internal/kerrors so callers never need
// to import it directly.
const (
	KindType              = kerrors.KindType
	KindNonDifferentiable = kerrors.KindNonDifferentiable
	KindEvaluation        = kerrors.KindEvaluation
	KindSubstitution      = kerrors.KindSubstitution
	KindMatch             = kerrors.KindMatch
	KindEncode            = kerrors.KindEncode
	KindDecode            = kerrors.KindDecode
)

func typeErrorf(format string, args ...interface{}) error {
	return kerrors.Type(format, args...)
}

func nonDifferentiableErrorf(format string, args ...interface{}) error {
	return kerrors.NonDifferentiable(format, args...)
}

func evaluationErrorf(format string, args ...interface{}) error {
	return kerrors.Evaluation(format, args...)
}

func substitutionErrorf(format string, args ...interface{}) error {
	return kerrors.Substitution(format, args...)
}

func matchErrorf(format string, args ...interface{}) error {
	return kerrors.Match(format, args...)
}

func decodeErrorf(format string, args ...interface{}) error {
	return kerrors.Decode(format, args...)
}

func encodeErrorf(format string, args ...interface{}) error {
	return kerrors.Encode(format, args...)
}

// IsKind reports whether err is a kernel *Error of the given kind.
func IsKind(err error, kind kerrors.Kind) bool {
	return kerrors.Is(err, kind)
}
