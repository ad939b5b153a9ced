// Package kerrors defines the structural error kinds shared across the
// expression kernel. It has no dependency on the kernel's own types so
// that the numeric and wire codecs can return these errors without
// importing the root package.
package kerrors

import "fmt"

// Kind identifies which of the kernel's structural failure modes an
// Error represents. Kinds are not tied to any runtime's built-in
// exception vocabulary.
type Kind string

const (
	KindType              Kind = "type"
	KindNonDifferentiable Kind = "non_differentiable"
	KindEvaluation        Kind = "evaluation"
	KindSubstitution      Kind = "substitution"
	KindMatch             Kind = "match"
	KindEncode            Kind = "encode"
	KindDecode            Kind = "decode"
)

// Error is a structural kernel error: a Kind plus a message and an
// optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func New(kind Kind, format string, args ...interface{}) error {
	return newf(kind, format, args...)
}

// Wrap creates a structural error of the given kind around a cause.
func Wrap(kind Kind, context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: context, Err: cause}
}

func Type(format string, args ...interface{}) error {
	return newf(KindType, format, args...)
}

func NonDifferentiable(format string, args ...interface{}) error {
	return newf(KindNonDifferentiable, format, args...)
}

func Evaluation(format string, args ...interface{}) error {
	return newf(KindEvaluation, format, args...)
}

func Substitution(format string, args ...interface{}) error {
	return newf(KindSubstitution, format, args...)
}

func Match(format string, args ...interface{}) error {
	return newf(KindMatch, format, args...)
}

func Encode(format string, args ...interface{}) error {
	return newf(KindEncode, format, args...)
}

func Decode(format string, args ...interface{}) error {
	return newf(KindDecode, format, args...)
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if err == nil {
		return false
	}
	if ke, ok := err.(*Error); ok {
		e = ke
	} else {
		return false
	}
	return e.Kind == kind
}
