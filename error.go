package plain

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the error type for every failure this package reports.
//
// Exactly one of the two variants holds: Unrepresentable marks a value whose
// shape has no plain string form at all, and Message carries the description
// of a value-level failure (a parse error, an unknown enum variant, a bad
// unmarshal target).
type Error struct {
	// Unrepresentable reports that the value's shape cannot be rendered as
	// a plain string, independent of the value itself.
	Unrepresentable bool

	// Message describes the failure when Unrepresentable is false.
	Message string

	cause error
}

// ErrUnrepresentable matches, via errors.Is, every error returned for a value
// whose shape has no plain string form.
var ErrUnrepresentable = &Error{Unrepresentable: true}

func (e *Error) description() string {
	if e.Unrepresentable {
		return "value cannot be serialized to a plain value"
	}
	return e.Message
}

func (e *Error) Error() string {
	return "plain serialization error: " + e.description()
}

func (e *Error) Is(target error) bool {
	return target == ErrUnrepresentable && e.Unrepresentable
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Errorf builds a message error. Generated MarshalText methods use it to
// report in-memory values that are not declared variants.
func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// UnknownVariantError reports input that matches no variant of an enumeration.
//
// The message format is a compatibility contract: callers pattern-match on it.
// Two variants render as
//
//	unknown variant `whatever`, expected `FooBarBaz` or `BlahBlah`
//
// one renders as "expected `A`", and three or more as a comma-joined list
// ending in "or". The variant names must be given in declaration order, in
// their serialized spelling.
func UnknownVariantError(got string, want ...string) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "unknown variant `%s`", got)
	switch len(want) {
	case 0:
		b.WriteString(", there are no variants")
	case 1:
		fmt.Fprintf(&b, ", expected `%s`", want[0])
	case 2:
		fmt.Fprintf(&b, ", expected `%s` or `%s`", want[0], want[1])
	default:
		b.WriteString(", expected ")
		for i, name := range want[:len(want)-1] {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "`%s`", name)
		}
		fmt.Fprintf(&b, " or `%s`", want[len(want)-1])
	}
	return &Error{Message: b.String()}
}

// invalidValue reports text that failed to parse as what the target expected.
func invalidValue(text, expected string, cause error) *Error {
	return &Error{
		Message: fmt.Sprintf("invalid value `%s`, expected %s", text, expected),
		cause:   cause,
	}
}

// adoptErr passes a caller-supplied *Error through untouched and wraps any
// other error so the package's error contract holds across custom
// TextMarshaler and TextUnmarshaler implementations.
func adoptErr(err error) *Error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}
	return &Error{Message: err.Error(), cause: err}
}
