// SPDX-License-Identifier: MIT

package num

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "num: ..." so it reads well when wrapped by
// the matrix and polynomial packages. Match with errors.Is.
var (
	// ErrConversion reports that a value cannot be represented in the target
	// numeric type (overflow, fractional part, NaN/Inf into an integer, or an
	// integer that does not survive the round trip through a float).
	ErrConversion = errors.New("num: value not representable in target type")

	// ErrDomain reports an argument outside a function's domain, e.g. a zero
	// root index or an even root of a negative integer.
	ErrDomain = errors.New("num: argument outside function domain")

	// ErrUnsupportedType reports an element type ArithOf has no arithmetic for.
	ErrUnsupportedType = errors.New("num: unsupported element type")
)

// conversionErrorf wraps ErrConversion with the offending value and the target type.
func conversionErrorf[Q any](v any, reason string) error {
	var q Q

	return fmt.Errorf("%w: %v to %T (%s)", ErrConversion, v, q, reason)
}

// domainPanic aborts on a logic error; it is never used for data-dependent failures.
func domainPanic(op string, v any) {
	panic(fmt.Errorf("%s(%v): %w", op, v, ErrDomain))
}
