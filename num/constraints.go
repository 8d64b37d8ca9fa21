// SPDX-License-Identifier: MIT

package num

// Signed lists the signed integer element types.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned lists the unsigned integer element types.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// Integer is any signed or unsigned integer element type.
type Integer interface {
	Signed | Unsigned
}

// Float is any IEEE-754 element type. Epsilon filtering, rotations and
// logarithms are only offered for these.
type Float interface {
	float32 | float64
}

// Real is any ordered primitive element type.
//
// The type sets are exact (no ~ terms) so that ArithOf and Convert can resolve
// the concrete type with a type switch.
type Real interface {
	Integer | Float
}

// Element is the constraint on matrix entries: a Real type or a Complex
// instantiation.
//
// A type-set union naming every Complex[R] would reject Complex[T] for a type
// parameter T, which would make generic helpers such as Conj impossible to
// write. Element is therefore only comparable at compile time and ArithOf
// narrows it at run time, panicking with ErrUnsupportedType on anything else.
type Element interface {
	comparable
}
