// SPDX-License-Identifier: MIT

// Package num is the numeric trait layer of linalg.
//
// It declares the element constraints (Signed, Unsigned, Integer, Float,
// Real, Element), the per-type numeric operations every matrix kernel relies
// on (Abs, Pow, Root, Epsilon, Conv/Back), checked numeric conversion
// (Convert), the Complex element type, and the Arith dictionary that lets a
// single generic kernel run over primitive numbers and Complex values alike.
//
// Operations are pure and deterministic. Integer power wraps on overflow,
// like Go's own integer arithmetic. Logic errors (a zero root index, an even
// root of a negative integer) panic with an error wrapping ErrDomain;
// data-dependent failures (Convert) are returned as errors wrapping
// ErrConversion.
package num
