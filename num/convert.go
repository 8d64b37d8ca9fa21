// SPDX-License-Identifier: MIT

package num

import (
	"math"
	"math/bits"
)

// kind describes a Real type well enough to range-check conversions.
type kind struct {
	float  bool
	signed bool
	bits   int
}

func kindOf[T Real]() kind {
	var zero T
	switch any(zero).(type) {
	case int:
		return kind{signed: true, bits: bits.UintSize}
	case int8:
		return kind{signed: true, bits: 8}
	case int16:
		return kind{signed: true, bits: 16}
	case int32:
		return kind{signed: true, bits: 32}
	case int64:
		return kind{signed: true, bits: 64}
	case uint:
		return kind{bits: bits.UintSize}
	case uint8:
		return kind{bits: 8}
	case uint16:
		return kind{bits: 16}
	case uint32:
		return kind{bits: 32}
	case uint64:
		return kind{bits: 64}
	case float32:
		return kind{float: true, signed: true, bits: 32}
	default:
		return kind{float: true, signed: true, bits: 64}
	}
}

// minInt and maxInt bound a signed kind; maxUint bounds an unsigned one.
func (k kind) minInt() int64   { return math.MinInt64 >> (64 - k.bits) }
func (k kind) maxInt() int64   { return math.MaxInt64 >> (64 - k.bits) }
func (k kind) maxUint() uint64 { return math.MaxUint64 >> (64 - k.bits) }

// Convert converts v to Q, failing with ErrConversion instead of truncating.
//
//   - Integer targets accept only finite, integral, in-range values.
//   - Float targets accept any integer that survives the round trip exactly.
//   - Float to float only fails on overflow; narrowing may round, since the
//     float target still covers the source domain.
func Convert[Q, E Real](v E) (Q, error) {
	src, dst := kindOf[E](), kindOf[Q]()

	switch {
	case src.float && dst.float:
		return floatToFloat[Q](float64(v), dst)
	case src.float:
		return floatToInt[Q](float64(v), dst)
	case dst.float:
		return intToFloat[Q](v, src)
	case src.signed:
		return signedToInt[Q](int64(v), dst)
	default:
		return unsignedToInt[Q](uint64(v), dst)
	}
}

func floatToFloat[Q Real](f float64, dst kind) (Q, error) {
	if dst.bits == 32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, conversionErrorf[Q](f, "overflow")
	}

	return Q(f), nil
}

func floatToInt[Q Real](f float64, dst kind) (Q, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, conversionErrorf[Q](f, "not finite")
	case f != math.Trunc(f):
		return 0, conversionErrorf[Q](f, "fractional")
	}

	// Bounds as exact powers of two: float64(MaxInt64) would round up.
	var lo, hiExclusive float64
	if dst.signed {
		lo = -math.Ldexp(1, dst.bits-1)
		hiExclusive = math.Ldexp(1, dst.bits-1)
	} else {
		hiExclusive = math.Ldexp(1, dst.bits)
	}
	if f < lo || f >= hiExclusive {
		return 0, conversionErrorf[Q](f, "out of range")
	}

	return Q(f), nil
}

func intToFloat[Q, E Real](v E, src kind) (Q, error) {
	q := Q(v)
	back := float64(q)

	var exact bool
	if src.signed {
		exact = back >= -0x1p63 && back < 0x1p63 && int64(back) == int64(v)
	} else {
		exact = back < 0x1p64 && uint64(back) == uint64(v)
	}
	if !exact {
		return 0, conversionErrorf[Q](v, "inexact")
	}

	return q, nil
}

func signedToInt[Q Real](i int64, dst kind) (Q, error) {
	if dst.signed {
		if i < dst.minInt() || i > dst.maxInt() {
			return 0, conversionErrorf[Q](i, "out of range")
		}

		return Q(i), nil
	}
	if i < 0 || uint64(i) > dst.maxUint() {
		return 0, conversionErrorf[Q](i, "out of range")
	}

	return Q(i), nil
}

func unsignedToInt[Q Real](u uint64, dst kind) (Q, error) {
	if dst.signed {
		if u > uint64(dst.maxInt()) {
			return 0, conversionErrorf[Q](u, "out of range")
		}

		return Q(u), nil
	}
	if u > dst.maxUint() {
		return 0, conversionErrorf[Q](u, "out of range")
	}

	return Q(u), nil
}

// MustConvert is Convert for values known to fit; it panics otherwise.
func MustConvert[Q, E Real](v E) Q {
	q, err := Convert[Q](v)
	if err != nil {
		panic(err)
	}

	return q
}
