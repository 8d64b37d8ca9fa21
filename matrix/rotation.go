// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/num"
)

// AngleUnit tags the unit an Angle was given in.
type AngleUnit uint8

// Supported units.
const (
	UnitRadians AngleUnit = iota
	UnitDegrees
	UnitGradians
)

// String returns the lower-case unit name.
func (u AngleUnit) String() string {
	switch u {
	case UnitRadians:
		return "radians"
	case UnitDegrees:
		return "degrees"
	case UnitGradians:
		return "gradians"
	default:
		return fmt.Sprintf("AngleUnit(%d)", uint8(u))
	}
}

// Angle is a value in a tagged unit. It is converted to radians only when
// used.
type Angle[F num.Float] struct {
	Unit  AngleUnit
	Value F
}

// Radians returns an angle of v radians.
func Radians[F num.Float](v F) Angle[F] { return Angle[F]{Unit: UnitRadians, Value: v} }

// Degrees returns an angle of v degrees.
func Degrees[F num.Float](v F) Angle[F] { return Angle[F]{Unit: UnitDegrees, Value: v} }

// Gradians returns an angle of v gradians (400 per turn).
func Gradians[F num.Float](v F) Angle[F] { return Angle[F]{Unit: UnitGradians, Value: v} }

// InRadians converts a to radians in float64.
func (a Angle[F]) InRadians() float64 {
	v := num.Conv(a.Value)
	switch a.Unit {
	case UnitDegrees:
		return v * math.Pi / 180
	case UnitGradians:
		return v * math.Pi / 200
	default:
		return v
	}
}

// String formats the angle with its unit, e.g. "90 degrees".
func (a Angle[F]) String() string { return fmt.Sprintf("%v %s", a.Value, a.Unit) }

// sinCos returns sin and cos of a narrowed to F.
func sinCos[F num.Float](a Angle[F]) (s, c F) {
	sf, cf := math.Sincos(a.InRadians())

	return num.Back[F](sf), num.Back[F](cf)
}

// Rotation returns the 2×2 counter-clockwise rotation [[cos, -sin], [sin, cos]].
// The trigonometric values are not filtered; apply EpsilonFilter to clear
// rounding noise such as sin(π).
func Rotation[F num.Float](a Angle[F]) *Matrix[F] {
	s, c := sinCos(a)

	return &Matrix[F]{r: 2, c: 2, data: []F{
		c, -s,
		s, c,
	}}
}

// RotationX returns the 3×3 rotation about the x axis.
func RotationX[F num.Float](a Angle[F]) *Matrix[F] {
	s, c := sinCos(a)

	return &Matrix[F]{r: 3, c: 3, data: []F{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}}
}

// RotationY returns the 3×3 rotation about the y axis.
func RotationY[F num.Float](a Angle[F]) *Matrix[F] {
	s, c := sinCos(a)

	return &Matrix[F]{r: 3, c: 3, data: []F{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}}
}

// RotationZ returns the 3×3 rotation about the z axis.
func RotationZ[F num.Float](a Angle[F]) *Matrix[F] {
	s, c := sinCos(a)

	return &Matrix[F]{r: 3, c: 3, data: []F{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}
