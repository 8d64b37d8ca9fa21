// SPDX-License-Identifier: MIT

package num_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/num"
)

func TestAbs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, num.Abs(-7))
	assert.Equal(t, int8(127), num.Abs(int8(-127)))
	assert.Equal(t, uint16(9), num.Abs(uint16(9)))
	assert.Equal(t, 2.5, num.Abs(-2.5))
	assert.Equal(t, float32(0), num.Abs(float32(0)))
}

func TestPow_Integers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		x    int64
		p    uint
		want int64
	}{
		{"zero exponent", 13, 0, 1},
		{"square", -9, 2, 81},
		{"cube keeps sign", -3, 3, -27},
		{"large", 7, 13, 96889010407},
		{"one", 1, 1000, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, num.Pow(tc.x, tc.p))
		})
	}
}

func TestPow_WrapsOnOverflow(t *testing.T) {
	t.Parallel()

	// 2^8 = 256 wraps to 0 in uint8, like uint8 multiplication does.
	assert.Equal(t, uint8(0), num.Pow(uint8(2), 8))
	assert.Equal(t, int8(-128), num.Pow(int8(2), 7))
}

func TestPow_Floats(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.125, num.Pow(0.5, 3), 1e-15)
	assert.InDelta(t, float32(6.25), num.Pow(float32(2.5), 2), 1e-6)
}

func TestRoot_IntegersFloor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		x    int64
		n    uint
		want int64
	}{
		{"perfect square", 49, 2, 7},
		{"floor square", 50, 2, 7},
		{"just below square", 48, 2, 6},
		{"cube", 343, 3, 7},
		{"odd root of negative", -343, 3, -7},
		{"first root", 12345, 1, 12345},
		{"zero", 0, 5, 0},
		{"max int64", math.MaxInt64, 2, 3037000499},
		{"min int64 cube", math.MinInt64, 3, -2097152},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, num.Root(tc.x, tc.n))
		})
	}
}

func TestRoot_UnsignedLimits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(4294967295), num.Root(uint64(math.MaxUint64), 2))
	assert.Equal(t, uint8(15), num.Root(uint8(255), 2))
	assert.Equal(t, uint8(1), num.Root(uint8(255), 100))
}

func TestRoot_Floats(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 3.0, num.Root(27.0, 3), 1e-12)
	assert.InDelta(t, -3.0, num.Root(-27.0, 3), 1e-12)
	assert.InDelta(t, 2.0, num.Root(16.0, 4), 1e-12)
	assert.True(t, math.IsNaN(num.Root(-16.0, 4)))
	assert.InDelta(t, float32(5), num.Root(float32(25), 2), 1e-6)
}

func TestRoot_DomainPanics(t *testing.T) {
	t.Parallel()

	requireDomainPanic(t, func() { num.Root(9, 0) })
	requireDomainPanic(t, func() { num.Root(-9, 2) })
	requireDomainPanic(t, func() { num.Root(int8(-1), 4) })
}

func TestEpsilon(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, num.Epsilon(1e-17))
	assert.Equal(t, 0.0, num.Epsilon(-1e-17))
	assert.Equal(t, 1e-10, num.Epsilon(1e-10))
	assert.Equal(t, float32(0), num.Epsilon(float32(1e-8)))
	assert.Equal(t, float32(1e-6), num.Epsilon(float32(1e-6)))
	// cos(π/2) is rounding noise, not a value.
	assert.Equal(t, 0.0, num.Epsilon(math.Cos(math.Pi/2)))
}

func TestMachineEpsilon(t *testing.T) {
	t.Parallel()

	assert.Equal(t, math.Nextafter(1, 2)-1, num.MachineEpsilon[float64]())
	assert.Equal(t, math.Nextafter32(1, 2)-1, num.MachineEpsilon[float32]())
}

func TestConvBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, math.Pi, num.Conv(math.Pi))
	assert.Equal(t, float32(math.Pi), num.Back[float32](math.Pi))
}

// requireDomainPanic runs f and checks it panics with an error wrapping ErrDomain.
func requireDomainPanic(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, num.ErrDomain)
	}()
	f()
}

func TestNormP(t *testing.T) {
	t.Parallel()

	n, err := num.NormP([]int{3, 4, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	i8, err := num.NormP([]int8{12, -12}, 2)
	require.NoError(t, err)
	assert.Equal(t, int8(16), i8)

	// |−128| = 128 is summed exactly but does not fit int8.
	_, err = num.NormP([]int8{-128}, 1)
	require.ErrorIs(t, err, num.ErrConversion)

	u, err := num.NormP([]uint8{2, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), u) // ⌊∛16⌋

	f, err := num.NormP([]float64{-3, 4}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, f, 1e-12)

	_, err = num.NormP([]uint64{math.MaxUint64, 1}, 1)
	require.ErrorIs(t, err, num.ErrConversion)

	assert.Panics(t, func() { _, _ = num.NormP([]int{1}, 0) })
}
