package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	got, err := Add(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = Add(math.MaxInt, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Add(math.MinInt, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSub(t *testing.T) {
	got, err := Sub(2, 5)
	require.NoError(t, err)
	assert.Equal(t, -3, got)

	_, err = Sub(math.MinInt, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Sub(math.MaxInt, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestMul(t *testing.T) {
	cases := []struct {
		a, b int
		want int
		ok   bool
	}{
		{3, 2, 6, true},
		{-3, 2, -6, true},
		{0, math.MaxInt, 0, true},
		{math.MaxInt/2 + 1, 2, 0, false},
		{math.MinInt/2 - 1, 2, 0, false},
		{math.MinInt, -1, 0, false},
		{-1, math.MinInt, 0, false},
	}
	for _, tc := range cases {
		got, err := Mul(tc.a, tc.b)
		if tc.ok {
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		} else {
			assert.ErrorIs(t, err, ErrOutOfRange, "%d * %d", tc.a, tc.b)
		}
	}
}

func TestTrunc(t *testing.T) {
	got, err := Trunc(-6.7)
	require.NoError(t, err)
	assert.Equal(t, -6, got)

	got, err = Trunc(-9223372036854775808.0)
	require.NoError(t, err)
	assert.Equal(t, math.MinInt, got)

	for _, f := range []float64{9223372036854775808.0, -1e19, math.NaN(), math.Inf(1)} {
		_, err := Trunc(f)
		assert.ErrorIs(t, err, ErrOutOfRange, "%v", f)
	}
}

func TestFromUint64(t *testing.T) {
	got, err := FromUint64(math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)

	_, err = FromUint64(math.MaxUint64)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
