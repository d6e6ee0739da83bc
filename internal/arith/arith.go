// Package arith does int arithmetic that reports overflow instead of
// wrapping.
package arith

import (
	"errors"
	"fmt"
	"math"
)

var ErrOutOfRange = errors.New("out of range")

// 2^63, the first float64 past the int64 range.
const intLimit = 9223372036854775808.0

func Add(a, b int) (int, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOutOfRange, a, b)
	}
	return s, nil
}

func Sub(a, b int) (int, error) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOutOfRange, a, b)
	}
	return d, nil
}

func Mul(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOutOfRange, a, b)
	}
	return p, nil
}

// Trunc truncates f toward zero and converts it to int.
func Trunc(f float64) (int, error) {
	t := math.Trunc(f)
	if math.IsNaN(t) || t < -intLimit || t >= intLimit {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, f)
	}
	return int(t), nil
}

// FromUint64 converts u to int.
func FromUint64(u uint64) (int, error) {
	if u > math.MaxInt {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, u)
	}
	return int(u), nil
}
