package numeric

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// OAdd adds 2 values with overflow detection
func OAdd[T constraints.Unsigned](a, b T) (res T, overflowed bool) {
	res = a + b
	overflowed = res < a
	return
}

// OSub subtracts b from a with overflow detection
func OSub[T constraints.Unsigned](a, b T) (res T, overflowed bool) {
	res = a - b
	overflowed = res > a
	return
}

// OMul multiplies 2 values with overflow detection
func OMul[T constraints.Unsigned](a, b T) (res T, overflowed bool) {
	if b == 0 {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, true
	}
	return c, false
}

// Abs64 returns the magnitude of x. It is total: Abs64(math.MinInt64) is 1<<63.
func Abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// MulDiv computes floor(a*b/c) with a 128-bit intermediate product.
// The overflow flag is set when the quotient does not fit into 64 bits.
// c must not be zero.
func MulDiv(a, b, c uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if c <= hi {
		return 0, true
	}
	quo, _ := bits.Div64(hi, lo, c)
	return quo, false
}

// CmpProducts compares a*b with c*d exactly and returns -1, 0 or +1.
func CmpProducts(a, b, c, d uint64) int {
	h1, l1 := bits.Mul64(a, b)
	h2, l2 := bits.Mul64(c, d)
	switch {
	case h1 < h2:
		return -1
	case h1 > h2:
		return 1
	case l1 < l2:
		return -1
	case l1 > l2:
		return 1
	}
	return 0
}
