// Package numeric provides gcd, lcm and overflow checked integer helpers.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// MaxGCDIterations bounds the Euclidean loop of the checked gcd functions.
// 64-bit inputs need at most 92 steps, so reaching it means the input is bogus.
const MaxGCDIterations = 1000

func gcd[T constraints.Unsigned](a, b T) (T, error) {
	for i := 0; b != 0; i++ {
		if i >= MaxGCDIterations {
			return 0, ErrGCD
		}
		a, b = b, a%b
	}
	return a, nil
}

// CheckedGCD returns the greatest common divisor of |a| and |b|.
// GCD(0, n) is |n| and GCD(0, 0) is 0.
// It fails with ErrGCD if |a| or |b| does not fit into int64,
// i.e. when one of them is math.MinInt64.
func CheckedGCD(a, b int64) (int64, error) {
	if a == math.MinInt64 || b == math.MinInt64 {
		return 0, ErrGCD
	}
	d, err := gcd(Abs64(a), Abs64(b))
	if err != nil {
		return 0, err
	}
	return int64(d), nil
}

// GCD is like CheckedGCD but panics on failure.
func GCD(a, b int64) int64 {
	d, err := CheckedGCD(a, b)
	if err != nil {
		panic(err)
	}
	return d
}

// CheckedGCDUint64 ...
func CheckedGCDUint64(a, b uint64) (uint64, error) {
	return gcd(a, b)
}

// GCDUint64 is like CheckedGCDUint64 but panics on failure.
func GCDUint64(a, b uint64) uint64 {
	d, err := gcd(a, b)
	if err != nil {
		panic(err)
	}
	return d
}

// CheckedLCM returns the least common multiple of |a| and |b|, that is
// |a*b| / GCD(a, b). The product is never formed: the gcd is divided out
// first and the remaining multiplication is checked, so ErrOverflow is
// returned instead of a wrapped value. LCM(0, n) is 0.
func CheckedLCM(a, b int64) (int64, error) {
	d, err := CheckedGCD(a, b)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, nil
	}
	l, overflowed := OMul(Abs64(a)/uint64(d), Abs64(b))
	if overflowed || l > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(l), nil
}

// LCM is like CheckedLCM but panics on failure.
func LCM(a, b int64) int64 {
	l, err := CheckedLCM(a, b)
	if err != nil {
		panic(err)
	}
	return l
}

// CheckedLCMUint64 is the unsigned version of CheckedLCM.
func CheckedLCMUint64(a, b uint64) (uint64, error) {
	d, err := gcd(a, b)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, nil
	}
	l, overflowed := OMul(a/d, b)
	if overflowed {
		return 0, ErrOverflow
	}
	return l, nil
}

// LCMUint64 ...
func LCMUint64(a, b uint64) uint64 {
	l, err := CheckedLCMUint64(a, b)
	if err != nil {
		panic(err)
	}
	return l
}
