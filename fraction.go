// Package fract implements exact fractions with 64-bit numerator and
// denominator magnitudes.
package fract

import (
	"math"

	"github.com/egirlcatnip/fract/numeric"
)

// Sign ...
type Sign uint8

const (
	// Positive is also the sign of zero
	Positive Sign = 0
	// Negative ...
	Negative Sign = 1
)

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Fraction is a rational number kept in lowest terms.
//
// The sign is stored apart from the unsigned numerator and denominator
// magnitudes, so both can use the full uint64 range. The denominator is
// stored biased by one: the zero value Fraction{} is a valid 0/1.
//
// Every value obtained from this package is canonical, so two fractions
// can be compared with == and are equal exactly when their values are.
// Operations never modify their operands.
type Fraction struct {
	sign Sign
	num  uint64
	den  uint64 // denominator - 1
}

// Identity elements for addition and multiplication.
var (
	Zero = Fraction{}
	One  = Fraction{num: 1}
)

// TryNew returns numerator/denominator in lowest terms.
// It fails with ErrZeroDenominator if denominator is 0.
func TryNew(numerator, denominator int64) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	sign := Positive
	if (numerator < 0) != (denominator < 0) {
		sign = Negative
	}
	return canonical(sign, numeric.Abs64(numerator), numeric.Abs64(denominator))
}

// New is like TryNew but panics if denominator is 0.
func New(numerator, denominator int64) Fraction {
	return must(TryNew(numerator, denominator))
}

// TryFromParts builds a fraction from a sign and unsigned magnitudes.
func TryFromParts(sign Sign, numerator, denominator uint64) (Fraction, error) {
	return canonical(sign, numerator, denominator)
}

// FromParts ...
func FromParts(sign Sign, numerator, denominator uint64) Fraction {
	return must(canonical(sign, numerator, denominator))
}

// FromInt64 returns n/1.
func FromInt64(n int64) Fraction {
	if n < 0 {
		return Fraction{sign: Negative, num: numeric.Abs64(n)}
	}
	return Fraction{num: uint64(n)}
}

// canonical reduces num/den by their gcd. A zero numerator always
// collapses to Zero so there is no negative zero.
func canonical(sign Sign, num, den uint64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if num == 0 {
		return Zero, nil
	}
	if sign != Positive {
		sign = Negative
	}

	d, err := numeric.CheckedGCDUint64(num, den)
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{
		sign: sign,
		num:  num / d,
		den:  den/d - 1,
	}, nil
}

// TrySimplify returns f in canonical form. Values built by this package
// already are, so this is the identity for them. It fails with
// ErrZeroDenominator if f somehow carries a zero denominator.
func (f Fraction) TrySimplify() (Fraction, error) {
	return canonical(f.sign, f.num, f.Denominator())
}

// Simplify ...
func (f Fraction) Simplify() Fraction {
	return must(f.TrySimplify())
}

// Numerator returns the magnitude of the numerator.
func (f Fraction) Numerator() uint64 {
	return f.num
}

// Denominator returns the denominator, always positive.
func (f Fraction) Denominator() uint64 {
	return f.den + 1
}

// Sign ...
func (f Fraction) Sign() Sign {
	return f.sign
}

// Signum returns -1, 0 or +1.
func (f Fraction) Signum() int {
	switch {
	case f.num == 0:
		return 0
	case f.sign == Negative:
		return -1
	}
	return 1
}

// IsZero ...
func (f Fraction) IsZero() bool {
	return f.num == 0
}

// IsInteger reports whether the denominator is 1.
func (f Fraction) IsInteger() bool {
	return f.den == 0
}

// Int64s returns the signed numerator and the denominator, or ErrOverflow
// if either does not fit into an int64.
func (f Fraction) Int64s() (numerator int64, denominator int64, err error) {
	if f.den > math.MaxInt64-1 {
		return 0, 0, ErrOverflow
	}
	denominator = int64(f.den + 1)

	if f.sign == Negative {
		if f.num > 1<<63 {
			return 0, 0, ErrOverflow
		}
		return -int64(f.num), denominator, nil
	}
	if f.num > math.MaxInt64 {
		return 0, 0, ErrOverflow
	}
	return int64(f.num), denominator, nil
}
