package fract

import (
	"errors"
	"fmt"

	"github.com/egirlcatnip/fract/numeric"
)

// Errors returned by the Try* functions. The non-Try forms panic with the same values.
var (
	ErrZeroDenominator = errors.New("denominator cannot be zero")
	ErrDivisionByZero  = fmt.Errorf("division by zero: %w", ErrZeroDenominator)
	ErrNegative        = errors.New("fraction is negative")

	ErrGCD      = numeric.ErrGCD
	ErrOverflow = numeric.ErrOverflow
)

func must(f Fraction, err error) Fraction {
	if err != nil {
		panic(err)
	}
	return f
}
