package numeric

import "errors"

// Errors returned by the checked functions of this package.
var (
	ErrGCD      = errors.New("error computing gcd")
	ErrOverflow = errors.New("integer overflow")
)
