package fract

import (
	"math"

	"github.com/egirlcatnip/fract/numeric"
)

// TryMulUint64 returns floor(v * f) for a non-negative f.
// It fails with ErrNegative for negative f and with ErrOverflow if the
// result does not fit into 64 bits.
func (f Fraction) TryMulUint64(v uint64) (uint64, error) {
	if f.sign == Negative {
		return 0, ErrNegative
	}
	res, overflowed := numeric.MulDiv(v, f.num, f.Denominator())
	if overflowed {
		return 0, ErrOverflow
	}
	return res, nil
}

// MulUint64 ...
func (f Fraction) MulUint64(v uint64) uint64 {
	res, err := f.TryMulUint64(v)
	if err != nil {
		panic(err)
	}
	return res
}

// MulUint32 ...
func (f Fraction) MulUint32(v uint32) uint32 {
	res := f.MulUint64(uint64(v))
	if res > math.MaxUint32 {
		panic(ErrOverflow)
	}
	return uint32(res)
}
