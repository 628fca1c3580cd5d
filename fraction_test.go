package fract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	f := New(2, 3)
	assert.Equal(t, uint64(2), f.Numerator())
	assert.Equal(t, uint64(3), f.Denominator())
	assert.Equal(t, Positive, f.Sign())

	f = New(-6, 8)
	assert.Equal(t, uint64(3), f.Numerator())
	assert.Equal(t, uint64(4), f.Denominator())
	assert.Equal(t, Negative, f.Sign())
}

func TestZeroValue(t *testing.T) {
	var f Fraction
	assert.Equal(t, Zero, f)
	assert.Equal(t, uint64(0), f.Numerator())
	assert.Equal(t, uint64(1), f.Denominator())
	assert.True(t, f.IsZero())
	assert.True(t, f.IsInteger())
	assert.Equal(t, 0, f.Signum())
}

func TestZero(t *testing.T) {
	assert.Equal(t, Zero, New(0, 1))
	assert.Equal(t, Zero, New(0, 10))
	assert.Equal(t, Zero, New(0, -10))
	assert.Equal(t, Positive, New(0, -10).Sign())
	assert.Equal(t, One, New(7, 7))
}

func TestTryNew_ZeroDenominator(t *testing.T) {
	_, err := TryNew(1, 0)
	assert.Equal(t, ErrZeroDenominator, err)

	_, err = TryNew(1, -0)
	assert.Equal(t, ErrZeroDenominator, err)

	_, err = TryNew(-1, 0)
	assert.Equal(t, ErrZeroDenominator, err)

	_, err = TryNew(-1, -0)
	assert.Equal(t, ErrZeroDenominator, err)

	_, err = TryNew(0, 0)
	assert.Equal(t, ErrZeroDenominator, err)
}

func TestNew_Panic(t *testing.T) {
	assert.PanicsWithValue(t, ErrZeroDenominator, func() {
		New(1, 0)
	})
}

func TestNew_Simplification(t *testing.T) {
	assert.Equal(t, New(3, 4), New(3, 4))
	assert.Equal(t, New(1, 2), New(4, 8))
	assert.Equal(t, New(3, 4), New(-6, -8))
	assert.Equal(t, New(-3, 4), New(-6, 8))
	assert.Equal(t, New(-3, 4), New(6, -8))
}

func TestNew_NegativeFractions(t *testing.T) {
	assert.Equal(t, New(-1, 2), New(1, -2))
	assert.Equal(t, New(1, 2), New(-1, -2))
	assert.Equal(t, Negative, New(1, -2).Sign())
	assert.Equal(t, -1, New(1, -2).Signum())
	assert.Equal(t, 1, New(-1, -2).Signum())
}

func TestNew_Extremes(t *testing.T) {
	f := New(math.MinInt64, 1)
	assert.Equal(t, uint64(1<<63), f.Numerator())
	assert.Equal(t, Negative, f.Sign())

	f = New(math.MinInt64, math.MinInt64)
	assert.Equal(t, One, f)

	f = New(1, math.MinInt64)
	assert.Equal(t, uint64(1), f.Numerator())
	assert.Equal(t, uint64(1<<63), f.Denominator())
	assert.Equal(t, Negative, f.Sign())

	f = New(math.MaxInt64, math.MinInt64)
	assert.Equal(t, uint64(math.MaxInt64), f.Numerator())
	assert.Equal(t, uint64(1<<63), f.Denominator())
}

func TestFromParts(t *testing.T) {
	f := FromParts(Negative, 10, 4)
	assert.Equal(t, New(-5, 2), f)

	f = FromParts(Negative, 0, 4)
	assert.Equal(t, Zero, f)

	f = FromParts(Sign(7), 1, 2)
	assert.Equal(t, New(-1, 2), f)

	f = FromParts(Positive, math.MaxUint64, math.MaxUint64)
	assert.Equal(t, One, f)

	_, err := TryFromParts(Positive, 1, 0)
	assert.Equal(t, ErrZeroDenominator, err)
}

func TestFromInt64(t *testing.T) {
	assert.Equal(t, New(5, 1), FromInt64(5))
	assert.Equal(t, New(-5, 1), FromInt64(-5))
	assert.Equal(t, Zero, FromInt64(0))
	assert.Equal(t, New(math.MinInt64, 1), FromInt64(math.MinInt64))
}

func TestFraction_Simplify(t *testing.T) {
	f := New(6, 8)
	assert.Equal(t, f, f.Simplify())
	assert.Equal(t, f, f.Simplify().Simplify())

	raw := Fraction{sign: Negative, num: 6, den: 7}
	assert.Equal(t, New(-3, 4), raw.Simplify())

	raw = Fraction{sign: Negative, num: 0, den: 7}
	assert.Equal(t, Zero, raw.Simplify())
}

func TestFraction_TrySimplify_ZeroDenominator(t *testing.T) {
	raw := Fraction{num: 1, den: math.MaxUint64}
	_, err := raw.TrySimplify()
	assert.Equal(t, ErrZeroDenominator, err)

	assert.PanicsWithValue(t, ErrZeroDenominator, func() {
		raw.Simplify()
	})
}

func TestFraction_IsInteger(t *testing.T) {
	assert.True(t, New(4, 2).IsInteger())
	assert.False(t, New(1, 2).IsInteger())
	assert.True(t, Zero.IsInteger())
}

func TestFraction_Int64s(t *testing.T) {
	n, d, err := New(-3, 4).Int64s()
	assert.NoError(t, err)
	assert.Equal(t, int64(-3), n)
	assert.Equal(t, int64(4), d)

	n, d, err = New(math.MinInt64, 1).Int64s()
	assert.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), n)
	assert.Equal(t, int64(1), d)

	_, _, err = New(1, math.MinInt64).Int64s()
	assert.Equal(t, ErrOverflow, err)

	_, _, err = New(math.MinInt64, 1).Neg().Int64s()
	assert.Equal(t, ErrOverflow, err)
}
