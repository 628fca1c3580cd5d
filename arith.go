package fract

import "github.com/egirlcatnip/fract/numeric"

// Neg returns -f. Zero stays Zero.
func (f Fraction) Neg() Fraction {
	if f.num == 0 {
		return f
	}
	f.sign ^= Negative
	return f
}

// Abs ...
func (f Fraction) Abs() Fraction {
	f.sign = Positive
	return f
}

// TryAdd returns f + g over the least common multiple of the denominators.
// It fails with ErrOverflow if an intermediate value does not fit.
func (f Fraction) TryAdd(g Fraction) (Fraction, error) {
	fd, gd := f.Denominator(), g.Denominator()
	lcm, err := numeric.CheckedLCMUint64(fd, gd)
	if err != nil {
		return Fraction{}, err
	}

	a, overflowed := numeric.OMul(f.num, lcm/fd)
	if overflowed {
		return Fraction{}, ErrOverflow
	}
	b, overflowed := numeric.OMul(g.num, lcm/gd)
	if overflowed {
		return Fraction{}, ErrOverflow
	}

	if f.sign == g.sign {
		sum, overflowed := numeric.OAdd(a, b)
		if overflowed {
			return Fraction{}, ErrOverflow
		}
		return canonical(f.sign, sum, lcm)
	}
	if a >= b {
		return canonical(f.sign, a-b, lcm)
	}
	return canonical(g.sign, b-a, lcm)
}

// Add is like TryAdd but panics on overflow.
func (f Fraction) Add(g Fraction) Fraction {
	return must(f.TryAdd(g))
}

// TrySub returns f - g.
func (f Fraction) TrySub(g Fraction) (Fraction, error) {
	return f.TryAdd(g.Neg())
}

// Sub ...
func (f Fraction) Sub(g Fraction) Fraction {
	return must(f.TrySub(g))
}

// TryMul returns f * g. It fails with ErrOverflow if the reduced product
// does not fit.
func (f Fraction) TryMul(g Fraction) (Fraction, error) {
	if f.num == 0 || g.num == 0 {
		return Zero, nil
	}
	fn, fd := f.num, f.Denominator()
	gn, gd := g.num, g.Denominator()

	// f and g are reduced, but fn may share factors with gd and gn with fd.
	d, err := numeric.CheckedGCDUint64(fn, gd)
	if err != nil {
		return Fraction{}, err
	}
	fn, gd = fn/d, gd/d

	d, err = numeric.CheckedGCDUint64(gn, fd)
	if err != nil {
		return Fraction{}, err
	}
	gn, fd = gn/d, fd/d

	num, overflowed := numeric.OMul(fn, gn)
	if overflowed {
		return Fraction{}, ErrOverflow
	}
	den, overflowed := numeric.OMul(fd, gd)
	if overflowed {
		return Fraction{}, ErrOverflow
	}
	return canonical(f.sign^g.sign, num, den)
}

// Mul is like TryMul but panics on overflow.
func (f Fraction) Mul(g Fraction) Fraction {
	return must(f.TryMul(g))
}

// TryRecip returns 1/f, or ErrDivisionByZero if f is zero.
func (f Fraction) TryRecip() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	return Fraction{
		sign: f.sign,
		num:  f.den + 1,
		den:  f.num - 1,
	}, nil
}

// Recip ...
func (f Fraction) Recip() Fraction {
	return must(f.TryRecip())
}

// TryDiv returns f / g, or ErrDivisionByZero if g is zero.
func (f Fraction) TryDiv(g Fraction) (Fraction, error) {
	r, err := g.TryRecip()
	if err != nil {
		return Fraction{}, err
	}
	return f.TryMul(r)
}

// Div ...
func (f Fraction) Div(g Fraction) Fraction {
	return must(f.TryDiv(g))
}

// AddAssign sets *f to *f + g.
func (f *Fraction) AddAssign(g Fraction) {
	*f = f.Add(g)
}

// SubAssign sets *f to *f - g.
func (f *Fraction) SubAssign(g Fraction) {
	*f = f.Sub(g)
}

// MulAssign sets *f to *f * g.
func (f *Fraction) MulAssign(g Fraction) {
	*f = f.Mul(g)
}

// DivAssign sets *f to *f / g.
func (f *Fraction) DivAssign(g Fraction) {
	*f = f.Div(g)
}

// TryAddAssign is like AddAssign but returns the error instead of
// panicking. *f is left unchanged on error.
func (f *Fraction) TryAddAssign(g Fraction) error {
	return f.assign(f.TryAdd(g))
}

// TrySubAssign ...
func (f *Fraction) TrySubAssign(g Fraction) error {
	return f.assign(f.TrySub(g))
}

// TryMulAssign ...
func (f *Fraction) TryMulAssign(g Fraction) error {
	return f.assign(f.TryMul(g))
}

// TryDivAssign ...
func (f *Fraction) TryDivAssign(g Fraction) error {
	return f.assign(f.TryDiv(g))
}

func (f *Fraction) assign(r Fraction, err error) error {
	if err != nil {
		return err
	}
	*f = r
	return nil
}
