package fract

import "github.com/egirlcatnip/fract/numeric"

// Cmp returns -1 if f < g, 0 if f == g and +1 if f > g.
// Cross products are computed with 128 bits, so Cmp never overflows.
func (f Fraction) Cmp(g Fraction) int {
	fs, gs := f.Signum(), g.Signum()
	if fs != gs {
		if fs < gs {
			return -1
		}
		return 1
	}
	if fs == 0 {
		return 0
	}

	c := numeric.CmpProducts(f.num, g.Denominator(), g.num, f.Denominator())
	if f.sign == Negative {
		return -c
	}
	return c
}

// Equal ...
func (f Fraction) Equal(g Fraction) bool {
	return f == g
}

// Less ...
func (f Fraction) Less(g Fraction) bool {
	return f.Cmp(g) < 0
}

// Min returns the smaller of f and g.
func Min(f, g Fraction) Fraction {
	if g.Less(f) {
		return g
	}
	return f
}

// Max returns the larger of f and g.
func Max(f, g Fraction) Fraction {
	if f.Less(g) {
		return g
	}
	return f
}
