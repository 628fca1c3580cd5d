package fract

import "strconv"

// String formats f as "N/D", or as "N" when f is an integer.
// Negative values carry a leading '-'; zero is "0".
func (f Fraction) String() string {
	buf := make([]byte, 0, 42)
	if f.sign == Negative && f.num != 0 {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, f.num, 10)
	if f.den != 0 {
		buf = append(buf, '/')
		buf = strconv.AppendUint(buf, f.den+1, 10)
	}
	return string(buf)
}
