// Package numeric implements exact rational arithmetic over 128-bit
// integers.
//
// A Fraction holds an Int128 numerator over a positive Int128 denominator in
// lowest terms, extended with +Inf, -Inf and NaN so that division by zero and
// the other undefined cases produce a value instead of a panic. Values whose
// numerator or denominator would leave the 128-bit domain are reported with
// ErrOverflow: the plain operators panic with it, the Try* forms return it.
//
//	x := numeric.New64(355, 113)
//	y, _ := x.LimitDenominator64(7) // 22/7
//	z := x.Sub(y)                   // -1/791
package numeric
