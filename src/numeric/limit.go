package numeric

import (
	"fmt"
)

// LimitDenominator returns the closest Fraction to x whose denominator is at
// most max. NaN and the infinities are returned unchanged; for finite x, max
// must be at least 1.
//
// The search walks the continued fraction expansion of x, keeping the last
// two convergents p0/q0 and p1/q1, and stops before the denominator would
// pass max. The answer is then either p1/q1 or the semiconvergent
// (p0+k*p1)/(q0+k*q1) with the largest k that still fits.
func (x Fraction) LimitDenominator(max Int128) (f Fraction, err error) {
	if x.kind != finite {
		return x, nil
	}
	if max.Sign() < 1 {
		return Fraction{}, fmt.Errorf("%w: got %s", ErrInvalidMaxDenominator, max)
	}
	den := x.den.Inc()
	if den.LessOrEqualTo(max) {
		return x, nil
	}

	defer checkOverflow(&err)

	p0, q0, p1, q1 := zeroInt128, oneInt128, oneInt128, zeroInt128
	n, d := x.num, den
	for {
		a, r := n.floorQuoRem(d)
		q2 := mustAdd(q0, mustMul(a, q1))
		if q2.GreaterThan(max) {
			break
		}
		p0, q0, p1, q1 = p1, q1, mustAdd(p0, mustMul(a, p1)), q2
		n, d = d, r
	}

	k := mustSub(max, q0).Quo(q1)
	semiDen := mustAdd(q0, mustMul(k, q1))

	// 2*d*semiDen <= den picks p1/q1; an overflowing product certainly
	// exceeds den.
	twice, o1 := d.MulOverflow(Int128From64(2))
	lhs, o2 := twice.MulOverflow(semiDen)
	if !o1 && !o2 && lhs.LessOrEqualTo(den) {
		return reduce(p1, q1), nil
	}
	return reduce(mustAdd(p0, mustMul(k, p1)), semiDen), nil
}

// LimitDenominator64 is LimitDenominator with an int64 bound.
func (x Fraction) LimitDenominator64(max int64) (Fraction, error) {
	return x.LimitDenominator(Int128From64(max))
}
