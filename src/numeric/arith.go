package numeric

func (x Fraction) Add(y Fraction) Fraction {
	if x.kind|y.kind == finite {
		return combine(x, y, mustAdd)
	}
	switch {
	case x.kind == nan || y.kind == nan:
		return NaN()
	case x.IsInf() && y.IsInf():
		if x.kind == y.kind {
			return x
		}
		return NaN()
	case x.IsInf():
		return x
	}
	return y
}

func (x Fraction) TryAdd(y Fraction) (z Fraction, err error) {
	defer checkOverflow(&err)
	return x.Add(y), nil
}

func (x Fraction) Sub(y Fraction) Fraction {
	if x.kind|y.kind == finite {
		return combine(x, y, mustSub)
	}
	switch {
	case x.kind == nan || y.kind == nan:
		return NaN()
	case x.IsInf() && y.IsInf():
		if x.kind == y.kind {
			return NaN()
		}
		return x
	case x.IsInf():
		return x
	}
	return y.Neg()
}

func (x Fraction) TrySub(y Fraction) (z Fraction, err error) {
	defer checkOverflow(&err)
	return x.Sub(y), nil
}

// combine adds or subtracts two finite values. When the denominators share
// a factor g the sum is built from da/g and db/g, which keeps intermediates
// a factor of g smaller than plain cross-multiplication.
func combine(x, y Fraction, op func(a, b Int128) Int128) Fraction {
	na, da := x.num, x.den.Inc()
	nb, db := y.num, y.den.Inc()

	g := gcdUint128(da.AbsUint128(), db.AbsUint128())
	if isOne(g) {
		return reduce(op(mustMul(na, db), mustMul(da, nb)), mustMul(da, db))
	}

	s := quoMag(da, g)
	t := op(mustMul(na, quoMag(db, g)), mustMul(nb, s))
	g2 := gcdUint128(t.AbsUint128(), g)
	if isOne(g2) {
		return reduce(t, mustMul(s, db))
	}
	return reduce(quoMag(t, g2), mustMul(s, quoMag(db, g2)))
}

func (x Fraction) Mul(y Fraction) Fraction {
	if x.kind|y.kind == finite {
		na, da := x.num, x.den.Inc()
		nb, db := y.num, y.den.Inc()
		if g := gcdUint128(na.AbsUint128(), db.AbsUint128()); !isOne(g) {
			na, db = quoMag(na, g), quoMag(db, g)
		}
		if g := gcdUint128(nb.AbsUint128(), da.AbsUint128()); !isOne(g) {
			nb, da = quoMag(nb, g), quoMag(da, g)
		}
		return reduce(mustMul(na, nb), mustMul(da, db))
	}
	switch {
	case x.kind == nan || y.kind == nan:
		return NaN()
	case x.IsZero() || y.IsZero():
		// 0 * Inf
		return NaN()
	}
	return Infinity(x.Sign() == y.Sign())
}

func (x Fraction) TryMul(y Fraction) (z Fraction, err error) {
	defer checkOverflow(&err)
	return x.Mul(y), nil
}

// Div returns x/y. Dividing a non-zero finite value by zero gives an
// infinity with the dividend's sign and 0/0 is NaN. Any finite or infinite
// value divided by an infinity is 0, and an infinite dividend over a finite
// divisor keeps its infinity.
func (x Fraction) Div(y Fraction) Fraction {
	switch {
	case x.kind == nan || y.kind == nan:
		return NaN()
	case y.IsInf():
		return Zero()
	case x.IsInf():
		return x
	case y.num.IsZero():
		if x.num.IsZero() {
			return NaN()
		}
		return Infinity(x.num.Sign() > 0)
	}

	na, da := x.num, x.den.Inc()
	nb, db := y.num, y.den.Inc()
	if g := gcdUint128(na.AbsUint128(), nb.AbsUint128()); !isOne(g) {
		na, nb = quoMag(na, g), quoMag(nb, g)
	}
	if g := gcdUint128(db.AbsUint128(), da.AbsUint128()); !isOne(g) {
		da, db = quoMag(da, g), quoMag(db, g)
	}
	// reduce moves a negative divisor's sign onto the numerator
	return reduce(mustMul(na, db), mustMul(nb, da))
}

func (x Fraction) TryDiv(y Fraction) (z Fraction, err error) {
	defer checkOverflow(&err)
	return x.Div(y), nil
}

func (x Fraction) Neg() Fraction {
	switch x.kind {
	case posInf:
		return Infinity(false)
	case negInf:
		return Infinity(true)
	case nan:
		return x
	}
	return Fraction{num: mustNeg(x.num), den: x.den}
}

func (x Fraction) TryNeg() (z Fraction, err error) {
	defer checkOverflow(&err)
	return x.Neg(), nil
}

func (x Fraction) Abs() Fraction {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}

func (x Fraction) TryAbs() (z Fraction, err error) {
	defer checkOverflow(&err)
	return x.Abs(), nil
}

// Inv returns the reciprocal 1/x, with Inv(0) == +Inf and Inv(±Inf) == 0.
func (x Fraction) Inv() Fraction {
	return One().Div(x)
}

func (x Fraction) TryInv() (z Fraction, err error) {
	defer checkOverflow(&err)
	return x.Inv(), nil
}

// Inc returns x+1.
func (x Fraction) Inc() Fraction {
	return x.Add(One())
}

// Dec returns x-1.
func (x Fraction) Dec() Fraction {
	return x.Sub(One())
}

// Pow raises x to an integer power. x.Pow(0) is 1 for every non-NaN x,
// infinities keep their value for positive exponents and become 0 for
// negative ones, and 0 raised to a negative power is +Inf.
func (x Fraction) Pow(exp int) Fraction {
	switch x.kind {
	case nan:
		return x
	case posInf, negInf:
		switch {
		case exp == 0:
			return One()
		case exp > 0:
			return x
		}
		return Zero()
	}

	if exp >= 0 {
		e := uint(exp)
		return reduce(powInt(x.num, e), powInt(x.den.Inc(), e))
	}
	if x.num.IsZero() {
		return Infinity(true)
	}
	e := uint(-(exp + 1)) + 1
	return reduce(powInt(x.den.Inc(), e), powInt(x.num, e))
}

func (x Fraction) TryPow(exp int) (z Fraction, err error) {
	defer checkOverflow(&err)
	return x.Pow(exp), nil
}

// powInt is exponentiation by squaring with overflow checks.
func powInt(b Int128, e uint) Int128 {
	r := oneInt128
	for {
		if e&1 == 1 {
			r = mustMul(r, b)
		}
		e >>= 1
		if e == 0 {
			return r
		}
		b = mustMul(b, b)
	}
}

func (x Fraction) AddInt(n int64) Fraction {
	return x.Add(FromInt64(n))
}

func (x Fraction) SubInt(n int64) Fraction {
	return x.Sub(FromInt64(n))
}

func (x Fraction) MulInt(n int64) Fraction {
	return x.Mul(FromInt64(n))
}

func (x Fraction) DivInt(n int64) Fraction {
	return x.Div(FromInt64(n))
}
