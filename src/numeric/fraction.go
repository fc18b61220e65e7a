package numeric

type kind uint8

const (
	finite kind = iota
	posInf
	negInf
	nan
)

// Fraction is an exact rational number extended with signed infinity and
// NaN. Finite values are always held in lowest terms with a positive
// denominator, so two finite Fractions are numerically equal exactly when
// they are ==. The zero value is 0.
//
// Fraction is an immutable value type. The arithmetic methods panic with
// ErrOverflow when an intermediate leaves the 128-bit domain; the Try*
// variants return the error instead.
type Fraction struct {
	num  Int128
	den  Int128 // denominator - 1, zero for special values
	kind kind
}

// New returns numerator/denominator in lowest terms. A zero denominator
// yields NaN for 0/0 and an infinity carrying the numerator's sign otherwise.
// New panics with ErrOverflow for MinInt128/-1, whose value does not fit.
func New(numerator, denominator Int128) Fraction {
	return reduce(numerator, denominator)
}

// TryNew is New, returning ErrOverflow instead of panicking.
func TryNew(numerator, denominator Int128) (f Fraction, err error) {
	defer checkOverflow(&err)
	return reduce(numerator, denominator), nil
}

// New64 is New for int64 operands. It cannot overflow.
func New64(numerator, denominator int64) Fraction {
	return reduce(Int128From64(numerator), Int128From64(denominator))
}

func FromInt64(n int64) Fraction {
	return Fraction{num: Int128From64(n)}
}

func FromUint64(n uint64) Fraction {
	return Fraction{num: Int128FromU64(n)}
}

func FromInt128(n Int128) Fraction {
	return Fraction{num: n}
}

// Infinity returns +Inf if positive, -Inf otherwise.
func Infinity(positive bool) Fraction {
	if positive {
		return Fraction{kind: posInf}
	}
	return Fraction{kind: negInf}
}

func NaN() Fraction {
	return Fraction{kind: nan}
}

func Zero() Fraction {
	return Fraction{}
}

func One() Fraction {
	return Fraction{num: oneInt128}
}

// reduce normalises n/d, panicking with ErrOverflow if the reduced value
// does not fit.
func reduce(n, d Int128) Fraction {
	if d.IsZero() {
		switch n.Sign() {
		case 0:
			return NaN()
		case 1:
			return Infinity(true)
		}
		return Infinity(false)
	}

	un, ud := n.AbsUint128(), d.AbsUint128()
	if g := gcdUint128(un, ud); !isOne(g) && !g.IsZero() {
		un, ud = un.Quo(g), ud.Quo(g)
	}

	num, overflow := fromMagnitude(un, n.negative() != d.negative())
	if overflow {
		panic(ErrOverflow)
	}
	den, overflow := fromMagnitude(ud, false)
	if overflow {
		panic(ErrOverflow)
	}
	return Fraction{num: num, den: den.Dec()}
}

// quoMag divides a by the magnitude g, which must divide it exactly.
func quoMag(a Int128, g Uint128) Int128 {
	if isOne(g) {
		return a
	}
	out, _ := fromMagnitude(a.AbsUint128().Quo(g), a.negative())
	return out
}

func isOne(u Uint128) bool {
	return u.hi == 0 && u.lo == 1
}

// Numerator returns the numerator: 0 for NaN, 1 for +Inf and -1 for -Inf.
func (x Fraction) Numerator() Int128 {
	switch x.kind {
	case posInf:
		return oneInt128
	case negInf:
		return minusOne
	case nan:
		return zeroInt128
	}
	return x.num
}

// Denominator returns the positive denominator, or 0 for special values.
func (x Fraction) Denominator() Int128 {
	if x.kind != finite {
		return zeroInt128
	}
	return x.den.Inc()
}

// AsIntegerRatio returns the pair (Numerator, Denominator).
func (x Fraction) AsIntegerRatio() (Int128, Int128) {
	return x.Numerator(), x.Denominator()
}

func (x Fraction) IsFinite() bool {
	return x.kind == finite
}

func (x Fraction) IsInf() bool {
	return x.kind == posInf || x.kind == negInf
}

func (x Fraction) IsNaN() bool {
	return x.kind == nan
}

// IsInt reports whether x is finite with denominator 1.
func (x Fraction) IsInt() bool {
	return x.kind == finite && x.den.IsZero()
}

func (x Fraction) IsZero() bool {
	return x.kind == finite && x.num.IsZero()
}

// Sign returns -1, 0 or +1. NaN has sign 0.
func (x Fraction) Sign() int {
	switch x.kind {
	case posInf:
		return 1
	case negInf:
		return -1
	case nan:
		return 0
	}
	return x.num.Sign()
}
