package numeric

import (
	"math"
	"math/big"
	"math/bits"
)

// FromFloat64 returns the exact value of f. NaN and the infinities map to the
// matching special values. Magnitudes too large for the numerator clamp to
// ±MaxInt128; values needing a denominator above 2^126 are rounded
// half-to-even onto that denominator.
func FromFloat64(f float64) Fraction {
	out, _ := fromFloat64(f)
	return out
}

// FromFloat64Exact is FromFloat64 but fails with ErrOverflow instead of
// clamping and ErrInexact instead of rounding.
func FromFloat64Exact(f float64) (Fraction, error) {
	out, err := fromFloat64(f)
	if err != nil {
		return Fraction{}, err
	}
	return out, nil
}

func fromFloat64(f float64) (Fraction, error) {
	switch {
	case math.IsNaN(f):
		return NaN(), nil
	case math.IsInf(f, 1):
		return Infinity(true), nil
	case math.IsInf(f, -1):
		return Infinity(false), nil
	}

	b := math.Float64bits(f)
	negative := b>>63 == 1
	exp := int((b>>mantissaBits)&0x7FF) - exponentBias
	mant := b & (1<<mantissaBits - 1)
	if exp == -exponentBias {
		// zero or subnormal: no implicit bit
		if mant == 0 {
			return Zero(), nil
		}
		exp = 1 - exponentBias
	} else {
		mant |= 1 << mantissaBits
	}

	// f == ±mant * 2^shift
	shift := exp - mantissaBits
	tz := bits.TrailingZeros64(mant)
	mant >>= uint(tz)
	shift += tz

	if shift >= 0 {
		if bits.Len64(mant)+shift > 127 {
			clamped := MaxInt128
			if negative {
				clamped = clamped.Neg()
			}
			return FromInt128(clamped), ErrOverflow
		}
		num, _ := fromMagnitude(Uint128From64(mant).Lsh(uint(shift)), negative)
		return FromInt128(num), nil
	}

	var err error
	k := -shift
	if k > maxPow2Den {
		mant = roundShift(mant, uint(k-maxPow2Den))
		k = maxPow2Den
		err = ErrInexact
	}
	num, _ := fromMagnitude(Uint128From64(mant), negative)
	den, _ := fromMagnitude(Uint128From64(1).Lsh(uint(k)), false)
	return reduce(num, den), err
}

// roundShift returns m / 2^n rounded half-to-even.
func roundShift(m uint64, n uint) uint64 {
	if n >= 64 {
		return 0
	}
	q := m >> n
	rem := m & (1<<n - 1)
	half := uint64(1) << (n - 1)
	if rem > half || (rem == half && q&1 == 1) {
		q++
	}
	return q
}

// Float64 returns the float64 nearest to x and whether it is exact.
// Special values convert exactly.
func (x Fraction) Float64() (f float64, exact bool) {
	switch x.kind {
	case nan:
		return math.NaN(), true
	case posInf:
		return math.Inf(1), true
	case negInf:
		return math.Inf(-1), true
	}
	return x.bigRat().Float64()
}

// BigRat converts a finite x to a new big.Rat; ok is false for NaN and the
// infinities.
func (x Fraction) BigRat() (r *big.Rat, ok bool) {
	if x.kind != finite {
		return nil, false
	}
	return x.bigRat(), true
}

func (x Fraction) bigRat() *big.Rat {
	var n, d big.Int
	return new(big.Rat).SetFrac(x.num.IntoBigInt(&n), x.den.Inc().IntoBigInt(&d))
}

// FromBigRat converts r, failing with ErrOverflow when its numerator or
// denominator does not fit in an Int128.
func FromBigRat(r *big.Rat) (Fraction, error) {
	num, ok := Int128FromBigInt(r.Num())
	if !ok {
		return Fraction{}, ErrOverflow
	}
	den, ok := Int128FromBigInt(r.Denom())
	if !ok {
		return Fraction{}, ErrOverflow
	}
	return TryNew(num, den)
}
