package numeric

import (
	"math/big"
	"math/bits"
	"strconv"
)

// Uint128 is an unsigned 128-bit integer. It is used for the magnitudes of
// Int128 values during division, reduction and overflow checks.
type Uint128 struct {
	hi, lo uint64
}

func Uint128From64(v uint64) Uint128 {
	return Uint128{lo: v}
}

func Uint128FromRaw(hi, lo uint64) Uint128 {
	return Uint128{hi: hi, lo: lo}
}

// Raw returns the high and low words of u.
func (u Uint128) Raw() (hi, lo uint64) {
	return u.hi, u.lo
}

func (u Uint128) IsZero() bool {
	return u.hi == 0 && u.lo == 0
}

func (u Uint128) IsUint64() bool {
	return u.hi == 0
}

func (u Uint128) Equal(v Uint128) bool {
	return u == v
}

func (u Uint128) Cmp(v Uint128) int {
	if u.hi == v.hi {
		if u.lo == v.lo {
			return 0
		} else if u.lo > v.lo {
			return 1
		}
		return -1
	} else if u.hi > v.hi {
		return 1
	}
	return -1
}

func (u Uint128) LessThan(v Uint128) bool {
	return u.hi < v.hi || (u.hi == v.hi && u.lo < v.lo)
}

// Add returns u+v, wrapping on overflow.
func (u Uint128) Add(v Uint128) (out Uint128) {
	var carry uint64
	out.lo, carry = bits.Add64(u.lo, v.lo, 0)
	out.hi, _ = bits.Add64(u.hi, v.hi, carry)
	return out
}

func (u Uint128) Add64(v uint64) (out Uint128) {
	var carry uint64
	out.lo, carry = bits.Add64(u.lo, v, 0)
	out.hi = u.hi + carry
	return out
}

// AddOverflow returns u+v and whether the sum wrapped.
func (u Uint128) AddOverflow(v Uint128) (out Uint128, overflow bool) {
	var carry uint64
	out.lo, carry = bits.Add64(u.lo, v.lo, 0)
	out.hi, carry = bits.Add64(u.hi, v.hi, carry)
	return out, carry != 0
}

// Sub returns u-v, wrapping on underflow.
func (u Uint128) Sub(v Uint128) (out Uint128) {
	var borrow uint64
	out.lo, borrow = bits.Sub64(u.lo, v.lo, 0)
	out.hi, _ = bits.Sub64(u.hi, v.hi, borrow)
	return out
}

func (u Uint128) Sub64(v uint64) (out Uint128) {
	var borrow uint64
	out.lo, borrow = bits.Sub64(u.lo, v, 0)
	out.hi = u.hi - borrow
	return out
}

// Mul returns the low 128 bits of u*v.
func (u Uint128) Mul(v Uint128) Uint128 {
	hi, lo := bits.Mul64(u.lo, v.lo)
	hi += u.hi*v.lo + u.lo*v.hi
	return Uint128{hi: hi, lo: lo}
}

func (u Uint128) Mul64(v uint64) Uint128 {
	hi, lo := bits.Mul64(u.lo, v)
	hi += u.hi * v
	return Uint128{hi: hi, lo: lo}
}

// MulOverflow returns the low 128 bits of u*v and whether the full product
// needed more than 128 bits.
func (u Uint128) MulOverflow(v Uint128) (Uint128, bool) {
	if u.hi != 0 && v.hi != 0 {
		return u.Mul(v), true
	}
	hi, lo := bits.Mul64(u.lo, v.lo)
	c1h, c1l := bits.Mul64(u.hi, v.lo)
	c2h, c2l := bits.Mul64(u.lo, v.hi)
	overflow := c1h != 0 || c2h != 0

	var carry uint64
	hi, carry = bits.Add64(hi, c1l, 0)
	overflow = overflow || carry != 0
	hi, carry = bits.Add64(hi, c2l, 0)
	overflow = overflow || carry != 0

	return Uint128{hi: hi, lo: lo}, overflow
}

// QuoRem returns the quotient and remainder of u/v. It panics if v is zero.
func (u Uint128) QuoRem(v Uint128) (q, r Uint128) {
	if v.hi == 0 {
		var r64 uint64
		q, r64 = u.QuoRem64(v.lo)
		return q, Uint128{lo: r64}
	}

	// Hacker's Delight 9-5 divlu: normalise the divisor so the estimated
	// 64-bit quotient is off by at most one.
	n := uint(bits.LeadingZeros64(v.hi))
	v1 := v.Lsh(n)
	u1 := u.Rsh(1)
	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}
	q = Uint128{lo: tq}
	r = u.Sub(v.Mul64(tq))
	if r.Cmp(v) >= 0 {
		q = q.Add64(1)
		r = r.Sub(v)
	}
	return q, r
}

// QuoRem64 returns the quotient and remainder of u/v. It panics if v is zero.
func (u Uint128) QuoRem64(v uint64) (q Uint128, r uint64) {
	if u.hi < v {
		q.lo, r = bits.Div64(u.hi, u.lo, v)
	} else {
		q.hi, r = bits.Div64(0, u.hi, v)
		q.lo, r = bits.Div64(r, u.lo, v)
	}
	return q, r
}

func (u Uint128) Quo(v Uint128) Uint128 {
	q, _ := u.QuoRem(v)
	return q
}

func (u Uint128) Rem(v Uint128) Uint128 {
	_, r := u.QuoRem(v)
	return r
}

func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{hi: u.lo << (n - 64)}
	case n == 0:
		return u
	}
	return Uint128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
}

func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{lo: u.hi >> (n - 64)}
	case n == 0:
		return u
	}
	return Uint128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
}

func (u Uint128) LeadingZeros() uint {
	if u.hi == 0 {
		return 64 + uint(bits.LeadingZeros64(u.lo))
	}
	return uint(bits.LeadingZeros64(u.hi))
}

// TrailingZeros returns the number of trailing zero bits in u; 128 for zero.
func (u Uint128) TrailingZeros() uint {
	if u.lo == 0 {
		return 64 + uint(bits.TrailingZeros64(u.hi))
	}
	return uint(bits.TrailingZeros64(u.lo))
}

func (u Uint128) BitLen() int {
	return 128 - int(u.LeadingZeros())
}

func (u Uint128) AsUint64() uint64 {
	return u.lo
}

func (u Uint128) AsBigInt() *big.Int {
	var v big.Int
	return u.IntoBigInt(&v)
}

// IntoBigInt sets b to u and returns b.
func (u Uint128) IntoBigInt(b *big.Int) *big.Int {
	if u.hi == 0 {
		return b.SetUint64(u.lo)
	}
	b.SetUint64(u.hi)
	b.Lsh(b, 64)
	var lo big.Int
	lo.SetUint64(u.lo)
	return b.Or(b, &lo)
}

// Uint128FromBigInt converts v, reporting false if it is negative or does
// not fit. Out of range values saturate.
func Uint128FromBigInt(v *big.Int) (out Uint128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.Cmp(maxBigUint128) > 0 {
		return MaxUint128, false
	}
	words := v.Bits()
	switch intSize {
	case 64:
		if len(words) > 0 {
			out.lo = uint64(words[0])
		}
		if len(words) > 1 {
			out.hi = uint64(words[1])
		}
	default:
		var lo, hi big.Int
		lo.And(v, new(big.Int).SetUint64(maxUint64))
		hi.Rsh(v, 64)
		out.lo, out.hi = lo.Uint64(), hi.Uint64()
	}
	return out, true
}

func (u Uint128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

const intSize = 32 << (^uint(0) >> 63)
