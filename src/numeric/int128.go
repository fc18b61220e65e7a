package numeric

import (
	"encoding/json"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Int128 is a signed two's complement 128-bit integer. Like int64, the plain
// arithmetic methods wrap on overflow; the *Overflow variants report it.
type Int128 struct {
	hi uint64
	lo uint64
}

func Int128From64(v int64) Int128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return Int128{hi: hi, lo: uint64(v)}
}

func Int128FromU64(v uint64) Int128 {
	return Int128{lo: v}
}

func Int128FromRaw(hi, lo uint64) Int128 {
	return Int128{hi: hi, lo: lo}
}

// Int128FromBigInt converts v, saturating and reporting accurate == false
// when it does not fit.
func Int128FromBigInt(v *big.Int) (out Int128, accurate bool) {
	if v.Cmp(maxBigInt128) > 0 {
		return MaxInt128, false
	}
	if v.Cmp(minBigInt128) < 0 {
		return MinInt128, false
	}
	var mag big.Int
	mag.Abs(v)
	u, _ := Uint128FromBigInt(&mag)
	out = Int128{hi: u.hi, lo: u.lo}
	if v.Sign() < 0 {
		out = out.Neg()
	}
	return out, true
}

// Int128FromString parses a base 10 integer with an optional sign.
func Int128FromString(s string) (Int128, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int128From64(n), nil
	} else if ne, ok := err.(*strconv.NumError); ok && ne.Err != strconv.ErrRange {
		return Int128{}, ErrSyntax
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, ErrSyntax
	}
	out, accurate := Int128FromBigInt(v)
	if !accurate {
		return out, ErrRange
	}
	return out, nil
}

// Int128FromFloat64 truncates f toward zero. Out of range values saturate and
// NaN converts to zero, with inRange == false.
func Int128FromFloat64(f float64) (out Int128, inRange bool) {
	const twoTo127 = 170141183460469231731687303715884105728.0
	switch {
	case f != f:
		return out, false
	case f >= twoTo127:
		return MaxInt128, false
	case f < -twoTo127:
		return MinInt128, false
	case f >= minInt64 && f < -minInt64:
		return Int128From64(int64(f)), true
	}
	bf := new(big.Float).SetFloat64(f)
	bi, _ := bf.Int(nil)
	out, _ = Int128FromBigInt(bi)
	return out, true
}

// Raw returns the two's complement words of i.
func (i Int128) Raw() (hi, lo uint64) {
	return i.hi, i.lo
}

func (i Int128) IsZero() bool {
	return i.hi == 0 && i.lo == 0
}

func (i Int128) Sign() int {
	if i.hi == 0 && i.lo == 0 {
		return 0
	} else if i.hi&0x8000000000000000 == 0 {
		return 1
	}
	return -1
}

func (i Int128) negative() bool {
	return i.hi&0x8000000000000000 != 0
}

func (i Int128) IsInt64() bool {
	if i.negative() {
		return i.hi == maxUint64 && i.lo >= 0x8000000000000000
	}
	return i.hi == 0 && i.lo <= maxInt64
}

// AsInt64 truncates i to its low 64 bits.
func (i Int128) AsInt64() int64 {
	return int64(i.lo)
}

func (i Int128) Equal(n Int128) bool {
	return i == n
}

func (i Int128) Equal64(n int64) bool {
	return i == Int128From64(n)
}

func (i Int128) Cmp(n Int128) int {
	if i.hi == n.hi {
		if i.lo == n.lo {
			return 0
		} else if i.lo > n.lo {
			return 1
		}
		return -1
	} else if int64(i.hi) > int64(n.hi) {
		return 1
	}
	return -1
}

func (i Int128) Cmp64(n int64) int {
	return i.Cmp(Int128From64(n))
}

func (i Int128) LessThan(n Int128) bool         { return i.Cmp(n) < 0 }
func (i Int128) LessOrEqualTo(n Int128) bool    { return i.Cmp(n) <= 0 }
func (i Int128) GreaterThan(n Int128) bool      { return i.Cmp(n) > 0 }
func (i Int128) GreaterOrEqualTo(n Int128) bool { return i.Cmp(n) >= 0 }

func (i Int128) Add(n Int128) (out Int128) {
	var carry uint64
	out.lo, carry = bits.Add64(i.lo, n.lo, 0)
	out.hi, _ = bits.Add64(i.hi, n.hi, carry)
	return out
}

func (i Int128) Add64(n int64) Int128 {
	return i.Add(Int128From64(n))
}

// AddOverflow returns i+n and whether the signed sum overflowed.
func (i Int128) AddOverflow(n Int128) (Int128, bool) {
	out := i.Add(n)
	// overflow iff both operands share a sign the result does not have
	return out, i.negative() == n.negative() && out.negative() != i.negative()
}

func (i Int128) Sub(n Int128) (out Int128) {
	var borrow uint64
	out.lo, borrow = bits.Sub64(i.lo, n.lo, 0)
	out.hi, _ = bits.Sub64(i.hi, n.hi, borrow)
	return out
}

func (i Int128) Sub64(n int64) Int128 {
	return i.Sub(Int128From64(n))
}

// SubOverflow returns i-n and whether the signed difference overflowed.
func (i Int128) SubOverflow(n Int128) (Int128, bool) {
	out := i.Sub(n)
	return out, i.negative() != n.negative() && out.negative() != i.negative()
}

func (i Int128) Inc() Int128 {
	return i.Add(oneInt128)
}

func (i Int128) Dec() Int128 {
	return i.Sub(oneInt128)
}

// Neg returns -i. Neg(MinInt128) wraps to MinInt128.
func (i Int128) Neg() (out Int128) {
	var carry uint64
	out.lo, carry = bits.Add64(^i.lo, 1, 0)
	out.hi = ^i.hi + carry
	return out
}

func (i Int128) NegOverflow() (Int128, bool) {
	return i.Neg(), i == MinInt128
}

// Abs returns |i|. Abs(MinInt128) wraps to MinInt128; see AbsUint128.
func (i Int128) Abs() Int128 {
	if i.negative() {
		return i.Neg()
	}
	return i
}

// AbsUint128 returns |i| without overflow.
func (i Int128) AbsUint128() Uint128 {
	if i.negative() {
		n := i.Neg()
		return Uint128{hi: n.hi, lo: n.lo}
	}
	return Uint128{hi: i.hi, lo: i.lo}
}

// fromMagnitude rebuilds a signed value from a magnitude, reporting overflow
// when u does not fit.
func fromMagnitude(u Uint128, negative bool) (Int128, bool) {
	out := Int128{hi: u.hi, lo: u.lo}
	if negative {
		return out.Neg(), minInt128AsUint128.LessThan(u)
	}
	return out, out.negative()
}

// Mul returns the low 128 bits of i*n.
func (i Int128) Mul(n Int128) Int128 {
	hi, lo := bits.Mul64(i.lo, n.lo)
	hi += i.hi*n.lo + i.lo*n.hi
	return Int128{hi: hi, lo: lo}
}

func (i Int128) Mul64(n int64) Int128 {
	return i.Mul(Int128From64(n))
}

// MulOverflow returns i*n and whether the signed product overflowed.
func (i Int128) MulOverflow(n Int128) (Int128, bool) {
	p, overflow := i.AbsUint128().MulOverflow(n.AbsUint128())
	if overflow {
		return i.Mul(n), true
	}
	out, overflow := fromMagnitude(p, i.negative() != n.negative() && !p.IsZero())
	return out, overflow
}

// QuoRem returns the quotient and remainder of i/n, truncated toward zero
// like Go's integer division. It panics if n is zero.
func (i Int128) QuoRem(n Int128) (q, r Int128) {
	uq, ur := i.AbsUint128().QuoRem(n.AbsUint128())
	q, _ = fromMagnitude(uq, i.negative() != n.negative())
	r, _ = fromMagnitude(ur, i.negative())
	return q, r
}

func (i Int128) Quo(n Int128) Int128 {
	q, _ := i.QuoRem(n)
	return q
}

func (i Int128) Rem(n Int128) Int128 {
	_, r := i.QuoRem(n)
	return r
}

// QuoOverflow returns i/n, reporting the single overflowing case
// MinInt128 / -1.
func (i Int128) QuoOverflow(n Int128) (Int128, bool) {
	return i.Quo(n), i == MinInt128 && n == minusOne
}

// floorQuoRem returns the quotient rounded toward negative infinity and the
// matching non-negative remainder, for positive n.
func (i Int128) floorQuoRem(n Int128) (q, r Int128) {
	q, r = i.QuoRem(n)
	if r.negative() {
		q = q.Dec()
		r = r.Add(n)
	}
	return q, r
}

func (i Int128) BitLen() int {
	return i.AbsUint128().BitLen()
}

func (i Int128) AsBigInt() *big.Int {
	var v big.Int
	return i.IntoBigInt(&v)
}

// IntoBigInt sets b to i and returns b.
func (i Int128) IntoBigInt(b *big.Int) *big.Int {
	i.AbsUint128().IntoBigInt(b)
	if i.negative() {
		b.Neg(b)
	}
	return b
}

// AsFloat64 returns the float64 nearest to i.
func (i Int128) AsFloat64() float64 {
	if i.IsInt64() {
		return float64(int64(i.lo))
	}
	f, _ := new(big.Float).SetInt(i.AsBigInt()).Float64()
	return f
}

func (i Int128) String() string {
	if i.IsInt64() {
		return strconv.FormatInt(int64(i.lo), 10)
	}
	return i.AsBigInt().String()
}

// Format implements fmt.Formatter with the verbs supported by big.Int.
func (i Int128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

func (i Int128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int128) UnmarshalText(bts []byte) error {
	v, err := Int128FromString(string(bts))
	if err != nil {
		return fmt.Errorf("numeric: int128: %q: %w", bts, err)
	}
	*i = v
	return nil
}

func (i Int128) MarshalJSON() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int128) UnmarshalJSON(bts []byte) error {
	if len(bts) >= 2 && bts[0] == '"' && bts[len(bts)-1] == '"' {
		var s string
		if err := json.Unmarshal(bts, &s); err != nil {
			return err
		}
		bts = []byte(s)
	}
	return i.UnmarshalText(bts)
}

// GCD returns the greatest common divisor of |a| and |b| as a magnitude.
// GCD(0, 0) is 0.
func GCD(a, b Int128) Uint128 {
	return gcdUint128(a.AbsUint128(), b.AbsUint128())
}

// LCM returns the least common multiple of |a| and |b|, reporting overflow
// when it does not fit in an Int128. LCM with a zero operand is zero.
func LCM(a, b Int128) (Int128, error) {
	if a.IsZero() || b.IsZero() {
		return Int128{}, nil
	}
	ua, ub := a.AbsUint128(), b.AbsUint128()
	m, overflow := ua.Quo(gcdUint128(ua, ub)).MulOverflow(ub)
	if overflow {
		return Int128{}, ErrOverflow
	}
	out, overflow := fromMagnitude(m, false)
	if overflow {
		return Int128{}, ErrOverflow
	}
	return out, nil
}

// gcdUint128 is Stein's binary GCD, with a 64-bit fast path.
func gcdUint128(a, b Uint128) Uint128 {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	shift := min(a.TrailingZeros(), b.TrailingZeros())
	a = a.Rsh(a.TrailingZeros())
	for !b.IsZero() {
		if a.hi == 0 && b.hi == 0 {
			return Uint128{lo: gcd64(a.lo, b.lo)}.Lsh(shift)
		}
		b = b.Rsh(b.TrailingZeros())
		if b.LessThan(a) {
			a, b = b, a
		}
		b = b.Sub(a)
	}
	return a.Lsh(shift)
}

// gcd64 expects a odd; b may carry trailing zeros.
func gcd64(a, b uint64) uint64 {
	for b != 0 {
		b >>= uint(bits.TrailingZeros64(b))
		if b < a {
			a, b = b, a
		}
		b -= a
	}
	return a
}
