package numeric

import (
	"encoding/binary"
	"hash/fnv"
	"math/big"
)

// rank orders the kinds: -Inf < finite < +Inf. NaN has no rank.
func (x Fraction) rank() int {
	switch x.kind {
	case negInf:
		return -1
	case posInf:
		return 1
	}
	return 0
}

// PartialCmp compares x and y, returning ok == false when either is NaN.
// Otherwise c is -1, 0 or +1 as x is less than, equal to, or greater than y.
func (x Fraction) PartialCmp(y Fraction) (c int, ok bool) {
	if x.kind == nan || y.kind == nan {
		return 0, false
	}
	if rx, ry := x.rank(), y.rank(); rx != ry || rx != 0 {
		return cmpInt(rx, ry), true
	}
	return cmpFinite(x, y), true
}

// cmpFinite compares na/da with nb/db by cross-multiplication. Both
// denominators are positive so the products order like the values.
func cmpFinite(x, y Fraction) int {
	if x == y {
		return 0
	}
	if sx, sy := x.num.Sign(), y.num.Sign(); sx != sy {
		return cmpInt(sx, sy)
	}
	da, db := x.den.Inc(), y.den.Inc()
	l, o1 := x.num.MulOverflow(db)
	r, o2 := y.num.MulOverflow(da)
	if !o1 && !o2 {
		return l.Cmp(r)
	}
	var bl, br, t big.Int
	bl.Mul(x.num.IntoBigInt(&bl), db.IntoBigInt(&t))
	br.Mul(y.num.IntoBigInt(&br), da.IntoBigInt(&t))
	return bl.Cmp(&br)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Cmp is a total order for sorting, following cmp.Compare for floats: NaN
// sorts before every other value and compares equal to NaN.
func (x Fraction) Cmp(y Fraction) int {
	if c, ok := x.PartialCmp(y); ok {
		return c
	}
	switch {
	case x.kind == nan && y.kind == nan:
		return 0
	case x.kind == nan:
		return -1
	}
	return 1
}

// Compare is Cmp as a function, for use with slices.SortFunc.
func Compare(x, y Fraction) int {
	return x.Cmp(y)
}

func (x Fraction) Less(y Fraction) bool {
	c, ok := x.PartialCmp(y)
	return ok && c < 0
}

func (x Fraction) LessEq(y Fraction) bool {
	c, ok := x.PartialCmp(y)
	return ok && c <= 0
}

func (x Fraction) Greater(y Fraction) bool {
	c, ok := x.PartialCmp(y)
	return ok && c > 0
}

func (x Fraction) GreaterEq(y Fraction) bool {
	c, ok := x.PartialCmp(y)
	return ok && c >= 0
}

// Equal reports numeric equality. NaN is not equal to anything, itself
// included; each infinity equals only itself.
func (x Fraction) Equal(y Fraction) bool {
	return x.kind != nan && y.kind != nan && x == y
}

// Hash hashes the (numerator, denominator) pair. Equal values hash alike.
// NaN hashes consistently even though it never compares Equal.
func (x Fraction) Hash() uint64 {
	var buf [32]byte
	n, d := x.AsIntegerRatio()
	binary.BigEndian.PutUint64(buf[0:], n.hi)
	binary.BigEndian.PutUint64(buf[8:], n.lo)
	binary.BigEndian.PutUint64(buf[16:], d.hi)
	binary.BigEndian.PutUint64(buf[24:], d.lo)
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// CmpInt compares x with the integer n under the same total order as Cmp.
func (x Fraction) CmpInt(n int64) int {
	return x.Cmp(FromInt64(n))
}

func (x Fraction) EqualInt(n int64) bool {
	return x.Equal(FromInt64(n))
}

// Cross returns the determinant n1*d2 - d1*n2 of the two integer ratios. Its
// sign orders finite values; zero means they are equal. Special values take
// part through their (numerator, denominator) encoding.
func (x Fraction) Cross(y Fraction) Int128 {
	n1, d1 := x.AsIntegerRatio()
	n2, d2 := y.AsIntegerRatio()
	return mustSub(mustMul(n1, d2), mustMul(d1, n2))
}

func (x Fraction) TryCross(y Fraction) (c Int128, err error) {
	defer checkOverflow(&err)
	return x.Cross(y), nil
}
