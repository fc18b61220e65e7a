package numeric

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	posInfF = Infinity(true)
	negInfF = Infinity(false)
	nanF    = NaN()
)

func frac(n, d int64) Fraction { return New64(n, d) }

func requireRatio(t *testing.T, f Fraction, num, den Int128) {
	t.Helper()
	n, d := f.AsIntegerRatio()
	require.Equal(t, num.String(), n.String(), "numerator of %s", f)
	require.Equal(t, den.String(), d.String(), "denominator of %s", f)
}

// requireSame checks that got is want, treating NaN as the same as NaN.
func requireSame(t *testing.T, want, got Fraction) {
	t.Helper()
	if want.IsNaN() {
		require.True(t, got.IsNaN(), "want nan, found %s", got)
		return
	}
	require.True(t, want.Equal(got), "want %s, found %s", want, got)
}

func TestFractionZeroValue(t *testing.T) {
	var f Fraction
	require.True(t, f.IsZero())
	require.True(t, f.IsFinite())
	require.True(t, f.IsInt())
	require.True(t, f.Equal(Zero()))
	require.True(t, f.Equal(frac(0, 7)))
	requireRatio(t, f, i64(0), i64(1))
	require.Equal(t, "0", f.String())
}

func TestFractionNew(t *testing.T) {
	for idx, tc := range []struct {
		n, d     Int128
		num, den Int128
	}{
		{i64(4), i64(3), i64(4), i64(3)},
		{i64(8), i64(6), i64(4), i64(3)},
		{i64(-8), i64(6), i64(-4), i64(3)},
		{i64(8), i64(-6), i64(-4), i64(3)},
		{i64(-8), i64(-6), i64(4), i64(3)},
		{i64(0), i64(5), i64(0), i64(1)},
		{i64(0), i64(-5), i64(0), i64(1)},
		{i64(7), i64(1), i64(7), i64(1)},

		// zero denominators
		{i64(0), i64(0), i64(0), i64(0)},
		{i64(5), i64(0), i64(1), i64(0)},
		{i64(-5), i64(0), i64(-1), i64(0)},

		{MinInt128, i64(2), i128s("-0x4000000000000000 0000000000000000"), i64(1)},
		{MinInt128, MinInt128, i64(1), i64(1)},
		{MaxInt128, MaxInt128, i64(1), i64(1)},
		{MinInt128, i64(0), i64(-1), i64(0)},
		{i64(-1), MaxInt128, i64(-1), MaxInt128},
		{i128s("0x10000000000000000"), i128s("0x30000000000000000"), i64(1), i64(3)},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.n, tc.d), func(t *testing.T) {
			f, err := TryNew(tc.n, tc.d)
			require.NoError(t, err)
			requireRatio(t, f, tc.num, tc.den)
		})
	}
}

func TestFractionNewEquivalent(t *testing.T) {
	require.True(t, frac(4, 3).Equal(frac(8, 6)))
	require.Equal(t, frac(4, 3), frac(8, 6))
	require.Equal(t, frac(4, 3).Hash(), frac(8, 6).Hash())
	require.True(t, frac(-1, 2).Equal(frac(1, -2)))
	require.True(t, frac(3, 0).Equal(frac(1, 0)))
	require.True(t, New(i64(-3), i64(0)).Equal(negInfF))
}

func TestFractionNewOverflow(t *testing.T) {
	for idx, tc := range []struct {
		n, d Int128
	}{
		{MinInt128, i64(-1)},
		{i64(1), MinInt128},
		{i64(3), MinInt128},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.n, tc.d), func(t *testing.T) {
			_, err := TryNew(tc.n, tc.d)
			require.ErrorIs(t, err, ErrOverflow)
			require.PanicsWithValue(t, ErrOverflow, func() { New(tc.n, tc.d) })
		})
	}
}

func TestFractionSpecialEncoding(t *testing.T) {
	requireRatio(t, nanF, i64(0), i64(0))
	requireRatio(t, posInfF, i64(1), i64(0))
	requireRatio(t, negInfF, i64(-1), i64(0))

	require.True(t, nanF.IsNaN())
	require.False(t, nanF.IsInf())
	require.False(t, nanF.IsFinite())
	require.True(t, posInfF.IsInf())
	require.True(t, negInfF.IsInf())
	require.False(t, posInfF.IsInt())
	require.False(t, nanF.IsZero())

	require.Equal(t, 0, nanF.Sign())
	require.Equal(t, 1, posInfF.Sign())
	require.Equal(t, -1, negInfF.Sign())
	require.Equal(t, -1, frac(-1, 3).Sign())
	require.Equal(t, 0, Zero().Sign())
}

func TestFractionConstructors(t *testing.T) {
	requireRatio(t, FromInt64(-9), i64(-9), i64(1))
	requireRatio(t, FromUint64(maxUint64), i128s("18446744073709551615"), i64(1))
	requireRatio(t, FromInt128(MinInt128), MinInt128, i64(1))
	requireRatio(t, One(), i64(1), i64(1))
	require.True(t, FromInt64(3).IsInt())
	require.False(t, frac(3, 2).IsInt())
}

func TestFractionAdd(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c Fraction
	}{
		{frac(1, 2), frac(1, 3), frac(5, 6)},
		{frac(1, 6), frac(1, 3), frac(1, 2)},
		{frac(1, 6), frac(5, 6), frac(1, 1)},
		{frac(-1, 4), frac(1, 4), Zero()},
		{frac(3, 10), frac(7, 15), frac(23, 30)},
		{frac(1, 12), frac(1, 18), frac(5, 36)},
		{FromInt64(2), frac(-7, 2), frac(-3, 2)},

		{posInfF, frac(1, 2), posInfF},
		{frac(1, 2), negInfF, negInfF},
		{posInfF, posInfF, posInfF},
		{negInfF, negInfF, negInfF},
		{posInfF, negInfF, nanF},
		{negInfF, posInfF, nanF},
		{nanF, frac(1, 2), nanF},
		{frac(1, 2), nanF, nanF},
		{nanF, posInfF, nanF},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			requireSame(t, tc.c, tc.a.Add(tc.b))
			requireSame(t, tc.c, tc.b.Add(tc.a))
		})
	}
}

func TestFractionSub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c Fraction
	}{
		{frac(1, 2), frac(1, 3), frac(1, 6)},
		{frac(1, 3), frac(1, 2), frac(-1, 6)},
		{frac(5, 6), frac(1, 3), frac(1, 2)},
		{frac(7, 3), frac(7, 3), Zero()},

		{posInfF, frac(1, 2), posInfF},
		{frac(1, 2), posInfF, negInfF},
		{frac(1, 2), negInfF, posInfF},
		{posInfF, posInfF, nanF},
		{negInfF, negInfF, nanF},
		{posInfF, negInfF, posInfF},
		{negInfF, posInfF, negInfF},
		{nanF, frac(1, 2), nanF},
		{frac(1, 2), nanF, nanF},
	} {
		t.Run(fmt.Sprintf("%d/%s-%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			requireSame(t, tc.c, tc.a.Sub(tc.b))
		})
	}
}

func TestFractionMul(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c Fraction
	}{
		{frac(2, 3), frac(3, 4), frac(1, 2)},
		{frac(-2, 3), frac(3, 4), frac(-1, 2)},
		{frac(-2, 3), frac(-9, 4), frac(3, 2)},
		{frac(2, 3), Zero(), Zero()},

		{posInfF, frac(1, 2), posInfF},
		{posInfF, frac(-1, 2), negInfF},
		{negInfF, frac(-1, 2), posInfF},
		{negInfF, negInfF, posInfF},
		{posInfF, negInfF, negInfF},
		{posInfF, Zero(), nanF},
		{negInfF, Zero(), nanF},
		{nanF, frac(1, 2), nanF},
		{nanF, Zero(), nanF},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			requireSame(t, tc.c, tc.a.Mul(tc.b))
			requireSame(t, tc.c, tc.b.Mul(tc.a))
		})
	}
}

func TestFractionDiv(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c Fraction
	}{
		{frac(2, 3), frac(3, 4), frac(8, 9)},
		{frac(2, 3), frac(-4, 3), frac(-1, 2)},
		{frac(-6, 5), frac(-3, 10), FromInt64(4)},
		{Zero(), frac(3, 4), Zero()},

		{frac(1, 2), Zero(), posInfF},
		{frac(-1, 2), Zero(), negInfF},
		{Zero(), Zero(), nanF},
		{frac(1, 2), posInfF, Zero()},
		{frac(-1, 2), negInfF, Zero()},
		{posInfF, posInfF, Zero()},
		{posInfF, negInfF, Zero()},
		{posInfF, frac(1, 2), posInfF},
		{posInfF, frac(-1, 2), posInfF},
		{negInfF, Zero(), negInfF},
		{nanF, frac(1, 2), nanF},
		{frac(1, 2), nanF, nanF},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			requireSame(t, tc.c, tc.a.Div(tc.b))
		})
	}
}

func TestFractionUnary(t *testing.T) {
	requireSame(t, frac(-3, 4), frac(3, 4).Neg())
	requireSame(t, negInfF, posInfF.Neg())
	requireSame(t, posInfF, negInfF.Neg())
	requireSame(t, nanF, nanF.Neg())

	requireSame(t, frac(3, 4), frac(-3, 4).Abs())
	requireSame(t, posInfF, negInfF.Abs())
	requireSame(t, nanF, nanF.Abs())

	requireSame(t, frac(-4, 3), frac(-3, 4).Inv())
	requireSame(t, posInfF, Zero().Inv())
	requireSame(t, Zero(), posInfF.Inv())
	requireSame(t, Zero(), negInfF.Inv())
	requireSame(t, nanF, nanF.Inv())

	requireSame(t, frac(7, 4), frac(3, 4).Inc())
	requireSame(t, frac(-1, 4), frac(3, 4).Dec())

	requireSame(t, frac(5, 4), frac(1, 4).AddInt(1))
	requireSame(t, frac(-3, 4), frac(1, 4).SubInt(1))
	requireSame(t, frac(3, 2), frac(3, 4).MulInt(2))
	requireSame(t, frac(3, 8), frac(3, 4).DivInt(2))
	requireSame(t, posInfF, frac(3, 4).DivInt(0))
}

func TestFractionPow(t *testing.T) {
	for idx, tc := range []struct {
		a   Fraction
		exp int
		c   Fraction
	}{
		{frac(2, 3), 3, frac(8, 27)},
		{frac(-2, 3), 3, frac(-8, 27)},
		{frac(-2, 3), 2, frac(4, 9)},
		{frac(2, 3), -2, frac(9, 4)},
		{frac(-2, 3), -3, frac(-27, 8)},
		{frac(2, 3), 0, One()},
		{frac(2, 3), 1, frac(2, 3)},
		{Zero(), 0, One()},
		{Zero(), 3, Zero()},
		{Zero(), -1, posInfF},
		{FromInt64(2), 126, New(i128s("0x4000000000000000 0000000000000000"), i64(1))},
		{FromInt64(-2), 127, FromInt128(MinInt128)},

		{posInfF, 2, posInfF},
		{negInfF, 3, negInfF},
		{negInfF, 2, negInfF},
		{posInfF, 0, One()},
		{negInfF, 0, One()},
		{posInfF, -1, Zero()},
		{negInfF, -2, Zero()},
		{nanF, 0, nanF},
		{nanF, 2, nanF},
	} {
		t.Run(fmt.Sprintf("%d/%s^%d=%s", idx, tc.a, tc.exp, tc.c), func(t *testing.T) {
			requireSame(t, tc.c, tc.a.Pow(tc.exp))
		})
	}
}

func TestFractionPowLaws(t *testing.T) {
	for _, x := range []Fraction{frac(2, 3), frac(-5, 7), frac(11, 2), FromInt64(-3)} {
		for a := -4; a <= 4; a++ {
			for b := -4; b <= 4; b++ {
				lhs := x.Pow(a).Mul(x.Pow(b))
				require.True(t, lhs.Equal(x.Pow(a+b)), "%s^%d * %s^%d", x, a, x, b)
			}
			require.True(t, x.Pow(a).Pow(2).Equal(x.Pow(2*a)), "(%s^%d)^2", x, a)
			require.True(t, x.Pow(-a).Equal(x.Pow(a).Inv()), "%s^-%d", x, a)
		}
	}
}

func TestFractionOverflow(t *testing.T) {
	max := FromInt128(MaxInt128)
	min := FromInt128(MinInt128)
	tiny := New(i64(1), MaxInt128)
	tiny2 := New(i64(1), MaxInt128.Dec())

	_, err := max.TryAdd(One())
	require.ErrorIs(t, err, ErrOverflow)
	_, err = min.TrySub(One())
	require.ErrorIs(t, err, ErrOverflow)
	_, err = max.TryMul(FromInt64(2))
	require.ErrorIs(t, err, ErrOverflow)
	_, err = tiny.TryAdd(tiny2)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = max.TryDiv(tiny)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = min.TryNeg()
	require.ErrorIs(t, err, ErrOverflow)
	_, err = min.TryAbs()
	require.ErrorIs(t, err, ErrOverflow)
	_, err = min.TryInv()
	require.ErrorIs(t, err, ErrOverflow)
	_, err = FromInt64(2).TryPow(127)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = FromInt64(2).TryPow(-127)
	require.ErrorIs(t, err, ErrOverflow)

	require.PanicsWithValue(t, ErrOverflow, func() { max.Add(One()) })
	require.PanicsWithValue(t, ErrOverflow, func() { min.Neg() })

	// Results that fit are not errors even when operands are at the edges.
	v, err := max.TryAdd(min)
	require.NoError(t, err)
	requireSame(t, FromInt64(-1), v)
	v, err = max.TryInv()
	require.NoError(t, err)
	requireSame(t, tiny, v)
	v, err = tiny.TryMul(max)
	require.NoError(t, err)
	requireSame(t, One(), v)
}

func TestFractionCompare(t *testing.T) {
	ordered := []Fraction{
		negInfF,
		FromInt128(MinInt128),
		FromInt64(-2),
		frac(-1, 2),
		frac(-1, 3),
		Zero(),
		New(i64(1), MaxInt128),
		frac(1, 3),
		frac(1, 2),
		FromInt64(1),
		New(MaxInt128, MaxInt128.Dec()),
		New(MaxInt128.Dec(), MaxInt128.Sub64(2)),
		FromInt128(MaxInt128),
		posInfF,
	}
	for i, a := range ordered {
		for j, b := range ordered {
			want := cmpInt(i, j)
			c, ok := a.PartialCmp(b)
			require.True(t, ok)
			require.Equal(t, want, c, "%s <=> %s", a, b)
			require.Equal(t, want, a.Cmp(b), "%s <=> %s", a, b)
			require.Equal(t, want < 0, a.Less(b))
			require.Equal(t, want <= 0, a.LessEq(b))
			require.Equal(t, want > 0, a.Greater(b))
			require.Equal(t, want >= 0, a.GreaterEq(b))
			require.Equal(t, want == 0, a.Equal(b))
		}
	}
}

func TestFractionCompareNaN(t *testing.T) {
	for _, v := range []Fraction{nanF, negInfF, Zero(), frac(1, 2), posInfF} {
		_, ok := nanF.PartialCmp(v)
		require.False(t, ok)
		_, ok = v.PartialCmp(nanF)
		require.False(t, ok)

		require.False(t, nanF.Equal(v))
		require.False(t, v.Equal(nanF))
		require.False(t, nanF.Less(v))
		require.False(t, nanF.LessEq(v))
		require.False(t, nanF.Greater(v))
		require.False(t, nanF.GreaterEq(v))
		require.False(t, v.Less(nanF))
		require.False(t, v.GreaterEq(nanF))
	}

	// the total order puts NaN first
	require.Equal(t, 0, nanF.Cmp(nanF))
	require.Equal(t, -1, nanF.Cmp(negInfF))
	require.Equal(t, 1, negInfF.Cmp(nanF))
	require.Equal(t, nanF.Hash(), NaN().Hash())
}

func TestFractionInfinityIdentity(t *testing.T) {
	require.True(t, posInfF.Equal(Infinity(true)))
	require.True(t, negInfF.Equal(Infinity(false)))
	require.False(t, posInfF.Equal(negInfF))
	require.True(t, posInfF.Equal(frac(7, 0)))
}

func randSmallFraction(rng *rand.Rand) Fraction {
	return frac(rng.Int63n(2001)-1000, rng.Int63n(1000)+1)
}

func TestFractionFieldAxioms(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		a, b, c := randSmallFraction(rng), randSmallFraction(rng), randSmallFraction(rng)

		require.True(t, a.Add(b).Equal(b.Add(a)), "%s + %s", a, b)
		require.True(t, a.Mul(b).Equal(b.Mul(a)), "%s * %s", a, b)
		require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))), "(%s + %s) + %s", a, b, c)
		require.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))), "(%s * %s) * %s", a, b, c)
		require.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))), "%s * (%s + %s)", a, b, c)

		require.True(t, a.Add(Zero()).Equal(a))
		require.True(t, a.Mul(One()).Equal(a))
		require.True(t, a.Add(a.Neg()).IsZero())
		require.True(t, a.Sub(b).Equal(a.Add(b.Neg())))
		if !a.IsZero() {
			require.True(t, a.Mul(a.Inv()).Equal(One()), "%s * 1/%s", a, a)
			require.True(t, b.Div(a).Equal(b.Mul(a.Inv())))
		}

		// ordering is consistent with subtraction
		require.Equal(t, a.Sub(b).Sign(), a.Cmp(b), "%s <=> %s", a, b)
		if a.Less(b) && b.Less(c) {
			require.True(t, a.Less(c))
		}
		require.Equal(t, a.Hash() == b.Hash(), a.Equal(b))
	}
}

func TestFractionSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	vs := []Fraction{nanF, posInfF, negInfF, nanF}
	for i := 0; i < 200; i++ {
		vs = append(vs, randSmallFraction(rng))
	}
	slices.SortFunc(vs, Compare)

	require.True(t, vs[0].IsNaN())
	require.True(t, vs[1].IsNaN())
	requireSame(t, negInfF, vs[2])
	requireSame(t, posInfF, vs[len(vs)-1])
	for i := 3; i < len(vs); i++ {
		require.True(t, vs[i-1].LessEq(vs[i]), "%s > %s", vs[i-1], vs[i])
	}
}

func TestFractionCross(t *testing.T) {
	require.Equal(t, i64(-2), frac(1, 2).Cross(frac(3, 4)))
	require.Equal(t, i64(0), frac(1, 2).Cross(frac(2, 4)))
	require.Equal(t, i64(4), frac(1, 2).Cross(frac(-1, 2)))
	require.Equal(t, i64(2), posInfF.Cross(frac(1, 2)))
	require.Equal(t, i64(0), nanF.Cross(posInfF))

	_, err := FromInt128(MaxInt128).TryCross(frac(-1, 2))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestFractionCmpInt(t *testing.T) {
	half := frac(1, 2)
	require.False(t, half.EqualInt(0))
	require.False(t, half.EqualInt(1))
	require.True(t, frac(4, 2).EqualInt(2))
	require.Equal(t, -1, half.CmpInt(1))
	require.Equal(t, 1, half.CmpInt(0))
	require.Equal(t, 1, posInfF.CmpInt(maxInt64))
	require.Equal(t, -1, nanF.CmpInt(0))
	require.False(t, nanF.EqualInt(0))
}
