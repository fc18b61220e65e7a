package numeric

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	// mantissaBits is the explicit mantissa width of an IEEE-754 double.
	mantissaBits = 52
	exponentBias = 1023

	// maxPow2Den is the largest k for which 1<<k is a valid positive Int128.
	maxPow2Den = 126
)

var (
	MaxInt128  = Int128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinInt128  = Int128{hi: 0x8000000000000000, lo: 0}
	MaxUint128 = Uint128{hi: maxUint64, lo: maxUint64}

	zeroInt128  Int128
	oneInt128   = Int128{lo: 1}
	minusOne    = Int128{hi: 0xFFFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	zeroUint128 Uint128

	// minInt128AsUint128 is |MinInt128|, the largest magnitude a negative
	// Int128 can hold.
	minInt128AsUint128 = Uint128{hi: 0x8000000000000000, lo: 0x0}

	minBigInt128, _  = new(big.Int).SetString("-0x80000000000000000000000000000000", 0)
	maxBigInt128, _  = new(big.Int).SetString("0x7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", 0)
	maxBigUint128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
)
