package utils

import (
	"math/big"
)

func IntX(x *big.Int) *big.Int {
	z := big.NewInt(0)
	return z.Set(x)
}

func AddX(x *big.Int, y ...*big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	for _, v := range y {
		z = z.Add(z, v)
	}
	return z
}

func SubX(x *big.Int, y ...*big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	for _, v := range y {
		z = z.Sub(z, v)
	}
	return z
}

func MulX(x *big.Int, y ...*big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	for _, v := range y {
		z = z.Mul(z, v)
	}
	return z
}

// DivX truncates toward zero, matching on-chain integer division.
func DivX(x *big.Int, y ...*big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	for _, v := range y {
		z = z.Quo(z, v)
	}
	return z
}

// DivCeilX rounds the quotient of non-negative operands up.
func DivCeilX(x *big.Int, y *big.Int) *big.Int {
	quotient, remainder := new(big.Int).QuoRem(x, y, new(big.Int))
	if remainder.Sign() != 0 {
		return quotient.Add(quotient, big.NewInt(1))
	}
	return quotient
}

// DivRoundX rounds the quotient half away from zero.
func DivRoundX(x *big.Int, y *big.Int) *big.Int {
	num := MulX(AbsX(x), big.NewInt(2))
	num.Add(num, AbsX(y))
	den := MulX(AbsX(y), big.NewInt(2))
	quotient := num.Quo(num, den)
	if x.Sign()*y.Sign() < 0 {
		quotient.Neg(quotient)
	}
	return quotient
}

func PowX(x, y *big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	return z.Exp(z, y, nil)
}

func AbsX(x *big.Int) *big.Int {
	z := big.NewInt(0)
	return z.Abs(x)
}

func NegX(x *big.Int) *big.Int {
	z := big.NewInt(0)
	return z.Neg(x)
}

func Min(x *big.Int, y ...*big.Int) *big.Int {
	minValue := x
	for _, v := range y {
		if minValue.Cmp(v) > 0 {
			minValue = v
		}
	}
	return minValue
}

func Max(x *big.Int, y ...*big.Int) *big.Int {
	maxValue := x
	for _, v := range y {
		if maxValue.Cmp(v) < 0 {
			maxValue = v
		}
	}
	return maxValue
}

func ClampBN(x *big.Int, min *big.Int, max *big.Int) *big.Int {
	return Max(min, Min(x, max))
}

func BigInt64(x int64) *big.Int {
	return big.NewInt(x)
}

func BigUInt64(x uint64) *big.Int {
	return big.NewInt(0).SetUint64(x)
}

func BN[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64](x T) *big.Int {
	switch v := any(x).(type) {
	case uint:
		return BigUInt64(uint64(v))
	case uint8:
		return BigUInt64(uint64(v))
	case uint16:
		return BigUInt64(uint64(v))
	case uint32:
		return BigUInt64(uint64(v))
	case uint64:
		return BigUInt64(v)
	default:
		return BigInt64(int64(x))
	}
}

// Uint64 saturates negative values at zero and oversized values at MaxUint64.
func Uint64(x *big.Int) uint64 {
	if x.Sign() <= 0 {
		return 0
	}
	if !x.IsUint64() {
		return ^uint64(0)
	}
	return x.Uint64()
}

// Uint128FromLE reads a little-endian unsigned 128 bit integer.
func Uint128FromLE(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}

func SquareRootBN(n *big.Int) *big.Int {
	return new(big.Int).Sqrt(n)
}
