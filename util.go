package huffcode

import (
	"math"
	mathbits "math/bits"
)

// satAdd64 returns a+b, saturating at math.MaxUint64.
func satAdd64(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// satMul64 returns a*b, saturating at math.MaxUint64.
func satMul64(a, b uint64) uint64 {
	hi, lo := mathbits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
