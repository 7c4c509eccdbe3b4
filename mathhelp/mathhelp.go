package mathhelp

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

func Pow2(n uint) uint64 {
	return 1 << n
}

// FloatEuclidianMod returns d mod m in [0, m) for a positive m
func FloatEuclidianMod(d, m float64) float64 {
	r := math.Mod(d, m)
	if r < 0 {
		r += m
	}
	if r >= m { // -tiny + m rounds up to m
		r = 0
	}
	return r
}

// WrapLongitude normalizes a longitude into [-180, 180)
func WrapLongitude(lon float64) float64 {
	if lon >= -180 && lon < 180 {
		return lon
	}
	return FloatEuclidianMod(lon+180, 360) - 180
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CheckedMul multiplies a and b, ok is false on uint64 overflow
func CheckedMul(a, b uint64) (product uint64, ok bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}
