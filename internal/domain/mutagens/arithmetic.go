package mutagens

import (
	"math"
	"math/rand/v2"
)

// maxArithmeticDelta bounds the value added or subtracted, exclusive.
const maxArithmeticDelta = 0x10

// Arithmetic adds or subtracts a value in [1, 16) with wraparound at width.
func Arithmetic(r *rand.Rand, raw uint64, width uint8) uint64 {
	delta := 1 + r.Uint64N(maxArithmeticDelta-1)

	if r.IntN(2) == 0 {
		raw += delta
	} else {
		raw -= delta
	}

	return raw & Mask(width)
}

// ArithmeticFloatBits applies Arithmetic to the numeric value of a float
// held as raw IEEE bits of width 32 or 64.
func ArithmeticFloatBits(r *rand.Rand, raw uint64, width uint8) uint64 {
	delta := float64(1 + r.Uint64N(maxArithmeticDelta-1))
	if r.IntN(2) != 0 {
		delta = -delta
	}

	if width == 32 {
		v := math.Float32frombits(uint32(raw))
		return uint64(math.Float32bits(v + float32(delta)))
	}

	return math.Float64bits(math.Float64frombits(raw) + delta)
}
